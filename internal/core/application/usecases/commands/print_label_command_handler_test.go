package commands_test

import (
	"testing"
	"time"

	"github.com/T0MGL/0rdefy-sub010/internal/core/application/usecases/commands"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPrintLabelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	sess, ord, _ := buildPackedSession(t)
	document := commands.LabelDocument{
		SessionCode:  sess.Code().String(),
		OrderNumber:  ord.Number(),
		CustomerName: ord.CustomerName(),
		PrintedAt:    time.Now().UTC(),
		Lines:        []commands.LabelLine{{ProductName: "Ceramic Mug", Quantity: 2}},
	}

	cmd, err := commands.NewPrintLabelCommand(sess.ID(), ord.ID())
	require.NoError(t, err)

	mockSessionRepo := new(MockSessionRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockEmitter := new(MockLabelEmitter)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("SessionRepository").Return(mockSessionRepo).Once(),
		mockSessionRepo.On("GetForUpdate", ctx, sess.ID()).Return(sess, nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		mockEmitter.On("Emit", sess, ord).Return(document, nil).Once(),
		mockSessionRepo.On("Update", ctx, sess).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewPrintLabelCommandHandler(mockFactory, mockEmitter)

	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, document, result)
	assert.True(t, sess.Members()[0].Printed())
	mockUoW.AssertExpectations(t)
	mockEmitter.AssertExpectations(t)
}

func TestPrintLabelCommandHandler_Handle_OrderNotFullyPacked(t *testing.T) {
	ctx := t.Context()
	sess, ord, productID := buildPackingSession(t)
	require.NoError(t, sess.PackOne(ord.ID(), productID)) // one of two units packed

	cmd, err := commands.NewPrintLabelCommand(sess.ID(), ord.ID())
	require.NoError(t, err)

	mockSessionRepo := new(MockSessionRepository)
	mockEmitter := new(MockLabelEmitter)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("SessionRepository").Return(mockSessionRepo).Once(),
		mockSessionRepo.On("GetForUpdate", ctx, sess.ID()).Return(sess, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewPrintLabelCommandHandler(mockFactory, mockEmitter)

	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrOrderNotFullyPacked)
	assert.False(t, sess.Members()[0].Printed())
	mockEmitter.AssertNotCalled(t, "Emit", sess, mock.Anything)
	mockUoW.AssertExpectations(t)
}

func TestPrintLabelCommandHandler_Handle_ReprintKeepsTimestamp(t *testing.T) {
	ctx := t.Context()
	sess, ord, _ := buildPackedSession(t)
	require.NoError(t, sess.MarkPrinted(ord.ID()))
	firstPrintedAt := sess.Members()[0].PrintedAt()
	require.NotNil(t, firstPrintedAt)

	cmd, err := commands.NewPrintLabelCommand(sess.ID(), ord.ID())
	require.NoError(t, err)

	mockSessionRepo := new(MockSessionRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockEmitter := new(MockLabelEmitter)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("SessionRepository").Return(mockSessionRepo).Once(),
		mockSessionRepo.On("GetForUpdate", ctx, sess.ID()).Return(sess, nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		mockEmitter.On("Emit", sess, ord).Return(commands.LabelDocument{}, nil).Once(),
		mockSessionRepo.On("Update", ctx, sess).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewPrintLabelCommandHandler(mockFactory, mockEmitter)

	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, firstPrintedAt, sess.Members()[0].PrintedAt())
	mockUoW.AssertExpectations(t)
}
