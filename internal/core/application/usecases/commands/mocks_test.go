package commands_test

import (
	"context"
	"testing"

	"github.com/T0MGL/0rdefy-sub010/internal/core/application/usecases/commands"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/order"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/session"
	"github.com/T0MGL/0rdefy-sub010/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations shared by the command handler tests.

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, aggregate *session.Session) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSessionRepository) Update(ctx context.Context, aggregate *session.Session) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByIDsForUpdate(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockSessionUoW struct{ mock.Mock }

func (m *MockSessionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

type MockSessionUoWFactory struct{ mock.Mock }

func (m *MockSessionUoWFactory) Create() commands.SessionUoW {
	args := m.Called()
	return args.Get(0).(commands.SessionUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockLabelEmitter struct{ mock.Mock }

func (m *MockLabelEmitter) Emit(sess *session.Session, ord *order.Order) (commands.LabelDocument, error) {
	args := m.Called(sess, ord)
	return args.Get(0).(commands.LabelDocument), args.Error(1)
}

// Fixture helpers shared by the command handler tests.

func buildSessionCode(t *testing.T) kernel.Code {
	t.Helper()
	code, err := kernel.GenerateCode()
	require.NoError(t, err)
	return code
}

func buildConfirmedOrder(t *testing.T, number string, quantities map[kernel.UUID]int) *order.Order {
	t.Helper()

	lines := make([]order.Line, 0, len(quantities))
	for productID, quantity := range quantities {
		line, err := order.NewLine(productID, "Ceramic Mug", quantity)
		require.NoError(t, err)
		lines = append(lines, line)
	}

	ord, err := order.NewOrder(kernel.NewUUID(), number, "Dana Smith", lines)
	require.NoError(t, err)
	return ord
}

// buildPickingSession opens a session over one confirmed order needing two
// units of the returned product.
func buildPickingSession(t *testing.T) (*session.Session, *order.Order, kernel.UUID) {
	t.Helper()

	productID := kernel.NewUUID()
	ord := buildConfirmedOrder(t, "ORD-1001", map[kernel.UUID]int{productID: 2})

	sess, err := session.NewSession(kernel.NewUUID(), buildSessionCode(t), []*order.Order{ord})
	require.NoError(t, err)
	require.NoError(t, ord.EnterFulfillment(sess.ID()))

	return sess, ord, productID
}

// buildPackingSession drives a picking session through a fully collected pick
// list into Packing status.
func buildPackingSession(t *testing.T) (*session.Session, *order.Order, kernel.UUID) {
	t.Helper()

	sess, ord, productID := buildPickingSession(t)
	require.NoError(t, sess.SetPicked(productID, 2))
	require.NoError(t, sess.FinishPicking())

	return sess, ord, productID
}

// buildPackedSession packs every unit of a packing session so the session is
// ready to complete.
func buildPackedSession(t *testing.T) (*session.Session, *order.Order, kernel.UUID) {
	t.Helper()

	sess, ord, productID := buildPackingSession(t)
	require.NoError(t, sess.PackOne(ord.ID(), productID))
	require.NoError(t, sess.PackOne(ord.ID(), productID))

	return sess, ord, productID
}
