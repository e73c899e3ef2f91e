package session_test

import (
	"testing"
	"time"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/session"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidMember(t *testing.T) *session.Member {
	t.Helper()
	member, err := session.NewMember(kernel.NewUUID())
	require.NoError(t, err)
	require.NotNil(t, member)
	return member
}

func TestNewMember(t *testing.T) {
	t.Run("should create member with valid order ID", func(t *testing.T) {
		orderID := kernel.NewUUID()

		member, err := session.NewMember(orderID)

		require.NoError(t, err)
		assert.NotNil(t, member)
		require.NoError(t, member.Validate())
		assert.True(t, member.OrderID().IsEqual(orderID))
		assert.False(t, member.Printed())
		assert.Nil(t, member.PrintedAt())
	})

	t.Run("should return error for invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		member, err := session.NewMember(invalidID)

		require.Error(t, err)
		assert.Nil(t, member)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
	})
}

func TestRestoreMember(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should restore unprinted member", func(t *testing.T) {
		member, err := session.RestoreMember(orderID, false, nil)

		require.NoError(t, err)
		assert.False(t, member.Printed())
		assert.Nil(t, member.PrintedAt())
	})

	t.Run("should restore printed member with timestamp", func(t *testing.T) {
		printedAt := time.Date(2025, 11, 3, 14, 30, 0, 0, time.UTC)

		member, err := session.RestoreMember(orderID, true, &printedAt)

		require.NoError(t, err)
		assert.True(t, member.Printed())
		require.NotNil(t, member.PrintedAt())
		assert.Equal(t, printedAt, *member.PrintedAt())
	})

	t.Run("should reject printed member without timestamp", func(t *testing.T) {
		member, err := session.RestoreMember(orderID, true, nil)

		require.Error(t, err)
		assert.Nil(t, member)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "printedAt")
	})

	t.Run("should reject unprinted member with timestamp", func(t *testing.T) {
		printedAt := time.Now()

		member, err := session.RestoreMember(orderID, false, &printedAt)

		require.Error(t, err)
		assert.Nil(t, member)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "an unprinted member cannot have a print timestamp")
	})

	t.Run("should reject invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		member, err := session.RestoreMember(invalidID, false, nil)

		require.Error(t, err)
		assert.Nil(t, member)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
	})
}

func TestMember_MarkPrinted(t *testing.T) {
	t.Run("should record first label emission in UTC", func(t *testing.T) {
		member := createValidMember(t)
		printedAt := time.Date(2025, 11, 3, 9, 15, 0, 0, time.FixedZone("CET", 3600))

		member.MarkPrinted(printedAt)

		assert.True(t, member.Printed())
		require.NotNil(t, member.PrintedAt())
		assert.Equal(t, printedAt.UTC(), *member.PrintedAt())
		assert.Equal(t, time.UTC, member.PrintedAt().Location())
	})

	t.Run("should keep original timestamp on reprint", func(t *testing.T) {
		member := createValidMember(t)
		first := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
		second := time.Date(2025, 11, 3, 11, 30, 0, 0, time.UTC)

		member.MarkPrinted(first)
		member.MarkPrinted(second)

		assert.True(t, member.Printed())
		require.NotNil(t, member.PrintedAt())
		assert.Equal(t, first, *member.PrintedAt())
	})
}

func TestMember_IsEqual(t *testing.T) {
	t.Run("should return true for members with same order", func(t *testing.T) {
		orderID := kernel.NewUUID()
		member1, err := session.NewMember(orderID)
		require.NoError(t, err)
		member2, err := session.NewMember(orderID)
		require.NoError(t, err)

		assert.True(t, member1.IsEqual(member2))
		assert.True(t, member2.IsEqual(member1))
	})

	t.Run("should return false for different orders", func(t *testing.T) {
		member1 := createValidMember(t)
		member2 := createValidMember(t)

		assert.False(t, member1.IsEqual(member2))
	})

	t.Run("should return false when comparing with nil", func(t *testing.T) {
		member := createValidMember(t)

		assert.False(t, member.IsEqual(nil))
	})
}

func TestMember_Validate(t *testing.T) {
	t.Run("should return nil for properly constructed member", func(t *testing.T) {
		member := createValidMember(t)

		require.NoError(t, member.Validate())
	})

	t.Run("should return error for zero value member", func(t *testing.T) {
		var member session.Member

		err := member.Validate()

		require.Error(t, err)
		assert.Equal(t, session.ErrMemberIsNotConstructed, err)
	})

	t.Run("should return error for nil member", func(t *testing.T) {
		var member *session.Member

		err := member.Validate()

		require.Error(t, err)
		assert.Equal(t, session.ErrMemberIsNotConstructed, err)
	})
}
