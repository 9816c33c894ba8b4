package order_test

import (
	"testing"

	"entregaloya/internal/core/domain/model/order"
	"entregaloya/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValidate(t *testing.T) {
	t.Run("should accept the three lifecycle states", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Confirmed, order.Cancelled} {
			assert.NoError(t, status.Validate())
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		for _, status := range []order.Status{order.UnknownStatus, order.Status(99), order.Status(-1)} {
			err := status.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status order.Status
		want   string
	}{
		{order.Pending, "pendiente"},
		{order.Confirmed, "confirmado"},
		{order.Cancelled, "cancelado"},
		{order.UnknownStatus, "desconocido"},
		{order.Status(42), "desconocido"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse the wire names", func(t *testing.T) {
		tests := []struct {
			raw  string
			want order.Status
		}{
			{"pendiente", order.Pending},
			{"confirmado", order.Confirmed},
			{"cancelado", order.Cancelled},
		}

		for _, tt := range tests {
			status, err := order.StatusFromString(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		}
	})

	t.Run("should reject anything else", func(t *testing.T) {
		for _, raw := range []string{"", "desconocido", "PENDIENTE", "pending", "entregado"} {
			status, err := order.StatusFromString(raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, order.UnknownStatus, status)
		}
	})
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.True(t, order.Confirmed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatusTransitionTo(t *testing.T) {
	t.Run("should allow pending to either terminal state", func(t *testing.T) {
		for _, next := range []order.Status{order.Confirmed, order.Cancelled} {
			result, err := order.Pending.TransitionTo(next)
			require.NoError(t, err)
			assert.Equal(t, next, result)
		}
	})

	t.Run("should allow re-submitting the same status", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Confirmed, order.Cancelled} {
			result, err := status.TransitionTo(status)
			require.NoError(t, err)
			assert.Equal(t, status, result)
		}
	})

	t.Run("should reject reopening a terminal order", func(t *testing.T) {
		for _, from := range []order.Status{order.Confirmed, order.Cancelled} {
			_, err := from.TransitionTo(order.Pending)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject crossing between terminal states", func(t *testing.T) {
		_, err := order.Confirmed.TransitionTo(order.Cancelled)
		require.Error(t, err)

		_, err = order.Cancelled.TransitionTo(order.Confirmed)
		require.Error(t, err)
	})

	t.Run("should reject invalid statuses on either side", func(t *testing.T) {
		_, err := order.UnknownStatus.TransitionTo(order.Confirmed)
		require.Error(t, err)

		_, err = order.Pending.TransitionTo(order.UnknownStatus)
		require.Error(t, err)
	})
}
