//go:build unit

package booking_test

import (
	"testing"

	"salon-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	all := []booking.Status{
		booking.StatusPending,
		booking.StatusConfirmed,
		booking.StatusCompleted,
		booking.StatusCancelled,
	}

	allowed := map[booking.Status][]booking.Status{
		booking.StatusPending:   {booking.StatusConfirmed, booking.StatusCancelled},
		booking.StatusConfirmed: {booking.StatusCompleted, booking.StatusCancelled},
		booking.StatusCompleted: {},
		booking.StatusCancelled: {},
	}

	for from, nexts := range allowed {
		legal := make(map[booking.Status]bool, len(nexts))
		for _, next := range nexts {
			legal[next] = true
		}
		for _, to := range all {
			got := from.CanTransitionTo(to)
			assert.Equal(t, legal[to], got, "%s -> %s", from, to)
		}
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, booking.StatusPending.IsTerminal())
	assert.False(t, booking.StatusConfirmed.IsTerminal())
	assert.True(t, booking.StatusCompleted.IsTerminal())
	assert.True(t, booking.StatusCancelled.IsTerminal())
}

func TestNewStatus(t *testing.T) {
	cases := []struct {
		input string
		want  booking.Status
		errIs error
	}{
		{input: "pending", want: booking.StatusPending},
		{input: "confirmed", want: booking.StatusConfirmed},
		{input: "completed", want: booking.StatusCompleted},
		{input: "cancelled", want: booking.StatusCancelled},
		{input: "canceled", errIs: booking.ErrInvalidStatus},
		{input: "", errIs: booking.ErrInvalidStatus},
		{input: "PENDING", errIs: booking.ErrInvalidStatus},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			got, err := booking.NewStatus(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}
