//go:build unit

package booking_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBooking(t *testing.T, status booking.Status) *booking.Booking {
	t.Helper()

	date, err := booking.NewAppointmentDate("2026-08-20")
	require.NoError(t, err)
	tod, err := booking.NewTimeOfDay("10:00")
	require.NoError(t, err)
	name, err := booking.NewCustomerName("Wang Fang")
	require.NoError(t, err)
	phone, err := booking.NewPhone("13812345678")
	require.NoError(t, err)
	notes, err := booking.NewNotes("")
	require.NoError(t, err)

	now := time.Date(2026, 8, 18, 9, 0, 0, 0, time.UTC)
	return booking.ReconstructBooking(
		uuid.New(), uuid.New(), date, tod, status, name, phone, notes, now, now,
	)
}

func TestNewBooking(t *testing.T) {
	date, _ := booking.NewAppointmentDate("2026-08-20")
	tod, _ := booking.NewTimeOfDay("10:00")
	name, _ := booking.NewCustomerName("Wang Fang")
	phone, _ := booking.NewPhone("13812345678")
	notes, _ := booking.NewNotes("first visit")

	t.Run("starts pending inside the window", func(t *testing.T) {
		now := time.Date(2026, 8, 18, 9, 0, 0, 0, time.UTC)
		b, err := booking.NewBooking(uuid.New(), date, tod, name, phone, notes, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.True(t, b.OccupiesSlot())
	})

	t.Run("rejects dates outside the window", func(t *testing.T) {
		now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
		_, err := booking.NewBooking(uuid.New(), date, tod, name, phone, notes, now)
		require.ErrorIs(t, err, booking.ErrDateOutsideWindow)
	})
}

func TestBookingTransitions(t *testing.T) {
	t.Run("pending can be confirmed", func(t *testing.T) {
		b := mustBooking(t, booking.StatusPending)
		require.NoError(t, b.Confirm())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("pending can be cancelled", func(t *testing.T) {
		b := mustBooking(t, booking.StatusPending)
		require.NoError(t, b.Cancel())
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.False(t, b.OccupiesSlot())
	})

	t.Run("pending cannot be completed", func(t *testing.T) {
		b := mustBooking(t, booking.StatusPending)
		require.ErrorIs(t, b.Complete(), booking.ErrIllegalTransition)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("confirmed can be completed", func(t *testing.T) {
		b := mustBooking(t, booking.StatusConfirmed)
		require.NoError(t, b.Complete())
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("confirmed can be cancelled", func(t *testing.T) {
		b := mustBooking(t, booking.StatusConfirmed)
		require.NoError(t, b.Cancel())
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("terminal states reject everything", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusCompleted, booking.StatusCancelled} {
			b := mustBooking(t, status)
			require.ErrorIs(t, b.Confirm(), booking.ErrIllegalTransition)
			require.ErrorIs(t, b.Complete(), booking.ErrIllegalTransition)
			require.ErrorIs(t, b.Cancel(), booking.ErrIllegalTransition)
			assert.Equal(t, status, b.Status())
		}
	})
}
