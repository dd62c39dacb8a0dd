//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"salon-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeOfDay(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "opening slot", input: "09:00", want: "09:00"},
		{name: "last slot", input: "20:30", want: "20:30"},
		{name: "half hour", input: "14:30", want: "14:30"},
		{name: "seconds are dropped", input: "10:00:00", want: "10:00"},
		{name: "leading whitespace", input: " 11:30", want: "11:30"},
		{name: "before opening", input: "08:30", errIs: booking.ErrTimeOffGrid},
		{name: "after last slot", input: "21:00", errIs: booking.ErrTimeOffGrid},
		{name: "off grid minute", input: "10:15", errIs: booking.ErrTimeOffGrid},
		{name: "not a time", input: "whenever", errIs: booking.ErrInvalidTime},
		{name: "empty", input: "", errIs: booking.ErrInvalidTime},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := booking.NewTimeOfDay(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got.String())
		})
	}
}

func TestSlotGrid(t *testing.T) {
	grid := booking.SlotGrid()

	require.Len(t, grid, 24)
	assert.Equal(t, "09:00", grid[0].String())
	assert.Equal(t, "20:30", grid[len(grid)-1].String())

	for i := 1; i < len(grid); i++ {
		assert.True(t, grid[i-1].Before(grid[i]), "grid must be ascending at %d", i)
	}
}

func TestAppointmentDateWindow(t *testing.T) {
	now := time.Date(2026, 8, 15, 13, 45, 0, 0, time.UTC)

	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "today", input: "2026-08-15"},
		{name: "last day of window", input: "2026-09-13"},
		{name: "yesterday", input: "2026-08-14", errIs: booking.ErrDateOutsideWindow},
		{name: "one day past window", input: "2026-09-14", errIs: booking.ErrDateOutsideWindow},
		{name: "far future", input: "2027-01-01", errIs: booking.ErrDateOutsideWindow},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			date, err := booking.NewAppointmentDate(c.input)
			require.NoError(t, err)

			err = date.ValidateWindow(now)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
		})
	}

	t.Run("malformed date", func(t *testing.T) {
		_, err := booking.NewAppointmentDate("15/08/2026")
		require.ErrorIs(t, err, booking.ErrInvalidDate)
	})
}

func TestNewPhone(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid mobile", input: "13812345678"},
		{name: "valid 19 prefix", input: "19912345678"},
		{name: "trimmed", input: " 13812345678 "},
		{name: "landline prefix", input: "12812345678", errIs: booking.ErrInvalidPhone},
		{name: "too short", input: "1381234567", errIs: booking.ErrInvalidPhone},
		{name: "too long", input: "138123456789", errIs: booking.ErrInvalidPhone},
		{name: "letters", input: "1381234567a", errIs: booking.ErrInvalidPhone},
		{name: "empty", input: "", errIs: booking.ErrInvalidPhone},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			phone, err := booking.NewPhone(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(c.input), phone.String())
		})
	}
}

func TestNewCustomerName(t *testing.T) {
	t.Run("valid name", func(t *testing.T) {
		name, err := booking.NewCustomerName("  Li Na ")
		require.NoError(t, err)
		assert.Equal(t, "Li Na", name.String())
	})

	t.Run("empty after trim", func(t *testing.T) {
		_, err := booking.NewCustomerName("   ")
		require.ErrorIs(t, err, booking.ErrEmptyCustomerName)
	})

	t.Run("too long", func(t *testing.T) {
		_, err := booking.NewCustomerName(strings.Repeat("a", booking.MaxNameLength+1))
		require.ErrorIs(t, err, booking.ErrNameTooLong)
	})
}

func TestNewNotes(t *testing.T) {
	t.Run("empty is allowed", func(t *testing.T) {
		notes, err := booking.NewNotes("")
		require.NoError(t, err)
		assert.True(t, notes.IsEmpty())
	})

	t.Run("at limit", func(t *testing.T) {
		notes, err := booking.NewNotes(strings.Repeat("x", booking.MaxNotesLength))
		require.NoError(t, err)
		assert.False(t, notes.IsEmpty())
	})

	t.Run("over limit", func(t *testing.T) {
		_, err := booking.NewNotes(strings.Repeat("x", booking.MaxNotesLength+1))
		require.ErrorIs(t, err, booking.ErrNotesTooLong)
	})
}
