package queries

import (
	"context"

	"salon-booking/internal/domain/booking"
)

type AvailabilityReadStore interface {
	// OccupiedTimes returns the distinct appointment times of non-cancelled
	// bookings on the date, normalized to HH:MM.
	OccupiedTimes(ctx context.Context, date booking.AppointmentDate) ([]string, error)
}

type AvailabilityQueries interface {
	// OccupiedSlots is derived from current store state on every call; the
	// client re-asks whenever date or service selection changes.
	OccupiedSlots(ctx context.Context, date booking.AppointmentDate) ([]string, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) OccupiedSlots(ctx context.Context, date booking.AppointmentDate) ([]string, error) {
	return q.store.OccupiedTimes(ctx, date)
}
