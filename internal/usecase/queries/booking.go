package queries

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindAll(ctx context.Context) ([]*BookingView, error)
	FindByPhone(ctx context.Context, phone string) ([]*BookingView, error)
	CountByStatus(ctx context.Context) (*BookingStats, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListAll returns every booking joined with its service, shaped by the
	// filter. Filtering and sorting run in-process so admin and customer
	// surfaces share one engine.
	ListAll(ctx context.Context, filter ListFilter) ([]*BookingView, error)
	// ListByPhone returns a customer's bookings, newest appointment first.
	ListByPhone(ctx context.Context, phone string) ([]*BookingView, error)
	Stats(ctx context.Context) (*BookingStats, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context, filter ListFilter) ([]*BookingView, error) {
	rows, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(rows), nil
}

func (q *bookingQueriesImpl) ListByPhone(ctx context.Context, phone string) ([]*BookingView, error) {
	return q.store.FindByPhone(ctx, phone)
}

func (q *bookingQueriesImpl) Stats(ctx context.Context) (*BookingStats, error) {
	return q.store.CountByStatus(ctx)
}
