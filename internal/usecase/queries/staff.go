package queries

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStaffNotFound = errs.New("staff not found")
	ErrStaffInactive = errs.New("staff inactive")
)

type StaffReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedStaffView, error)
}

type StaffQueries interface {
	GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*AuthorizedStaffView, error)
}

type staffQueriesImpl struct {
	store StaffReadStore
}

func NewStaffQueries(store StaffReadStore) StaffQueries {
	return &staffQueriesImpl{store: store}
}

func (q *staffQueriesImpl) GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*AuthorizedStaffView, error) {
	view, err := q.store.FindByID(ctx, staffID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	if !view.IsActive {
		return nil, ErrStaffInactive
	}
	return view, nil
}
