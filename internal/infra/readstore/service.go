package readstore

import (
	"context"

	"salon-booking/internal/domain/service"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type serviceReadStoreImpl struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) queries.ServiceReadStore {
	return &serviceReadStoreImpl{db: dbtx}
}

func (s *serviceReadStoreImpl) FindActive(ctx context.Context) ([]*queries.ServiceView, error) {
	const query = `
		SELECT id, name, description, duration_min, price_cents, is_active,
		       created_at, updated_at
		FROM services
		WHERE is_active
		ORDER BY name`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load services", err)
	}
	defer rows.Close()

	views := make([]*queries.ServiceView, 0)
	for rows.Next() {
		var (
			id          pgtype.UUID
			name        string
			description pgtype.Text
			durationMin int32
			priceCents  int64
			isActive    bool
			createdAt   pgtype.Timestamptz
			updatedAt   pgtype.Timestamptz
		)
		err := rows.Scan(
			&id, &name, &description, &durationMin, &priceCents,
			&isActive, &createdAt, &updatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}

		descValue := ""
		if d := pgconv.StringPtrFromPgtype(description); d != nil {
			descValue = *d
		}
		svc, err := service.ReconstructService(
			uuid.UUID(id.Bytes), name, descValue, int(durationMin), priceCents,
			isActive, pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
		)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt service row", err)
		}
		views = append(views, serviceViewFrom(svc))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read services", err)
	}
	return views, nil
}

func serviceViewFrom(svc *service.Service) *queries.ServiceView {
	view := &queries.ServiceView{
		ID:          svc.ID(),
		Name:        svc.Name(),
		DurationMin: int32(svc.DurationMin()),
		PriceCents:  svc.PriceCents(),
		IsActive:    svc.IsActive(),
		CreatedAt:   svc.CreatedAt(),
		UpdatedAt:   svc.UpdatedAt(),
	}
	if d := svc.Description(); d != "" {
		view.Description = &d
	}
	return view
}
