package readstore

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type staffReadStoreImpl struct {
	db db.DBTX
}

func NewStaffReadStore(dbtx db.DBTX) queries.StaffReadStore {
	return &staffReadStoreImpl{db: dbtx}
}

func (s *staffReadStoreImpl) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedStaffView, error) {
	const query = `
		SELECT id, email, role, is_active
		FROM staff
		WHERE id = $1`

	var (
		staffID pgtype.UUID
		view    queries.AuthorizedStaffView
	)
	err := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&staffID, &view.Email, &view.Role, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load staff", err)
	}
	view.ID = uuid.UUID(staffID.Bytes)
	return &view, nil
}
