package repository

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type serviceReadsImpl struct{}

func NewServiceReads() commands.ServiceReads {
	return &serviceReadsImpl{}
}

func (r *serviceReadsImpl) GetSnapshot(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.ServiceSnapshot, error) {
	const query = `
		SELECT id, name, is_active
		FROM services
		WHERE id = $1`

	var (
		serviceID pgtype.UUID
		name      string
		isActive  bool
	)
	err := dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(&serviceID, &name, &isActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load service", err)
	}

	return &commands.ServiceSnapshot{
		ID:       uuid.UUID(serviceID.Bytes),
		Name:     name,
		IsActive: isActive,
	}, nil
}
