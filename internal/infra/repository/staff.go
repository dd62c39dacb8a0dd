package repository

import (
	"context"
	"time"

	"salon-booking/internal/domain/staff"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type staffRepositoryImpl struct{}

func NewStaffRepository() commands.StaffRepository {
	return &staffRepositoryImpl{}
}

const staffAuthColumns = `id, email, password_hash, role, is_active, last_login_at, created_at, updated_at`

func (r *staffRepositoryImpl) FindByEmail(ctx context.Context, dbtx db.DBTX, email string) (*commands.StaffAuthRecord, error) {
	query := `SELECT ` + staffAuthColumns + ` FROM staff WHERE email = $1`
	return r.scanRecord(dbtx.QueryRow(ctx, query, email))
}

func (r *staffRepositoryImpl) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.StaffAuthRecord, error) {
	query := `SELECT ` + staffAuthColumns + ` FROM staff WHERE id = $1`
	return r.scanRecord(dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
}

func (r *staffRepositoryImpl) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, id uuid.UUID, at time.Time) error {
	const query = `
		UPDATE staff
		SET last_login_at = $2, updated_at = now()
		WHERE id = $1`

	if _, err := dbtx.Exec(ctx, query, pgconv.UUIDToPgtype(id), at); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

type pgRow interface {
	Scan(dest ...any) error
}

func (r *staffRepositoryImpl) scanRecord(row pgRow) (*commands.StaffAuthRecord, error) {
	var (
		id           pgtype.UUID
		emailRaw     string
		passwordHash string
		roleRaw      string
		isActive     bool
		lastLogin    pgtype.Timestamptz
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &emailRaw, &passwordHash, &roleRaw, &isActive,
		&lastLogin, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load staff", err)
	}

	email, err := staff.NewEmail(emailRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt staff email", err)
	}
	role, err := staff.NewRole(roleRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt staff role", err)
	}

	entity := staff.ReconstructStaff(
		uuid.UUID(id.Bytes), email, passwordHash, role, isActive,
		pgconv.TimePtrFromPgtype(lastLogin),
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	)

	return &commands.StaffAuthRecord{
		ID:           entity.ID(),
		Email:        entity.Email().Value(),
		PasswordHash: entity.PasswordHash(),
		Role:         entity.Role().String(),
		IsActive:     entity.IsActive(),
	}, nil
}
