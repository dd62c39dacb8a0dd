package repository

import (
	"context"
	"errors"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type bookingRepositoryImpl struct{}

func NewBookingRepository() commands.BookingRepository {
	return &bookingRepositoryImpl{}
}

func (r *bookingRepositoryImpl) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (
			id, service_id, appointment_date, appointment_time,
			status, customer_name, customer_phone, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var notes pgtype.Text
	if !b.Notes().IsEmpty() {
		notes = pgconv.StringToPgtype(b.Notes().String())
	}

	_, err := dbtx.Exec(ctx, query,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.ServiceID()),
		b.Date().String(),
		b.TimeOfDay().String(),
		b.Status().String(),
		b.CustomerName().String(),
		b.Phone().String(),
		notes,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return infra.WrapRepoErr("booking slot already taken", err, infra.KindDuplicateKey)
			case pgForeignKeyViolation:
				return infra.WrapRepoErr("booking references unknown service", err, infra.KindForeignKeyViolated)
			}
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *bookingRepositoryImpl) ActiveBookingAtSlot(ctx context.Context, dbtx db.DBTX, date booking.AppointmentDate, timeOfDay booking.TimeOfDay) (*commands.SlotOccupancy, error) {
	const query = `
		SELECT b.id, s.name
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		WHERE b.appointment_date = $1
		  AND b.appointment_time = $2
		  AND b.status <> 'cancelled'
		LIMIT 1`

	var (
		id          pgtype.UUID
		serviceName string
	)
	err := dbtx.QueryRow(ctx, query, date.String(), timeOfDay.String()).Scan(&id, &serviceName)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot is free", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to check slot occupancy", err)
	}

	return &commands.SlotOccupancy{
		BookingID:   uuid.UUID(id.Bytes),
		ServiceName: serviceName,
	}, nil
}

func (r *bookingRepositoryImpl) GetForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, service_id, appointment_date, appointment_time,
		       status, customer_name, customer_phone, notes,
		       created_at, updated_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE`

	var row struct {
		id        pgtype.UUID
		serviceID pgtype.UUID
		date      pgtype.Date
		timeOfDay pgtype.Time
		status    string
		name      string
		phone     string
		notes     pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	}
	err := dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&row.id, &row.serviceID, &row.date, &row.timeOfDay,
		&row.status, &row.name, &row.phone, &row.notes,
		&row.createdAt, &row.updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}

	return reconstructBooking(
		uuid.UUID(row.id.Bytes),
		uuid.UUID(row.serviceID.Bytes),
		row.date, row.timeOfDay, row.status,
		row.name, row.phone, row.notes,
		pgconv.TimeFromPgtype(row.createdAt),
		pgconv.TimeFromPgtype(row.updatedAt),
	)
}

func (r *bookingRepositoryImpl) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	const query = `
		UPDATE bookings
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, pgconv.UUIDToPgtype(id), status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
