package readstore

import (
	"context"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingViewSelect = `
	SELECT b.id, b.service_id, s.name, s.duration_min, s.price_cents,
	       b.appointment_date, b.appointment_time, b.status,
	       b.customer_name, b.customer_phone, b.notes,
	       b.created_at, b.updated_at
	FROM bookings b
	JOIN services s ON s.id = b.service_id`

type bookingReadStoreImpl struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) queries.BookingReadStore {
	return &bookingReadStoreImpl{db: dbtx}
}

// NewAvailabilityReadStore shares the booking store; occupancy is just a
// projection of the same table.
func NewAvailabilityReadStore(dbtx db.DBTX) queries.AvailabilityReadStore {
	return &bookingReadStoreImpl{db: dbtx}
}

func (s *bookingReadStoreImpl) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := bookingViewSelect + ` WHERE b.id = $1`

	view, err := scanBookingView(s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}
	return view, nil
}

func (s *bookingReadStoreImpl) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	query := bookingViewSelect + `
	ORDER BY b.appointment_date DESC, b.appointment_time DESC`

	return s.queryViews(ctx, query)
}

func (s *bookingReadStoreImpl) FindByPhone(ctx context.Context, phone string) ([]*queries.BookingView, error) {
	query := bookingViewSelect + `
	WHERE b.customer_phone = $1
	ORDER BY b.appointment_date DESC, b.appointment_time DESC`

	return s.queryViews(ctx, query, phone)
}

func (s *bookingReadStoreImpl) CountByStatus(ctx context.Context) (*queries.BookingStats, error) {
	const query = `
		SELECT count(*),
		       count(*) FILTER (WHERE status = 'pending'),
		       count(*) FILTER (WHERE status = 'confirmed'),
		       count(*) FILTER (WHERE status = 'completed'),
		       count(*) FILTER (WHERE status = 'cancelled')
		FROM bookings`

	var stats queries.BookingStats
	err := s.db.QueryRow(ctx, query).Scan(
		&stats.Total, &stats.Pending, &stats.Confirmed, &stats.Completed, &stats.Cancelled,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings", err)
	}
	return &stats, nil
}

// OccupiedTimes backs the availability grid: distinct times of non-cancelled
// bookings on the date.
func (s *bookingReadStoreImpl) OccupiedTimes(ctx context.Context, date booking.AppointmentDate) ([]string, error) {
	const query = `
		SELECT DISTINCT appointment_time
		FROM bookings
		WHERE appointment_date = $1
		  AND status <> 'cancelled'
		ORDER BY appointment_time`

	rows, err := s.db.Query(ctx, query, date.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load occupied slots", err)
	}
	defer rows.Close()

	times := make([]string, 0)
	for rows.Next() {
		var t pgtype.Time
		if err := rows.Scan(&t); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied slot", err)
		}
		times = append(times, pgconv.TimeOfDayFromPgtype(t))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read occupied slots", err)
	}
	return times, nil
}

func (s *bookingReadStoreImpl) queryViews(ctx context.Context, query string, args ...any) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load bookings", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return views, nil
}

type pgRow interface {
	Scan(dest ...any) error
}

func scanBookingView(row pgRow) (*queries.BookingView, error) {
	var (
		id        pgtype.UUID
		serviceID pgtype.UUID
		date      pgtype.Date
		timeOfDay pgtype.Time
		notes     pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
		view      queries.BookingView
	)
	err := row.Scan(
		&id, &serviceID, &view.ServiceName, &view.ServiceDurationMin, &view.ServicePriceCents,
		&date, &timeOfDay, &view.Status,
		&view.CustomerName, &view.CustomerPhone, &notes,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.ID = uuid.UUID(id.Bytes)
	view.ServiceID = uuid.UUID(serviceID.Bytes)
	view.AppointmentDate = pgconv.DateFromPgtype(date).Format("2006-01-02")
	view.AppointmentTime = pgconv.TimeOfDayFromPgtype(timeOfDay)
	view.Notes = pgconv.StringPtrFromPgtype(notes)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
