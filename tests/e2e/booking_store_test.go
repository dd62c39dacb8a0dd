//go:build e2e

package e2e

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/handler/dto/request"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/infra/readstore"
	"salon-booking/internal/infra/repository"
	"salon-booking/internal/infra/uow"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// BookingStoreSuite drives the booking commands against a real postgres
// instance. The unit suite mocks the store, so the transactional conflict
// guard and the partial unique index only get exercised here.
type BookingStoreSuite struct {
	suite.Suite
	pool      *pgxpool.Pool
	uow       shared.UnitOfWork
	repo      commands.BookingRepository
	cmds      commands.BookingCommands
	avail     queries.AvailabilityQueries
	serviceID uuid.UUID
	date      string
}

func TestBookingStoreSuite(t *testing.T) {
	suite.Run(t, new(BookingStoreSuite))
}

func (s *BookingStoreSuite) SetupSuite() {
	s.pool = setupTestPool(s.T())
	s.uow = uow.NewPostgresUoW(s.pool)
	s.repo = repository.NewBookingRepository()

	bookingQry := queries.NewBookingQueries(readstore.NewBookingReadStore(s.pool))
	s.cmds = commands.NewBookingCommands(s.uow, s.repo, repository.NewServiceReads(), bookingQry, clock.NewRealClock())
	s.avail = queries.NewAvailabilityQueries(readstore.NewAvailabilityReadStore(s.pool))

	var id pgtype.UUID
	err := s.pool.QueryRow(context.Background(),
		`INSERT INTO services (name, duration_min, price_cents) VALUES ('Haircut', 45, 12800) RETURNING id`,
	).Scan(&id)
	require.NoError(s.T(), err)
	s.serviceID = uuid.UUID(id.Bytes)

	s.date = time.Now().AddDate(0, 0, 3).Format("2006-01-02")
}

func (s *BookingStoreSuite) createRequest(timeOfDay string) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		ServiceID:       s.serviceID,
		AppointmentDate: s.date,
		AppointmentTime: timeOfDay,
		CustomerName:    "Li Na",
		CustomerPhone:   "13800138000",
	}
}

func (s *BookingStoreSuite) TestSlotConflict() {
	ctx := context.Background()

	first, err := s.cmds.CreateBooking(ctx, s.createRequest("10:00"))
	s.Require().NoError(err)
	s.Equal("pending", first.Status)

	_, err = s.cmds.CreateBooking(ctx, s.createRequest("10:00"))
	s.Require().ErrorIs(err, commands.ErrSlotConflict)

	var taken *commands.SlotTakenError
	s.Require().True(errors.As(err, &taken))
	s.Equal("Haircut", taken.ServiceName)
}

func (s *BookingStoreSuite) TestCancelFreesSlot() {
	ctx := context.Background()

	first, err := s.cmds.CreateBooking(ctx, s.createRequest("11:00"))
	s.Require().NoError(err)

	cancelled, err := s.cmds.CancelBooking(ctx, first.ID)
	s.Require().NoError(err)
	s.Equal("cancelled", cancelled.Status)

	date, err := booking.NewAppointmentDate(s.date)
	s.Require().NoError(err)
	occupied, err := s.avail.OccupiedSlots(ctx, date)
	s.Require().NoError(err)
	s.NotContains(occupied, "11:00")

	second, err := s.cmds.CreateBooking(ctx, s.createRequest("11:00"))
	s.Require().NoError(err)
	s.NotEqual(first.ID, second.ID)
}

func (s *BookingStoreSuite) TestUniqueIndexBackstop() {
	ctx := context.Background()

	build := func() *booking.Booking {
		date, err := booking.NewAppointmentDate(s.date)
		s.Require().NoError(err)
		timeOfDay, err := booking.NewTimeOfDay("12:00")
		s.Require().NoError(err)
		name, err := booking.NewCustomerName("Li Na")
		s.Require().NoError(err)
		phone, err := booking.NewPhone("13800138000")
		s.Require().NoError(err)
		notes, err := booking.NewNotes("")
		s.Require().NoError(err)

		b, err := booking.NewBooking(s.serviceID, date, timeOfDay, name, phone, notes, time.Now())
		s.Require().NoError(err)
		return b
	}

	err := s.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return s.repo.Create(ctx, dbtx, build())
	})
	s.Require().NoError(err)

	// Bypasses the application pre-check so the partial unique index is
	// the only thing standing between the two inserts.
	err = s.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return s.repo.Create(ctx, dbtx, build())
	})
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindDuplicateKey))
}

func (s *BookingStoreSuite) TestOccupiedTimesExcludeCancelled() {
	ctx := context.Background()

	_, err := s.cmds.CreateBooking(ctx, s.createRequest("14:00"))
	s.Require().NoError(err)

	dropped, err := s.cmds.CreateBooking(ctx, s.createRequest("14:30"))
	s.Require().NoError(err)

	_, err = s.cmds.CancelBooking(ctx, dropped.ID)
	s.Require().NoError(err)

	date, err := booking.NewAppointmentDate(s.date)
	s.Require().NoError(err)
	occupied, err := s.avail.OccupiedSlots(ctx, date)
	s.Require().NoError(err)

	s.Contains(occupied, "14:00")
	s.NotContains(occupied, "14:30")
}
