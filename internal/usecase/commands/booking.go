package commands

import (
	"context"
	"errors"
	"fmt"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/handler/dto/request"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDomainValidation        = errs.New("domain validation failed")
	ErrServiceNotFound         = errs.New("service not found")
	ErrServiceUnavailable      = errs.New("service is not offered")
	ErrSlotConflict            = errs.New("slot already booked")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrIllegalTransition       = errs.New("illegal status transition")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// SlotTakenError carries the service occupying the contested slot.
// It is always marked with ErrSlotConflict.
type SlotTakenError struct {
	ServiceName string
}

func (e *SlotTakenError) Error() string {
	if e.ServiceName == "" {
		return "slot already booked"
	}
	return fmt.Sprintf("slot already booked by %s", e.ServiceName)
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req request.CreateBookingRequest) (*queries.BookingView, error)
	ConfirmBooking(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	CompleteBooking(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow          shared.UnitOfWork
	bookingRepo  BookingRepository
	serviceReads ServiceReads
	bookingQry   queries.BookingQueries
	clock        clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	bookingRepo BookingRepository,
	serviceReads ServiceReads,
	bookingQry queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:          uow,
		bookingRepo:  bookingRepo,
		serviceReads: serviceReads,
		bookingQry:   bookingQry,
		clock:        clk,
	}
}

// CreateBooking guards slot uniqueness twice: a transactional pre-check that
// names the occupying service, and the partial unique index on
// (appointment_date, appointment_time) as the authoritative backstop for
// writes that race past the pre-check.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, req request.CreateBookingRequest) (*queries.BookingView, error) {
	b, err := req.ToDomain(c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		snap, err := c.serviceReads.GetSnapshot(ctx, tx, b.ServiceID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrServiceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !snap.IsActive {
			return ErrServiceUnavailable
		}

		occupied, err := c.bookingRepo.ActiveBookingAtSlot(ctx, tx, b.Date(), b.TimeOfDay())
		if err == nil {
			return errs.Mark(&SlotTakenError{ServiceName: occupied.ServiceName}, ErrSlotConflict)
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := c.bookingRepo.Create(ctx, tx, b); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				// Lost a race inside the pre-check window; the index caught it.
				return errs.Mark(&SlotTakenError{}, ErrSlotConflict)
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrServiceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.readBack(ctx, b.ID())
}

func (c *bookingCommandsImpl) ConfirmBooking(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return c.changeStatus(ctx, id, (*booking.Booking).Confirm)
}

func (c *bookingCommandsImpl) CompleteBooking(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return c.changeStatus(ctx, id, (*booking.Booking).Complete)
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return c.changeStatus(ctx, id, (*booking.Booking).Cancel)
}

func (c *bookingCommandsImpl) changeStatus(ctx context.Context, id uuid.UUID, transition func(*booking.Booking) error) (*queries.BookingView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		b, err := c.bookingRepo.GetForUpdate(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := transition(b); err != nil {
			return errs.Mark(err, ErrIllegalTransition)
		}

		if err := c.bookingRepo.UpdateStatus(ctx, tx, id, b.Status()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.readBack(ctx, id)
}

func (c *bookingCommandsImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := c.bookingQry.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
