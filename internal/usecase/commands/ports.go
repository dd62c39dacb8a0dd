package commands

import (
	"context"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/infra/db"

	"github.com/google/uuid"
)

// SlotOccupancy names the booking currently holding a slot, so a rejected
// create can tell the customer what it collided with.
type SlotOccupancy struct {
	BookingID   uuid.UUID
	ServiceName string
}

type ServiceSnapshot struct {
	ID       uuid.UUID
	Name     string
	IsActive bool
}

type StaffAuthRecord struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
	// ActiveBookingAtSlot returns the non-cancelled booking occupying the
	// (date, time) slot, or a NOT_FOUND repository error when the slot is free.
	ActiveBookingAtSlot(ctx context.Context, dbtx db.DBTX, date booking.AppointmentDate, timeOfDay booking.TimeOfDay) (*SlotOccupancy, error)
	GetForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error
}

type ServiceReads interface {
	GetSnapshot(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*ServiceSnapshot, error)
}

type StaffRepository interface {
	FindByEmail(ctx context.Context, dbtx db.DBTX, email string) (*StaffAuthRecord, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*StaffAuthRecord, error)
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, id uuid.UUID, at time.Time) error
}
