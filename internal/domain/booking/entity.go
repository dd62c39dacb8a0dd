package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking occupies one business-wide slot: at most one non-cancelled
// booking may exist per (date, time) pair, whatever the service.
// Rows are never deleted; cancellation is a status, not a removal.
type Booking struct {
	id           uuid.UUID
	serviceID    uuid.UUID
	date         AppointmentDate
	timeOfDay    TimeOfDay
	status       Status
	customerName CustomerName
	phone        Phone
	notes        Notes
	createdAt    time.Time
	updatedAt    time.Time
}

// NewBooking admits a booking into the 30-day window with status pending.
// Slot occupancy is checked against the store by the create command, not here.
func NewBooking(
	serviceID uuid.UUID,
	date AppointmentDate,
	timeOfDay TimeOfDay,
	customerName CustomerName,
	phone Phone,
	notes Notes,
	now time.Time,
) (*Booking, error) {
	if err := date.ValidateWindow(now); err != nil {
		return nil, err
	}

	return &Booking{
		id:           uuid.New(),
		serviceID:    serviceID,
		date:         date,
		timeOfDay:    timeOfDay,
		status:       StatusPending,
		customerName: customerName,
		phone:        phone,
		notes:        notes,
	}, nil
}

func ReconstructBooking(
	id, serviceID uuid.UUID,
	date AppointmentDate,
	timeOfDay TimeOfDay,
	status Status,
	customerName CustomerName,
	phone Phone,
	notes Notes,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		serviceID:    serviceID,
		date:         date,
		timeOfDay:    timeOfDay,
		status:       status,
		customerName: customerName,
		phone:        phone,
		notes:        notes,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Confirm moves pending → confirmed.
func (b *Booking) Confirm() error {
	return b.transitionTo(StatusConfirmed)
}

// Complete moves confirmed → completed.
func (b *Booking) Complete() error {
	return b.transitionTo(StatusCompleted)
}

// Cancel moves pending or confirmed → cancelled, freeing the slot for
// future conflict checks.
func (b *Booking) Cancel() error {
	return b.transitionTo(StatusCancelled)
}

func (b *Booking) transitionTo(next Status) error {
	if !b.status.CanTransitionTo(next) {
		return ErrIllegalTransition
	}
	b.status = next
	return nil
}

func (b *Booking) OccupiesSlot() bool {
	return b.status != StatusCancelled
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) ServiceID() uuid.UUID       { return b.serviceID }
func (b *Booking) Date() AppointmentDate      { return b.date }
func (b *Booking) TimeOfDay() TimeOfDay       { return b.timeOfDay }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) CustomerName() CustomerName { return b.customerName }
func (b *Booking) Phone() Phone               { return b.phone }
func (b *Booking) Notes() Notes               { return b.notes }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
