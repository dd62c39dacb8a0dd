package request

import (
	"time"

	"salon-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID       uuid.UUID `json:"service_id" binding:"required"`
	AppointmentDate string    `json:"appointment_date" binding:"required"`
	AppointmentTime string    `json:"appointment_time" binding:"required"`
	CustomerName    string    `json:"customer_name" binding:"required"`
	CustomerPhone   string    `json:"customer_phone" binding:"required"`
	Notes           *string   `json:"notes,omitempty"`
}

// ToDomain validates every field through the domain value objects and
// returns a pending booking ready for the conflict guard.
func (r CreateBookingRequest) ToDomain(now time.Time) (*booking.Booking, error) {
	date, err := booking.NewAppointmentDate(r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	timeOfDay, err := booking.NewTimeOfDay(r.AppointmentTime)
	if err != nil {
		return nil, err
	}

	name, err := booking.NewCustomerName(r.CustomerName)
	if err != nil {
		return nil, err
	}

	phone, err := booking.NewPhone(r.CustomerPhone)
	if err != nil {
		return nil, err
	}

	notesValue := ""
	if r.Notes != nil {
		notesValue = *r.Notes
	}
	notes, err := booking.NewNotes(notesValue)
	if err != nil {
		return nil, err
	}

	return booking.NewBooking(r.ServiceID, date, timeOfDay, name, phone, notes, now)
}
