//go:build unit

package builder

import (
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/handler/dto/request"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	ServiceID       uuid.UUID
	ServiceName     string
	AppointmentDate string
	AppointmentTime string
	Status          string
	CustomerName    string
	CustomerPhone   string
	Notes           *string
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	// A date safely inside the rolling window relative to the mock clock.
	return &BookingBuilder{
		ID:              uuid.New(),
		ServiceID:       uuid.New(),
		ServiceName:     "Haircut",
		AppointmentDate: time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
		AppointmentTime: "10:00",
		Status:          "pending",
		CustomerName:    "Wang Fang",
		CustomerPhone:   "13812345678",
		CreatedAt:       time.Now(),
	}
}

func (b *BookingBuilder) BuildCreateDTO() request.CreateBookingRequest {
	return request.CreateBookingRequest{
		ServiceID:       b.ServiceID,
		AppointmentDate: b.AppointmentDate,
		AppointmentTime: b.AppointmentTime,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		Notes:           b.Notes,
	}
}

func (b *BookingBuilder) BuildDomain(now time.Time) (*booking.Booking, error) {
	dto := b.BuildCreateDTO()
	return dto.ToDomain(now)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:                 b.ID,
		ServiceID:          b.ServiceID,
		ServiceName:        b.ServiceName,
		ServiceDurationMin: 45,
		ServicePriceCents:  128_00,
		AppointmentDate:    b.AppointmentDate,
		AppointmentTime:    b.AppointmentTime,
		Status:             b.Status,
		CustomerName:       b.CustomerName,
		CustomerPhone:      b.CustomerPhone,
		Notes:              b.Notes,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.AppointmentDate = date
	return b
}

func (b *BookingBuilder) WithTime(t string) *BookingBuilder {
	b.AppointmentTime = t
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithPhone(phone string) *BookingBuilder {
	b.CustomerPhone = phone
	return b
}

func (b *BookingBuilder) WithCustomerName(name string) *BookingBuilder {
	b.CustomerName = name
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.Notes = &notes
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	return b
}
