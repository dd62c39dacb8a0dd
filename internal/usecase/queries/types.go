package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// BookingView carries the booking joined with its service snapshot.
// AppointmentDate and AppointmentTime keep their wire formats
// ("2006-01-02", "15:04") so the two concatenate into a sortable key.
type BookingView struct {
	ID                 uuid.UUID `json:"id"`
	ServiceID          uuid.UUID `json:"service_id"`
	ServiceName        string    `json:"service_name"`
	ServiceDurationMin int32     `json:"service_duration_min"`
	ServicePriceCents  int64     `json:"service_price_cents"`
	AppointmentDate    string    `json:"appointment_date"`
	AppointmentTime    string    `json:"appointment_time"`
	Status             string    `json:"status"`
	CustomerName       string    `json:"customer_name"`
	CustomerPhone      string    `json:"customer_phone"`
	Notes              *string   `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	DurationMin int32     `json:"duration_min"`
	PriceCents  int64     `json:"price_cents"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BookingStats are the admin dashboard counters.
type BookingStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}

// AuthorizedStaffView represents read-optimized staff data with authorization info
type AuthorizedStaffView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
