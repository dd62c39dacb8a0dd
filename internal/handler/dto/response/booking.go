package response

import (
	"time"

	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
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

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:                 view.ID,
		ServiceID:          view.ServiceID,
		ServiceName:        view.ServiceName,
		ServiceDurationMin: view.ServiceDurationMin,
		ServicePriceCents:  view.ServicePriceCents,
		AppointmentDate:    view.AppointmentDate,
		AppointmentTime:    view.AppointmentTime,
		Status:             view.Status,
		CustomerName:       view.CustomerName,
		CustomerPhone:      view.CustomerPhone,
		Notes:              view.Notes,
		CreatedAt:          view.CreatedAt,
		UpdatedAt:          view.UpdatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(views))
	for i, view := range views {
		out[i] = FromBookingView(view)
	}
	return out
}
