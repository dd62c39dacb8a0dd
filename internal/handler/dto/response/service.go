package response

import (
	"time"

	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	DurationMin int32     `json:"duration_min"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromServiceView(view *queries.ServiceView) *ServiceResponse {
	return &ServiceResponse{
		ID:          view.ID,
		Name:        view.Name,
		Description: view.Description,
		DurationMin: view.DurationMin,
		PriceCents:  view.PriceCents,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	out := make([]*ServiceResponse, len(views))
	for i, view := range views {
		out[i] = FromServiceView(view)
	}
	return out
}
