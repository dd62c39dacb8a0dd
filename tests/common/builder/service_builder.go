//go:build unit

package builder

import (
	"time"

	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID          uuid.UUID
	Name        string
	Description *string
	DurationMin int32
	PriceCents  int64
	IsActive    bool
}

func NewServiceBuilder() *ServiceBuilder {
	desc := "Classic cut and styling"
	return &ServiceBuilder{
		ID:          uuid.New(),
		Name:        "Haircut",
		Description: &desc,
		DurationMin: 45,
		PriceCents:  128_00,
		IsActive:    true,
	}
}

func (s *ServiceBuilder) BuildView() *queries.ServiceView {
	now := time.Now()
	return &queries.ServiceView{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		DurationMin: s.DurationMin,
		PriceCents:  s.PriceCents,
		IsActive:    s.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *ServiceBuilder) BuildSnapshot() *commands.ServiceSnapshot {
	return &commands.ServiceSnapshot{
		ID:       s.ID,
		Name:     s.Name,
		IsActive: s.IsActive,
	}
}

func (s *ServiceBuilder) AsInactive() *ServiceBuilder {
	s.IsActive = false
	return s
}

func (s *ServiceBuilder) WithName(name string) *ServiceBuilder {
	s.Name = name
	return s
}
