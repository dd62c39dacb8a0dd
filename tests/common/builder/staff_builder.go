//go:build unit

package builder

import (
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type StaffBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

func NewStaffBuilder() *StaffBuilder {
	return &StaffBuilder{
		ID:           uuid.New(),
		Email:        "staff@example.com",
		PasswordHash: "$2a$10$hashed_password_placeholder_value_x",
		Role:         "admin",
		IsActive:     true,
	}
}

func (s *StaffBuilder) BuildAuthRecord() *commands.StaffAuthRecord {
	return &commands.StaffAuthRecord{
		ID:           s.ID,
		Email:        s.Email,
		PasswordHash: s.PasswordHash,
		Role:         s.Role,
		IsActive:     s.IsActive,
	}
}

func (s *StaffBuilder) BuildView() *queries.AuthorizedStaffView {
	return &queries.AuthorizedStaffView{
		ID:       s.ID,
		Email:    s.Email,
		Role:     s.Role,
		IsActive: s.IsActive,
	}
}

func (s *StaffBuilder) WithRole(role string) *StaffBuilder {
	s.Role = role
	return s
}

func (s *StaffBuilder) AsInactive() *StaffBuilder {
	s.IsActive = false
	return s
}
