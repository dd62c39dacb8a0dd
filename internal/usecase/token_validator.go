package usecase

import (
	"salon-booking/internal/domain/staff"

	"github.com/google/uuid"
)

// TokenValidator lets middleware check access tokens without knowing the
// signing scheme.
type TokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, staff.Role, error)
}
