package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("service name is required")
	ErrInvalidDuration = errors.New("service duration must be positive")
	ErrNegativePrice   = errors.New("service price cannot be negative")
)

// Service is the offerable catalog entry. Immutable from the booking
// flow's perspective; only active services are shown to customers.
type Service struct {
	id          uuid.UUID
	name        string
	description string
	durationMin int
	priceCents  int64
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewService(id uuid.UUID, name, description string, durationMin int, priceCents int64, isActive bool) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Service{
		id:          id,
		name:        name,
		description: description,
		durationMin: durationMin,
		priceCents:  priceCents,
		isActive:    isActive,
	}, nil
}

// ReconstructService rebuilds a catalog entry from stored state,
// re-running the creation invariants so corrupt rows never surface.
func ReconstructService(
	id uuid.UUID,
	name, description string,
	durationMin int,
	priceCents int64,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Service, error) {
	s, err := NewService(id, name, description, durationMin, priceCents, isActive)
	if err != nil {
		return nil, err
	}
	s.createdAt = createdAt
	s.updatedAt = updatedAt
	return s, nil
}

func (s *Service) ID() uuid.UUID       { return s.id }
func (s *Service) Name() string        { return s.name }
func (s *Service) Description() string { return s.description }
func (s *Service) DurationMin() int    { return s.durationMin }
func (s *Service) PriceCents() int64   { return s.priceCents }
func (s *Service) IsActive() bool      { return s.isActive }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }
