package servicetype

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxNameLength = 100

var (
	ErrInvalidName     = errors.New("service type name must be 1-100 characters")
	ErrInvalidDuration = errors.New("service type duration must not be negative")
	ErrInvalidPrice    = errors.New("service type price must not be negative")
)

type ServiceType struct {
	id          uuid.UUID
	companyID   uuid.UUID
	name        string
	description string
	duration    time.Duration
	priceCents  int64
	createdAt   time.Time
}

func NewServiceType(companyID uuid.UUID, name, description string, durationMinutes int, priceCents int64, now time.Time) (*ServiceType, error) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > MaxNameLength {
		return nil, ErrInvalidName
	}
	if durationMinutes < 0 {
		return nil, ErrInvalidDuration
	}
	if priceCents < 0 {
		return nil, ErrInvalidPrice
	}
	return &ServiceType{
		id:          uuid.New(),
		companyID:   companyID,
		name:        name,
		description: description,
		duration:    time.Duration(durationMinutes) * time.Minute,
		priceCents:  priceCents,
		createdAt:   now,
	}, nil
}

func ReconstructServiceType(id, companyID uuid.UUID, name, description string, durationMinutes int, priceCents int64, createdAt time.Time) *ServiceType {
	return &ServiceType{
		id:          id,
		companyID:   companyID,
		name:        name,
		description: description,
		duration:    time.Duration(durationMinutes) * time.Minute,
		priceCents:  priceCents,
		createdAt:   createdAt,
	}
}

func (s *ServiceType) ID() uuid.UUID           { return s.id }
func (s *ServiceType) CompanyID() uuid.UUID    { return s.companyID }
func (s *ServiceType) Name() string            { return s.name }
func (s *ServiceType) Description() string     { return s.description }
func (s *ServiceType) Duration() time.Duration { return s.duration }
func (s *ServiceType) DurationMinutes() int    { return int(s.duration / time.Minute) }
func (s *ServiceType) PriceCents() int64       { return s.priceCents }
func (s *ServiceType) CreatedAt() time.Time    { return s.createdAt }
