package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type SlotSnapshot struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	StartTime   time.Time
	EndTime     time.Time
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type BookingSnapshot struct {
	ID            uuid.UUID
	SlotID        uuid.UUID
	ServiceTypeID uuid.UUID
	ClientID      uuid.UUID
	Status        string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ServiceTypeSnapshot struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	Name            string
	DurationMinutes int
	PriceCents      int64
}

func (s ServiceTypeSnapshot) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

type ClientSnapshot struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
}

type CompanySnapshot struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
}
