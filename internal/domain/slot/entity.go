package slot

import (
	"time"

	"slot-booking/internal/domain/timerange"

	"github.com/google/uuid"
)

type Slot struct {
	id          uuid.UUID
	companyID   uuid.UUID
	timeRange   timerange.TimeRange
	isAvailable bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSlot creates an available slot.
func NewSlot(companyID uuid.UUID, r timerange.TimeRange, now time.Time) *Slot {
	return &Slot{
		id:          uuid.New(),
		companyID:   companyID,
		timeRange:   r,
		isAvailable: true,
		createdAt:   now,
		updatedAt:   now,
	}
}

func ReconstructSlot(
	id, companyID uuid.UUID,
	r timerange.TimeRange,
	isAvailable bool,
	createdAt, updatedAt time.Time,
) *Slot {
	return &Slot{
		id:          id,
		companyID:   companyID,
		timeRange:   r,
		isAvailable: isAvailable,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Reschedule moves the slot to a new range. Availability is untouched.
func (s *Slot) Reschedule(r timerange.TimeRange, now time.Time) {
	s.timeRange = r
	s.updatedAt = now
}

// Conflicts reports whether other is a different slot of the same company
// whose range overlaps this one.
func (s *Slot) Conflicts(other *Slot) bool {
	if other == nil || other.id == s.id || other.companyID != s.companyID {
		return false
	}
	return s.timeRange.Overlaps(other.timeRange)
}

func (s *Slot) ID() uuid.UUID                  { return s.id }
func (s *Slot) CompanyID() uuid.UUID           { return s.companyID }
func (s *Slot) TimeRange() timerange.TimeRange { return s.timeRange }
func (s *Slot) Start() time.Time               { return s.timeRange.Start() }
func (s *Slot) End() time.Time                 { return s.timeRange.End() }
func (s *Slot) IsAvailable() bool              { return s.isAvailable }
func (s *Slot) CreatedAt() time.Time           { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time           { return s.updatedAt }
