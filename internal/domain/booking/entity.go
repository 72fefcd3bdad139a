package booking

import (
	"errors"
	"time"

	"slot-booking/internal/domain/timerange"

	"github.com/google/uuid"
)

const MaxNotesLength = 2000

var (
	ErrSlotUnavailable     = errors.New("slot is not available")
	ErrCrossCompany        = errors.New("service type does not belong to the slot's company")
	ErrDurationExceedsSlot = errors.New("service duration exceeds slot length")
	ErrInvalidStatus       = errors.New("invalid booking status")
	ErrNotesTooLong        = errors.New("notes must be at most 2000 characters")
)

// SlotSpec is the part of a slot a reservation is validated against.
type SlotSpec struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	Range       timerange.TimeRange
	IsAvailable bool
}

type ServiceTypeSpec struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Duration  time.Duration
}

type Booking struct {
	id            uuid.UUID
	slotID        uuid.UUID
	serviceTypeID uuid.UUID
	clientID      uuid.UUID
	status        Status
	notes         *string
	createdAt     time.Time
	updatedAt     time.Time
}

// Reserve is the single validation path for a new booking. Checks run in a
// fixed order: availability, company match, then duration.
func Reserve(s SlotSpec, svc ServiceTypeSpec, clientID uuid.UUID, notes *string, now time.Time) (*Booking, error) {
	if !s.IsAvailable {
		return nil, ErrSlotUnavailable
	}
	if svc.CompanyID != s.CompanyID {
		return nil, ErrCrossCompany
	}
	if !s.Range.Contains(svc.Duration) {
		return nil, ErrDurationExceedsSlot
	}
	if notes != nil && len([]rune(*notes)) > MaxNotesLength {
		return nil, ErrNotesTooLong
	}

	return &Booking{
		id:            uuid.New(),
		slotID:        s.ID,
		serviceTypeID: svc.ID,
		clientID:      clientID,
		status:        StatusConfirmed,
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructBooking(
	id, slotID, serviceTypeID, clientID uuid.UUID,
	status Status,
	notes *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		slotID:        slotID,
		serviceTypeID: serviceTypeID,
		clientID:      clientID,
		status:        status,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ChangeStatus applies any valid status and returns the slot effect to persist.
func (b *Booking) ChangeStatus(to Status, now time.Time) (SlotEffect, error) {
	if !to.IsValid() {
		return SlotUnchanged, ErrInvalidStatus
	}
	effect := EffectOf(b.status, to)
	b.status = to
	b.updatedAt = now
	return effect, nil
}

func (b *Booking) IsActive() bool {
	return b.status.Occupies()
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) SlotID() uuid.UUID        { return b.slotID }
func (b *Booking) ServiceTypeID() uuid.UUID { return b.serviceTypeID }
func (b *Booking) ClientID() uuid.UUID      { return b.clientID }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) Notes() *string           { return b.notes }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
