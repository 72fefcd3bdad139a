//go:build unit || integration

package builder

import (
	"time"

	"slot-booking/internal/domain/booking"
	"slot-booking/internal/domain/timerange"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	SlotID           uuid.UUID
	ServiceTypeID    uuid.UUID
	ClientID         uuid.UUID
	CompanyID        uuid.UUID
	ServiceCompanyID uuid.UUID
	SlotStart        time.Time
	SlotLength       time.Duration
	SlotAvailable    bool
	ServiceDuration  time.Duration
	Status           booking.Status
	Notes            *string
	Now              time.Time
}

func NewBookingBuilder() *BookingBuilder {
	companyID := uuid.New()
	return &BookingBuilder{
		SlotID:           uuid.New(),
		ServiceTypeID:    uuid.New(),
		ClientID:         uuid.New(),
		CompanyID:        companyID,
		ServiceCompanyID: companyID,
		SlotStart:        time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC),
		SlotLength:       time.Hour,
		SlotAvailable:    true,
		ServiceDuration:  30 * time.Minute,
		Status:           booking.StatusConfirmed,
		Now:              time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildSlotSpec() booking.SlotSpec {
	return booking.SlotSpec{
		ID:          b.SlotID,
		CompanyID:   b.CompanyID,
		Range:       timerange.Reconstruct(b.SlotStart, b.SlotStart.Add(b.SlotLength)),
		IsAvailable: b.SlotAvailable,
	}
}

func (b *BookingBuilder) BuildServiceSpec() booking.ServiceTypeSpec {
	return booking.ServiceTypeSpec{
		ID:        b.ServiceTypeID,
		CompanyID: b.ServiceCompanyID,
		Duration:  b.ServiceDuration,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.Reserve(b.BuildSlotSpec(), b.BuildServiceSpec(), b.ClientID, b.Notes, b.Now)
}

// BuildReconstructed skips validation and yields a booking in b.Status.
func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	return booking.ReconstructBooking(uuid.New(), b.SlotID, b.ServiceTypeID, b.ClientID, b.Status, b.Notes, b.Now, b.Now)
}

// Fluent builder methods
func (b *BookingBuilder) WithSlotAvailable(available bool) *BookingBuilder {
	b.SlotAvailable = available
	return b
}

func (b *BookingBuilder) WithServiceCompany(companyID uuid.UUID) *BookingBuilder {
	b.ServiceCompanyID = companyID
	return b
}

func (b *BookingBuilder) WithSlotLength(d time.Duration) *BookingBuilder {
	b.SlotLength = d
	return b
}

func (b *BookingBuilder) WithServiceDuration(d time.Duration) *BookingBuilder {
	b.ServiceDuration = d
	return b
}

func (b *BookingBuilder) WithNotes(notes *string) *BookingBuilder {
	b.Notes = notes
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}
