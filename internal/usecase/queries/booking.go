package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock

import (
	"context"
	"time"

	"slot-booking/internal/domain/booking"
	"slot-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	SlotID          uuid.UUID `json:"slot_id"`
	CompanyID       uuid.UUID `json:"company_id"`
	SlotStart       time.Time `json:"slot_start"`
	SlotEnd         time.Time `json:"slot_end"`
	ServiceTypeID   uuid.UUID `json:"service_type_id"`
	ServiceTypeName string    `json:"service_type_name"`
	ClientID        uuid.UUID `json:"client_id"`
	ClientName      string    `json:"client_name"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BookingFilters select bookings through their slot for company and date bounds.
type BookingFilters struct {
	CompanyID *uuid.UUID
	ClientID  *uuid.UUID
	Status    *string
	StartDate *time.Time
	EndDate   *time.Time
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filters BookingFilters, page Page) ([]*BookingView, int64, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filters BookingFilters, page Page) (*PageResult[*BookingView], error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapReadErr(err, "booking not found")
	}
	return v, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filters BookingFilters, page Page) (*PageResult[*BookingView], error) {
	if filters.Status != nil {
		if _, err := booking.ParseStatus(*filters.Status); err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidStatus)
		}
	}
	if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
		return nil, errs.Mark(errs.New("end_date is before start_date"), errs.ErrInvalidTimeRange)
	}
	page = NewPage(page.Number, page.Size)

	items, count, err := q.store.List(ctx, filters, page)
	if err != nil {
		return nil, err
	}
	return newPageResult(items, count, page), nil
}
