package queries

//go:generate mockgen -source=slot.go -destination=../../../tests/mock/queries/slot_mock.go -package=queriesmock

import (
	"context"
	"time"

	"slot-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type SlotView struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"company_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SlotFilters bounds slots by start >= StartDate and end <= EndDate.
type SlotFilters struct {
	CompanyID     *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
	OnlyAvailable bool
}

type SlotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	List(ctx context.Context, filters SlotFilters, page Page) ([]*SlotView, int64, error)
}

type SlotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	List(ctx context.Context, filters SlotFilters, page Page) (*PageResult[*SlotView], error)
}

type slotQueriesImpl struct {
	store SlotReadStore
}

func NewSlotQueries(store SlotReadStore) SlotQueries {
	return &slotQueriesImpl{store: store}
}

func (q *slotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapReadErr(err, "slot not found")
	}
	return v, nil
}

func (q *slotQueriesImpl) List(ctx context.Context, filters SlotFilters, page Page) (*PageResult[*SlotView], error) {
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
