package repository

import (
	"context"
	"time"

	"slot-booking/internal/domain/slot"
	"slot-booking/internal/infra"
	"slot-booking/internal/infra/repository/converter"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SlotWriteQueries interface {
	CreateSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSlotParams) (sqlc.Slots, error)
	CreateSlotIfNoOverlap(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSlotIfNoOverlapParams) (sqlc.Slots, error)
	UpdateSlotRange(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSlotRangeParams) (sqlc.Slots, error)
	SetSlotAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.SetSlotAvailabilityParams) (int64, error)
	DeleteSlot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
}

func NewSlotRepository(queries SlotWriteQueries) *SlotRepository {
	return &SlotRepository{
		queries: queries,
	}
}

func (r *SlotRepository) Create(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) error {
	if _, err := r.queries.CreateSlot(ctx, tx, converter.SlotToCreateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to create slot", err)
	}
	return nil
}

func (r *SlotRepository) CreateIfNoOverlap(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) (bool, error) {
	_, err := r.queries.CreateSlotIfNoOverlap(ctx, tx, converter.SlotToCreateIfNoOverlapParams(s))
	if err != nil {
		// ON CONFLICT DO NOTHING returns no row when the exclusion constraint fires
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to create slot", err)
	}
	return true, nil
}

func (r *SlotRepository) UpdateRange(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) error {
	if _, err := r.queries.UpdateSlotRange(ctx, tx, converter.SlotToUpdateRangeParams(s)); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update slot range", err)
	}
	return nil
}

func (r *SlotRepository) SetAvailability(ctx context.Context, tx sqlc.DBTX, slotID uuid.UUID, available bool, at time.Time) error {
	rows, err := r.queries.SetSlotAvailability(ctx, tx, sqlc.SetSlotAvailabilityParams{
		ID:          slotID,
		IsAvailable: available,
		UpdatedAt:   pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to set slot availability", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, tx sqlc.DBTX, slotID uuid.UUID) error {
	rows, err := r.queries.DeleteSlot(ctx, tx, slotID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}
