package converter

import (
	"slot-booking/internal/domain/slot"
	"slot-booking/internal/domain/timerange"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
)

func SlotToCreateParams(s *slot.Slot) sqlc.CreateSlotParams {
	return sqlc.CreateSlotParams{
		ID:          s.ID(),
		CompanyID:   s.CompanyID(),
		StartTime:   pgconv.TimeToPgtype(s.Start()),
		EndTime:     pgconv.TimeToPgtype(s.End()),
		IsAvailable: s.IsAvailable(),
		CreatedAt:   pgconv.TimeToPgtype(s.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func SlotToCreateIfNoOverlapParams(s *slot.Slot) sqlc.CreateSlotIfNoOverlapParams {
	return sqlc.CreateSlotIfNoOverlapParams(SlotToCreateParams(s))
}

func SlotToUpdateRangeParams(s *slot.Slot) sqlc.UpdateSlotRangeParams {
	return sqlc.UpdateSlotRangeParams{
		ID:        s.ID(),
		StartTime: pgconv.TimeToPgtype(s.Start()),
		EndTime:   pgconv.TimeToPgtype(s.End()),
		UpdatedAt: pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func SlotFromRow(row sqlc.Slots) *slot.Slot {
	return slot.ReconstructSlot(
		row.ID,
		row.CompanyID,
		timerange.Reconstruct(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime)),
		row.IsAvailable,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
