package response

import (
	"time"

	"slot-booking/internal/domain/slot"
	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/queries"
)

type SlotResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromSlot(s *slot.Slot) *SlotResponse {
	return &SlotResponse{
		ID:          s.ID().String(),
		CompanyID:   s.CompanyID().String(),
		StartTime:   s.Start().UTC(),
		EndTime:     s.End().UTC(),
		IsAvailable: s.IsAvailable(),
		CreatedAt:   s.CreatedAt().UTC(),
		UpdatedAt:   s.UpdatedAt().UTC(),
	}
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:          v.ID.String(),
		CompanyID:   v.CompanyID.String(),
		StartTime:   v.StartTime.UTC(),
		EndTime:     v.EndTime.UTC(),
		IsAvailable: v.IsAvailable,
		CreatedAt:   v.CreatedAt.UTC(),
		UpdatedAt:   v.UpdatedAt.UTC(),
	}
}

type BulkSlotsResponse struct {
	CreatedCount int             `json:"created_count"`
	SkippedCount int             `json:"skipped_count"`
	Slots        []*SlotResponse `json:"slots"`
}

func FromBulkResult(r *commands.BulkResult) *BulkSlotsResponse {
	slots := make([]*SlotResponse, len(r.Created))
	for i, s := range r.Created {
		slots[i] = FromSlot(s)
	}
	return &BulkSlotsResponse{
		CreatedCount: len(r.Created),
		SkippedCount: r.Skipped,
		Slots:        slots,
	}
}
