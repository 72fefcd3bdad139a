package commands

//go:generate mockgen -source=slot.go -destination=../../../tests/mock/commands/slot_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"slot-booking/internal/domain/slot"
	"slot-booking/internal/domain/timerange"
	"slot-booking/internal/infra"
	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/pkg/metrics"
	"slot-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateSlotRequest struct {
	CompanyID uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}

type UpdateSlotRequest struct {
	StartTime time.Time
	EndTime   time.Time
}

type SlotCommands interface {
	CreateSlot(ctx context.Context, req CreateSlotRequest) (*slot.Slot, error)
	UpdateSlot(ctx context.Context, slotID uuid.UUID, req UpdateSlotRequest) (*slot.Slot, error)
	DeleteSlot(ctx context.Context, slotID uuid.UUID) error
	BulkGenerateSlots(ctx context.Context, req BulkTemplateRequest) (*BulkResult, error)
}

type slotUseCaseImpl struct {
	uow     shared.UnitOfWork
	slots   shared.SlotRepository
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewSlotUseCase(uow shared.UnitOfWork, slots shared.SlotRepository, clk clock.Clock, m *metrics.Metrics) SlotCommands {
	return &slotUseCaseImpl{uow: uow, slots: slots, clock: clk, metrics: m}
}

func (uc *slotUseCaseImpl) CreateSlot(ctx context.Context, req CreateSlotRequest) (created *slot.Slot, err error) {
	defer func() { uc.metrics.ObserveOperation("create_slot", err) }()

	r, err := timerange.New(req.StartTime, req.EndTime)
	if err != nil {
		return nil, markDomainErr(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().CompanyByID(ctx, req.CompanyID); derr != nil {
			return mapRepoErr(derr, "company not found")
		}
		if derr := ensureNoOverlap(ctx, tx.Reads(), req.CompanyID, r, uuid.Nil); derr != nil {
			return derr
		}

		s := slot.NewSlot(req.CompanyID, r, uc.clock.Now())
		if derr := tx.Slots().Create(ctx, tx.DB(), s); derr != nil {
			return mapRepoErr(derr, "create slot")
		}
		created = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Slot created",
		slog.String("slot_id", created.ID().String()),
		slog.String("company_id", created.CompanyID().String()))
	return created, nil
}

func (uc *slotUseCaseImpl) UpdateSlot(ctx context.Context, slotID uuid.UUID, req UpdateSlotRequest) (updated *slot.Slot, err error) {
	defer func() { uc.metrics.ObserveOperation("update_slot", err) }()

	r, err := timerange.New(req.StartTime, req.EndTime)
	if err != nil {
		return nil, markDomainErr(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().SlotForUpdate(ctx, slotID)
		if derr != nil {
			return mapRepoErr(derr, "slot not found")
		}
		if derr = ensureNoOverlap(ctx, tx.Reads(), snap.CompanyID, r, snap.ID); derr != nil {
			return derr
		}

		s := slot.ReconstructSlot(snap.ID, snap.CompanyID, timerange.Reconstruct(snap.StartTime, snap.EndTime),
			snap.IsAvailable, snap.CreatedAt, snap.UpdatedAt)
		s.Reschedule(r, uc.clock.Now())
		if derr = tx.Slots().UpdateRange(ctx, tx.DB(), s); derr != nil {
			return mapRepoErr(derr, "update slot")
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteSlot refuses while any booking, of any status, references the slot.
func (uc *slotUseCaseImpl) DeleteSlot(ctx context.Context, slotID uuid.UUID) (err error) {
	defer func() { uc.metrics.ObserveOperation("delete_slot", err) }()

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().SlotForUpdate(ctx, slotID); derr != nil {
			return mapRepoErr(derr, "slot not found")
		}

		n, derr := tx.Reads().CountBookingsForSlot(ctx, slotID)
		if derr != nil {
			return errs.Wrap(derr, "count bookings for slot")
		}
		if n > 0 {
			return errs.Mark(errs.Newf("slot %s has %d bookings", slotID, n), errs.ErrSlotHasBookings)
		}

		derr = tx.Slots().Delete(ctx, tx.DB(), slotID)
		if infra.IsKind(derr, infra.KindForeignKeyViolated) {
			return errs.Mark(derr, errs.ErrSlotHasBookings)
		}
		return mapRepoErr(derr, "delete slot")
	})
}

func ensureNoOverlap(ctx context.Context, reads shared.CommandReads, companyID uuid.UUID, r timerange.TimeRange, excludeID uuid.UUID) error {
	n, err := reads.CountOverlappingSlots(ctx, companyID, r, excludeID)
	if err != nil {
		return errs.Wrap(err, "count overlapping slots")
	}
	if n > 0 {
		return errs.Mark(errs.Newf("slot %s overlaps %d existing slots", r, n), errs.ErrSlotOverlap)
	}
	return nil
}
