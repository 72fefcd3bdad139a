package commands

import (
	"context"
	"log/slog"
	"time"

	"slot-booking/internal/domain/slot"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/pkg/ptr"

	"github.com/google/uuid"
)

// BulkTemplateRequest describes a generation window. Nil fields take the
// template defaults; an empty Weekdays means every day.
type BulkTemplateRequest struct {
	CompanyID       uuid.UUID
	StartDate       time.Time
	EndDate         time.Time
	DurationMinutes *int
	StartHour       *int
	EndHour         *int
	Weekdays        []int
}

type BulkResult struct {
	Created []*slot.Slot
	Skipped int
}

// BulkGenerateSlots inserts every template candidate that does not overlap an
// existing slot. Each insert commits on its own, so a failure midway keeps
// the slots already created, which are returned with the error.
func (uc *slotUseCaseImpl) BulkGenerateSlots(ctx context.Context, req BulkTemplateRequest) (result *BulkResult, err error) {
	defer func() { uc.metrics.ObserveOperation("bulk_generate_slots", err) }()

	weekdays := make([]slot.Weekday, 0, len(req.Weekdays))
	for _, d := range req.Weekdays {
		weekdays = append(weekdays, slot.Weekday(d))
	}

	tmpl, err := slot.NewTemplate(
		req.StartDate,
		req.EndDate,
		ptr.Or(req.DurationMinutes, slot.DefaultDurationMinutes),
		ptr.Or(req.StartHour, slot.DefaultStartHour),
		ptr.Or(req.EndHour, slot.DefaultEndHour),
		weekdays,
	)
	if err != nil {
		return nil, markDomainErr(err)
	}

	if _, err = uc.uow.CommandReads().CompanyByID(ctx, req.CompanyID); err != nil {
		return nil, mapRepoErr(err, "company not found")
	}

	now := uc.clock.Now()
	result = &BulkResult{Created: make([]*slot.Slot, 0)}
	for _, r := range tmpl.Candidates() {
		if cerr := ctx.Err(); cerr != nil {
			return uc.abortBulk(ctx, req.CompanyID, result, errs.Wrap(cerr, "bulk generation interrupted"))
		}

		s := slot.NewSlot(req.CompanyID, r, now)
		var created bool
		err = uc.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
			var derr error
			created, derr = uc.slots.CreateIfNoOverlap(ctx, db, s)
			return derr
		})
		if err != nil {
			return uc.abortBulk(ctx, req.CompanyID, result, mapRepoErr(err, "create generated slot"))
		}

		if created {
			result.Created = append(result.Created, s)
		} else {
			result.Skipped++
		}
	}

	uc.metrics.ObserveBulk(len(result.Created), result.Skipped)
	slog.InfoContext(ctx, "Bulk slot generation finished",
		slog.String("company_id", req.CompanyID.String()),
		slog.Int("created", len(result.Created)),
		slog.Int("skipped", result.Skipped))
	return result, nil
}

// abortBulk reports the slots committed before a batch stopped. They stay in
// place, so the partial result is returned alongside the error.
func (uc *slotUseCaseImpl) abortBulk(ctx context.Context, companyID uuid.UUID, result *BulkResult, cause error) (*BulkResult, error) {
	uc.metrics.ObserveBulk(len(result.Created), result.Skipped)
	slog.WarnContext(ctx, "Bulk slot generation stopped early",
		slog.String("company_id", companyID.String()),
		slog.Int("created", len(result.Created)),
		slog.Int("skipped", result.Skipped),
		slog.Any("error", cause))
	return result, cause
}
