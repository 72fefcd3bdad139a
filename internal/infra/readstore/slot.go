package readstore

import (
	"context"
	"time"

	"slot-booking/internal/infra"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
	"slot-booking/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SlotReadQueries interface {
	GetSlotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Slots, error)
	GetSlotByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Slots, error)
	CountOverlappingSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingSlotsParams) (int64, error)
	CountBookingsForSlot(ctx context.Context, db sqlc.DBTX, slotID uuid.UUID) (int64, error)
}

type SlotReadStore struct {
	queries SlotReadQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotReadQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	row, err := r.queries.GetSlotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get slot by id", err)
	}
	return toSlotView(row), nil
}

// FindByIDForUpdate must run inside a transaction; the row lock lasts until it ends.
func (r *SlotReadStore) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	row, err := r.queries.GetSlotByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock slot", err)
	}
	return toSlotView(row), nil
}

func (r *SlotReadStore) CountOverlapping(ctx context.Context, companyID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (int64, error) {
	n, err := r.queries.CountOverlappingSlots(ctx, r.db, sqlc.CountOverlappingSlotsParams{
		CompanyID:  companyID,
		RangeEnd:   pgconv.TimeToPgtype(end),
		RangeStart: pgconv.TimeToPgtype(start),
		ExcludeID:  excludeID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping slots", err)
	}
	return n, nil
}

func (r *SlotReadStore) CountBookings(ctx context.Context, slotID uuid.UUID) (int64, error) {
	n, err := r.queries.CountBookingsForSlot(ctx, r.db, slotID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count slot bookings", err)
	}
	return n, nil
}

func (r *SlotReadStore) List(ctx context.Context, filters queries.SlotFilters, page queries.Page) ([]*queries.SlotView, int64, error) {
	count, err := countRows(ctx, r.db, applySlotFilters(psql.Select("count(*)").From("slots"), filters), "list slots")
	if err != nil {
		return nil, 0, err
	}
	if count == 0 {
		return []*queries.SlotView{}, 0, nil
	}

	query, args, err := applySlotFilters(
		psql.Select("id", "company_id", "start_time", "end_time", "is_available", "created_at", "updated_at").From("slots"),
		filters,
	).
		OrderBy("start_time ASC", "id ASC").
		Limit(page.Limit()).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("list slots: build select query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("list slots: execute query", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.SlotView, error) {
		var s sqlc.Slots
		if err := row.Scan(&s.ID, &s.CompanyID, &s.StartTime, &s.EndTime, &s.IsAvailable, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		return toSlotView(s), nil
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("list slots: scan rows", err)
	}
	return items, count, nil
}

func applySlotFilters(b sq.SelectBuilder, f queries.SlotFilters) sq.SelectBuilder {
	if f.CompanyID != nil {
		b = b.Where(sq.Eq{"company_id": *f.CompanyID})
	}
	if f.StartDate != nil {
		b = b.Where(sq.GtOrEq{"start_time": *f.StartDate})
	}
	if f.EndDate != nil {
		b = b.Where(sq.LtOrEq{"end_time": *f.EndDate})
	}
	if f.OnlyAvailable {
		b = b.Where(sq.Eq{"is_available": true})
	}
	return b
}

func toSlotView(row sqlc.Slots) *queries.SlotView {
	return &queries.SlotView{
		ID:          row.ID,
		CompanyID:   row.CompanyID,
		StartTime:   pgconv.TimeFromPgtype(row.StartTime),
		EndTime:     pgconv.TimeFromPgtype(row.EndTime),
		IsAvailable: row.IsAvailable,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
