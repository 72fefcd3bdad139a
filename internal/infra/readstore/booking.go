package readstore

import (
	"context"

	"slot-booking/internal/infra"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
	"slot-booking/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewByIDRow, error)
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return toBookingView(row), nil
}

// FindByIDForUpdate locks the booking row. Joined fields of the view are left empty.
func (r *BookingReadStore) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return &queries.BookingView{
		ID:            row.ID,
		SlotID:        row.SlotID,
		ServiceTypeID: row.ServiceTypeID,
		ClientID:      row.ClientID,
		Status:        row.Status,
		Notes:         pgconv.StringPtrFromPgtype(row.Notes),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingReadStore) List(ctx context.Context, filters queries.BookingFilters, page queries.Page) ([]*queries.BookingView, int64, error) {
	count, err := countRows(ctx, r.db, applyBookingFilters(psql.Select("count(*)").From("bookings b").Join("slots s ON s.id = b.slot_id"), filters), "list bookings")
	if err != nil {
		return nil, 0, err
	}
	if count == 0 {
		return []*queries.BookingView{}, 0, nil
	}

	query, args, err := applyBookingFilters(
		psql.Select(
			"b.id", "b.slot_id", "b.service_type_id", "b.client_id", "b.status", "b.notes", "b.created_at", "b.updated_at",
			"s.company_id", "s.start_time", "s.end_time", "st.name", "c.name",
		).
			From("bookings b").
			Join("slots s ON s.id = b.slot_id").
			Join("service_types st ON st.id = b.service_type_id").
			Join("clients c ON c.id = b.client_id"),
		filters,
	).
		OrderBy("b.created_at DESC", "b.id DESC").
		Limit(page.Limit()).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("list bookings: build select query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("list bookings: execute query", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.BookingView, error) {
		var v sqlc.GetBookingViewByIDRow
		if err := row.Scan(
			&v.ID, &v.SlotID, &v.ServiceTypeID, &v.ClientID, &v.Status, &v.Notes, &v.CreatedAt, &v.UpdatedAt,
			&v.CompanyID, &v.SlotStart, &v.SlotEnd, &v.ServiceTypeName, &v.ClientName,
		); err != nil {
			return nil, err
		}
		return toBookingView(v), nil
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("list bookings: scan rows", err)
	}
	return items, count, nil
}

func applyBookingFilters(b sq.SelectBuilder, f queries.BookingFilters) sq.SelectBuilder {
	if f.CompanyID != nil {
		b = b.Where(sq.Eq{"s.company_id": *f.CompanyID})
	}
	if f.ClientID != nil {
		b = b.Where(sq.Eq{"b.client_id": *f.ClientID})
	}
	if f.Status != nil {
		b = b.Where(sq.Eq{"b.status": *f.Status})
	}
	if f.StartDate != nil {
		b = b.Where(sq.GtOrEq{"s.start_time": *f.StartDate})
	}
	if f.EndDate != nil {
		b = b.Where(sq.LtOrEq{"s.end_time": *f.EndDate})
	}
	return b
}

func toBookingView(row sqlc.GetBookingViewByIDRow) *queries.BookingView {
	return &queries.BookingView{
		ID:              row.ID,
		SlotID:          row.SlotID,
		CompanyID:       row.CompanyID,
		SlotStart:       pgconv.TimeFromPgtype(row.SlotStart),
		SlotEnd:         pgconv.TimeFromPgtype(row.SlotEnd),
		ServiceTypeID:   row.ServiceTypeID,
		ServiceTypeName: row.ServiceTypeName,
		ClientID:        row.ClientID,
		ClientName:      row.ClientName,
		Status:          row.Status,
		Notes:           pgconv.StringPtrFromPgtype(row.Notes),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
