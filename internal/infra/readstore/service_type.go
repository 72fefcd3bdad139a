package readstore

import (
	"context"

	"slot-booking/internal/infra"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
	"slot-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceTypeReadQueries interface {
	GetServiceTypeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ServiceTypes, error)
	ListServiceTypesByCompany(ctx context.Context, db sqlc.DBTX, companyID uuid.UUID) ([]sqlc.ServiceTypes, error)
}

type ServiceTypeReadStore struct {
	queries ServiceTypeReadQueries
	db      sqlc.DBTX
}

func NewServiceTypeReadStore(queries ServiceTypeReadQueries, db sqlc.DBTX) *ServiceTypeReadStore {
	return &ServiceTypeReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceTypeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceTypeView, error) {
	row, err := r.queries.GetServiceTypeByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get service type by id", err)
	}
	return toServiceTypeView(row), nil
}

// ListByCompany returns the company's service types ordered by name.
func (r *ServiceTypeReadStore) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*queries.ServiceTypeView, error) {
	rows, err := r.queries.ListServiceTypesByCompany(ctx, r.db, companyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service types", err)
	}
	views := make([]*queries.ServiceTypeView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toServiceTypeView(row))
	}
	return views, nil
}

func toServiceTypeView(row sqlc.ServiceTypes) *queries.ServiceTypeView {
	return &queries.ServiceTypeView{
		ID:              row.ID,
		CompanyID:       row.CompanyID,
		Name:            row.Name,
		Description:     row.Description,
		DurationMinutes: row.DurationMinutes,
		PriceCents:      row.PriceCents,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
