package queries

//go:generate mockgen -source=service_type.go -destination=../../../tests/mock/queries/service_type_mock.go -package=queriesmock

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ServiceTypeView struct {
	ID              uuid.UUID `json:"id"`
	CompanyID       uuid.UUID `json:"company_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int32     `json:"duration_minutes"`
	PriceCents      int64     `json:"price_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

type ServiceTypeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceTypeView, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*ServiceTypeView, error)
}

type ServiceTypeQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceTypeView, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*ServiceTypeView, error)
}

type serviceTypeQueriesImpl struct {
	store ServiceTypeReadStore
}

func NewServiceTypeQueries(store ServiceTypeReadStore) ServiceTypeQueries {
	return &serviceTypeQueriesImpl{store: store}
}

func (q *serviceTypeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ServiceTypeView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapReadErr(err, "service type not found")
	}
	return v, nil
}

// ListByCompany lets clients discover what a company offers before booking.
// An unknown company yields an empty list.
func (q *serviceTypeQueriesImpl) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*ServiceTypeView, error) {
	views, err := q.store.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, mapReadErr(err, "list service types")
	}
	if views == nil {
		views = []*ServiceTypeView{}
	}
	return views, nil
}
