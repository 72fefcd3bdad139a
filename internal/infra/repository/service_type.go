package repository

import (
	"context"

	"slot-booking/internal/domain/servicetype"
	"slot-booking/internal/infra"
	"slot-booking/internal/infra/repository/converter"
	sqlc "slot-booking/internal/infra/sqlc/generated"
)

type ServiceTypeWriteQueries interface {
	CreateServiceType(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceTypeParams) (sqlc.ServiceTypes, error)
}

type ServiceTypeRepository struct {
	queries ServiceTypeWriteQueries
}

func NewServiceTypeRepository(queries ServiceTypeWriteQueries) *ServiceTypeRepository {
	return &ServiceTypeRepository{
		queries: queries,
	}
}

func (r *ServiceTypeRepository) Create(ctx context.Context, tx sqlc.DBTX, st *servicetype.ServiceType) error {
	if _, err := r.queries.CreateServiceType(ctx, tx, converter.ServiceTypeToCreateParams(st)); err != nil {
		return infra.WrapRepoErr("failed to create service type", err)
	}
	return nil
}
