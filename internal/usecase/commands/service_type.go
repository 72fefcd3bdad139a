package commands

//go:generate mockgen -source=service_type.go -destination=../../../tests/mock/commands/service_type_mock.go -package=commandsmock

import (
	"context"

	"slot-booking/internal/domain/servicetype"
	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/metrics"
	"slot-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateServiceTypeRequest struct {
	CompanyID       uuid.UUID
	Name            string
	Description     string
	DurationMinutes int
	PriceCents      int64
}

type ServiceTypeCommands interface {
	CreateServiceType(ctx context.Context, req CreateServiceTypeRequest) (*servicetype.ServiceType, error)
}

type serviceTypeUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewServiceTypeUseCase(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Metrics) ServiceTypeCommands {
	return &serviceTypeUseCaseImpl{uow: uow, clock: clk, metrics: m}
}

func (uc *serviceTypeUseCaseImpl) CreateServiceType(ctx context.Context, req CreateServiceTypeRequest) (created *servicetype.ServiceType, err error) {
	defer func() { uc.metrics.ObserveOperation("create_service_type", err) }()

	st, err := servicetype.NewServiceType(req.CompanyID, req.Name, req.Description, req.DurationMinutes, req.PriceCents, uc.clock.Now())
	if err != nil {
		return nil, markDomainErr(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().CompanyByID(ctx, req.CompanyID); derr != nil {
			return mapRepoErr(derr, "company not found")
		}
		return mapRepoErr(tx.ServiceTypes().Create(ctx, tx.DB(), st), "create service type")
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}
