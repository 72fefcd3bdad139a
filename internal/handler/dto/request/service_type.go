package request

import (
	"errors"

	"slot-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateServiceTypeRequest struct {
	CompanyID       uuid.UUID `json:"company_id" binding:"required"`
	Name            string    `json:"name" binding:"required,max=100"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceCents      int64     `json:"price_cents"`
}

func (r CreateServiceTypeRequest) ToCommand() commands.CreateServiceTypeRequest {
	return commands.CreateServiceTypeRequest{
		CompanyID:       r.CompanyID,
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		PriceCents:      r.PriceCents,
	}
}

type ListServiceTypesQuery struct {
	CompanyID string `form:"company_id"`
}

func (q ListServiceTypesQuery) CompanyUUID() (uuid.UUID, error) {
	id, err := parseOptionalUUID("company_id", q.CompanyID)
	if err != nil {
		return uuid.Nil, err
	}
	if id == nil {
		return uuid.Nil, errors.New("company_id: required")
	}
	return *id, nil
}
