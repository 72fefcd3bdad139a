package response

import (
	"time"

	"slot-booking/internal/usecase/queries"
)

type ServiceTypeResponse struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int32     `json:"duration_minutes"`
	PriceCents      int64     `json:"price_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromServiceTypeView(v *queries.ServiceTypeView) *ServiceTypeResponse {
	return &ServiceTypeResponse{
		ID:              v.ID.String(),
		CompanyID:       v.CompanyID.String(),
		Name:            v.Name,
		Description:     v.Description,
		DurationMinutes: v.DurationMinutes,
		PriceCents:      v.PriceCents,
		CreatedAt:       v.CreatedAt.UTC(),
	}
}

func FromServiceTypeViews(views []*queries.ServiceTypeView) []*ServiceTypeResponse {
	out := make([]*ServiceTypeResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromServiceTypeView(v))
	}
	return out
}
