package converter

import (
	"slot-booking/internal/domain/servicetype"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
)

func ServiceTypeToCreateParams(st *servicetype.ServiceType) sqlc.CreateServiceTypeParams {
	return sqlc.CreateServiceTypeParams{
		ID:              st.ID(),
		CompanyID:       st.CompanyID(),
		Name:            st.Name(),
		Description:     st.Description(),
		DurationMinutes: pgconv.IntToInt32(st.DurationMinutes()),
		PriceCents:      st.PriceCents(),
		CreatedAt:       pgconv.TimeToPgtype(st.CreatedAt()),
	}
}
