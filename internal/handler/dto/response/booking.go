package response

import (
	"time"

	"slot-booking/internal/usecase/queries"
)

type BookingResponse struct {
	ID              string    `json:"id"`
	SlotID          string    `json:"slot_id"`
	CompanyID       string    `json:"company_id"`
	SlotStart       time.Time `json:"slot_start"`
	SlotEnd         time.Time `json:"slot_end"`
	ServiceTypeID   string    `json:"service_type_id"`
	ServiceTypeName string    `json:"service_type_name"`
	ClientID        string    `json:"client_id"`
	ClientName      string    `json:"client_name"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID.String(),
		SlotID:          v.SlotID.String(),
		CompanyID:       v.CompanyID.String(),
		SlotStart:       v.SlotStart.UTC(),
		SlotEnd:         v.SlotEnd.UTC(),
		ServiceTypeID:   v.ServiceTypeID.String(),
		ServiceTypeName: v.ServiceTypeName,
		ClientID:        v.ClientID.String(),
		ClientName:      v.ClientName,
		Status:          v.Status,
		Notes:           v.Notes,
		CreatedAt:       v.CreatedAt.UTC(),
		UpdatedAt:       v.UpdatedAt.UTC(),
	}
}
