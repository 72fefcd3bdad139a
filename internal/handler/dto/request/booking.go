package request

import (
	"strings"

	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	SlotID        uuid.UUID `json:"slot_id" binding:"required"`
	ServiceTypeID uuid.UUID `json:"service_type_id" binding:"required"`
	ClientID      uuid.UUID `json:"client_id" binding:"required"`
	Notes         *string   `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		SlotID:        r.SlotID,
		ServiceTypeID: r.ServiceTypeID,
		ClientID:      r.ClientID,
		Notes:         r.Notes,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListBookingsQuery struct {
	CompanyID string `form:"company_id"`
	ClientID  string `form:"client_id"`
	Status    string `form:"status"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}

func (q ListBookingsQuery) ToFilters() (queries.BookingFilters, queries.Page, error) {
	companyID, err := parseOptionalUUID("company_id", q.CompanyID)
	if err != nil {
		return queries.BookingFilters{}, queries.Page{}, err
	}
	clientID, err := parseOptionalUUID("client_id", q.ClientID)
	if err != nil {
		return queries.BookingFilters{}, queries.Page{}, err
	}
	start, err := parseOptionalTime("start_date", q.StartDate)
	if err != nil {
		return queries.BookingFilters{}, queries.Page{}, err
	}
	end, err := parseOptionalTime("end_date", q.EndDate)
	if err != nil {
		return queries.BookingFilters{}, queries.Page{}, err
	}

	var status *string
	if s := strings.TrimSpace(q.Status); s != "" {
		status = &s
	}

	page, err := parsePage(q.Page, q.PageSize)
	if err != nil {
		return queries.BookingFilters{}, queries.Page{}, err
	}

	return queries.BookingFilters{
		CompanyID: companyID,
		ClientID:  clientID,
		Status:    status,
		StartDate: start,
		EndDate:   end,
	}, page, nil
}
