package request

import (
	"time"

	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateSlotRequest struct {
	CompanyID uuid.UUID `json:"company_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

func (r CreateSlotRequest) ToCommand() commands.CreateSlotRequest {
	return commands.CreateSlotRequest{
		CompanyID: r.CompanyID,
		StartTime: r.StartTime.UTC(),
		EndTime:   r.EndTime.UTC(),
	}
}

type UpdateSlotRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

func (r UpdateSlotRequest) ToCommand() commands.UpdateSlotRequest {
	return commands.UpdateSlotRequest{StartTime: r.StartTime.UTC(), EndTime: r.EndTime.UTC()}
}

// BulkSlotsRequest dates are calendar days; hours are interpreted in UTC.
// Weekdays use 0 = Monday through 6 = Sunday.
type BulkSlotsRequest struct {
	CompanyID       uuid.UUID `json:"company_id" binding:"required"`
	StartDate       string    `json:"start_date" binding:"required"`
	EndDate         string    `json:"end_date" binding:"required"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	StartHour       *int      `json:"start_hour,omitempty"`
	EndHour         *int      `json:"end_hour,omitempty"`
	Weekdays        []int     `json:"weekdays,omitempty"`
}

func (r BulkSlotsRequest) ToCommand() (commands.BulkTemplateRequest, error) {
	start, err := parseDate("start_date", r.StartDate)
	if err != nil {
		return commands.BulkTemplateRequest{}, err
	}
	end, err := parseDate("end_date", r.EndDate)
	if err != nil {
		return commands.BulkTemplateRequest{}, err
	}
	return commands.BulkTemplateRequest{
		CompanyID:       r.CompanyID,
		StartDate:       start,
		EndDate:         end,
		DurationMinutes: r.DurationMinutes,
		StartHour:       r.StartHour,
		EndHour:         r.EndHour,
		Weekdays:        r.Weekdays,
	}, nil
}

type ListSlotsQuery struct {
	CompanyID     string `form:"company_id"`
	StartDate     string `form:"start_date"`
	EndDate       string `form:"end_date"`
	OnlyAvailable *bool  `form:"only_available"`
	Page          int    `form:"page"`
	PageSize      int    `form:"page_size"`
}

// ToFilters defaults only_available to true.
func (q ListSlotsQuery) ToFilters() (queries.SlotFilters, queries.Page, error) {
	companyID, err := parseOptionalUUID("company_id", q.CompanyID)
	if err != nil {
		return queries.SlotFilters{}, queries.Page{}, err
	}
	start, err := parseOptionalTime("start_date", q.StartDate)
	if err != nil {
		return queries.SlotFilters{}, queries.Page{}, err
	}
	end, err := parseOptionalTime("end_date", q.EndDate)
	if err != nil {
		return queries.SlotFilters{}, queries.Page{}, err
	}

	onlyAvailable := true
	if q.OnlyAvailable != nil {
		onlyAvailable = *q.OnlyAvailable
	}

	page, err := parsePage(q.Page, q.PageSize)
	if err != nil {
		return queries.SlotFilters{}, queries.Page{}, err
	}

	return queries.SlotFilters{
		CompanyID:     companyID,
		StartDate:     start,
		EndDate:       end,
		OnlyAvailable: onlyAvailable,
	}, page, nil
}
