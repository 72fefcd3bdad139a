package request

import (
	"fmt"
	"strings"
	"time"

	"slot-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// parseOptionalUUID returns nil for an empty query value.
func parseOptionalUUID(field, s string) (*uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &id, nil
}

// parseOptionalTime accepts RFC 3339 timestamps or plain dates, read as UTC midnight.
func parseOptionalTime(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%s: expected RFC 3339 timestamp or YYYY-MM-DD", field)
	}
	return &t, nil
}

func parseDate(field, s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: expected YYYY-MM-DD", field)
	}
	return t, nil
}

// parsePage rejects page numbers past queries.MaxPageNumber instead of
// clamping them, so a client asking for a page that cannot exist hears so.
func parsePage(number, size int) (queries.Page, error) {
	if number > queries.MaxPageNumber {
		return queries.Page{}, fmt.Errorf("page: must not exceed %d", queries.MaxPageNumber)
	}
	return queries.NewPage(number, size), nil
}
