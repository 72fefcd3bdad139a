package timerange

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidRange = errors.New("end time must be after start time")

// TimeRange is a half-open interval [start, end).
type TimeRange struct {
	start time.Time
	end   time.Time
}

func New(start, end time.Time) (TimeRange, error) {
	if !end.After(start) {
		return TimeRange{}, ErrInvalidRange
	}
	return TimeRange{start: start, end: end}, nil
}

// Reconstruct skips validation; only for rows already guarded by the schema CHECK.
func Reconstruct(start, end time.Time) TimeRange {
	return TimeRange{start: start, end: end}
}

func (r TimeRange) Start() time.Time { return r.start }
func (r TimeRange) End() time.Time   { return r.end }

func (r TimeRange) Duration() time.Duration {
	return r.end.Sub(r.start)
}

// Overlaps uses strict inequalities, so back-to-back ranges do not overlap.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.start.Before(o.end) && o.start.Before(r.end)
}

func (r TimeRange) Contains(d time.Duration) bool {
	return d <= r.Duration()
}

func (r TimeRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

func (r TimeRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.start.Format(time.RFC3339), r.end.Format(time.RFC3339))
}
