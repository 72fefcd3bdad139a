package slot

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"slot-booking/internal/domain/timerange"
)

const (
	DefaultDurationMinutes = 60
	DefaultStartHour       = 8
	DefaultEndHour         = 18
	MaxTemplateDays        = 366
	// MaxDurationMinutes keeps a generated slot within one day.
	MaxDurationMinutes = 24 * 60
)

var ErrInvalidTemplate = errors.New("invalid slot template")

// Weekday numbers days Monday=0 through Sunday=6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func AllWeekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) TimeWeekday() time.Weekday {
	return time.Weekday((int(w) + 1) % 7)
}

// Template describes a recurring daily slot layout over an inclusive date range.
type Template struct {
	startDay  time.Time
	endDay    time.Time
	duration  time.Duration
	startHour int
	endHour   int
	weekdays  map[Weekday]struct{}
}

func NewTemplate(startDate, endDate time.Time, durationMinutes, startHour, endHour int, weekdays []Weekday) (Template, error) {
	if durationMinutes <= 0 || durationMinutes > MaxDurationMinutes {
		return Template{}, fmt.Errorf("%w: duration must be between 1 and %d minutes", ErrInvalidTemplate, MaxDurationMinutes)
	}
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return Template{}, fmt.Errorf("%w: hours must satisfy 0 <= start_hour < end_hour <= 24", ErrInvalidTemplate)
	}

	startDay := midnight(startDate)
	endDay := midnight(endDate.In(startDate.Location()))
	if endDay.Before(startDay) {
		return Template{}, fmt.Errorf("%w: end_date is before start_date", ErrInvalidTemplate)
	}
	if days := dayCount(startDay, endDay); days > MaxTemplateDays {
		return Template{}, fmt.Errorf("%w: date range spans %d days, limit is %d", ErrInvalidTemplate, days, MaxTemplateDays)
	}

	if len(weekdays) == 0 {
		weekdays = AllWeekdays()
	}
	set := make(map[Weekday]struct{}, len(weekdays))
	for _, w := range weekdays {
		if !w.IsValid() {
			return Template{}, fmt.Errorf("%w: weekday %d out of range 0-6", ErrInvalidTemplate, w)
		}
		set[w] = struct{}{}
	}

	return Template{
		startDay:  startDay,
		endDay:    endDay,
		duration:  time.Duration(durationMinutes) * time.Minute,
		startHour: startHour,
		endHour:   endHour,
		weekdays:  set,
	}, nil
}

func (t Template) StartDay() time.Time     { return t.startDay }
func (t Template) EndDay() time.Time       { return t.endDay }
func (t Template) Duration() time.Duration { return t.duration }
func (t Template) StartHour() int          { return t.startHour }
func (t Template) EndHour() int            { return t.endHour }

func (t Template) Weekdays() []Weekday {
	out := make([]Weekday, 0, len(t.weekdays))
	for w := range t.weekdays {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (t Template) Includes(day time.Time) bool {
	_, ok := t.weekdays[WeekdayOf(day)]
	return ok
}

// Candidates lays out back-to-back ranges for every included day. The loop
// stops on the start hour, so the last range of a day may end after end_hour.
func (t Template) Candidates() []timerange.TimeRange {
	var out []timerange.TimeRange
	for day := t.startDay; !day.After(t.endDay); day = day.AddDate(0, 0, 1) {
		if !t.Includes(day) {
			continue
		}
		out = append(out, t.dayCandidates(day)...)
	}
	return out
}

func (t Template) dayCandidates(day time.Time) []timerange.TimeRange {
	var out []timerange.TimeRange
	start := time.Date(day.Year(), day.Month(), day.Day(), t.startHour, 0, 0, 0, day.Location())
	for sameDay(start, day) && start.Hour() < t.endHour {
		end := start.Add(t.duration)
		out = append(out, timerange.Reconstruct(start, end))
		start = end
	}
	return out
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func dayCount(from, to time.Time) int {
	n := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		n++
		if n > MaxTemplateDays {
			break
		}
	}
	return n
}
