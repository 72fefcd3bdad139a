//go:build unit

package slot_test

import (
	"testing"
	"time"

	"slot-booking/internal/domain/slot"
	"slot-booking/internal/domain/timerange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-03-10 is a Monday.
func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func starts(ranges []timerange.TimeRange) []string {
	out := make([]string, len(ranges))
	for i, r := range ranges {
		out[i] = r.Start().Format("01-02 15:04")
	}
	return out
}

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, slot.Monday, slot.WeekdayOf(day(10)))
	assert.Equal(t, slot.Saturday, slot.WeekdayOf(day(15)))
	assert.Equal(t, slot.Sunday, slot.WeekdayOf(day(16)))
	assert.Equal(t, time.Sunday, slot.Sunday.TimeWeekday())
	assert.Equal(t, time.Monday, slot.Monday.TimeWeekday())
}

func TestNewTemplate_Validation(t *testing.T) {
	testCases := []struct {
		name      string
		start     time.Time
		end       time.Time
		duration  int
		startHour int
		endHour   int
		weekdays  []slot.Weekday
		wantErr   bool
	}{
		{name: "defaults are valid", start: day(10), end: day(10), duration: 60, startHour: 8, endHour: 18},
		{name: "full day window", start: day(10), end: day(10), duration: 60, startHour: 0, endHour: 24},
		{name: "zero duration", start: day(10), end: day(10), duration: 0, startHour: 8, endHour: 18, wantErr: true},
		{name: "negative duration", start: day(10), end: day(10), duration: -15, startHour: 8, endHour: 18, wantErr: true},
		{name: "whole day duration", start: day(10), end: day(10), duration: slot.MaxDurationMinutes, startHour: 0, endHour: 1},
		{name: "duration longer than a day", start: day(10), end: day(10), duration: slot.MaxDurationMinutes + 1, startHour: 8, endHour: 18, wantErr: true},
		{name: "duration wrapping to one minute", start: day(10), end: day(10), duration: 9007199254740993, startHour: 8, endHour: 18, wantErr: true},
		{name: "duration wrapping to microseconds", start: day(10), end: day(10), duration: 3749353613647811, startHour: 8, endHour: 18, wantErr: true},
		{name: "duration wrapping negative", start: day(10), end: day(10), duration: 153722868, startHour: 8, endHour: 18, wantErr: true},
		{name: "start hour equals end hour", start: day(10), end: day(10), duration: 60, startHour: 9, endHour: 9, wantErr: true},
		{name: "end hour past midnight", start: day(10), end: day(10), duration: 60, startHour: 9, endHour: 25, wantErr: true},
		{name: "negative start hour", start: day(10), end: day(10), duration: 60, startHour: -1, endHour: 9, wantErr: true},
		{name: "end date before start date", start: day(11), end: day(10), duration: 60, startHour: 8, endHour: 18, wantErr: true},
		{name: "weekday out of range", start: day(10), end: day(10), duration: 60, startHour: 8, endHour: 18, weekdays: []slot.Weekday{7}, wantErr: true},
		{name: "range too long", start: day(1), end: day(1).AddDate(2, 0, 0), duration: 60, startHour: 8, endHour: 18, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := slot.NewTemplate(tc.start, tc.end, tc.duration, tc.startHour, tc.endHour, tc.weekdays)
			if tc.wantErr {
				require.ErrorIs(t, err, slot.ErrInvalidTemplate)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTemplate_Candidates(t *testing.T) {
	t.Run("half-hour slots stop before a start at end hour", func(t *testing.T) {
		tmpl, err := slot.NewTemplate(day(10), day(10), 30, 9, 17, []slot.Weekday{slot.Monday})
		require.NoError(t, err)

		got := tmpl.Candidates()
		require.Len(t, got, 16)
		assert.Equal(t, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), got[0].Start())
		last := got[len(got)-1]
		assert.Equal(t, time.Date(2025, 3, 10, 16, 30, 0, 0, time.UTC), last.Start())
		assert.Equal(t, time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC), last.End())
	})

	t.Run("ranges are back-to-back", func(t *testing.T) {
		tmpl, err := slot.NewTemplate(day(10), day(10), 45, 9, 12, nil)
		require.NoError(t, err)

		got := tmpl.Candidates()
		for i := 1; i < len(got); i++ {
			assert.Equal(t, got[i-1].End(), got[i].Start())
			assert.False(t, got[i-1].Overlaps(got[i]))
		}
	})

	t.Run("uneven duration lets the last slot end after end hour", func(t *testing.T) {
		tmpl, err := slot.NewTemplate(day(10), day(10), 45, 9, 11, nil)
		require.NoError(t, err)

		got := tmpl.Candidates()
		assert.Equal(t, []string{"03-10 09:00", "03-10 09:45", "03-10 10:30"}, starts(got))
		assert.Equal(t, time.Date(2025, 3, 10, 11, 15, 0, 0, time.UTC), got[2].End())
	})

	t.Run("days outside weekdays are skipped", func(t *testing.T) {
		tmpl, err := slot.NewTemplate(day(10), day(16), 60, 9, 10, []slot.Weekday{slot.Monday, slot.Wednesday, slot.Sunday})
		require.NoError(t, err)

		assert.Equal(t, []string{"03-10 09:00", "03-12 09:00", "03-16 09:00"}, starts(tmpl.Candidates()))
	})

	t.Run("date range is inclusive and normalized to midnight", func(t *testing.T) {
		from := time.Date(2025, 3, 10, 15, 42, 0, 0, time.UTC)
		to := time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC)
		tmpl, err := slot.NewTemplate(from, to, 60, 8, 9, nil)
		require.NoError(t, err)

		assert.Equal(t, day(10), tmpl.StartDay())
		assert.Equal(t, []string{"03-10 08:00", "03-11 08:00"}, starts(tmpl.Candidates()))
	})

	t.Run("window ending at midnight does not run into the next day", func(t *testing.T) {
		tmpl, err := slot.NewTemplate(day(10), day(10), 60, 22, 24, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"03-10 22:00", "03-10 23:00"}, starts(tmpl.Candidates()))
	})

	t.Run("empty weekday list means every day", func(t *testing.T) {
		tmpl, err := slot.NewTemplate(day(10), day(16), 60, 9, 10, nil)
		require.NoError(t, err)

		assert.Len(t, tmpl.Candidates(), 7)
		assert.Equal(t, slot.AllWeekdays(), tmpl.Weekdays())
	})

	t.Run("no included weekday yields nothing", func(t *testing.T) {
		tmpl, err := slot.NewTemplate(day(10), day(11), 60, 9, 10, []slot.Weekday{slot.Saturday})
		require.NoError(t, err)

		assert.Empty(t, tmpl.Candidates())
	})
}
