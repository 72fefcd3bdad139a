//go:build unit

package slot_test

import (
	"testing"
	"time"

	"slot-booking/internal/domain/slot"
	"slot-booking/internal/domain/timerange"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func hour(h int) time.Time {
	return time.Date(2025, 3, 10, h, 0, 0, 0, time.UTC)
}

func TestNewSlot(t *testing.T) {
	companyID := uuid.New()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	s := slot.NewSlot(companyID, timerange.Reconstruct(hour(10), hour(11)), now)

	assert.NotEqual(t, uuid.Nil, s.ID())
	assert.Equal(t, companyID, s.CompanyID())
	assert.True(t, s.IsAvailable())
	assert.Equal(t, hour(10), s.Start())
	assert.Equal(t, hour(11), s.End())
	assert.Equal(t, now, s.CreatedAt())
	assert.Equal(t, now, s.UpdatedAt())
}

func TestSlot_Reschedule(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := slot.ReconstructSlot(uuid.New(), uuid.New(), timerange.Reconstruct(hour(10), hour(11)), false, created, created)

	later := created.Add(time.Hour)
	s.Reschedule(timerange.Reconstruct(hour(14), hour(15)), later)

	assert.Equal(t, hour(14), s.Start())
	assert.False(t, s.IsAvailable(), "reschedule must not touch availability")
	assert.Equal(t, created, s.CreatedAt())
	assert.Equal(t, later, s.UpdatedAt())
}

func TestSlot_Conflicts(t *testing.T) {
	companyID := uuid.New()
	now := time.Now()
	base := slot.NewSlot(companyID, timerange.Reconstruct(hour(10), hour(11)), now)

	testCases := []struct {
		name  string
		other *slot.Slot
		want  bool
	}{
		{name: "overlapping slot of same company", other: slot.NewSlot(companyID, timerange.Reconstruct(hour(10), hour(12)), now), want: true},
		{name: "back-to-back slot of same company", other: slot.NewSlot(companyID, timerange.Reconstruct(hour(11), hour(12)), now), want: false},
		{name: "overlapping slot of other company", other: slot.NewSlot(uuid.New(), timerange.Reconstruct(hour(10), hour(11)), now), want: false},
		{name: "same slot", other: base, want: false},
		{name: "nil slot", other: nil, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Conflicts(tc.other))
		})
	}
}
