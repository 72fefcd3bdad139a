package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Occupies reports whether a booking in this status holds its slot.
func (s Status) Occupies() bool {
	return s.IsValid() && s != StatusCancelled
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func AllStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}
}

// SlotEffect is what a status change requires of the booked slot.
type SlotEffect int

const (
	SlotUnchanged SlotEffect = iota
	SlotRelease
	SlotOccupy
)

func (e SlotEffect) String() string {
	switch e {
	case SlotRelease:
		return "release"
	case SlotOccupy:
		return "occupy"
	default:
		return "unchanged"
	}
}

// EffectOf maps a status transition to its slot side effect. Leaving
// cancelled re-occupies the slot without checking for other bookings.
func EffectOf(from, to Status) SlotEffect {
	switch {
	case from != StatusCancelled && to == StatusCancelled:
		return SlotRelease
	case from == StatusCancelled && to != StatusCancelled:
		return SlotOccupy
	default:
		return SlotUnchanged
	}
}
