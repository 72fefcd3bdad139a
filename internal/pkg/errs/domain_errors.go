package errs

import "errors"

// Categories for use-case errors. Callers test with Is, which sees marks.
var (
	ErrNotFound            = errors.New("not found")
	ErrSlotUnavailable     = errors.New("slot unavailable")
	ErrCrossCompany        = errors.New("cross company mismatch")
	ErrDurationExceedsSlot = errors.New("duration exceeds slot")
	ErrSlotOverlap         = errors.New("slot overlap")
	ErrSlotHasBookings     = errors.New("slot has bookings")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrConcurrencyConflict = errors.New("concurrency conflict")

	// Validation errors
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrInvalidTemplate  = errors.New("invalid slot template")
	ErrDomainValidation = errors.New("domain validation error")
	ErrDuplicateUser    = errors.New("duplicate user")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// Kind names a taxonomy category for transport layers.
type Kind string

const (
	KindNotFound            Kind = "not_found"
	KindSlotUnavailable     Kind = "slot_unavailable"
	KindCrossCompany        Kind = "cross_company_mismatch"
	KindDurationExceedsSlot Kind = "duration_exceeds_slot"
	KindSlotOverlap         Kind = "slot_overlap"
	KindSlotHasBookings     Kind = "slot_has_bookings"
	KindInvalidStatus       Kind = "invalid_status"
	KindConcurrencyConflict Kind = "concurrency_conflict"
	KindInvalidTimeRange    Kind = "invalid_time_range"
	KindInvalidTemplate     Kind = "invalid_template"
	KindValidation          Kind = "validation"
	KindDuplicateUser       Kind = "duplicate_user"
	KindInternal            Kind = "internal"
)

var kinds = []struct {
	sentinel error
	kind     Kind
}{
	{ErrConcurrencyConflict, KindConcurrencyConflict},
	{ErrNotFound, KindNotFound},
	{ErrSlotUnavailable, KindSlotUnavailable},
	{ErrCrossCompany, KindCrossCompany},
	{ErrDurationExceedsSlot, KindDurationExceedsSlot},
	{ErrSlotOverlap, KindSlotOverlap},
	{ErrSlotHasBookings, KindSlotHasBookings},
	{ErrInvalidStatus, KindInvalidStatus},
	{ErrInvalidTimeRange, KindInvalidTimeRange},
	{ErrInvalidTemplate, KindInvalidTemplate},
	{ErrDomainValidation, KindValidation},
	{ErrDuplicateUser, KindDuplicateUser},
}

// KindOf returns the first category err is marked with, or KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindInternal
}
