package commands

import (
	"errors"

	"slot-booking/internal/domain/booking"
	"slot-booking/internal/domain/servicetype"
	"slot-booking/internal/domain/slot"
	"slot-booking/internal/domain/timerange"
	"slot-booking/internal/domain/user"
	"slot-booking/internal/infra"
	"slot-booking/internal/pkg/errs"
)

var domainErrMarks = []struct {
	domain error
	mark   error
}{
	{booking.ErrSlotUnavailable, errs.ErrSlotUnavailable},
	{booking.ErrCrossCompany, errs.ErrCrossCompany},
	{booking.ErrDurationExceedsSlot, errs.ErrDurationExceedsSlot},
	{booking.ErrInvalidStatus, errs.ErrInvalidStatus},
	{booking.ErrNotesTooLong, errs.ErrDomainValidation},
	{timerange.ErrInvalidRange, errs.ErrInvalidTimeRange},
	{slot.ErrInvalidTemplate, errs.ErrInvalidTemplate},
	{servicetype.ErrInvalidName, errs.ErrDomainValidation},
	{servicetype.ErrInvalidDuration, errs.ErrDomainValidation},
	{servicetype.ErrInvalidPrice, errs.ErrDomainValidation},
	{user.ErrInvalidEmail, errs.ErrDomainValidation},
	{user.ErrInvalidUsername, errs.ErrDomainValidation},
	{user.ErrPasswordTooWeak, errs.ErrDomainValidation},
	{user.ErrInvalidProfileKind, errs.ErrDomainValidation},
	{user.ErrCompanyNameRequired, errs.ErrDomainValidation},
	{user.ErrClientNameRequired, errs.ErrDomainValidation},
	{user.ErrInvalidPhone, errs.ErrDomainValidation},
}

// markDomainErr attaches the taxonomy category for a domain rule violation.
// Unknown errors pass through unchanged.
func markDomainErr(err error) error {
	if err == nil {
		return nil
	}
	for _, m := range domainErrMarks {
		if errors.Is(err, m.domain) {
			return errs.Mark(err, m.mark)
		}
	}
	return err
}

// mapRepoErr translates repository error kinds into categories. Constraint
// violations that depend on the operation are left to the caller.
func mapRepoErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(errs.Wrap(err, msg), errs.ErrNotFound)
	case infra.IsKind(err, infra.KindExclusionViolated):
		return errs.Mark(errs.Wrap(err, msg), errs.ErrSlotOverlap)
	case infra.IsKind(err, infra.KindCheckViolated):
		return errs.Mark(errs.Wrap(err, msg), errs.ErrDomainValidation)
	default:
		return errs.Wrap(err, msg)
	}
}
