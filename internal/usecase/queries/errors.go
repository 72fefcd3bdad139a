package queries

import (
	"slot-booking/internal/infra"
	"slot-booking/internal/pkg/errs"
)

func mapReadErr(err error, msg string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Wrap(err, msg), errs.ErrNotFound)
	}
	return err
}
