//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"slot-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMarkAndIs(t *testing.T) {
	base := errors.New("slot 42 missing")
	marked := errs.Mark(base, errs.ErrNotFound)
	wrapped := errs.Wrap(marked, "load slot")

	assert.True(t, errs.Is(wrapped, errs.ErrNotFound))
	assert.True(t, errs.Is(wrapped, base))
	assert.False(t, errs.Is(wrapped, errs.ErrSlotOverlap))
	assert.Contains(t, wrapped.Error(), "load slot")
	assert.Contains(t, wrapped.Error(), "slot 42 missing")
}

func TestMark_NilErrReturnsMarker(t *testing.T) {
	assert.Equal(t, errs.ErrSlotHasBookings, errs.Mark(nil, errs.ErrSlotHasBookings))
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "noop"))
	assert.NoError(t, errs.Wrapf(nil, "noop %d", 1))
}

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain error", err: errors.New("boom"), want: errs.KindInternal},
		{name: "not found", err: errs.Mark(errors.New("x"), errs.ErrNotFound), want: errs.KindNotFound},
		{name: "overlap behind wrap", err: errs.Wrap(errs.Mark(errors.New("x"), errs.ErrSlotOverlap), "create"), want: errs.KindSlotOverlap},
		{name: "fmt wrapped sentinel", err: fmt.Errorf("ctx: %w", errs.ErrSlotUnavailable), want: errs.KindSlotUnavailable},
		{name: "conflict wins over other marks", err: errs.Mark(errs.Mark(errors.New("x"), errs.ErrNotFound), errs.ErrConcurrencyConflict), want: errs.KindConcurrencyConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.KindOf(tc.err))
		})
	}
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))
	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
}
