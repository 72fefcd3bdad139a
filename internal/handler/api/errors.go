package api

import (
	"log/slog"
	"net/http"
	"time"

	"slot-booking/internal/handler/httperr"
	"slot-booking/internal/handler/middleware"
	"slot-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	status  int
	message string
	// reason exposes err.Error() in the detail; only domain messages qualify.
	reason bool
}

var errorMappings = map[errs.Kind]errorMapping{
	errs.KindNotFound:            {http.StatusNotFound, "Resource not found", false},
	errs.KindSlotUnavailable:     {http.StatusConflict, "Slot is not available", false},
	errs.KindCrossCompany:        {http.StatusBadRequest, "Service type belongs to another company", false},
	errs.KindDurationExceedsSlot: {http.StatusBadRequest, "Service duration exceeds slot length", false},
	errs.KindSlotOverlap:         {http.StatusConflict, "Slot overlaps an existing slot", false},
	errs.KindSlotHasBookings:     {http.StatusConflict, "Slot has bookings", false},
	errs.KindInvalidStatus:       {http.StatusBadRequest, "Invalid booking status", false},
	errs.KindConcurrencyConflict: {http.StatusConflict, "Concurrent update, retry the request", false},
	errs.KindInvalidTimeRange:    {http.StatusBadRequest, "Invalid time range", true},
	errs.KindInvalidTemplate:     {http.StatusBadRequest, "Invalid slot template", true},
	errs.KindValidation:          {http.StatusBadRequest, "Validation failed", true},
	errs.KindDuplicateUser:       {http.StatusConflict, "Username or email already registered", false},
}

// respondError is the single place taxonomy kinds become HTTP statuses.
func respondError(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	m, ok := errorMappings[kind]
	if !ok {
		slog.ErrorContext(c.Request.Context(), "Unhandled error",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("path", c.FullPath()),
			slog.Any("error", err),
			slog.Any("stack", errs.ExtractStackLines(err, 12)))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", &httperr.Detail{Kind: errs.KindInternal})
		return
	}

	detail := &httperr.Detail{Kind: kind}
	if m.reason {
		detail.Reason = err.Error()
	}
	if kind == errs.KindConcurrencyConflict {
		httperr.AbortRetryable(c, m.status, err, m.message, detail, time.Second)
		return
	}
	httperr.AbortWithError(c, m.status, err, m.message, detail)
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, &httperr.Detail{Kind: errs.KindValidation, Reason: err.Error()})
}
