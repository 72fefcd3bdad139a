package middleware

import (
	"log/slog"
	"net/http"

	"slot-booking/internal/handler/httperr"
	"slot-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

func internalResponse() httperr.Response {
	return httperr.NewResponse(http.StatusInternalServerError, "Internal server error",
		&httperr.Detail{Kind: errs.KindInternal})
}

// ErrorHandler renders errors attached to the context by handlers that did
// not write a response themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				httperr.Write(c, resp)
				return
			}
		}

		last := c.Errors.Last()
		slog.ErrorContext(c.Request.Context(), "Unrendered handler error",
			slog.String("request_id", GetRequestID(c)),
			slog.String("path", c.FullPath()),
			slog.Any("error", last.Err))
		httperr.Write(c, internalResponse())
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(c.Request.Context(), "Recovered from panic",
					slog.Any("panic", rec),
					slog.String("request_id", GetRequestID(c)),
					slog.String("method", c.Request.Method),
					slog.String("path", c.Request.URL.Path))

				httperr.Write(c, internalResponse())
				c.Abort()
			}
		}()
		c.Next()
	}
}
