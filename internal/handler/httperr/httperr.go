package httperr

import (
	"strconv"
	"time"

	"slot-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Detail carries the error taxonomy kind so clients can branch without
// parsing messages. Reason is only set for caller-correctable input errors.
type Detail struct {
	Kind   errs.Kind `json:"kind"`
	Reason string    `json:"reason,omitempty"`
}

type Response struct {
	Status     int           `json:"-"`
	RetryAfter time.Duration `json:"-"`
	Error      struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail *Detail `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail *Detail) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError keeps err on the gin context for logging while only msg and
// detail reach the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail *Detail) {
	abort(c, err, NewResponse(status, msg, detail))
}

// AbortRetryable is AbortWithError plus a Retry-After header.
func AbortRetryable(c *gin.Context, status int, err error, msg string, detail *Detail, after time.Duration) {
	resp := NewResponse(status, msg, detail)
	resp.RetryAfter = after
	abort(c, err, resp)
}

func Write(c *gin.Context, resp Response) {
	if resp.RetryAfter > 0 {
		c.Header("Retry-After", strconv.Itoa(retrySeconds(resp.RetryAfter)))
	}
	c.JSON(resp.Status, resp)
}

func abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("httperr: err cannot be nil")
	}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	Write(c, resp)
	c.Abort()
}

func retrySeconds(d time.Duration) int {
	s := int((d + time.Second - 1) / time.Second)
	return max(s, 1)
}
