package httperr

import (
	"net/http"

	"padel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const msgInternal = "Internal server error"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort is AbortWithError for failures that have no underlying error value.
func Abort(c *gin.Context, status int, msg string) {
	AbortWithError(c, status, errs.New(msg), msg, nil)
}

// Rule maps a use case sentinel to a status code and public message.
// An empty Message means the error's own text is shown.
type Rule struct {
	Target  error
	Status  int
	Message string
}

// Respond aborts with the first matching rule, or a 500 when none matches.
func Respond(c *gin.Context, err error, rules ...Rule) {
	for _, r := range rules {
		if errs.Is(err, r.Target) {
			msg := r.Message
			if msg == "" {
				msg = err.Error()
			}
			AbortWithError(c, r.Status, err, msg, nil)
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
}
