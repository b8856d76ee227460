package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"padel-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}

// ErrorHandler renders the newest public error a handler recorded through httperr.
// A handler that neither wrote a body nor recorded one gets a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Writer.Written() {
			return
		}

		if resp, ok := lastPublicResponse(c.Errors); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if c.Writer.Status() != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			slog.ErrorContext(c.Request.Context(), "request failed without a public error",
				"route", c.FullPath(),
				"errors", c.Errors.String())
		}
		resp := internalError()
		c.JSON(resp.Status, resp)
	}
}

func lastPublicResponse(errors []*gin.Error) (httperr.Response, bool) {
	for i := len(errors) - 1; i >= 0; i-- {
		if !errors[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := errors[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

// CustomRecovery turns a panic into the standard 500 body and logs the stack.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			attrs := []any{
				"panic", rec,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"stack", string(debug.Stack()),
			}
			if ref := c.Param("ref"); ref != "" {
				attrs = append(attrs, "booking_ref", ref)
			}
			slog.ErrorContext(c.Request.Context(), "recovered from panic", attrs...)

			resp := internalError()
			c.AbortWithStatusJSON(resp.Status, resp)
		}()
		c.Next()
	}
}
