package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes returned in APIError.Code.
const (
	CodeLessonNotFound = "lesson_not_found"
	CodeInvalidDay     = "invalid_day"
	CodeNotFound       = "not_found"
	CodeInvalidQuery   = "invalid_query"
	CodeInternal       = "internal"
)

// APIError is the body of every JSON error.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorEnvelope wraps APIError as {"error": {...}}.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// RespondError writes a JSON error and aborts the handler chain.
func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondOK writes payload with status 200.
func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
