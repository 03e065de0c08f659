package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// BusinessError is an expected outcome identified by a stable code. The code
// suffix decides the HTTP status.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// Status maps "*_not_found" to 404, "*_exists" to 409 and anything else to 400.
func (e BusinessError) Status() int {
	switch {
	case strings.HasSuffix(e.Code, "_not_found"):
		return http.StatusNotFound
	case strings.HasSuffix(e.Code, "_exists"):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func (e BusinessError) message() string {
	switch e.Status() {
	case http.StatusNotFound:
		return "Resource not found."
	case http.StatusConflict:
		return "A record already exists for that date."
	default:
		return "Request cannot be processed."
	}
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Business writes err when it wraps a BusinessError and reports whether it did.
func Business(c *gin.Context, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}
	Write(c, be.Status(), be.Code, be.message())
	return true
}
