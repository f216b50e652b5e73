package app_error

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type statusError struct {
	error
	status int
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) HTTPStatus() int {
	return e.status
}

// New wraps err with the HTTP status it should be reported as.
func New(err error, status int) error {
	return statusError{error: err, status: status}
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	c.JSON(status, gin.H{"error": err.Error()})
}

// Handle writes a JSON error response, mapping known error kinds to their
// status codes. Unrecognized errors are reported as 500.
func Handle(c *gin.Context, err error) {
	var se statusError
	if errors.As(err, &se) {
		WithHTTPStatus(c, err, se.HTTPStatus())
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		WithHTTPStatus(c, err, 404)
		return
	}
	WithHTTPStatus(c, err, 500)
}
