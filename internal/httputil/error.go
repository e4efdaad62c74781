package httputil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error   bool   `json:"error" example:"true"`
	Message string `json:"message" example:"the month must be in YYYY-MM format"`
}

// NewError writes an HTTPError with the message of err.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{
		Error:   true,
		Message: ErrorText(err),
	})
}

// AbortWithError writes an HTTPError and aborts the handler chain.
func AbortWithError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, HTTPError{
		Error:   true,
		Message: ErrorText(err),
	})
}

// ErrorText returns a message for err that is suitable for clients.
// Binding validation errors are translated into readable sentences.
func ErrorText(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			messages = append(messages, validationErrorToText(e))
		}
		return strings.Join(messages, ", ")
	}

	return err.Error()
}

func validationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}
