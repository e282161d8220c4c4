package exceptions

import (
	"fmt"
	"lablink-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError turns the first validator failure into a
// client-readable sentence; anything else falls back to the generic message.
func FormatFirstValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	fieldError := validationErrors[0]
	message, exists := constvars.CustomValidationErrorMessages[fieldError.Tag()]
	if !exists {
		return fmt.Sprintf("%s is invalid", strings.ToLower(fieldError.Field()))
	}

	if constvars.TagsWithParams[fieldError.Tag()] {
		message = fmt.Sprintf(message, fieldError.Param())
	}
	return fmt.Sprintf("%s %s", strings.ToLower(fieldError.Field()), message)
}
