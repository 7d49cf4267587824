package serverutils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest checks struct tags and reports violations as a single
// validation error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Validation("invalid request body")
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return apperror.Validation("invalid fields: " + strings.Join(fields, ", "))
}
