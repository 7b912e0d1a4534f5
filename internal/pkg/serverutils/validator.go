package serverutils

import (
	"fmt"

	"vilaw-chatbot-be/internal/pkg/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and reports the first failure as
// a validation error so the boundary answers with a 400.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fieldErr := validationErrors[0]
	return apperr.Validation(fmt.Sprintf(
		"Field '%s' failed on the '%s' rule", fieldErr.Field(), fieldErr.Tag(),
	))
}
