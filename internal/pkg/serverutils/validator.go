package serverutils

import (
	"fmt"

	"wealth-advisor-be/internal/dto"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and converts the first failure
// into a ValidationError so the error handler answers with a 400.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return &dto.ValidationError{
				Message: fmt.Sprintf("Champ invalide : %s", errs[0].Field()),
			}
		}
		return &dto.ValidationError{Message: err.Error()}
	}
	return nil
}
