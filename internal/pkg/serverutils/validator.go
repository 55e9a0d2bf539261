// FILE: internal/pkg/serverutils/validator.go
package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"estate-listing-be/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation on a DTO and converts
// failures into field-level validation errors.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
		}
		return apperrors.Validationf("invalid request: %s", strings.Join(msgs, ", "))
	}
	return apperrors.Validationf("invalid request: %v", err)
}
