package utils

import (
	"github.com/go-playground/validator/v10"
)

// Validate is shared by the usecase layer for field-level checks that happen
// outside gin's request binding (e.g. email syntax at signup).
var Validate = validator.New()

func ValidateEmail(email string) bool {
	return Validate.Var(email, "required,email") == nil
}
