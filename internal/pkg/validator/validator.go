package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Email reports whether s is syntactically a valid email address.
func Email(s string) bool {
	return validate.Var(s, "required,email") == nil
}
