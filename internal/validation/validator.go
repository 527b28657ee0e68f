package validation

import (
	"reflect"
	"regexp"
	"strings"

	"payme/internal/currency"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("username_format", validateUsernameFormat)
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("month_number", validateMonthNumber)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// validateUsernameFormat checks that a username starts with a letter or
// digit and contains only letters, digits, dots, underscores and hyphens
func validateUsernameFormat(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if username == "" {
		return false
	}
	return usernamePattern.MatchString(username)
}

// validateCurrencyCode checks the code against the supported catalog.
// Codes are uppercase ISO 4217 strings; matching is exact.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currency.IsSupported(fl.Field().String())
}

// validateMonthNumber checks that a calendar month falls in 1..12
func validateMonthNumber(fl validator.FieldLevel) bool {
	month := fl.Field().Int()
	return month >= 1 && month <= 12
}
