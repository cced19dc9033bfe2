package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/SebasDosman/vortex-bird-test/models"
	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

// PhoneRegion is the region phone numbers are parsed against
const PhoneRegion = "CO"

var (
	// validate is the singleton validator instance
	validate *validator.Validate

	personNameRegex = regexp.MustCompile(`^[\p{L}0-9 _\-]+$`)
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister("person_name", func(fl validator.FieldLevel) bool {
		return personNameRegex.MatchString(fl.Field().String())
	})
	mustRegister("co_phone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	mustRegister("password", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	mustRegister("film_genre", func(fl validator.FieldLevel) bool {
		return models.FilmGenre(fl.Field().String()).IsValid()
	})
	mustRegister("film_classification", func(fl validator.FieldLevel) bool {
		return models.FilmClassification(fl.Field().String()).IsValid()
	})
	mustRegister("payment_method", func(fl validator.FieldLevel) bool {
		return models.PaymentMethod(fl.Field().String()).IsValid()
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// IsValidPhone reports whether phone is a valid number in PhoneRegion
func IsValidPhone(phone string) bool {
	num, err := phonenumbers.Parse(phone, PhoneRegion)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumberForRegion(num, PhoneRegion)
}

// IsStrongPassword requires a lowercase letter, an uppercase letter, a digit and a symbol
func IsStrongPassword(password string) bool {
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return NewValidationError(validationErrors)
		}
		return err
	}
	return nil
}

// ValidationError wraps validation errors with structured details
type ValidationError struct {
	Message string
	Fields  map[string]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError keyed by JSON field path
func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	fields := make(map[string]string)
	for _, err := range errs {
		field := fieldPath(err.Namespace())
		name := err.Field()

		switch err.Tag() {
		case "required":
			fields[field] = fmt.Sprintf("%s is required", name)
		case "email":
			fields[field] = fmt.Sprintf("%s must be a valid email", name)
		case "url":
			fields[field] = fmt.Sprintf("%s must be a valid URL", name)
		case "numeric":
			fields[field] = fmt.Sprintf("%s must contain only digits", name)
		case "len":
			fields[field] = fmt.Sprintf("%s must be exactly %s characters", name, err.Param())
		case "min":
			fields[field] = fmt.Sprintf("%s must be at least %s", name, err.Param())
		case "max":
			fields[field] = fmt.Sprintf("%s must be at most %s", name, err.Param())
		case "gt":
			fields[field] = fmt.Sprintf("%s must be greater than %s", name, err.Param())
		case "gte":
			fields[field] = fmt.Sprintf("%s must be greater than or equal to %s", name, err.Param())
		case "lte":
			fields[field] = fmt.Sprintf("%s must be less than or equal to %s", name, err.Param())
		case "oneof":
			fields[field] = fmt.Sprintf("%s must be one of: %s", name, err.Param())
		case "person_name":
			fields[field] = fmt.Sprintf("%s may only contain letters, digits, spaces, '_' and '-'", name)
		case "co_phone":
			fields[field] = fmt.Sprintf("%s must be a valid Colombian phone number", name)
		case "password":
			fields[field] = fmt.Sprintf("%s must contain a lowercase letter, an uppercase letter, a digit and a symbol", name)
		case "film_genre", "film_classification", "payment_method":
			fields[field] = fmt.Sprintf("%s has an unknown value", name)
		default:
			fields[field] = fmt.Sprintf("%s validation failed on '%s' tag", name, err.Tag())
		}
	}

	return &ValidationError{
		Message: "Validation failed",
		Fields:  fields,
	}
}

// fieldPath drops the struct name from a validator namespace
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// GetValidationFields extracts field errors from a ValidationError
func GetValidationFields(err error) map[string]string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Fields
	}
	return nil
}
