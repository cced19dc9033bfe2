package services

import (
	"errors"
	"fmt"
)

// ErrorType represents the type/category of error
type ErrorType string

const (
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeInternal     ErrorType = "internal"
)

// DomainError represents a structured error with additional context.
// Message is safe to show to clients; Err is not.
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Details map[string]interface{}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// WithDetail adds a detail to the error
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewDomainError creates a new domain error
func NewDomainError(errType ErrorType, message string, err error) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Details: make(map[string]interface{}),
	}
}

// Client facing messages
const (
	MsgIncorrectCredentials = "Incorrect credentials"
	MsgUserNotEnabled       = "The user is not enabled"
	MsgTokenNotValid        = "The token is not valid"
	MsgAccessDenied         = "Access denied"
	MsgInternal             = "An unexpected error occurred"
	MsgValidationFailed     = "Validation failed"

	msgUserIDNotFound    = "The user with ID: %d was not found"
	msgUserEmailNotFound = "The user with email: %s was not found"
	msgUserPhoneExists   = "The user with phone: %s already exists"
	msgUserEmailExists   = "The user with email: %s already exists"
	msgUserNoPurchases   = "The user with ID: %d has no purchases"
	msgFilmIDNotFound    = "The film with ID: %d was not found"
	msgFilmInUse         = "The film with ID: %d has purchases and cannot be deleted"
	msgPurchaseNotFound  = "The purchase with ID: %d was not found"
	msgDetailNotFound    = "The purchase detail with ID: %d was not found"
)

// Domain error variables. Never mutate these; build a new error to attach details.
var (
	ErrIncorrectCredentials = NewDomainError(ErrorTypeUnauthorized, MsgIncorrectCredentials, nil)
	ErrUserNotEnabled       = NewDomainError(ErrorTypeUnauthorized, MsgUserNotEnabled, nil)
	ErrTokenNotValid        = NewDomainError(ErrorTypeUnauthorized, MsgTokenNotValid, nil)

	ErrForbidden = NewDomainError(ErrorTypeForbidden, MsgAccessDenied, nil)
)

// NotFoundf creates a not found error with a formatted message
func NotFoundf(format string, args ...interface{}) error {
	return NewDomainError(ErrorTypeNotFound, fmt.Sprintf(format, args...), nil)
}

// Conflictf creates a conflict error with a formatted message
func Conflictf(format string, args ...interface{}) error {
	return NewDomainError(ErrorTypeConflict, fmt.Sprintf(format, args...), nil)
}

// ValidationError creates a validation error carrying field messages
func ValidationError(fields map[string]string) error {
	err := NewDomainError(ErrorTypeValidation, MsgValidationFailed, nil)
	for k, v := range fields {
		err.WithDetail(k, v)
	}
	return err
}

// Error type checking helper functions

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	return GetErrorType(err) == ErrorTypeNotFound
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return GetErrorType(err) == ErrorTypeValidation
}

// IsUnauthorizedError checks if an error is an unauthorized error
func IsUnauthorizedError(err error) bool {
	return GetErrorType(err) == ErrorTypeUnauthorized
}

// IsForbiddenError checks if an error is a forbidden error
func IsForbiddenError(err error) bool {
	return GetErrorType(err) == ErrorTypeForbidden
}

// IsConflictError checks if an error is a conflict error
func IsConflictError(err error) bool {
	return GetErrorType(err) == ErrorTypeConflict
}

// IsInternalError checks if an error is an internal error
func IsInternalError(err error) bool {
	return GetErrorType(err) == ErrorTypeInternal
}

// GetErrorType returns the ErrorType of a domain error, or empty string if not a domain error
func GetErrorType(err error) ErrorType {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type
	}
	return ""
}

// GetErrorDetails returns the details map of a domain error, or nil if not a domain error
func GetErrorDetails(err error) map[string]interface{} {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Details
	}
	return nil
}

// GetErrorMessage returns the client safe message of a domain error. Anything
// else yields the generic internal message.
func GetErrorMessage(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) && domainErr.Type != ErrorTypeInternal {
		return domainErr.Message
	}
	return MsgInternal
}

// WrapInternal wraps an error as an internal error
func WrapInternal(message string, err error) error {
	return NewDomainError(ErrorTypeInternal, message, err)
}
