package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeFetch indicates the candidate list (or a detail record) could not be fetched.
	ErrCodeFetch ErrorCode = "fetch_failure"
	// ErrCodeMutation indicates a role change, delete step or invite call failed.
	ErrCodeMutation ErrorCode = "mutation_failure"
	// ErrCodePartialCascade indicates a cascading delete failed after some steps succeeded.
	ErrCodePartialCascade ErrorCode = "partial_cascade_failure"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeUnauthorized indicates missing or rejected credentials.
	ErrCodeUnauthorized ErrorCode = "unauthorized"
	// ErrCodeInternal indicates an unexpected client-side failure.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeCanceled indicates the operation was canceled.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError represents a structured application error with a code, message, and optional cause.
// It supports error wrapping and unwrapping for use with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field that caused the error (optional, for validation errors)
	Field string
	// Step names the remote call that failed (optional, for fetch and mutation errors)
	Step string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// FetchFailure wraps a failed read.
func FetchFailure(step string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeFetch,
		Message: fmt.Sprintf("fetch failed at %s", step),
		Cause:   err,
		Step:    step,
	}
}

// MutationFailure wraps a failed write.
func MutationFailure(step string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeMutation,
		Message: fmt.Sprintf("mutation failed at %s", step),
		Cause:   err,
		Step:    step,
	}
}

// PartialCascadeFailure wraps a failed dependent delete that happened after
// earlier steps of the same cascade already succeeded.
func PartialCascadeFailure(step string, err error) *AppError {
	return &AppError{
		Code:    ErrCodePartialCascade,
		Message: fmt.Sprintf("cascade stopped at %s after partial delete", step),
		Cause:   err,
		Step:    step,
	}
}

// NotFoundf creates a new NotFound error with formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Field:   field,
	}
}

// Unauthorized creates a new Unauthorized error.
func Unauthorized(message string) *AppError {
	return &AppError{
		Code:    ErrCodeUnauthorized,
		Message: message,
	}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsFetchFailure checks if an error is a FetchFailure.
func IsFetchFailure(err error) bool {
	return isCode(err, ErrCodeFetch)
}

// IsMutationFailure checks if an error is a MutationFailure. A partial cascade
// failure is a mutation failure too.
func IsMutationFailure(err error) bool {
	return isCode(err, ErrCodeMutation) || isCode(err, ErrCodePartialCascade)
}

// IsPartialCascadeFailure checks if an error is a PartialCascadeFailure.
func IsPartialCascadeFailure(err error) bool {
	return isCode(err, ErrCodePartialCascade)
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	return isCode(err, ErrCodeNotFound)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsUnauthorized checks if an error is an Unauthorized error.
func IsUnauthorized(err error) bool {
	return isCode(err, ErrCodeUnauthorized)
}

// IsCanceled checks if an error is a Canceled error.
func IsCanceled(err error) bool {
	return isCode(err, ErrCodeCanceled)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetField returns the Field from an error, or empty string if not an AppError or no field set.
func GetField(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}

// GetStep returns the Step from an error, or empty string if not an AppError or no step set.
func GetStep(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Step
	}
	return ""
}
