package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeLoginUnavailable indicates the identity-provider integration is disabled.
	ErrCodeLoginUnavailable ErrorCode = "login_unavailable"
	// ErrCodeLoginInProgress indicates a login initiation is already in flight (single-flight violation).
	ErrCodeLoginInProgress ErrorCode = "login_in_progress"
	// ErrCodeAlreadyProcessed indicates the callback exchange was already started or finished.
	ErrCodeAlreadyProcessed ErrorCode = "already_processed"
	// ErrCodeStateMismatch indicates the anti-replay state check failed.
	ErrCodeStateMismatch ErrorCode = "state_mismatch"
	// ErrCodeExchangeFailed indicates the backend rejected or could not process the authorization code.
	ErrCodeExchangeFailed ErrorCode = "exchange_failed"
	// ErrCodeMalformedResponse indicates a success response missing required fields.
	ErrCodeMalformedResponse ErrorCode = "malformed_response"
	// ErrCodeNetwork indicates a transport-level failure.
	ErrCodeNetwork ErrorCode = "network_error"
	// ErrCodeCorruptedState indicates persisted session data that could not be parsed.
	ErrCodeCorruptedState ErrorCode = "corrupted_state"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "internal"
)

// AppError is a structured application error with a code, message, and
// optional cause. It supports errors.Is and errors.As through Unwrap.
// Store operations return these as values; none of them are ever
// allowed to escape as a panic.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
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

// New creates an AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf creates an AppError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// LoginUnavailable creates a login_unavailable error.
func LoginUnavailable(message string) *AppError {
	return New(ErrCodeLoginUnavailable, message)
}

// LoginInProgress creates a login_in_progress error.
func LoginInProgress(message string) *AppError {
	return New(ErrCodeLoginInProgress, message)
}

// AlreadyProcessed creates an already_processed error.
func AlreadyProcessed(message string) *AppError {
	return New(ErrCodeAlreadyProcessed, message)
}

// ExchangeFailed creates an exchange_failed error.
func ExchangeFailed(message string) *AppError {
	return New(ErrCodeExchangeFailed, message)
}

// MalformedResponse creates a malformed_response error.
func MalformedResponse(message string) *AppError {
	return New(ErrCodeMalformedResponse, message)
}

// Validation creates a validation error.
func Validation(message string) *AppError {
	return New(ErrCodeValidation, message)
}

// NotFound creates a not_found error.
func NotFound(message string) *AppError {
	return New(ErrCodeNotFound, message)
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// Network wraps a transport-level failure.
func Network(err error, message string) *AppError {
	return Wrap(err, ErrCodeNetwork, message)
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsLoginUnavailable checks if an error is a login_unavailable error.
func IsLoginUnavailable(err error) bool { return isCode(err, ErrCodeLoginUnavailable) }

// IsLoginInProgress checks if an error is a login_in_progress error.
func IsLoginInProgress(err error) bool { return isCode(err, ErrCodeLoginInProgress) }

// IsAlreadyProcessed checks if an error is an already_processed error.
func IsAlreadyProcessed(err error) bool { return isCode(err, ErrCodeAlreadyProcessed) }

// IsExchangeFailed checks if an error is an exchange_failed error.
func IsExchangeFailed(err error) bool { return isCode(err, ErrCodeExchangeFailed) }

// IsMalformedResponse checks if an error is a malformed_response error.
func IsMalformedResponse(err error) bool { return isCode(err, ErrCodeMalformedResponse) }

// IsNetwork checks if an error is a network_error error.
func IsNetwork(err error) bool { return isCode(err, ErrCodeNetwork) }

// IsCorruptedState checks if an error is a corrupted_state error.
func IsCorruptedState(err error) bool { return isCode(err, ErrCodeCorruptedState) }

// IsNotFound checks if an error is a not_found error.
func IsNotFound(err error) bool { return isCode(err, ErrCodeNotFound) }

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool { return isCode(err, ErrCodeValidation) }

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
