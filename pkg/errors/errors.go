package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Argument assembly errors
	ErrInvalidTemplate ErrorCode = "INVALID_TEMPLATE"

	// Structured text errors
	ErrScopeOrder ErrorCode = "SCOPE_ORDER"
	ErrSinkWrite  ErrorCode = "SINK_WRITE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Invocation and document spec errors
	ErrSpecParse   ErrorCode = "SPEC_PARSE"
	ErrSpecInvalid ErrorCode = "SPEC_INVALID"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// CigenError represents a structured error with code and details
type CigenError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CigenError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CigenError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a CigenError carrying the same code
func (e *CigenError) Is(target error) bool {
	var targetErr *CigenError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CigenError with the given code and message
func New(code ErrorCode, message string) *CigenError {
	return &CigenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CigenError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CigenError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a CigenError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *CigenError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CigenError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *CigenError) WithDetail(key string, value interface{}) *CigenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cigenErr *CigenError
	if errors.As(err, &cigenErr) {
		return cigenErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CigenError
func GetErrorCode(err error) ErrorCode {
	var cigenErr *CigenError
	if errors.As(err, &cigenErr) {
		return cigenErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CigenError
func GetErrorDetails(err error) map[string]interface{} {
	var cigenErr *CigenError
	if errors.As(err, &cigenErr) {
		return cigenErr.Details
	}
	return nil
}
