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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Scanner errors
	ErrScanNotFound ErrorCode = "SCAN_NOT_FOUND"
	ErrScanNotDir   ErrorCode = "SCAN_NOT_DIR"
	ErrScanWalk     ErrorCode = "SCAN_WALK"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrFileDelete ErrorCode = "FILE_DELETE"
	ErrFileExists ErrorCode = "FILE_EXISTS"
)

// ThanosError represents a structured error with code and details
type ThanosError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ThanosError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ThanosError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ThanosError) Is(target error) bool {
	var targetErr *ThanosError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ThanosError with the given code and message
func New(code ErrorCode, message string) *ThanosError {
	return &ThanosError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ThanosError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ThanosError {
	return &ThanosError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ThanosError
func Wrap(err error, code ErrorCode, message string) *ThanosError {
	if err == nil {
		return nil
	}
	return &ThanosError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ThanosError {
	if err == nil {
		return nil
	}
	return &ThanosError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ThanosError) WithDetail(key string, value interface{}) *ThanosError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var thanosErr *ThanosError
	if errors.As(err, &thanosErr) {
		return thanosErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ThanosError
func GetErrorCode(err error) ErrorCode {
	var thanosErr *ThanosError
	if errors.As(err, &thanosErr) {
		return thanosErr.Code
	}
	return ErrUnknown
}
