// Package errors provides structured errors with stable codes for wsinit.
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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad       ErrorCode = "CONFIG_LOAD"
	ErrConfigParse      ErrorCode = "CONFIG_PARSE"
	ErrConfigKeyMissing ErrorCode = "CONFIG_KEY_MISSING"

	// Template errors
	ErrFieldNotFound ErrorCode = "FIELD_NOT_FOUND"

	// Command errors
	ErrCommandNotFound ErrorCode = "COMMAND_NOT_FOUND"
	ErrCommandMissing  ErrorCode = "COMMAND_MISSING"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"

	// Path errors
	ErrPathResolve ErrorCode = "PATH_RESOLVE"
)

// WsinitError represents a structured error with code and details
type WsinitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WsinitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WsinitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *WsinitError) Is(target error) bool {
	var targetErr *WsinitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new WsinitError with the given code and message
func New(code ErrorCode, message string) *WsinitError {
	return &WsinitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WsinitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WsinitError {
	return &WsinitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a WsinitError
func Wrap(err error, code ErrorCode, message string) *WsinitError {
	if err == nil {
		return nil
	}
	return &WsinitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WsinitError {
	if err == nil {
		return nil
	}
	return &WsinitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *WsinitError) WithDetail(key string, value interface{}) *WsinitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var werr *WsinitError
	if errors.As(err, &werr) {
		return werr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a WsinitError
func GetErrorCode(err error) ErrorCode {
	var werr *WsinitError
	if errors.As(err, &werr) {
		return werr.Code
	}
	return ErrUnknown
}
