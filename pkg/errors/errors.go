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

	// Parse errors, raised by the compiler
	ErrExcessCloser        ErrorCode = "EXCESS_CLOSER"
	ErrUnmatchedOpener     ErrorCode = "UNMATCHED_OPENER"
	ErrUnmatchedExpression ErrorCode = "UNMATCHED_EXPRESSION"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"

	// Watch errors
	ErrWatch ErrorCode = "WATCH"

	// Build errors
	ErrBuildFailed ErrorCode = "BUILD_FAILED"
)

// WieldyError represents a structured error with code and details
type WieldyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WieldyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WieldyError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *WieldyError) Is(target error) bool {
	var targetErr *WieldyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new WieldyError with the given code and message
func New(code ErrorCode, message string) *WieldyError {
	return &WieldyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WieldyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WieldyError {
	return &WieldyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a WieldyError
func Wrap(err error, code ErrorCode, message string) *WieldyError {
	if err == nil {
		return nil
	}
	return &WieldyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WieldyError {
	if err == nil {
		return nil
	}
	return &WieldyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *WieldyError) WithDetail(key string, value interface{}) *WieldyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var wieldyErr *WieldyError
	if errors.As(err, &wieldyErr) {
		return wieldyErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a WieldyError
func GetErrorCode(err error) ErrorCode {
	var wieldyErr *WieldyError
	if errors.As(err, &wieldyErr) {
		return wieldyErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a WieldyError
func GetErrorDetails(err error) map[string]interface{} {
	var wieldyErr *WieldyError
	if errors.As(err, &wieldyErr) {
		return wieldyErr.Details
	}
	return nil
}

// IsParseError reports whether err was raised while compiling markup.
func IsParseError(err error) bool {
	switch GetErrorCode(err) {
	case ErrExcessCloser, ErrUnmatchedOpener, ErrUnmatchedExpression:
		return true
	}
	return false
}

// Message returns the human readable part of err, without its code
func Message(err error) string {
	var wieldyErr *WieldyError
	if !errors.As(err, &wieldyErr) {
		return err.Error()
	}
	if wieldyErr.Wrapped != nil {
		return fmt.Sprintf("%s: %v", wieldyErr.Message, wieldyErr.Wrapped)
	}
	return wieldyErr.Message
}
