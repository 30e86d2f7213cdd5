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
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Embedding errors
	ErrPrecondition ErrorCode = "PRECONDITION"
	ErrInspect      ErrorCode = "INSPECT_FAILED"
	ErrCopy         ErrorCode = "COPY_FAILED"
	ErrRewrite      ErrorCode = "REWRITE_FAILED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Pipeline errors
	ErrBuild   ErrorCode = "BUILD_FAILED"
	ErrArchive ErrorCode = "ARCHIVE_FAILED"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCreate   ErrorCode = "FILE_CREATE"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// LiftError represents a structured error with code and details
type LiftError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LiftError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LiftError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LiftError) Is(target error) bool {
	var targetErr *LiftError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LiftError with the given code and message
func New(code ErrorCode, message string) *LiftError {
	return &LiftError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LiftError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LiftError {
	return &LiftError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LiftError
func Wrap(err error, code ErrorCode, message string) *LiftError {
	if err == nil {
		return nil
	}
	return &LiftError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LiftError {
	if err == nil {
		return nil
	}
	return &LiftError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LiftError) WithDetail(key string, value interface{}) *LiftError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var liftErr *LiftError
	if errors.As(err, &liftErr) {
		return liftErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LiftError
func GetErrorCode(err error) ErrorCode {
	var liftErr *LiftError
	if errors.As(err, &liftErr) {
		return liftErr.Code
	}
	return ErrUnknown
}
