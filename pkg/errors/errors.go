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
	ErrIO           ErrorCode = "IO"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Staging errors
	ErrUnsupported   ErrorCode = "UNSUPPORTED"
	ErrCorrupt       ErrorCode = "CORRUPT"
	ErrTempExhausted ErrorCode = "TEMP_EXHAUSTED"

	// Commit errors
	ErrEmptyName     ErrorCode = "EMPTY_NAME"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrCopyFailed    ErrorCode = "COPY_FAILED"

	// Session errors
	ErrPendingExists ErrorCode = "PENDING_EXISTS"
	ErrNoPending     ErrorCode = "NO_PENDING"

	// Watch errors
	ErrWatch ErrorCode = "WATCH"

	// Interaction errors
	ErrNotInteractive ErrorCode = "NOT_INTERACTIVE"
	ErrCancelled      ErrorCode = "CANCELLED"
)

// MxbmmError represents a structured error with code and details
type MxbmmError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MxbmmError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MxbmmError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MxbmmError) Is(target error) bool {
	var targetErr *MxbmmError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MxbmmError with the given code and message
func New(code ErrorCode, message string) *MxbmmError {
	return &MxbmmError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MxbmmError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MxbmmError {
	return &MxbmmError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MxbmmError
func Wrap(err error, code ErrorCode, message string) *MxbmmError {
	if err == nil {
		return nil
	}
	return &MxbmmError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MxbmmError {
	if err == nil {
		return nil
	}
	return &MxbmmError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MxbmmError) WithDetail(key string, value interface{}) *MxbmmError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mxErr *MxbmmError
	if errors.As(err, &mxErr) {
		return mxErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MxbmmError
func GetErrorCode(err error) ErrorCode {
	var mxErr *MxbmmError
	if errors.As(err, &mxErr) {
		return mxErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MxbmmError
func GetErrorDetails(err error) map[string]interface{} {
	var mxErr *MxbmmError
	if errors.As(err, &mxErr) {
		return mxErr.Details
	}
	return nil
}

// IsUserCorrectable reports whether the error can be fixed by editing the
// pending install (renaming, choosing another category) and retrying.
func IsUserCorrectable(err error) bool {
	switch GetErrorCode(err) {
	case ErrEmptyName, ErrAlreadyExists, ErrUnsupported, ErrInvalidInput:
		return true
	default:
		return false
	}
}
