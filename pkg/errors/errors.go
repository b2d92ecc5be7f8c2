// Package errors provides coded errors. Commands match on codes rather
// than messages, and renderers show the code with the message.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of failure
type ErrorCode string

const (
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration, and documents that fail their schema
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Rules documents
	ErrRulesInvalid      ErrorCode = "RULES_INVALID"
	ErrFormatUnsupported ErrorCode = "FORMAT_UNSUPPORTED"

	// A denied SIM slot under --strict
	ErrSimDenied ErrorCode = "SIM_DENIED"

	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// CarrierlockError is an error with a code and structured details
type CarrierlockError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *CarrierlockError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *CarrierlockError) Unwrap() error {
	return e.Wrapped
}

// Is matches any CarrierlockError with the same code
func (e *CarrierlockError) Is(target error) bool {
	var t *CarrierlockError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithDetail sets a detail and returns the error for chaining
func (e *CarrierlockError) WithDetail(key string, value interface{}) *CarrierlockError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func newError(code ErrorCode, message string, wrapped error) *CarrierlockError {
	return &CarrierlockError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: wrapped,
	}
}

// New creates an error with the given code and message
func New(code ErrorCode, message string) *CarrierlockError {
	return newError(code, message, nil)
}

// Newf creates an error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CarrierlockError {
	return newError(code, fmt.Sprintf(format, args...), nil)
}

// Wrap wraps err under code. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *CarrierlockError {
	if err == nil {
		return nil
	}
	return newError(code, message, err)
}

// Wrapf wraps err with a formatted message. It returns nil when err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CarrierlockError {
	if err == nil {
		return nil
	}
	return newError(code, fmt.Sprintf(format, args...), err)
}

// IsErrorCode reports whether the outermost CarrierlockError in err's chain
// has code
func IsErrorCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}

// GetErrorCode returns the code of the outermost CarrierlockError in err's
// chain, or ErrUnknown
func GetErrorCode(err error) ErrorCode {
	var e *CarrierlockError
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails merges the details of every CarrierlockError in err's
// chain. Outer errors win on conflicting keys. It returns nil when the chain
// holds no CarrierlockError.
func GetErrorDetails(err error) map[string]interface{} {
	var details map[string]interface{}
	for ; err != nil; err = errors.Unwrap(err) {
		e, ok := err.(*CarrierlockError)
		if !ok {
			continue
		}
		if details == nil {
			details = make(map[string]interface{})
		}
		for k, v := range e.Details {
			if _, set := details[k]; !set {
				details[k] = v
			}
		}
	}
	return details
}

// Detail returns the detail key from the outermost error in err's chain
// that sets it
func Detail(err error, key string) (interface{}, bool) {
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*CarrierlockError); ok {
			if v, set := e.Details[key]; set {
				return v, true
			}
		}
	}
	return nil, false
}
