// Package errors provides structured error types for tierpyramid.
//
// Errors carry a machine-readable [Code] so that the CLI, the HTTP server
// and the rendering pipeline can react to a failure category without
// parsing messages:
//   - INVALID_*: Input validation failures (config, catalog, flags)
//   - *NOT_FOUND: Unknown levels, groups or files
//   - CACHE_ERROR: Cache backend failures
//   - INTERNAL_ERROR / UNSUPPORTED: Everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "top width %.1f must be below total width", w)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidCatalog, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidCatalog Code = "INVALID_CATALOG"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle   Code = "INVALID_STYLE"
	ErrCodeInvalidColor   Code = "INVALID_COLOR"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound      Code = "NOT_FOUND"
	ErrCodeLevelNotFound Code = "LEVEL_NOT_FOUND"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Backend errors
	ErrCodeCache Code = "CACHE_ERROR"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error pairs a [Code] with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches code and message to cause. The cause stays reachable
// through errors.Is and errors.As.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	if e := asError(err); e != nil {
		return e.Code
	}
	return ""
}

// Is reports whether the first *Error in err's chain has code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// UserMessage strips the code prefix and the cause.
func UserMessage(err error) string {
	if e := asError(err); e != nil {
		return e.Message
	}
	return err.Error()
}

func asError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

var (
	validation = map[Code]bool{
		ErrCodeInvalidInput: true, ErrCodeInvalidConfig: true, ErrCodeInvalidCatalog: true,
		ErrCodeInvalidFormat: true, ErrCodeInvalidStyle: true, ErrCodeInvalidColor: true,
		ErrCodeInvalidPath: true,
	}
	notFound = map[Code]bool{
		ErrCodeNotFound: true, ErrCodeLevelNotFound: true, ErrCodeFileNotFound: true,
	}
)

// IsValidation reports whether err was caused by bad input.
func IsValidation(err error) bool { return validation[GetCode(err)] }

// IsNotFound reports whether err names something that does not exist.
func IsNotFound(err error) bool { return notFound[GetCode(err)] }
