// Package errors provides the typed error values used across the module.
// Every error carries a code so callers can branch on kind with errors.Is
// without string matching.
package errors

import (
	"errors"
	"fmt"
)

// ERR identifies the kind of an error.
type ERR int32

const (
	ERR_UNKNOWN ERR = iota
	ERR_INVALID_ARGUMENT
	ERR_NOT_FOUND
	ERR_PROCESSING
	ERR_CONFIGURATION
	ERR_TX_INVALID
	ERR_SCRIPT_INVALID
	ERR_PAYLOAD_INVALID
	ERR_SERVICE_ERROR
)

var errNames = map[ERR]string{
	ERR_UNKNOWN:          "ERR_UNKNOWN",
	ERR_INVALID_ARGUMENT: "ERR_INVALID_ARGUMENT",
	ERR_NOT_FOUND:        "ERR_NOT_FOUND",
	ERR_PROCESSING:       "ERR_PROCESSING",
	ERR_CONFIGURATION:    "ERR_CONFIGURATION",
	ERR_TX_INVALID:       "ERR_TX_INVALID",
	ERR_SCRIPT_INVALID:   "ERR_SCRIPT_INVALID",
	ERR_PAYLOAD_INVALID:  "ERR_PAYLOAD_INVALID",
	ERR_SERVICE_ERROR:    "ERR_SERVICE_ERROR",
}

func (e ERR) String() string {
	if name, ok := errNames[e]; ok {
		return name
	}
	return fmt.Sprintf("ERR(%d)", int32(e))
}

// Error is the concrete error type. Code equality drives Is; the wrapped
// error, if any, is reachable through Unwrap.
type Error struct {
	code       ERR
	message    string
	wrappedErr error
}

// New creates an Error with the given code. The message is treated as a
// format string for the remaining params; if the final param is an error it
// becomes the wrapped error instead of a format argument.
func New(code ERR, message string, params ...interface{}) *Error {
	var wErr error

	if len(params) > 0 {
		if err, ok := params[len(params)-1].(error); ok {
			wErr = err
			params = params[:len(params)-1]
		}
	}

	if len(params) > 0 {
		message = fmt.Sprintf(message, params...)
	}

	return &Error{
		code:       code,
		message:    message,
		wrappedErr: wErr,
	}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	if e.wrappedErr == nil {
		return fmt.Sprintf("%s (%d): %s", e.code, e.code, e.message)
	}

	return fmt.Sprintf("%s (%d): %s: %v", e.code, e.code, e.message, e.wrappedErr)
}

func (e *Error) Code() ERR {
	return e.code
}

func (e *Error) Message() string {
	return e.message
}

// Is reports whether target has the same code, unwrapping as needed.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}

	var te *Error
	if !errors.As(target, &te) {
		return false
	}

	if e.code == te.code {
		return true
	}

	if e.wrappedErr != nil {
		return errors.Is(e.wrappedErr, target)
	}

	return false
}

func (e *Error) As(target interface{}) bool {
	if e == nil {
		return false
	}

	if t, ok := target.(**Error); ok {
		*t = e
		return true
	}

	if e.wrappedErr != nil {
		return errors.As(e.wrappedErr, target)
	}

	return false
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.wrappedErr
}

// Is delegates to the standard library so callers only import this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
