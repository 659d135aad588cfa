package webrows

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be communicated back to the caller at the handler
// boundary. Any non-application error is reported as an internal error and
// its message is hidden behind a generic one.
const (
	EINTERNAL      = "internal"      // catch-all handler failure
	EINVALID       = "invalid"       // input payload malformed
	ENOTFOUND      = "not_found"     // resource does not exist (4xx)
	EUNAVAILABLE   = "unavailable"   // transient fetch failure (timeouts, 429, 5xx)
	EUNPROCESSABLE = "unprocessable" // content retrieved but not parseable
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the code and message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface. Not used by the application
// otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("webrows error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
