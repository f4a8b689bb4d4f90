/*
Package core contains definitions shared by all packages of this module.

# Errors

Style input never produces errors: malformed stylesheet text degrades
gracefully and is reported through tracing only. Errors are reserved for
collaborators which touch the outside world, i.e. fetching resources,
loading fonts and parsing documents. Those return AppErrors which carry an
error code and a message suitable for end users:

	err := core.WrapError(err, core.EMISSING, "font %q not found", name)
	if core.Code(err) == core.EMISSING { … }
*/
package core

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Error codes of AppErrors
const (
	NOERROR     int = 0
	EMISSING    int = 122 // resource does not exist
	EINVALID    int = 123 // validation failed
	ECONNECTION int = 124 // remote resource not connected
	EINTERNAL   int = 125 // internal error
	EFORBIDDEN  int = 126 // access to resource not permitted
	EFORMAT     int = 127 // resource has unexpected format
)

var errorTexts = map[int]string{
	NOERROR:     "OK",
	EMISSING:    "not found",
	EINVALID:    "invalid",
	ECONNECTION: "transmission-error",
	EINTERNAL:   "internal error",
	EFORBIDDEN:  "forbidden",
	EFORMAT:     "format error",
}

func errorText(code int) string {
	if t, ok := errorTexts[code]; ok {
		return t
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

// codedError decorates a cause with a code and a message for end users.
type codedError struct {
	cause error
	code  int
	msg   string
}

var _ AppError = codedError{}

func (e codedError) Unwrap() error       { return e.cause }
func (e codedError) ErrorCode() int      { return e.code }
func (e codedError) UserMessage() string { return e.msg }

func (e codedError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.cause)
}

// WrapError decorates err with an error code and a user message.
// A nil err is replaced by an error describing the code.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return codedError{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

// Error creates an error with an error code and a user message.
func Error(code int, format string, v ...interface{}) error {
	return WrapError(nil, code, format, v...)
}

// Code returns the error code carried by err's chain. Errors without a
// code are EINTERNAL; a nil error is NOERROR.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var e AppError
	if errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// Is reports whether err carries error code code.
func Is(err error, code int) bool {
	return err != nil && Code(err) == code
}

// UserMessage returns the message for end users carried by err. Errors
// without a message are described by their code; a nil error has an empty
// message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e AppError
	if errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// UserError prints the user message of an error to stderr.
func UserError(err error) {
	printUserError(os.Stderr, err)
}

func printUserError(w io.Writer, err error) {
	var e AppError
	if errors.As(err, &e) {
		fmt.Fprintf(w, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(w, "Error: %s\n", err.Error())
}
