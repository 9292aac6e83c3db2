package pkgerror

import (
	"errors"
	"fmt"
)

type Code int

const (
	CodeInternal Code = iota
	CodeInvalidInput
	CodeNotFound
	CodeUnauthorized
	CodeUpstream
)

func (c Code) String() string {
	switch c {
	case CodeInvalidInput:
		return "invalid_input"
	case CodeNotFound:
		return "not_found"
	case CodeUnauthorized:
		return "unauthorized"
	case CodeUpstream:
		return "upstream_error"
	default:
		return "internal_error"
	}
}

// Error is an error whose message is safe to show to callers.
type Error struct {
	msg   string
	code  Code
	cause error
}

func NewBusiness(msg string, code Code) *Error {
	return &Error{msg: msg, code: code}
}

// Wrap attaches a caller-facing message and code to cause.
func Wrap(cause error, msg string, code Code) *Error {
	return &Error{msg: msg, code: code, cause: cause}
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *Error) Message() string { return e.msg }

func (e *Error) Code() Code { return e.code }

func (e *Error) Unwrap() error { return e.cause }

// CodeOf returns the code of the first *Error in err's chain, or
// CodeInternal when there is none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeInternal
}
