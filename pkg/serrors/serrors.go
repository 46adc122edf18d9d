// Package serrors defines semantic error kinds used across the GEMS core.
// A kind is a comparable sentinel; Error wraps a kind together with an
// optional cause and message while staying fully compatible with
// errors.Is/As.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a sentinel marking a semantic error category.
type Kind interface {
	error
	isKind()
}

type kind struct{ name string }

func (k kind) Error() string { return k.name }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind sentinel.
func NewKind(name string) Kind { return kind{name: name} }

// Error kinds covering the failure taxonomy of the core: transport and
// non-2xx responses map onto Unavailable/Internal/NotFound/BadRequest,
// authentication expiry onto Unauthorized, and store protocol violations
// (fetch while pending, stale commit) onto Conflict.
var (
	ErrNotFound     = NewKind("NOT_FOUND")
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	ErrBadRequest   = NewKind("BAD_REQUEST")
	ErrConflict     = NewKind("CONFLICT")
	ErrInternal     = NewKind("INTERNAL")
	ErrUnavailable  = NewKind("UNAVAILABLE")
	ErrRateLimited  = NewKind("RATE_LIMITED")
)

// Error is a semantic error: a kind plus an optional wrapped cause and
// message. errors.Is matches against both the kind sentinel and the cause.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With builds an Error of the given kind with a formatted message.
func With(k Kind, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind wrapping cause with a formatted
// message.
func Wrap(k Kind, cause error, format string, args ...any) *Error {
	return &Error{kind: k, err: cause, msg: fmt.Sprintf(format, args...)}
}

// KindOnly builds an Error carrying only a kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap exposes the wrapped cause to the errors package.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind sentinel and the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As matches target against the kind sentinel and the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the semantic kind, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to the error.
func (e *Error) Message() string { return e.msg }
