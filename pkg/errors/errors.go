// Package errors provides the kinded error type raised by request handlers.
//
// A kind is a stable name for the cause of a failure ("SQLException",
// "OrderNotFoundException"). Resolvers key their decisions on the kind, never on
// the message. An error may also carry a fixed HTTP status, the equivalent of
// declaring that a kind of error always means a given status.
package errors

import (
	"errors"
	"fmt"
	"reflect"
)

// Error is a kinded error with an optional bound HTTP status.
type Error struct {
	kind    string
	message string
	status  int
	reason  string
	cause   error
}

// Option configures an Error during New.
type Option func(*Error)

// WithStatus binds the error to a fixed HTTP status and reason phrase.
func WithStatus(code int, reason string) Option {
	return func(e *Error) {
		e.status = code
		e.reason = reason
	}
}

// WithCause sets the error returned by Unwrap.
func WithCause(cause error) Option {
	return func(e *Error) { e.cause = cause }
}

// New creates a kinded error.
func New(kind, message string, opts ...Option) *Error {
	e := &Error{kind: kind, message: message}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.message == "" {
		return e.kind
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

func (e *Error) Unwrap() error { return e.cause }

// Kind returns the kind name.
func (e *Error) Kind() string { return e.kind }

// Message returns the message without the kind prefix.
func (e *Error) Message() string { return e.message }

// ResponseStatus reports the bound status. ok is false when none was set.
func (e *Error) ResponseStatus() (code int, reason string, ok bool) {
	if e.status == 0 {
		return 0, "", false
	}
	return e.status, e.reason, true
}

// Kinder is implemented by errors that name their own kind.
type Kinder interface {
	Kind() string
}

// StatusCoder is implemented by errors bound to a fixed HTTP status.
type StatusCoder interface {
	ResponseStatus() (code int, reason string, ok bool)
}

// KindOf returns the kind of the first error in err's chain that names one.
// Other errors are named after their Go type, without package or pointer.
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	var k Kinder
	if errors.As(err, &k) && k.Kind() != "" {
		return k.Kind()
	}
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

// StatusOf returns the bound status of the first error in err's chain that has one.
func StatusOf(err error) (code int, reason string, ok bool) {
	if err == nil {
		return 0, "", false
	}
	var sc StatusCoder
	if !errors.As(err, &sc) {
		return 0, "", false
	}
	return sc.ResponseStatus()
}

// MessageOf returns the message of a kinded error, or err.Error() otherwise.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message()
	}
	return err.Error()
}
