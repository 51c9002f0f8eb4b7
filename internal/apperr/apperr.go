package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the console layer can decide how to report it.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindBackend
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	case KindBackend:
		return "backend"
	default:
		return "unknown"
	}
}

// Error is a typed workflow outcome. Message is safe to show to the actor.
type Error struct {
	Kind    Kind
	Message string
	Op      string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) error { return &Error{Kind: KindValidation, Message: msg} }

func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(msg string) error { return &Error{Kind: KindUnauthorized, Message: msg} }

func NotFound(msg string) error { return &Error{Kind: KindNotFound, Message: msg} }

func NotFoundf(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Backend wraps a storage or connectivity failure of operation op.
func Backend(op string, err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	return &Error{Kind: KindBackend, Message: "the database request failed", Op: op, Err: err}
}

// KindOf reports the kind of err, or KindUnknown for untyped errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool { return err != nil && KindOf(err) == kind }

// MessageOf returns the actor-facing message for err.
func MessageOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return err.Error()
}
