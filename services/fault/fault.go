// Package fault defines the error taxonomy shared by all services. Every
// error crossing a service boundary carries a stable kind so handlers can map
// it to an HTTP status without string matching.
package fault

import (
	"errors"
	"fmt"
)

// Kind is a stable error category.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindTransport  Kind = "transport"
)

// Error is a service error with a stable kind and a human-readable message.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Validation reports a missing or out-of-range field.
func Validation(field, message string) error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// Conflict reports a uniqueness violation.
func Conflict(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

// NotFound reports an unknown entity id.
func NotFound(resource, id string) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %s not found", resource, id)}
}

// Transport wraps a store or network failure. Retryable by user action only;
// nothing in this service retries automatically.
func Transport(err error) error {
	return &Error{Kind: KindTransport, Message: err.Error(), cause: err}
}

// KindOf extracts the kind of err, or KindTransport for untyped errors so an
// unexpected failure never masquerades as a client mistake.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindTransport
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
