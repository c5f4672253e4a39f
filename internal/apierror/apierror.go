// Package apierror provides the typed error taxonomy for the inventory core
// and the standardized error envelopes returned to API clients.
// All errors surfaced to clients go through this package so that internal
// details (stack traces, DB errors, driver messages) never leak.
package apierror

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure. Handlers map kinds to HTTP statuses;
// services use them to decide what is recoverable.
type Kind int

const (
	// Internal is the fallback for unclassified failures.
	Internal Kind = iota
	// NotFound — a referenced item, kit, call or usage record does not exist.
	NotFound
	// InsufficientStock — requested consumption exceeds the available quantity.
	InsufficientStock
	// InvalidArgument — non-positive quantity/amount or malformed identifier.
	InvalidArgument
	// Duplicate — an insert hit an already-present unique key. During seeding
	// this is benign: logged and skipped, never surfaced to the caller.
	Duplicate
	// DependencyFailure — the persistent store or another collaborator is
	// unreachable. Not retried by the core; the caller owns retry policy.
	DependencyFailure
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case InsufficientStock:
		return "insufficient_stock"
	case InvalidArgument:
		return "invalid_argument"
	case Duplicate:
		return "duplicate"
	case DependencyFailure:
		return "dependency_failure"
	default:
		return "internal"
	}
}

// Error is a classified domain error. The message is always safe to show to
// a caller and names the offending entity.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, never serialized
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Err }

// E builds a classified error with a formatted, caller-facing message.
func E(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error while keeping it on the chain for logs.
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the Kind from an error chain; unclassified errors are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool { return err != nil && KindOf(err) == kind }

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// FromError builds the client envelope from a classified error.
func FromError(err error) *APIError {
	var e *Error
	if errors.As(err, &e) {
		return &APIError{Detail: e.Msg, Code: e.Kind.String()}
	}
	return &APIError{Detail: "internal server error", Code: Internal.String()}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation failed", Fields: fields}
}
