// Package errs defines the stable error taxonomy shared by every
// engine package: buffer, search and history operations all fail (when
// they fail) with one of these kinds, never with an ad-hoc string.
package errs

import "fmt"

// Kind is one of the stable error categories a buffer operation can
// fail with.
type Kind int

const (
	// OutOfRange: an offset or (line, column) falls outside the
	// current document bounds.
	OutOfRange Kind = iota
	// InvalidArgument: a negative line/column, or a nil/empty value
	// where one is forbidden.
	InvalidArgument
	// InvalidQuery: a search pattern failed to compile.
	InvalidQuery
	// Resource: an allocation failure, or a size limit was exceeded.
	Resource
	// IllegalState: e.g. end_group called without a matching
	// begin_group.
	IllegalState
)

func (k Kind) String() string {
	switch k {
	case OutOfRange:
		return "out of range"
	case InvalidArgument:
		return "invalid argument"
	case InvalidQuery:
		return "invalid query"
	case Resource:
		return "resource"
	case IllegalState:
		return "illegal state"
	default:
		return "unknown"
	}
}

// Error is the concrete error type every engine package returns.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, if any (e.g. a regexp compile error)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so
// callers can do errors.Is(err, errs.New(errs.OutOfRange, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// New builds an *Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap builds an *Error of the given kind, wrapping cause.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}
