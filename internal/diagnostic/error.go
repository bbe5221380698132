package diagnostic

import (
	"errors"
	"fmt"
	"strconv"
)

// NoIndex marks an error that is not tied to a particular entry.
const NoIndex = -1

// Error is a single failure of a known Kind.
type Error struct {
	// Kind is the failure class.
	Kind Kind
	// Index is the position of the offending entry, or NoIndex.
	Index int
	// Detail says what exactly is wrong, e.g. "must be string".
	Detail string
}

// New creates an Error for the entry at index.
func New(kind Kind, index int, detail string) *Error {
	return &Error{Kind: kind, Index: index, Detail: detail}
}

// Newf creates an Error with a formatted detail.
func Newf(kind Kind, index int, format string, args ...any) *Error {
	return New(kind, index, fmt.Sprintf(format, args...))
}

// Error renders "<title> (<index>): <detail>".
func (e *Error) Error() string {
	msg := e.Kind.Title()
	if e.Index != NoIndex {
		msg += " (" + strconv.Itoa(e.Index) + ")"
	}

	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

// Is matches a Kind or another *Error of the same Kind.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *Error:
		return e.Kind == t.Kind
	default:
		return false
	}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}

	return 0, false
}

// WithIndex attaches index to an *Error that was raised without one.
// Other errors are returned unchanged.
func WithIndex(err error, index int) error {
	var de *Error
	if !errors.As(err, &de) || de.Index != NoIndex {
		return err
	}

	return &Error{Kind: de.Kind, Index: index, Detail: de.Detail}
}
