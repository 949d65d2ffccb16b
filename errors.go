package vstol

import "fmt"

// Kind classifies the errors the engine returns to callers (spec.md §7).
// grailbio/base/errors.Kind is a closed enum meant for its own callers
// (NotExist, Invalid, Precondition, ...); vstol needs its own three kinds,
// so Error follows the same E(...)-constructor idiom instead of extending it.
type Kind int

const (
	// Other is the zero Kind; it should not appear on errors returned by this
	// package.
	Other Kind = iota
	// MalformedInput marks a record that fails a structural invariant: a
	// filter value whose JSON shape is incompatible with the attribute's
	// kind, an unknown operator or quantifier, or a variant-type tag outside
	// the closed set.
	MalformedInput
	// ArithmeticUndefined marks a median/mean computed over an empty set.
	ArithmeticUndefined
	// InternalInvariant marks a Variant whose member calls disagree on
	// chromosome-1 or chromosome-2.
	InternalInvariant
)

func (k Kind) String() string {
	switch k {
	case MalformedInput:
		return "MalformedInput"
	case ArithmeticUndefined:
		return "ArithmeticUndefined"
	case InternalInvariant:
		return "InternalInvariant"
	default:
		return "Other"
	}
}

// Error is the error type returned by every operation in this package.
type Error struct {
	Kind Kind
	// RecordID identifies the offending record (a VariantCall or Variant id),
	// enough for a caller to locate it. May be empty.
	RecordID string
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.RecordID != "" {
		return fmt.Sprintf("vstol: %v: %s (record %s)", e.Kind, e.Message, e.RecordID)
	}
	return fmt.Sprintf("vstol: %v: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// E constructs an *Error of the given kind. recordID may be empty when no
// single record is responsible. args are formatted with fmt.Sprint to build
// Message; an error value among args, if present, is captured as Err.
func E(kind Kind, recordID string, args ...interface{}) error {
	e := &Error{Kind: kind, RecordID: recordID}
	var msgParts []interface{}
	for _, a := range args {
		if err, ok := a.(error); ok && e.Err == nil {
			e.Err = err
			continue
		}
		msgParts = append(msgParts, a)
	}
	e.Message = fmt.Sprint(msgParts...)
	return e
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(kind Kind, err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
