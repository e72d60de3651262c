package carton

import "fmt"

// ErrorKind classifies carton errors.
type ErrorKind int

const (
	// KindTypeMismatch: the requested concrete type is incompatible
	// with the recorded type name.
	KindTypeMismatch ErrorKind = iota + 1
	// KindCategoryMismatch: an accessor was called for a shape that
	// disagrees with the value's category.
	KindCategoryMismatch
	// KindDecode: a lazy segment's bytes failed to decode as its own
	// recorded type.
	KindDecode
	// KindUnknownType: no codec is registered for a type name.
	KindUnknownType
	// KindSealedRegistry: registration was attempted after Seal.
	KindSealedRegistry
	// KindMalformedWire: the wire header or a length prefix does not
	// fit the input.
	KindMalformedWire
	// KindInternal: an invariant the package maintains itself was
	// violated. These indicate bugs, not bad input.
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindTypeMismatch:
		return "type mismatch"
	case KindCategoryMismatch:
		return "category mismatch"
	case KindDecode:
		return "decode error"
	case KindUnknownType:
		return "unknown type"
	case KindSealedRegistry:
		return "sealed registry"
	case KindMalformedWire:
		return "malformed wire bytes"
	case KindInternal:
		return "internal error"
	default:
		return "unknown kind"
	}
}

// Error carries the kind plus the expected and actual type names where
// they apply.
type Error struct {
	Kind     ErrorKind
	Expected string
	Actual   string
	Detail   string
	Err      error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := "carton: " + e.Kind.String()
	if e.Expected != "" || e.Actual != "" {
		msg += fmt.Sprintf(": expected %s, got %s", e.Expected, e.Actual)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func typeMismatch(expected, actual string) *Error {
	return &Error{Kind: KindTypeMismatch, Expected: expected, Actual: actual}
}

func categoryMismatch(want, got ValueCategory) *Error {
	return &Error{Kind: KindCategoryMismatch, Expected: want.String(), Actual: got.String()}
}

func decodeErr(name string, err error) *Error {
	return &Error{Kind: KindDecode, Actual: name, Err: err}
}

func unknownType(name string) *Error {
	return &Error{Kind: KindUnknownType, Actual: name}
}

func malformed(detail string) *Error {
	return &Error{Kind: KindMalformedWire, Detail: detail}
}

func internalErr(detail string) *Error {
	return &Error{Kind: KindInternal, Detail: detail}
}
