package codec

import (
	"fmt"
	"strings"
)

// ErrShapeMismatch indicates the JSON value had the wrong kind for the
// expected codec (object vs array vs string).
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrShapeMismatch struct {
	Codec string
	Want  string
	Got   string
	cause error
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Codec, e.Want, e.Got)
}

func (e *ErrShapeMismatch) Unwrap() error { return e.cause }

// ErrPatternMismatch indicates text that does not match the codec's fixed
// format.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrPatternMismatch struct {
	Codec string
	Input string
	cause error
}

func (e *ErrPatternMismatch) Error() string {
	return fmt.Sprintf("%s: %q does not match format", e.Codec, e.Input)
}

func (e *ErrPatternMismatch) Unwrap() error { return e.cause }

// ErrLengthMismatch indicates an array- or object-based codec received the
// wrong element count (paired indices, envelope key count).
type ErrLengthMismatch struct {
	Codec string
	Want  int
	Got   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("%s: expected %d element(s), got %d", e.Codec, e.Want, e.Got)
}

// ErrNoVariantMatched indicates one element of a heterogeneous list was
// decodable by none of the registered variants. Index is the position of
// the offending element; Variants lists the probes attempted, in order.
type ErrNoVariantMatched struct {
	Index    int
	Variants []string
}

func (e *ErrNoVariantMatched) Error() string {
	return fmt.Sprintf("element %d matched no variant (tried %s)", e.Index, strings.Join(e.Variants, ", "))
}
