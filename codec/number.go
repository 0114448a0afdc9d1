package codec

import (
	"encoding/json"
	"strconv"
)

// NumberString is an unsigned integer stored in JSON as a string of decimal
// digits ("favorite_count": "68419"). The archive writes IDs and counters
// this way so number-based JSON parsers cannot lose precision.
//
// Encoding always emits the minimal decimal form. A non-canonical source
// value ("007") therefore decodes to 7 and re-encodes as "7" — this
// asymmetry is deliberate and covered by tests; archive exports do not
// zero-pad numeric fields.
type NumberString uint64

// ParseNumberString parses s as an unsigned decimal integer. Empty input,
// signs, separators, non-digit characters, and values beyond 64 bits all
// fail with ErrPatternMismatch.
func ParseNumberString(s string) (uint64, error) {
	if s == "" {
		return 0, &ErrPatternMismatch{Codec: "number-string", Input: s}
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, &ErrPatternMismatch{Codec: "number-string", Input: s}
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &ErrPatternMismatch{Codec: "number-string", Input: s, cause: err}
	}
	return n, nil
}

// FormatNumberString returns the minimal decimal representation of n.
func FormatNumberString(n uint64) string { return strconv.FormatUint(n, 10) }

// MarshalJSON implements json.Marshaler.
func (n NumberString) MarshalJSON() ([]byte, error) {
	return quote(strconv.FormatUint(uint64(n), 10)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NumberString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &ErrShapeMismatch{Codec: "number-string", Want: "string", Got: jsonKind(data), cause: err}
	}
	v, err := ParseNumberString(s)
	if err != nil {
		return err
	}
	*n = NumberString(v)
	return nil
}

func (n NumberString) String() string { return strconv.FormatUint(uint64(n), 10) }
