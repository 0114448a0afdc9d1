package codec

import (
	"encoding/json"
	"strconv"
)

// Indices is a character offset range into a text field, stored in JSON as
// an array of exactly two numeric strings ("indices": ["68", "419"]).
//
// Only the shape is validated: the codec does not require the first offset
// to be less than or equal to the second.
type Indices [2]uint64

// Start returns the first offset of the range.
func (ix Indices) Start() uint64 { return ix[0] }

// End returns the second offset of the range.
func (ix Indices) End() uint64 { return ix[1] }

// MarshalJSON implements json.Marshaler.
func (ix Indices) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 16)
	b = append(b, '[', '"')
	b = strconv.AppendUint(b, ix[0], 10)
	b = append(b, '"', ',', '"')
	b = strconv.AppendUint(b, ix[1], 10)
	return append(b, '"', ']'), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (ix *Indices) UnmarshalJSON(data []byte) error {
	var seq []string
	if err := json.Unmarshal(data, &seq); err != nil {
		return &ErrShapeMismatch{Codec: "indices", Want: "array of strings", Got: jsonKind(data), cause: err}
	}
	if len(seq) != 2 {
		return &ErrLengthMismatch{Codec: "indices", Want: 2, Got: len(seq)}
	}
	var out Indices
	for i, s := range seq {
		n, err := ParseNumberString(s)
		if err != nil {
			return err
		}
		out[i] = n
	}
	*ix = out
	return nil
}
