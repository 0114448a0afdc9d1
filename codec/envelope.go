package codec

import (
	"encoding/json"
	"strconv"
)

// Every decodable unit in an archive is wrapped in a single-key "envelope"
// object whose key names the entity: {"tweet": {...}}, {"like": {...}}.
// The nesting is redundant but must be preserved exactly for re-encoding.

// UnmarshalEnvelope decodes {key: value}, delegating the value to T's own
// decoder. The object must contain exactly the expected key: a missing key,
// any extra key, or a non-object input fails.
func UnmarshalEnvelope[T any](data []byte, key string) (T, error) {
	var zero T

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return zero, &ErrShapeMismatch{Codec: "envelope " + key, Want: "object", Got: jsonKind(data), cause: err}
	}
	if len(obj) != 1 {
		return zero, &ErrLengthMismatch{Codec: "envelope " + key, Want: 1, Got: len(obj)}
	}
	raw, ok := obj[key]
	if !ok {
		return zero, &ErrShapeMismatch{Codec: "envelope " + key, Want: "key " + strconv.Quote(key), Got: "a different key"}
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, err
	}
	return v, nil
}

// MarshalEnvelope re-wraps the encoded inner value under key.
func MarshalEnvelope[T any](key string, v T) ([]byte, error) {
	inner, err := (JSON{}).Marshal(v)
	if err != nil {
		return nil, err
	}
	b := make([]byte, 0, len(key)+len(inner)+4)
	b = append(b, '{', '"')
	b = append(b, key...)
	b = append(b, '"', ':')
	b = append(b, inner...)
	return append(b, '}'), nil
}
