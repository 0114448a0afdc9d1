package codec

import (
	"encoding/json"
)

// Heterogeneous event lists (group direct-message conversations) carry no
// discriminant field; elements are classified purely by which fields are
// present. Classification is expressed as an ordered list of probes, each a
// named decoder for one variant shape. The order is part of the contract:
// it is the only thing preventing ambiguous classification, so it is fixed
// at definition time and exercised directly by tests.

// VariantProbe is one candidate shape for an element of a heterogeneous
// list. Decode must fully decode the element or return an error; a partial
// match is a non-match.
type VariantProbe[T any] struct {
	Name   string
	Decode func(data []byte) (T, error)
}

// DecodeVariants decodes a JSON array whose elements may each be any of
// the probed variants. For every element the probes are attempted in order
// and the first that decodes wins; later probes are not consulted. An
// element no probe accepts fails the entire list with ErrNoVariantMatched —
// for an archival tool, silently dropping unrecognized events would be
// worse than failing loudly.
//
// Output order is input order; there is no sorting or deduplication.
func DecodeVariants[T any](data []byte, probes []VariantProbe[T]) ([]T, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, &ErrShapeMismatch{Codec: "variant list", Want: "array", Got: jsonKind(data), cause: err}
	}

	out := make([]T, 0, len(elems))
	for i, raw := range elems {
		matched := false
		for _, p := range probes {
			v, err := p.Decode(raw)
			if err != nil {
				continue
			}
			out = append(out, v)
			matched = true
			break
		}
		if !matched {
			names := make([]string, len(probes))
			for j, p := range probes {
				names[j] = p.Name
			}
			return nil, &ErrNoVariantMatched{Index: i, Variants: names}
		}
	}
	return out, nil
}
