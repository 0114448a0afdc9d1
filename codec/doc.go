// Package codec implements the bidirectional conversions between the
// non-standard textual encodings found in X/Twitter data archives and
// canonical Go values.
//
// The archive format stores almost everything as strings: timestamps appear
// in four distinct fixed layouts, integers are written as decimal strings to
// protect them from number-based JSON parsers, and character offset ranges
// are two-element arrays of decimal strings. Every conversion here is a
// codec: a paired decode/encode where decoding then re-encoding a canonical
// input reproduces the original text byte for byte.
//
// # Scalar codecs
//
// Four FormatSpec values describe the fixed date/time layouts:
//
//   - FormatCreatedAt: "Sat Aug 12 16:10:37 +0000 2023"
//   - FormatTimestamp: "2023-08-12T16:10:37.000Z"
//   - FormatDate:      "2021.10.20"
//   - FormatDateTime:  "2021-10-20 17:00:52"
//
// The wrapper types CreatedAt, Timestamp, Date and DateTime bind one spec
// each to the standard JSON marshal machinery, so record structs declare
// the matching type per field. There is no format auto-detection: codec
// selection is the caller's job, made once per field.
//
// NumberString and Indices cover the decimal-string scalars and the paired
// offset arrays.
//
// # Envelopes and variant lists
//
// Every decodable unit in an archive is a single-key object whose key names
// the entity ({"tweet": {...}}, {"like": {...}}). UnmarshalEnvelope and
// MarshalEnvelope implement that convention strictly: exactly one key, and
// it must be the expected one.
//
// Heterogeneous event lists (group direct-message conversations) carry no
// discriminant field. DecodeVariants classifies each element by attempting
// an ordered list of VariantProbe decoders; the first probe that fully
// decodes the element wins, and one unmatched element fails the whole list.
//
// # Purity
//
// All operations are pure functions over in-memory bytes. They are safe for
// unlimited concurrent use; nothing here is mutated after package init.
package codec
