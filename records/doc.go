// Package records defines the typed shapes of the per-file record types in
// an X/Twitter personal data archive.
//
// Each archive member ("data/tweets.js", "data/like.js", ...) holds a JSON
// array of envelope-wrapped records. The types here are mechanical
// applications of two patterns from the codec package: a strict single-key
// envelope per record, and plain field mapping with the scalar codec
// wrapper types (codec.CreatedAt, codec.Timestamp, codec.NumberString,
// codec.Indices) on the fields that use the archive's textual encodings.
//
// Field declaration order matches the order the export writer emits, so
// re-encoding a decoded record reproduces the original key sequence.
//
// Group direct-message conversations are the one place the format is not
// mechanical: their message lists are heterogeneous and untagged. See
// Event, GroupMessages and GroupHeaderMessages.
package records
