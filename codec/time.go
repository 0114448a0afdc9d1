package codec

import (
	"encoding/json"
	"time"
)

// The wrapper types below bind one FormatSpec each to the standard JSON
// marshal machinery. Record structs pick the wrapper matching the field's
// known layout; the zero value of each wrapper is the zero time.
//
// All four normalize to UTC on decode and encode from UTC, so a decoded
// value re-encodes to the original text for any input the spec accepts in
// canonical form.

func unmarshalTime(data []byte, spec FormatSpec, dst *time.Time) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &ErrShapeMismatch{Codec: spec.name, Want: "string", Got: jsonKind(data), cause: err}
	}
	t, err := spec.Parse(s)
	if err != nil {
		return err
	}
	*dst = t
	return nil
}

// CreatedAt is an instant stored in the legacy status-timestamp layout
// ("Sat Aug 12 16:10:37 +0000 2023").
type CreatedAt struct {
	time.Time
}

// NewCreatedAt wraps t, normalized to UTC.
func NewCreatedAt(t time.Time) CreatedAt { return CreatedAt{Time: t.UTC()} }

// MarshalJSON implements json.Marshaler.
func (t CreatedAt) MarshalJSON() ([]byte, error) {
	return quote(FormatCreatedAt.Format(t.Time)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *CreatedAt) UnmarshalJSON(data []byte) error {
	return unmarshalTime(data, FormatCreatedAt, &t.Time)
}

func (t CreatedAt) String() string { return FormatCreatedAt.Format(t.Time) }

// Timestamp is an instant stored in the millisecond-precision ISO 8601
// layout ("2023-08-12T16:10:37.000Z").
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t, normalized to UTC.
func NewTimestamp(t time.Time) Timestamp { return Timestamp{Time: t.UTC()} }

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return quote(FormatTimestamp.Format(t.Time)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	return unmarshalTime(data, FormatTimestamp, &t.Time)
}

func (t Timestamp) String() string { return FormatTimestamp.Format(t.Time) }

// Date is a calendar date stored in the dotted layout ("2021.10.20").
// The decoded instant is midnight UTC on that date.
type Date struct {
	time.Time
}

// NewDate wraps t, normalized to UTC.
func NewDate(t time.Time) Date { return Date{Time: t.UTC()} }

// MarshalJSON implements json.Marshaler.
func (t Date) MarshalJSON() ([]byte, error) {
	return quote(FormatDate.Format(t.Time)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Date) UnmarshalJSON(data []byte) error {
	return unmarshalTime(data, FormatDate, &t.Time)
}

func (t Date) String() string { return FormatDate.Format(t.Time) }

// DateTime is an instant stored in the space-separated layout
// ("2021-10-20 17:00:52"). The source text carries no offset marker; it is
// taken as UTC.
type DateTime struct {
	time.Time
}

// NewDateTime wraps t, normalized to UTC.
func NewDateTime(t time.Time) DateTime { return DateTime{Time: t.UTC()} }

// MarshalJSON implements json.Marshaler.
func (t DateTime) MarshalJSON() ([]byte, error) {
	return quote(FormatDateTime.Format(t.Time)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *DateTime) UnmarshalJSON(data []byte) error {
	return unmarshalTime(data, FormatDateTime, &t.Time)
}

func (t DateTime) String() string { return FormatDateTime.Format(t.Time) }
