package codec

import (
	"regexp"
	"time"
)

// FormatSpec is an immutable description of one fixed textual date/time
// layout. Each scalar time codec owns exactly one spec; specs are never
// mixed at decode time, and there is no auto-detection between them.
//
// Parsing is guarded by a regular expression before time.Parse runs, so
// inputs that time.Parse would quietly tolerate (an un-padded day, a
// missing leading zero) are rejected. Anything that decodes is therefore
// guaranteed to re-encode to the original text.
type FormatSpec struct {
	name   string
	layout string
	guard  *regexp.Regexp
}

// The four layouts found in archive exports. Fixed at init, never mutated.
var (
	// FormatCreatedAt is the legacy status timestamp layout, e.g.
	// "Sat Aug 12 16:10:37 +0000 2023". The embedded numeric offset is
	// interpreted and the instant normalized to UTC.
	FormatCreatedAt = FormatSpec{
		name:   "created-at",
		layout: "Mon Jan 02 15:04:05 -0700 2006",
		guard:  regexp.MustCompile(`^[A-Z][a-z]{2} [A-Z][a-z]{2} \d{2} \d{2}:\d{2}:\d{2} [+-]\d{4} \d{4}$`),
	}

	// FormatTimestamp is the millisecond-precision ISO 8601 layout, e.g.
	// "2023-08-12T16:10:37.000Z". Encoding always emits exactly three
	// fractional digits and a literal Z, even for whole seconds.
	FormatTimestamp = FormatSpec{
		name:   "timestamp",
		layout: "2006-01-02T15:04:05.000Z",
		guard:  regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`),
	}

	// FormatDate is the dotted calendar-date layout, e.g. "2021.10.20".
	FormatDate = FormatSpec{
		name:   "date",
		layout: "2006.01.02",
		guard:  regexp.MustCompile(`^\d{4}\.\d{2}\.\d{2}$`),
	}

	// FormatDateTime is the space-separated layout used by ad data, e.g.
	// "2021-10-20 17:00:52".
	FormatDateTime = FormatSpec{
		name:   "date-time",
		layout: "2006-01-02 15:04:05",
		guard:  regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`),
	}
)

// Name returns the codec name used in error messages.
func (f FormatSpec) Name() string { return f.name }

// Layout returns the Go reference-time layout string.
func (f FormatSpec) Layout() string { return f.layout }

// Parse decodes s against the spec's exact layout and normalizes the result
// to UTC. Inputs that do not match the layout character for character fail
// with ErrPatternMismatch; there is no fallback to another spec.
func (f FormatSpec) Parse(s string) (time.Time, error) {
	if !f.guard.MatchString(s) {
		return time.Time{}, &ErrPatternMismatch{Codec: f.name, Input: s}
	}
	t, err := time.Parse(f.layout, s)
	if err != nil {
		// Shape matched but a component is out of range (month 13, hour 25).
		return time.Time{}, &ErrPatternMismatch{Codec: f.name, Input: s, cause: err}
	}
	return t.UTC(), nil
}

// Format encodes t in the spec's exact textual layout, in UTC.
func (f FormatSpec) Format(t time.Time) string {
	return t.UTC().Format(f.layout)
}
