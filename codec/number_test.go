package codec

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberString(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{"0", 0},
		{"7", 7},
		{"68419", 68419},
		{"18446744073709551615", math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseNumberString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, FormatNumberString(got))
		})
	}
}

func TestParseNumberString_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"leading plus", "+7"},
		{"leading minus", "-7"},
		{"letters", "abc"},
		{"embedded space", "1 2"},
		{"separator", "1_000"},
		{"decimal point", "1.5"},
		{"overflow", "18446744073709551616"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNumberString(tt.input)
			require.Error(t, err)

			var pm *ErrPatternMismatch
			require.ErrorAs(t, err, &pm)
			assert.Equal(t, "number-string", pm.Codec)
		})
	}
}

func TestNumberString_LeadingZeroAsymmetry(t *testing.T) {
	// Decoding a non-canonical value succeeds, but re-encoding yields the
	// minimal form. This asymmetry is deliberate: exports never zero-pad,
	// so only malformed-by-hand input is affected.
	n, err := ParseNumberString("007")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), n)
	assert.Equal(t, "7", FormatNumberString(n))
}

func TestNumberString_JSON(t *testing.T) {
	var n NumberString
	require.NoError(t, json.Unmarshal([]byte(`"68419"`), &n))
	assert.Equal(t, NumberString(68419), n)

	out, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, `"68419"`, string(out))
}

func TestNumberString_RejectsJSONNumber(t *testing.T) {
	// A bare JSON number is the wrong kind: the archive stores these as
	// strings, and accepting both would mask writer changes.
	var n NumberString
	err := json.Unmarshal([]byte(`68419`), &n)
	require.Error(t, err)

	var sm *ErrShapeMismatch
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, "number-string", sm.Codec)
	assert.Equal(t, "number", sm.Got)
}
