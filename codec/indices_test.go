package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndices_Decode(t *testing.T) {
	var ix Indices
	require.NoError(t, json.Unmarshal([]byte(`["1","2"]`), &ix))
	assert.Equal(t, Indices{1, 2}, ix)
	assert.Equal(t, uint64(1), ix.Start())
	assert.Equal(t, uint64(2), ix.End())
}

func TestIndices_LengthValidation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		got   int
	}{
		{"one element", `["1"]`, 1},
		{"three elements", `["1","2","3"]`, 3},
		{"empty", `[]`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ix Indices
			err := json.Unmarshal([]byte(tt.input), &ix)
			require.Error(t, err)

			var lm *ErrLengthMismatch
			require.ErrorAs(t, err, &lm)
			assert.Equal(t, 2, lm.Want)
			assert.Equal(t, tt.got, lm.Got)
		})
	}
}

func TestIndices_ElementValidation(t *testing.T) {
	var ix Indices
	err := json.Unmarshal([]byte(`["68","x"]`), &ix)
	require.Error(t, err)

	var pm *ErrPatternMismatch
	require.ErrorAs(t, err, &pm)
	assert.Equal(t, "x", pm.Input)
}

func TestIndices_RejectsNonArray(t *testing.T) {
	var ix Indices
	err := json.Unmarshal([]byte(`"68"`), &ix)
	require.Error(t, err)

	var sm *ErrShapeMismatch
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, "string", sm.Got)
}

func TestIndices_NoOrderingConstraint(t *testing.T) {
	// Only the shape is validated; start greater than end is accepted.
	var ix Indices
	require.NoError(t, json.Unmarshal([]byte(`["419","68"]`), &ix))
	assert.Equal(t, Indices{419, 68}, ix)
}

func TestIndices_Encode(t *testing.T) {
	out, err := json.Marshal(Indices{68, 419})
	require.NoError(t, err)
	assert.Equal(t, `["68","419"]`, string(out))
}
