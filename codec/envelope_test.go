package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envInner struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func TestEnvelope_RoundTrip(t *testing.T) {
	src := []byte(`{"note":{"id":"1","text":"hello"}}`)

	v, err := UnmarshalEnvelope[envInner](src, "note")
	require.NoError(t, err)
	assert.Equal(t, envInner{ID: "1", Text: "hello"}, v)

	out, err := MarshalEnvelope("note", v)
	require.NoError(t, err)
	assert.Equal(t, string(src), string(out))
}

func TestEnvelope_ExtraKey(t *testing.T) {
	_, err := UnmarshalEnvelope[int]([]byte(`{"a":1,"b":2}`), "a")
	require.Error(t, err)

	var lm *ErrLengthMismatch
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, "envelope a", lm.Codec)
	assert.Equal(t, 1, lm.Want)
	assert.Equal(t, 2, lm.Got)
}

func TestEnvelope_WrongKey(t *testing.T) {
	_, err := UnmarshalEnvelope[int]([]byte(`{"b":1}`), "a")
	require.Error(t, err)

	var sm *ErrShapeMismatch
	require.ErrorAs(t, err, &sm)
	assert.Contains(t, sm.Error(), `"a"`)
}

func TestEnvelope_MissingKey(t *testing.T) {
	_, err := UnmarshalEnvelope[int]([]byte(`{}`), "a")
	require.Error(t, err)

	var lm *ErrLengthMismatch
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, 0, lm.Got)
}

func TestEnvelope_NonObject(t *testing.T) {
	for _, src := range []string{`[1,2]`, `"a"`, `7`} {
		_, err := UnmarshalEnvelope[int]([]byte(src), "a")
		require.Error(t, err, src)

		var sm *ErrShapeMismatch
		require.ErrorAs(t, err, &sm)
		assert.Equal(t, "object", sm.Want)
	}
}

func TestEnvelope_InnerErrorPropagates(t *testing.T) {
	type inner struct {
		Count NumberString `json:"count"`
	}
	_, err := UnmarshalEnvelope[inner]([]byte(`{"n":{"count":"x"}}`), "n")
	require.Error(t, err)

	var pm *ErrPatternMismatch
	require.ErrorAs(t, err, &pm)
	assert.Equal(t, "x", pm.Input)
}
