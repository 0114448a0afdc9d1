package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probeResult struct {
	variant string
	id      string
}

func testProbe(variant string) VariantProbe[probeResult] {
	return VariantProbe[probeResult]{
		Name: variant,
		Decode: func(data []byte) (probeResult, error) {
			type inner struct {
				ID string `json:"id"`
			}
			v, err := UnmarshalEnvelope[inner](data, variant)
			if err != nil {
				return probeResult{}, err
			}
			return probeResult{variant: variant, id: v.ID}, nil
		},
	}
}

func TestDecodeVariants_OrderPreserved(t *testing.T) {
	probes := []VariantProbe[probeResult]{testProbe("first"), testProbe("second")}

	src := `[{"second":{"id":"a"}},{"first":{"id":"b"}},{"second":{"id":"c"}}]`
	got, err := DecodeVariants([]byte(src), probes)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, probeResult{"second", "a"}, got[0])
	assert.Equal(t, probeResult{"first", "b"}, got[1])
	assert.Equal(t, probeResult{"second", "c"}, got[2])
}

func TestDecodeVariants_FirstMatchWins(t *testing.T) {
	// Both probes accept any single-key object under their own name; an
	// "anything goes" probe placed later must lose to the earlier one.
	loose := VariantProbe[probeResult]{
		Name: "loose",
		Decode: func(data []byte) (probeResult, error) {
			var v map[string]json.RawMessage
			if err := json.Unmarshal(data, &v); err != nil {
				return probeResult{}, err
			}
			return probeResult{variant: "loose"}, nil
		},
	}

	probes := []VariantProbe[probeResult]{testProbe("first"), loose}
	got, err := DecodeVariants([]byte(`[{"first":{"id":"x"}}]`), probes)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "first", got[0].variant)

	// The same element preceded by the loose probe classifies as loose.
	probes = []VariantProbe[probeResult]{loose, testProbe("first")}
	got, err = DecodeVariants([]byte(`[{"first":{"id":"x"}}]`), probes)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "loose", got[0].variant)
}

func TestDecodeVariants_WholeListFailure(t *testing.T) {
	probes := []VariantProbe[probeResult]{testProbe("first"), testProbe("second")}

	src := `[{"first":{"id":"a"}},{"unknown":{"id":"b"}},{"second":{"id":"c"}}]`
	got, err := DecodeVariants([]byte(src), probes)
	require.Error(t, err)
	assert.Nil(t, got, "no partial results on failure")

	var nv *ErrNoVariantMatched
	require.ErrorAs(t, err, &nv)
	assert.Equal(t, 1, nv.Index)
	assert.Equal(t, []string{"first", "second"}, nv.Variants)
}

func TestDecodeVariants_NonArray(t *testing.T) {
	probes := []VariantProbe[probeResult]{testProbe("first")}

	_, err := DecodeVariants([]byte(`{"first":{"id":"a"}}`), probes)
	require.Error(t, err)

	var sm *ErrShapeMismatch
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, "array", sm.Want)
	assert.Equal(t, "object", sm.Got)
}

func TestDecodeVariants_EmptyList(t *testing.T) {
	probes := []VariantProbe[probeResult]{testProbe("first")}

	got, err := DecodeVariants([]byte(`[]`), probes)
	require.NoError(t, err)
	assert.Empty(t, got)
}
