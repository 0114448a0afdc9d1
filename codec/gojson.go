package codec

import gojson "github.com/goccy/go-json"

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
//
// It honors the same json.Marshaler/json.Unmarshaler interfaces as the
// standard library, so the scalar codec types behave identically under
// either implementation.
type GoJSON struct{}

// Marshal encodes the value to JSON without HTML escaping.
func (GoJSON) Marshal(v any) ([]byte, error) {
	return gojson.MarshalWithOption(v, gojson.DisableHTMLEscape())
}

// Unmarshal decodes the JSON data into v.
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

// Name returns the unique name of the codec ("go-json").
func (GoJSON) Name() string { return "go-json" }

// Default is the codec used by the archive reader when none is configured.
var Default Codec = GoJSON{}
