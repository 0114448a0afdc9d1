package codec

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeWrappers_JSONRoundTrip(t *testing.T) {
	type doc struct {
		CreatedAt CreatedAt `json:"created_at"`
		Editable  Timestamp `json:"editableUntil"`
		Updated   Date      `json:"updatedDate"`
		Seen      DateTime  `json:"impressionTime"`
	}

	src := `{"created_at":"Sat Aug 12 16:10:37 +0000 2023","editableUntil":"2023-08-12T17:10:37.000Z","updatedDate":"2021.10.20","impressionTime":"2021-10-20 17:00:52"}`

	var d doc
	require.NoError(t, json.Unmarshal([]byte(src), &d))

	assert.True(t, d.CreatedAt.Equal(time.Date(2023, 8, 12, 16, 10, 37, 0, time.UTC)))
	assert.True(t, d.Editable.Equal(time.Date(2023, 8, 12, 17, 10, 37, 0, time.UTC)))
	assert.True(t, d.Updated.Equal(time.Date(2021, 10, 20, 0, 0, 0, 0, time.UTC)))
	assert.True(t, d.Seen.Equal(time.Date(2021, 10, 20, 17, 0, 52, 0, time.UTC)))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestTimeWrappers_RejectNonString(t *testing.T) {
	var ts Timestamp
	err := json.Unmarshal([]byte(`1692115837`), &ts)
	require.Error(t, err)

	var sm *ErrShapeMismatch
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, "string", sm.Want)
	assert.Equal(t, "number", sm.Got)
}

func TestTimeWrappers_NoFormatCrossover(t *testing.T) {
	// Each wrapper owns exactly one layout; the others' text is rejected.
	var ca CreatedAt
	require.Error(t, json.Unmarshal([]byte(`"2023-08-12T17:10:37.000Z"`), &ca))

	var ts Timestamp
	require.Error(t, json.Unmarshal([]byte(`"Sat Aug 12 16:10:37 +0000 2023"`), &ts))
}

func TestTimeWrappers_String(t *testing.T) {
	instant := time.Date(2023, 8, 12, 16, 10, 37, 0, time.UTC)
	assert.Equal(t, "Sat Aug 12 16:10:37 +0000 2023", NewCreatedAt(instant).String())
	assert.Equal(t, "2023-08-12T16:10:37.000Z", NewTimestamp(instant).String())
	assert.Equal(t, "2023.08.12", NewDate(instant).String())
	assert.Equal(t, "2023-08-12 16:10:37", NewDateTime(instant).String())
}
