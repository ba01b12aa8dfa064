package garth

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"date only", `"2025-10-27"`, time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)},
		{"timestamp without zone", `"2025-10-27T16:00:00"`, time.Date(2025, 10, 27, 16, 0, 0, 0, time.UTC)},
		{"fractional GMT timestamp", `"2025-10-27T16:00:00.0"`, time.Date(2025, 10, 27, 16, 0, 0, 0, time.UTC)},
		{"rfc3339", `"2025-10-27T16:00:00Z"`, time.Date(2025, 10, 27, 16, 0, 0, 0, time.UTC)},
		{"space separated", `"2025-10-27 16:00:00"`, time.Date(2025, 10, 27, 16, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.True(t, tt.want.Equal(d.Time), "got %v, want %v", d.Time, tt.want)
		})
	}
}

func TestDate_UnmarshalJSON_NullAndEmpty(t *testing.T) {
	for _, input := range []string{`null`, `""`} {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(input), &d))
		assert.True(t, d.IsZero())
	}
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"27/10/2025"`), &d))
}

func TestDate_MarshalJSON(t *testing.T) {
	dateOnly := Date{Time: time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)}
	out, err := json.Marshal(dateOnly)
	require.NoError(t, err)
	assert.Equal(t, `"2025-10-27"`, string(out))

	withClock := Date{Time: time.Date(2025, 10, 27, 16, 30, 0, 0, time.UTC)}
	out, err = json.Marshal(withClock)
	require.NoError(t, err)
	assert.Equal(t, `"2025-10-27T16:30:00"`, string(out))

	var zero Date
	out, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}
