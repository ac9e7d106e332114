package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"offset-less", `"2026-08-30T12:00:00"`, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)},
		{"offset-less with micros", `"2026-08-30T12:00:00.123456"`, time.Date(2026, 8, 30, 12, 0, 0, 123456000, time.UTC)},
		{"space separator", `"2026-08-30 12:00:00"`, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)},
		{"rfc3339", `"2026-08-30T12:00:00Z"`, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)},
		{"rfc3339 with offset", `"2026-08-30T12:00:00-03:00"`, time.Date(2026, 8, 30, 12, 0, 0, 0, time.FixedZone("", -3*60*60))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Time
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got.Time, tt.want)
		})
	}
}

func TestTime_UnmarshalJSON_Invalid(t *testing.T) {
	var got Time
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &got))
	assert.Error(t, json.Unmarshal([]byte(`42`), &got))
}

func TestTime_MarshalJSON(t *testing.T) {
	v := Time{Time: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)}
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-30T12:00:00Z"`, string(raw))
}
