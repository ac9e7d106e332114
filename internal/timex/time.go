package timex

import (
	"encoding/json"
	"time"
)

// timeLayouts are tried in order when decoding. The backend emits naive
// ISO-8601 timestamps without a zone offset (with or without fractional
// seconds), which the stock time.Time unmarshaller rejects.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Time wraps time.Time so JSON payloads can carry either RFC3339
// timestamps or offset-less ISO-8601 ones. Offset-less values are read
// as UTC.
type Time struct {
	time.Time
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339Nano))
}

func (t *Time) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	var lastErr error
	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return lastErr
}
