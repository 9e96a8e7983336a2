package osuapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// TimeLayout is the timestamp format used by the v1 API. Timestamps are UTC.
const TimeLayout = "2006-01-02 15:04:05"

// Time is a v1 API timestamp.
type Time struct {
	time.Time
}

// UnmarshalJSON parses "2013-06-22 01:49:51".
func (t *Time) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("time: %w", err)
	}
	v, err := time.ParseInLocation(TimeLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("time: %w", err)
	}
	t.Time = v
	return nil
}

// MarshalJSON writes t back in TimeLayout.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(TimeLayout))
}

// Bool is a "0"/"1" flag.
type Bool bool

// UnmarshalJSON accepts "0", "1", 0, 1, true and false.
func (v *Bool) UnmarshalJSON(b []byte) error {
	switch string(bytes.Trim(b, `"`)) {
	case "1", "true":
		*v = true
	case "0", "false", "null":
		*v = false
	default:
		return fmt.Errorf("bool: invalid value %s", b)
	}
	return nil
}
