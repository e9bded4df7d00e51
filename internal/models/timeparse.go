package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// RecordTime handles the timestamp formats clients have historically sent:
// "2006-01-02 15:04:05" (desktop/mobile sync), date-only "2006-01-02"
// (oldest mobile rows), and RFC 3339.
type RecordTime struct {
	time.Time
}

const (
	RecordTimeLayout = "2006-01-02 15:04:05"
	DateOnlyLayout   = "2006-01-02"
)

func (t *RecordTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return t.Parse(s)
}

func (t RecordTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(RecordTimeLayout))
}

// Parse parses a record timestamp, trying full datetime first, then
// date-only, then RFC 3339.
func (t *RecordTime) Parse(s string) error {
	parsed, err := time.Parse(RecordTimeLayout, s)
	if err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err2 := time.Parse(DateOnlyLayout, s)
	if err2 == nil {
		t.Time = parsed
		return nil
	}
	parsed, err3 := time.Parse(time.RFC3339, s)
	if err3 == nil {
		t.Time = parsed
		return nil
	}
	return fmt.Errorf("cannot parse record time %q: %w", s, err)
}

// ParseRecordTime parses a record timestamp string into a time.Time.
func ParseRecordTime(s string) (time.Time, error) {
	var t RecordTime
	if err := t.Parse(s); err != nil {
		return time.Time{}, err
	}
	return t.Time, nil
}

// DayOf truncates a timestamp to its calendar day string.
func DayOf(t time.Time) string {
	return t.Format(DateOnlyLayout)
}
