package model

import (
	"fmt"
	"time"
)

// layouts accepted for backend timestamps.  FastAPI serialises naive
// datetimes without a zone and sometimes with fractional seconds.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// ParseTime parses a backend timestamp.  Naive values are read as local
// time, which is how the browser-based client displayed them.
func ParseTime(s string) (time.Time, error) {
	for _, l := range layouts {
		if t, err := time.ParseInLocation(l, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q", s)
}

// FormatShowTime renders a timestamp as "MM/DD, HH:MM" in local time.
// Unparseable input is returned unchanged.
func FormatShowTime(s string) string {
	t, err := ParseTime(s)
	if err != nil {
		return s
	}
	t = t.Local()
	return fmt.Sprintf("%02d/%02d, %02d:%02d", int(t.Month()), t.Day(), t.Hour(), t.Minute())
}
