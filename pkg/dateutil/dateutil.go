// Package dateutil provides the timestamp helpers shared by the
// settings store and the reference-data client.
package dateutil

import "time"

// StampLayout is the wire format for savedAt / lastUpdated fields.
const StampLayout = time.RFC3339

// Stamp formats a time as a UTC RFC3339 string.
func Stamp(t time.Time) string {
	return t.UTC().Format(StampLayout)
}

// ParseStamp parses an RFC3339 timestamp, tolerating a plain date.
// Returns the zero time when nothing parses; callers treat that as
// "unknown" rather than an error.
func ParseStamp(s string) time.Time {
	if t, err := time.Parse(StampLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
