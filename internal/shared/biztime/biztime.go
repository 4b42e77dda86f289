// Package biztime centralizes time handling conventions. All storage and
// transport use UTC; implicit local timezone is prohibited.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatRFC3339 formats t in UTC using RFC 3339, the wire format for all
// timestamps in API responses.
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
