package events

import (
	"strings"
	"time"
)

// canonicalLayout is the wire format all event timestamps normalize to.
// The trailing Z is a literal; timestamps are always UTC.
const canonicalLayout = "2006-01-02T15:04:05.000Z"

// legacyLayout is the older feed format ("dd/MM/yyyy HH:mm:ss", UTC) that
// some sources still emit. It is only ever converted, never stored.
const legacyLayout = "02/01/2006 15:04:05"

// ParseTimestamp parses a canonical wire timestamp. The boolean is false for
// anything that is not exactly the canonical format, including the empty
// string; callers treat that as "no value", not as an error.
func ParseTimestamp(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(canonicalLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatTimestamp renders an instant in the canonical wire format.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(canonicalLayout)
}

// CanonicalFromLegacy converts a legacy date + clock pair to the canonical
// wire format. Returns ("", false) when the input doesn't parse.
func CanonicalFromLegacy(date, clock string) (string, bool) {
	raw := strings.TrimSpace(date) + " " + strings.TrimSpace(clock)
	t, err := time.ParseInLocation(legacyLayout, raw, time.UTC)
	if err != nil {
		return "", false
	}
	return FormatTimestamp(t), true
}
