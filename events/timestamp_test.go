package events

import (
	"testing"
	"time"
)

func TestParseTimestamp_Canonical(t *testing.T) {
	parsed, ok := ParseTimestamp("2024-05-01T17:30:00.000Z")
	if !ok {
		t.Fatal("Expected canonical timestamp to parse")
	}

	expected := time.Date(2024, 5, 1, 17, 30, 0, 0, time.UTC)
	if !parsed.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, parsed)
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	cases := []string{
		"",
		"2024-05-01 17:30",
		"01/05/2024 17:30:00",
		"2024-05-01T17:30:00Z", // missing millis
		"not a timestamp",
	}

	for _, input := range cases {
		if _, ok := ParseTimestamp(input); ok {
			t.Errorf("Expected %q to fail parsing", input)
		}
	}
}

func TestFormatTimestamp_RoundTrip(t *testing.T) {
	original := "2024-05-01T17:30:00.000Z"
	parsed, ok := ParseTimestamp(original)
	if !ok {
		t.Fatal("Expected timestamp to parse")
	}

	if got := FormatTimestamp(parsed); got != original {
		t.Errorf("Expected %q, got %q", original, got)
	}
}

func TestFormatTimestamp_NormalizesToUTC(t *testing.T) {
	zone := time.FixedZone("CET", 3600)
	local := time.Date(2024, 5, 1, 18, 30, 0, 0, zone)

	if got := FormatTimestamp(local); got != "2024-05-01T17:30:00.000Z" {
		t.Errorf("Expected 2024-05-01T17:30:00.000Z, got %q", got)
	}
}

func TestCanonicalFromLegacy(t *testing.T) {
	got, ok := CanonicalFromLegacy("01/05/2024", "18:30:00")
	if !ok {
		t.Fatal("Expected legacy timestamp to convert")
	}
	if got != "2024-05-01T18:30:00.000Z" {
		t.Errorf("Expected 2024-05-01T18:30:00.000Z, got %q", got)
	}
}

func TestCanonicalFromLegacy_Invalid(t *testing.T) {
	if _, ok := CanonicalFromLegacy("2024-05-01", "18:30"); ok {
		t.Error("Expected ISO-style date to fail legacy conversion")
	}
	if _, ok := CanonicalFromLegacy("", ""); ok {
		t.Error("Expected empty input to fail legacy conversion")
	}
}
