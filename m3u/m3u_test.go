package m3u

import (
	"bytes"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	content := `#EXTM3U
#EXTINF:-1 tvg-id="one.tv" tvg-name="One TV" tvg-logo="http://example.com/one.png" group-title="News",Channel One
http://example.com/one.m3u8
#EXTINF:-1,Channel Two
http://example.com/two.m3u8
`

	entries := Parse([]byte(content))

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Name != "Channel One" {
		t.Errorf("Expected name Channel One, got %q", first.Name)
	}
	if first.URL != "http://example.com/one.m3u8" {
		t.Errorf("Expected URL, got %q", first.URL)
	}
	if first.TVGID != "one.tv" {
		t.Errorf("Expected tvg-id one.tv, got %q", first.TVGID)
	}
	if first.TVGName != "One TV" {
		t.Errorf("Expected tvg-name One TV, got %q", first.TVGName)
	}
	if first.TVGLogo != "http://example.com/one.png" {
		t.Errorf("Expected tvg-logo, got %q", first.TVGLogo)
	}
	if first.GroupTitle != "News" {
		t.Errorf("Expected group-title News, got %q", first.GroupTitle)
	}

	second := entries[1]
	if second.Name != "Channel Two" {
		t.Errorf("Expected name Channel Two, got %q", second.Name)
	}
	if second.TVGID != "" {
		t.Errorf("Expected no tvg-id, got %q", second.TVGID)
	}
}

func TestParse_SkipsEntriesWithoutURL(t *testing.T) {
	content := `#EXTM3U
#EXTINF:-1,Orphaned Entry
#EXTINF:-1,Valid Entry
http://example.com/valid.m3u8
`

	entries := Parse([]byte(content))

	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Name != "Valid Entry" {
		t.Errorf("Expected Valid Entry, got %q", entries[0].Name)
	}
}

func TestParse_BlankLinesBetweenEntryAndURL(t *testing.T) {
	content := "#EXTINF:-1,Spaced\n\nhttp://example.com/spaced.m3u8\n"

	entries := Parse([]byte(content))

	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].URL != "http://example.com/spaced.m3u8" {
		t.Errorf("Expected URL after blank line, got %q", entries[0].URL)
	}
}

func TestParse_Empty(t *testing.T) {
	if entries := Parse([]byte("")); len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
	if entries := Parse([]byte("just some text\nwithout extinf\n")); len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestEncode(t *testing.T) {
	encoder := NewEncoder()
	encoder.Add(Entry{
		Name:       "Channel One",
		URL:        "http://example.com/one.m3u8",
		TVGID:      "one.tv",
		TVGLogo:    "http://example.com/one.png",
		GroupTitle: "News",
	})
	encoder.Add(Entry{
		Name: "Channel Two",
		URL:  "http://example.com/two.m3u8",
	})

	var buf bytes.Buffer
	if err := encoder.Encode(&buf); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	output := buf.String()

	if !strings.HasPrefix(output, "#EXTM3U\n") {
		t.Errorf("Expected #EXTM3U header, got %q", output)
	}
	if !strings.Contains(output, `#EXTINF:-1 tvg-id="one.tv" tvg-logo="http://example.com/one.png" group-title="News",Channel One`) {
		t.Errorf("Expected full EXTINF line, got %q", output)
	}
	if !strings.Contains(output, "#EXTINF:-1,Channel Two\nhttp://example.com/two.m3u8\n") {
		t.Errorf("Expected bare EXTINF line, got %q", output)
	}
}

func TestParseEncodeRoundTrip(t *testing.T) {
	original := []Entry{
		{Name: "A", URL: "http://example.com/a.m3u8", TVGID: "a.tv", GroupTitle: "Sports"},
		{Name: "B", URL: "http://example.com/b.m3u8"},
	}

	encoder := NewEncoder()
	for _, entry := range original {
		encoder.Add(entry)
	}

	var buf bytes.Buffer
	if err := encoder.Encode(&buf); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	parsed := Parse(buf.Bytes())
	if len(parsed) != len(original) {
		t.Fatalf("Expected %d entries, got %d", len(original), len(parsed))
	}
	for i, want := range original {
		if parsed[i] != want {
			t.Errorf("Entry %d: expected %+v, got %+v", i, want, parsed[i])
		}
	}
}
