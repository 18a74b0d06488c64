package m3u

import (
	"fmt"
	"io"
)

// Encoder writes channel entries back out as an M3U playlist.
type Encoder struct {
	entries []Entry
}

// NewEncoder creates an empty encoder.
func NewEncoder() *Encoder {
	return &Encoder{entries: []Entry{}}
}

// Add appends an entry to the playlist.
func (e *Encoder) Add(entry Entry) {
	e.entries = append(e.entries, entry)
}

// Encode writes the playlist to w.
func (e *Encoder) Encode(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "#EXTM3U\n"); err != nil {
		return err
	}

	for _, entry := range e.entries {
		if _, err := fmt.Fprintf(w, "#EXTINF:-1"); err != nil {
			return err
		}

		if entry.TVGID != "" {
			if _, err := fmt.Fprintf(w, " tvg-id=\"%s\"", entry.TVGID); err != nil {
				return err
			}
		}
		if entry.TVGName != "" {
			if _, err := fmt.Fprintf(w, " tvg-name=\"%s\"", entry.TVGName); err != nil {
				return err
			}
		}
		if entry.TVGLogo != "" {
			if _, err := fmt.Fprintf(w, " tvg-logo=\"%s\"", entry.TVGLogo); err != nil {
				return err
			}
		}
		if entry.GroupTitle != "" {
			if _, err := fmt.Fprintf(w, " group-title=\"%s\"", entry.GroupTitle); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, ",%s\n%s\n", entry.Name, entry.URL); err != nil {
			return err
		}
	}

	return nil
}
