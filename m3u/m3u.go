// Package m3u parses and encodes M3U playlists.
package m3u

import (
	"regexp"
	"strings"
)

var (
	tvgIDRegex      = regexp.MustCompile(`tvg-id="([^"]*)"`)
	tvgNameRegex    = regexp.MustCompile(`tvg-name="([^"]*)"`)
	tvgLogoRegex    = regexp.MustCompile(`tvg-logo="([^"]*)"`)
	groupTitleRegex = regexp.MustCompile(`group-title="([^"]*)"`)
)

// Entry is one channel entry in an M3U playlist.
type Entry struct {
	Name       string
	URL        string
	TVGID      string
	TVGName    string
	TVGLogo    string
	GroupTitle string
}

// Parse extracts channel entries from M3U content. An entry is an EXTINF
// line followed by a URL line; anything else is skipped.
func Parse(content []byte) []Entry {
	lines := strings.Split(string(content), "\n")
	var entries []Entry

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if !strings.HasPrefix(line, "#EXTINF:") {
			continue
		}

		// The URL is the next non-comment, non-blank line.
		url := ""
		for j := i + 1; j < len(lines); j++ {
			candidate := strings.TrimSpace(lines[j])
			if candidate == "" {
				continue
			}
			if strings.HasPrefix(candidate, "#") {
				break
			}
			url = candidate
			i = j
			break
		}
		if url == "" {
			continue
		}

		entries = append(entries, Entry{
			Name:       extractDisplayName(line),
			URL:        url,
			TVGID:      extractAttr(tvgIDRegex, line),
			TVGName:    extractAttr(tvgNameRegex, line),
			TVGLogo:    extractAttr(tvgLogoRegex, line),
			GroupTitle: extractAttr(groupTitleRegex, line),
		})
	}

	return entries
}

// extractDisplayName extracts the text after the last comma of an EXTINF
// line, which separates the attribute block from the display name.
func extractDisplayName(extinf string) string {
	commaIdx := strings.LastIndex(extinf, ",")
	if commaIdx == -1 {
		return ""
	}
	return strings.TrimSpace(extinf[commaIdx+1:])
}

func extractAttr(re *regexp.Regexp, extinf string) string {
	matches := re.FindStringSubmatch(extinf)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}
