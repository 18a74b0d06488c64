package events

import "strings"

// Merge combines events from the native store with events from the external
// feed. A nil external slice means the feed is not configured and the native
// list is returned verbatim. Otherwise external events come first and win on
// id collision; native events are appended only when their id is not already
// taken. Merging never depends on whether the native store finished loading;
// callers pass whatever native list they have (possibly empty).
func Merge(native, external []Event) []Event {
	if external == nil {
		return native
	}

	seen := make(map[string]struct{}, len(external))
	for _, e := range external {
		seen[e.ID] = struct{}{}
	}

	merged := make([]Event, 0, len(external)+len(native))
	merged = append(merged, external...)
	for _, e := range native {
		if _, dup := seen[e.ID]; !dup {
			merged = append(merged, e)
		}
	}

	return merged
}

// DeriveCategories returns the native categories followed by one synthesized
// category per distinct non-blank category name seen in the external events
// that isn't already present (by id or display name) among the native ones.
// Synthesized categories use the raw name as id, a lowercase/underscore slug,
// and no logo. First-seen order is preserved within each group.
func DeriveCategories(native []EventCategory, external []Event) []EventCategory {
	result := append([]EventCategory(nil), native...)

	known := make(map[string]struct{}, len(native)*2)
	for _, c := range native {
		known[c.ID] = struct{}{}
		if name := strings.TrimSpace(c.Name); name != "" {
			known[name] = struct{}{}
		}
	}

	for _, e := range external {
		name := strings.TrimSpace(e.Category)
		if name == "" {
			continue
		}
		if _, ok := known[name]; ok {
			continue
		}
		known[name] = struct{}{}
		result = append(result, EventCategory{
			ID:   name,
			Name: name,
			Slug: Slugify(name),
		})
	}

	return result
}

// Slugify derives a category slug from its display name.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
