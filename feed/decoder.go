package feed

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/livetvpro/event-manager/events"
	"github.com/livetvpro/event-manager/metrics"
)

// Schema selects the wire shape of the external feed. It is resolved once
// from configuration at the parse boundary; nothing downstream inspects raw
// payloads again.
type Schema string

const (
	// SchemaFlatRows is the current feed shape: one row per event×link pair,
	// grouped by event id.
	SchemaFlatRows Schema = "flat_rows"

	// SchemaPreShaped is a plain JSON array of already-shaped events.
	SchemaPreShaped Schema = "pre_shaped"

	// SchemaLegacy is the oldest shape: per-event objects with separate
	// dd/MM/yyyy date and clock fields and integer DRM scheme codes.
	SchemaLegacy Schema = "legacy"
)

// ParseSchema maps a configuration string to a Schema, defaulting to
// flat rows for anything unrecognized.
func ParseSchema(s string) Schema {
	switch Schema(strings.TrimSpace(strings.ToLower(s))) {
	case SchemaPreShaped:
		return SchemaPreShaped
	case SchemaLegacy:
		return SchemaLegacy
	default:
		return SchemaFlatRows
	}
}

// Row is one event×link pair in the flat-row feed. Rows sharing an event_id
// describe the same event with different streams.
type Row struct {
	EventTitle   string `json:"event_title"`
	EventID      string `json:"event_id"`
	EventCat     string `json:"event_cat"`
	EventName    string `json:"event_name"`
	EventTime    string `json:"event_time"`
	EventEndTime string `json:"event_end_time"`
	ChannelTitle string `json:"channel_title"`
	StreamURL    string `json:"stream_url"`
	KeyID        string `json:"keyid"`
	Key          string `json:"key"`
	Headers      string `json:"headers"`
	Referer      string `json:"referer"`
	Origin       string `json:"origin"`
	TeamALogo    string `json:"team_a_logo"`
	TeamBLogo    string `json:"team_b_logo"`
}

// rowTimeLayout is the flat-row feed's timestamp format. The feed emits
// wall-clock times at a fixed offset from UTC, not in the system timezone.
const rowTimeLayout = "2006-01-02 15:04"

// defaultEventDuration is assumed when a row carries no usable end time.
const defaultEventDuration = 3 * time.Hour

// Decoder converts raw feed payloads into events for a single schema.
type Decoder struct {
	schema Schema
	zone   *time.Location
}

// NewDecoder creates a decoder for the given schema. utcOffset is the fixed
// offset of flat-row timestamps from UTC (the upstream provider currently
// publishes at UTC+1, but that is a contract detail that may change, so it is
// configuration rather than a constant).
func NewDecoder(schema Schema, utcOffset time.Duration) *Decoder {
	return &Decoder{
		schema: schema,
		zone:   time.FixedZone("feed", int(utcOffset/time.Second)),
	}
}

// Decode parses a raw feed payload into events. Malformed JSON yields an
// empty (non-nil) list; a nil result is reserved for "feed not configured"
// and never produced here.
func (d *Decoder) Decode(data []byte) []events.Event {
	switch d.schema {
	case SchemaPreShaped:
		var evts []events.Event
		if err := json.Unmarshal(data, &evts); err != nil {
			metrics.RecordFeedDecodeFailure()
			log.Printf("Failed to decode pre-shaped feed payload: %v", err)
			return []events.Event{}
		}
		if evts == nil {
			evts = []events.Event{}
		}
		return evts

	case SchemaLegacy:
		var legacy []legacyEvent
		if err := json.Unmarshal(data, &legacy); err != nil {
			metrics.RecordFeedDecodeFailure()
			log.Printf("Failed to decode legacy feed payload: %v", err)
			return []events.Event{}
		}
		return convertLegacyEvents(legacy)

	default:
		var rows []Row
		if err := json.Unmarshal(data, &rows); err != nil {
			metrics.RecordFeedDecodeFailure()
			log.Printf("Failed to decode flat-row feed payload: %v", err)
			return []events.Event{}
		}
		return d.GroupRows(rows)
	}
}

// GroupRows partitions rows by event id and builds one event per distinct id,
// preserving first-seen group order. Event-level fields come from the first
// row of each group; every row contributes one link, in row order.
func (d *Decoder) GroupRows(rows []Row) []events.Event {
	var order []string
	groups := make(map[string][]Row)
	for _, r := range rows {
		if _, ok := groups[r.EventID]; !ok {
			order = append(order, r.EventID)
		}
		groups[r.EventID] = append(groups[r.EventID], r)
	}

	result := make([]events.Event, 0, len(order))
	for _, id := range order {
		group := groups[id]
		first := group[0]

		links := make([]events.EventLink, 0, len(group))
		for _, r := range group {
			link := events.EventLink{
				Quality: r.ChannelTitle,
				URL:     r.StreamURL,
				Referer: r.Referer,
				Origin:  r.Origin,
			}
			if hasClearKey(r) {
				link.DRMScheme = "clearkey"
				link.DRMLicense = r.KeyID + ":" + r.Key
			}
			links = append(links, link)
		}

		// A failed start-time conversion leaves the field empty so the
		// event classifies as unknown instead of carrying a raw string
		// no consumer can parse.
		start, _ := d.toCanonical(first.EventTime, 0)

		end := ""
		if first.EventEndTime != "" {
			end, _ = d.toCanonical(first.EventEndTime, 0)
		}
		if end == "" {
			end, _ = d.toCanonical(first.EventTime, defaultEventDuration)
		}

		result = append(result, events.Event{
			ID:           first.EventID,
			Category:     first.EventCat,
			League:       first.EventCat,
			Team1Name:    first.EventTitle,
			Team1Logo:    first.TeamALogo,
			Team2Name:    first.EventTitle,
			Team2Logo:    first.TeamBLogo,
			StartTime:    start,
			EndTime:      end,
			Links:        links,
			Title:        first.EventName,
			CategoryID:   first.EventCat,
			CategoryName: first.EventCat,
		})
	}

	return result
}

// hasClearKey reports whether a row carries usable ClearKey credentials.
// Both halves must be present and neither may be the literal "0".
func hasClearKey(r Row) bool {
	keyID := strings.TrimSpace(r.KeyID)
	key := strings.TrimSpace(r.Key)
	return keyID != "" && keyID != "0" && key != "" && key != "0"
}

// toCanonical converts a flat-row timestamp (fixed-offset wall clock) to the
// canonical UTC wire format, optionally shifted by plus. Returns ("", false)
// when the input doesn't parse, never the raw string.
func (d *Decoder) toCanonical(s string, plus time.Duration) (string, bool) {
	t, err := time.ParseInLocation(rowTimeLayout, strings.TrimSpace(s), d.zone)
	if err != nil {
		return "", false
	}
	return events.FormatTimestamp(t.Add(plus)), true
}
