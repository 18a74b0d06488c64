package feed

import (
	"strconv"
	"strings"

	"github.com/livetvpro/event-manager/events"
)

// legacyEvent is the oldest external feed shape, kept for backward
// compatibility with sources that were never migrated.
type legacyEvent struct {
	ID        int          `json:"id"`
	Visible   *bool        `json:"visible"` // absent means visible
	Category  string       `json:"category"`
	EventName string       `json:"eventName"`
	EventLogo string       `json:"eventLogo"`
	TeamAName string       `json:"teamAName"`
	TeamAFlag string       `json:"teamAFlag"`
	TeamBName string       `json:"teamBName"`
	TeamBFlag string       `json:"teamBFlag"`
	Date      string       `json:"date"`
	Time      string       `json:"time"`
	EndDate   string       `json:"end_date"`
	EndTime   string       `json:"end_time"`
	Links     []legacyLink `json:"links"`
}

type legacyLink struct {
	Name   string `json:"name"`
	Link   string `json:"link"`
	Scheme int    `json:"scheme"`
	API    string `json:"api"`
}

// legacyDRMScheme maps the legacy integer scheme codes to scheme names.
func legacyDRMScheme(code int) string {
	switch code {
	case 0:
		return "clearkey"
	case 1:
		return "widevine"
	case 2:
		return "playready"
	default:
		return ""
	}
}

// convertLegacyEvents maps legacy events to the shared event model. Events
// explicitly marked invisible are dropped; timestamps are converted from the
// legacy dd/MM/yyyy format, falling back to "no value" when unparseable.
func convertLegacyEvents(legacy []legacyEvent) []events.Event {
	result := make([]events.Event, 0, len(legacy))

	for _, le := range legacy {
		if le.Visible != nil && !*le.Visible {
			continue
		}

		start, _ := events.CanonicalFromLegacy(le.Date, le.Time)

		end := ""
		if le.EndDate != "" && le.EndTime != "" {
			end, _ = events.CanonicalFromLegacy(le.EndDate, le.EndTime)
		}

		links := make([]events.EventLink, 0, len(le.Links))
		for _, ll := range le.Links {
			link := events.EventLink{
				Quality:   ll.Name,
				URL:       ll.Link,
				DRMScheme: legacyDRMScheme(ll.Scheme),
			}
			if strings.TrimSpace(ll.API) != "" {
				link.DRMLicense = ll.API
			}
			links = append(links, link)
		}

		result = append(result, events.Event{
			ID:           strconv.Itoa(le.ID),
			Category:     le.Category,
			League:       le.Category,
			LeagueLogo:   le.EventLogo,
			Team1Name:    le.TeamAName,
			Team1Logo:    le.TeamAFlag,
			Team2Name:    le.TeamBName,
			Team2Logo:    le.TeamBFlag,
			StartTime:    start,
			EndTime:      end,
			Links:        links,
			Title:        le.EventName,
			CategoryName: le.Category,
		})
	}

	return result
}
