// Package api implements the JSON handlers under /api.
package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/livetvpro/event-manager/events"
	"github.com/livetvpro/event-manager/logging"
)

// EventSource is the merged live event service the handlers read from.
type EventSource interface {
	GetLiveEvents(ctx context.Context) []events.Event
	GetEventByID(ctx context.Context, id string) (events.Event, bool)
	GetEventCategories(ctx context.Context) []events.EventCategory
}

// EventResponse is an event plus its request-time status. Status is derived
// per request and never stored.
type EventResponse struct {
	events.Event
	events.Timing
}

// EventsHandler serves GET /api/events and GET /api/events/{id}.
type EventsHandler struct {
	source EventSource
	logger *logging.Logger
	now    func() time.Time
}

// NewEventsHandler creates an events handler. now is injectable so tests can
// pin the classification instant.
func NewEventsHandler(source EventSource, logger *logging.Logger, now func() time.Time) *EventsHandler {
	if now == nil {
		now = time.Now
	}
	return &EventsHandler{source: source, logger: logger, now: now}
}

func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		logging.WriteJSONError(w, h.logger, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	id := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/api/events"))
	id = strings.Trim(id, "/")
	if id != "" {
		h.handleGet(w, r, id)
		return
	}

	h.handleList(w, r)
}

// handleList handles GET /api/events with optional status and category
// filters.
func (h *EventsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	statusFilter := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("status")))
	categoryFilter := strings.TrimSpace(r.URL.Query().Get("category"))

	now := h.now()
	all := h.source.GetLiveEvents(r.Context())

	result := make([]EventResponse, 0, len(all))
	for _, e := range all {
		timing := e.TimingAt(now)

		if statusFilter != "" && string(timing.Status) != statusFilter {
			continue
		}
		if categoryFilter != "" && !matchesCategory(e, categoryFilter) {
			continue
		}

		result = append(result, EventResponse{Event: e, Timing: timing})
	}

	logging.WriteJSONSuccess(w, h.logger, result, map[string]interface{}{
		"endpoint": "/api/events",
		"events":   len(result),
	})
}

// handleGet handles GET /api/events/{id}.
func (h *EventsHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	event, found := h.source.GetEventByID(r.Context(), id)
	if !found {
		logging.WriteJSONError(w, h.logger, "Event not found", http.StatusNotFound, map[string]interface{}{
			"id": id,
		})
		return
	}

	logging.WriteJSONSuccess(w, h.logger, EventResponse{
		Event:  event,
		Timing: event.TimingAt(h.now()),
	}, nil)
}

// matchesCategory reports whether an event belongs to the given category,
// matched case-insensitively against its category id and names.
func matchesCategory(e events.Event, category string) bool {
	return strings.EqualFold(e.CategoryID, category) ||
		strings.EqualFold(e.CategoryName, category) ||
		strings.EqualFold(e.Category, category)
}

// CategoriesHandler serves GET /api/categories.
type CategoriesHandler struct {
	source EventSource
	logger *logging.Logger
}

// NewCategoriesHandler creates a categories handler.
func NewCategoriesHandler(source EventSource, logger *logging.Logger) *CategoriesHandler {
	return &CategoriesHandler{source: source, logger: logger}
}

func (h *CategoriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		logging.WriteJSONError(w, h.logger, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	categories := h.source.GetEventCategories(r.Context())
	logging.WriteJSONSuccess(w, h.logger, categories, map[string]interface{}{
		"endpoint":   "/api/categories",
		"categories": len(categories),
	})
}
