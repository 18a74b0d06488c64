package api

import (
	"net/http"
	"strings"

	"github.com/livetvpro/event-manager/channels"
	"github.com/livetvpro/event-manager/logging"
)

// ChannelSource is the native store's channel read side.
type ChannelSource interface {
	GetChannels() []channels.Channel
	GetCategories() []channels.Category
	GetSports() []channels.Channel
}

// ChannelsHandler serves GET /api/channels and GET /api/channels/categories.
type ChannelsHandler struct {
	source ChannelSource
	logger *logging.Logger
}

// NewChannelsHandler creates a channels handler.
func NewChannelsHandler(source ChannelSource, logger *logging.Logger) *ChannelsHandler {
	return &ChannelsHandler{source: source, logger: logger}
}

func (h *ChannelsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		logging.WriteJSONError(w, h.logger, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/channels"), "/")
	if path == "categories" {
		h.handleCategories(w)
		return
	}
	if path != "" {
		logging.WriteJSONError(w, h.logger, "Not found", http.StatusNotFound, nil)
		return
	}

	h.handleList(w, r)
}

// handleList handles GET /api/channels with an optional category filter.
func (h *ChannelsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	categoryFilter := strings.TrimSpace(r.URL.Query().Get("category"))

	all := h.source.GetChannels()

	result := make([]channels.Channel, 0, len(all))
	for _, ch := range all {
		if categoryFilter != "" &&
			!strings.EqualFold(ch.CategoryID, categoryFilter) &&
			!strings.EqualFold(ch.CategoryName, categoryFilter) {
			continue
		}
		result = append(result, ch)
	}

	logging.WriteJSONSuccess(w, h.logger, result, map[string]interface{}{
		"endpoint": "/api/channels",
		"channels": len(result),
	})
}

// handleCategories handles GET /api/channels/categories.
func (h *ChannelsHandler) handleCategories(w http.ResponseWriter) {
	categories := h.source.GetCategories()
	logging.WriteJSONSuccess(w, h.logger, categories, map[string]interface{}{
		"endpoint":   "/api/channels/categories",
		"categories": len(categories),
	})
}

// SportsHandler serves GET /api/sports.
type SportsHandler struct {
	source ChannelSource
	logger *logging.Logger
}

// NewSportsHandler creates a sports handler.
func NewSportsHandler(source ChannelSource, logger *logging.Logger) *SportsHandler {
	return &SportsHandler{source: source, logger: logger}
}

func (h *SportsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		logging.WriteJSONError(w, h.logger, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	sports := h.source.GetSports()
	logging.WriteJSONSuccess(w, h.logger, sports, map[string]interface{}{
		"endpoint": "/api/sports",
		"channels": len(sports),
	})
}
