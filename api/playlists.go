package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/livetvpro/event-manager/logging"
	"github.com/livetvpro/event-manager/playlists"
)

// addPlaylistRequest is the POST /api/playlists body.
type addPlaylistRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PlaylistsHandler serves the playlist CRUD under /api/playlists.
type PlaylistsHandler struct {
	store  *playlists.Store
	logger *logging.Logger
}

// NewPlaylistsHandler creates a playlists handler.
func NewPlaylistsHandler(store *playlists.Store, logger *logging.Logger) *PlaylistsHandler {
	return &PlaylistsHandler{store: store, logger: logger}
}

func (h *PlaylistsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/playlists"), "/")

	switch {
	case r.Method == http.MethodGet && id == "":
		h.handleList(w, r)
	case r.Method == http.MethodGet:
		h.handleGet(w, r, id)
	case r.Method == http.MethodPost && id == "":
		h.handleAdd(w, r)
	case r.Method == http.MethodDelete && id != "":
		h.handleRemove(w, r, id)
	default:
		logging.WriteJSONError(w, h.logger, "Method not allowed", http.StatusMethodNotAllowed, nil)
	}
}

// handleList handles GET /api/playlists.
func (h *PlaylistsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.List(r.Context())
	if err != nil {
		logging.WriteJSONError(w, h.logger, "Failed to list playlists", http.StatusInternalServerError, map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logging.WriteJSONSuccess(w, h.logger, list, map[string]interface{}{
		"endpoint":  "/api/playlists",
		"playlists": len(list),
	})
}

// handleGet handles GET /api/playlists/{id}.
func (h *PlaylistsHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	pl, err := h.store.Get(r.Context(), id)
	switch {
	case errors.Is(err, playlists.ErrNotFound):
		logging.WriteJSONError(w, h.logger, "Playlist not found", http.StatusNotFound, map[string]interface{}{
			"id": id,
		})
		return
	case err != nil:
		logging.WriteJSONError(w, h.logger, "Failed to load playlist", http.StatusInternalServerError, map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logging.WriteJSONSuccess(w, h.logger, pl, nil)
}

// handleAdd handles POST /api/playlists.
func (h *PlaylistsHandler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req addPlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logging.WriteJSONError(w, h.logger, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	pl, err := h.store.Add(r.Context(), req.Name, req.URL)
	switch {
	case errors.Is(err, playlists.ErrMissingName):
		logging.WriteJSONError(w, h.logger, "Playlist name is required", http.StatusBadRequest, nil)
		return
	case errors.Is(err, playlists.ErrMissingURL):
		logging.WriteJSONError(w, h.logger, "Playlist URL is required", http.StatusBadRequest, nil)
		return
	case err != nil:
		logging.WriteJSONError(w, h.logger, "Failed to add playlist", http.StatusInternalServerError, map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(pl); err != nil {
		h.logger.Warn("Failed to encode playlist response", map[string]interface{}{"error": err.Error()})
	}
}

// handleRemove handles DELETE /api/playlists/{id}.
func (h *PlaylistsHandler) handleRemove(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Remove(r.Context(), id)
	switch {
	case errors.Is(err, playlists.ErrNotFound):
		logging.WriteJSONError(w, h.logger, "Playlist not found", http.StatusNotFound, map[string]interface{}{
			"id": id,
		})
		return
	case err != nil:
		logging.WriteJSONError(w, h.logger, "Failed to remove playlist", http.StatusInternalServerError, map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
