package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/livetvpro/event-manager/favorites"
	"github.com/livetvpro/event-manager/logging"
)

// FavoritesHandler serves the favorites CRUD under /api/favorites.
type FavoritesHandler struct {
	store  *favorites.Store
	logger *logging.Logger
}

// NewFavoritesHandler creates a favorites handler.
func NewFavoritesHandler(store *favorites.Store, logger *logging.Logger) *FavoritesHandler {
	return &FavoritesHandler{store: store, logger: logger}
}

func (h *FavoritesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/favorites"), "/")

	switch {
	case r.Method == http.MethodGet && id == "":
		h.handleList(w, r)
	case r.Method == http.MethodGet:
		h.handleCheck(w, r, id)
	case r.Method == http.MethodPost && id == "":
		h.handleAdd(w, r)
	case r.Method == http.MethodDelete && id != "":
		h.handleRemove(w, r, id)
	default:
		logging.WriteJSONError(w, h.logger, "Method not allowed", http.StatusMethodNotAllowed, nil)
	}
}

// handleList handles GET /api/favorites.
func (h *FavoritesHandler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.List(r.Context())
	if err != nil {
		logging.WriteJSONError(w, h.logger, "Failed to list favorites", http.StatusInternalServerError, map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logging.WriteJSONSuccess(w, h.logger, list, map[string]interface{}{
		"endpoint":  "/api/favorites",
		"favorites": len(list),
	})
}

// handleCheck handles GET /api/favorites/{id}.
func (h *FavoritesHandler) handleCheck(w http.ResponseWriter, r *http.Request, id string) {
	found, err := h.store.IsFavorite(r.Context(), id)
	if err != nil {
		logging.WriteJSONError(w, h.logger, "Failed to check favorite", http.StatusInternalServerError, map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logging.WriteJSONSuccess(w, h.logger, map[string]bool{"favorite": found}, nil)
}

// handleAdd handles POST /api/favorites.
func (h *FavoritesHandler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var fav favorites.Favorite
	if err := json.NewDecoder(r.Body).Decode(&fav); err != nil {
		logging.WriteJSONError(w, h.logger, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	err := h.store.Add(r.Context(), fav)
	switch {
	case errors.Is(err, favorites.ErrMissingID):
		logging.WriteJSONError(w, h.logger, "Channel id is required", http.StatusBadRequest, nil)
		return
	case errors.Is(err, favorites.ErrAlreadyExists):
		logging.WriteJSONError(w, h.logger, "Channel is already a favorite", http.StatusConflict, map[string]interface{}{
			"id": fav.ID,
		})
		return
	case err != nil:
		logging.WriteJSONError(w, h.logger, "Failed to add favorite", http.StatusInternalServerError, map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(fav); err != nil {
		h.logger.Warn("Failed to encode favorite response", map[string]interface{}{"error": err.Error()})
	}
}

// handleRemove handles DELETE /api/favorites/{id}.
func (h *FavoritesHandler) handleRemove(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Remove(r.Context(), id)
	switch {
	case errors.Is(err, favorites.ErrNotFound):
		logging.WriteJSONError(w, h.logger, "Favorite not found", http.StatusNotFound, map[string]interface{}{
			"id": id,
		})
		return
	case err != nil:
		logging.WriteJSONError(w, h.logger, "Failed to remove favorite", http.StatusInternalServerError, map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
