package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/livetvpro/event-manager/logging"
	"github.com/livetvpro/event-manager/m3u"
	"github.com/livetvpro/event-manager/playlists"
)

// CreatePlaylistM3UHandler serves GET /playlists/{id}.m3u: the stored
// playlist's channels, re-encoded from the fetched source.
func CreatePlaylistM3UHandler(service *playlists.Service, logger *logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		id := strings.TrimPrefix(r.URL.Path, "/playlists/")
		id = strings.TrimSuffix(id, ".m3u")
		if id == "" || strings.Contains(id, "/") {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}

		entries, err := service.Channels(r.Context(), id)
		if errors.Is(err, playlists.ErrNotFound) {
			http.Error(w, "Playlist not found", http.StatusNotFound)
			return
		}
		if err != nil {
			logger.Error("Failed to resolve playlist", map[string]interface{}{
				"id":    id,
				"error": err.Error(),
			})
			http.Error(w, "Bad Gateway", http.StatusBadGateway)
			return
		}

		encoder := m3u.NewEncoder()
		for _, entry := range entries {
			encoder.Add(entry)
		}

		w.Header().Set("Content-Type", "audio/x-mpegurl")
		w.WriteHeader(http.StatusOK)
		if err := encoder.Encode(w); err != nil {
			logger.Warn("Failed to write playlist response", map[string]interface{}{
				"id":    id,
				"error": err.Error(),
			})
		}
	}
}
