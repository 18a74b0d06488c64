package handlers

import (
	"log"
	"net/http"

	nethttpmiddleware "github.com/oapi-codegen/nethttp-middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/livetvpro/event-manager/api"
)

// SetupRoutes configures all HTTP routes and handlers
func SetupRoutes(deps Dependencies) http.Handler {
	handler := http.NewServeMux()

	handler.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Printf("Error writing health response: %v", err)
		}
	})

	// Prometheus metrics endpoint
	handler.Handle("/metrics", promhttp.Handler())

	// JSON API, validated against the OpenAPI document
	apiMux := http.NewServeMux()

	eventsHandler := api.NewEventsHandler(deps.Events, deps.Logger, deps.Now)
	apiMux.Handle("/api/events", eventsHandler)
	apiMux.Handle("/api/events/", eventsHandler)

	apiMux.Handle("/api/categories", api.NewCategoriesHandler(deps.Events, deps.Logger))

	channelsHandler := api.NewChannelsHandler(deps.Channels, deps.Logger)
	apiMux.Handle("/api/channels", channelsHandler)
	apiMux.Handle("/api/channels/", channelsHandler)

	apiMux.Handle("/api/sports", api.NewSportsHandler(deps.Channels, deps.Logger))

	favoritesHandler := api.NewFavoritesHandler(deps.Favorites, deps.Logger)
	apiMux.Handle("/api/favorites", favoritesHandler)
	apiMux.Handle("/api/favorites/", favoritesHandler)

	playlistsHandler := api.NewPlaylistsHandler(deps.Playlists.Store(), deps.Logger)
	apiMux.Handle("/api/playlists", playlistsHandler)
	apiMux.Handle("/api/playlists/", playlistsHandler)

	var apiHandler http.Handler = apiMux
	if deps.Swagger != nil {
		apiHandler = nethttpmiddleware.OapiRequestValidator(deps.Swagger)(apiMux)
		handler.Handle("/api/docs", api.NewDocumentationHandler(deps.Swagger, deps.Logger))
	}
	handler.Handle("/api/", apiHandler)

	// M3U output for stored playlists
	handler.HandleFunc("/playlists/", CreatePlaylistM3UHandler(deps.Playlists, deps.Logger))

	return handler
}
