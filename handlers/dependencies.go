// Package handlers wires the HTTP surface together.
package handlers

import (
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/livetvpro/event-manager/api"
	"github.com/livetvpro/event-manager/favorites"
	"github.com/livetvpro/event-manager/logging"
	"github.com/livetvpro/event-manager/playlists"
)

// Dependencies holds all the dependencies needed by the handlers
type Dependencies struct {
	Events    api.EventSource
	Channels  api.ChannelSource
	Favorites *favorites.Store
	Playlists *playlists.Service
	Logger    *logging.Logger
	Swagger   *openapi3.T

	// Now pins the event classification instant; nil means time.Now.
	Now func() time.Time
}
