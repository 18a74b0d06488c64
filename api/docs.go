package api

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/livetvpro/event-manager/logging"
)

// NewDocumentationHandler serves the OpenAPI document as JSON.
func NewDocumentationHandler(swagger *openapi3.T, logger *logging.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.WriteJSONSuccess(w, logger, swagger, nil)
	})
}
