package feed

import (
	"context"

	"github.com/livetvpro/event-manager/events"
	"github.com/livetvpro/event-manager/fetcher"
	"github.com/livetvpro/event-manager/logging"
	"github.com/livetvpro/event-manager/metrics"
)

// URLSource supplies the currently configured feed URL. An empty string
// means the external feed feature is disabled.
type URLSource func() string

// Client fetches and decodes the external event feed. Fetch failures fall
// back to the last successfully fetched payload for this session. The
// fetcher is expected to be backed by in-memory storage, since the raw feed
// payload is never persisted.
type Client struct {
	fetcher fetcher.Interface
	decoder *Decoder
	url     URLSource
	logger  *logging.Logger
}

// NewClient creates a feed client. url is consulted on every fetch so that
// remote-config updates take effect without restarting.
func NewClient(f fetcher.Interface, decoder *Decoder, url URLSource, logger *logging.Logger) *Client {
	return &Client{
		fetcher: f,
		decoder: decoder,
		url:     url,
		logger:  logger,
	}
}

// Fetch returns the external events. The result is nil when no feed URL is
// configured; otherwise it is always non-nil. Fetch and decode failures
// degrade to an empty list instead of an error.
func (c *Client) Fetch(ctx context.Context) []events.Event {
	url := c.url()
	if url == "" {
		return nil
	}

	if err := ctx.Err(); err != nil {
		c.logger.Debug("Skipping feed fetch", map[string]interface{}{
			"error": err.Error(),
		})
		return []events.Event{}
	}

	payload, fromCache, err := c.fetcher.FetchWithCacheFallback(url)
	if err != nil {
		// No fresh payload and nothing cached this session.
		metrics.RecordFeedFetch("error")
		c.logger.Warn("External feed unavailable and no cached payload", map[string]interface{}{
			"error": err.Error(),
		})
		return []events.Event{}
	}
	if fromCache {
		metrics.RecordFeedFetch("cache")
	} else {
		metrics.RecordFeedFetch("ok")
	}

	decoded := c.decoder.Decode(payload)
	c.logger.LogFeedRefresh(len(decoded), fromCache)

	return decoded
}
