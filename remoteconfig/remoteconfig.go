// Package remoteconfig fetches the application's bootstrap configuration
// document, which can rotate the data and feed URLs without a redeploy.
package remoteconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/livetvpro/event-manager/fetcher"
	"github.com/livetvpro/event-manager/logging"
	"github.com/livetvpro/event-manager/metrics"
)

// Values is the remote config document. Blank values leave the current
// (statically configured or previously fetched) value in place.
type Values struct {
	DataFileURL  string `json:"data_file_url"`
	EventDataURL string `json:"event_data_url"`
	EventSchema  string `json:"event_schema"`
}

// Client holds the current config values and refreshes them from the
// bootstrap URL. Fetch failures keep the last known values, so a broken
// bootstrap endpoint never takes down a running instance.
type Client struct {
	fetcher fetcher.Interface
	url     string
	logger  *logging.Logger

	mu     sync.RWMutex
	values Values
}

// New creates a client seeded with the given defaults. An empty url disables
// remote refresh; the defaults then stay in effect for the process lifetime.
func New(f fetcher.Interface, url string, defaults Values, logger *logging.Logger) *Client {
	return &Client{
		fetcher: f,
		url:     url,
		logger:  logger,
		values:  defaults,
	}
}

// Refresh fetches the config document and applies non-blank values.
func (c *Client) Refresh(ctx context.Context) error {
	if c.url == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, _, err := c.fetcher.FetchWithCacheFallback(c.url)
	if err != nil {
		metrics.RecordRemoteConfigRefresh("error")
		return fmt.Errorf("failed to fetch remote config: %w", err)
	}

	var fetched Values
	if err := json.Unmarshal(payload, &fetched); err != nil {
		metrics.RecordRemoteConfigRefresh("error")
		return fmt.Errorf("failed to parse remote config: %w", err)
	}

	c.apply(fetched)
	metrics.RecordRemoteConfigRefresh("ok")

	return nil
}

// apply overwrites current values with non-blank fetched ones, logging each
// change.
func (c *Client) apply(fetched Values) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v := strings.TrimSpace(fetched.DataFileURL); v != "" && v != c.values.DataFileURL {
		c.values.DataFileURL = v
		c.logger.LogRemoteConfigUpdate("data_file_url", v)
	}
	if v := strings.TrimSpace(fetched.EventDataURL); v != "" && v != c.values.EventDataURL {
		c.values.EventDataURL = v
		c.logger.LogRemoteConfigUpdate("event_data_url", v)
	}
	if v := strings.TrimSpace(fetched.EventSchema); v != "" && v != c.values.EventSchema {
		c.values.EventSchema = v
		c.logger.LogRemoteConfigUpdate("event_schema", v)
	}
}

// DataFileURL returns the current native data URL.
func (c *Client) DataFileURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values.DataFileURL
}

// EventDataURL returns the current external feed URL. Empty means the feed
// feature is disabled.
func (c *Client) EventDataURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values.EventDataURL
}

// EventSchema returns the current external feed schema name.
func (c *Client) EventSchema() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values.EventSchema
}
