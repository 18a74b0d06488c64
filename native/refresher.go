package native

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/livetvpro/event-manager/fetcher"
	"github.com/livetvpro/event-manager/logging"
	"github.com/livetvpro/event-manager/metrics"
)

// ErrNoDataURL is returned when a refresh runs with no data URL configured.
var ErrNoDataURL = errors.New("no native data URL configured")

// URLSource supplies the currently configured native data URL. Remote config
// may rotate it between refreshes.
type URLSource func() string

// Refresher periodically reloads the native data payload. Fetch failures fall
// back to the last successfully fetched payload, so a flaky upstream degrades
// to stale data instead of an empty store.
type Refresher struct {
	fetcher fetcher.Interface
	store   *Store
	url     URLSource
	logger  *logging.Logger

	mu sync.Mutex
}

// NewRefresher creates a refresher for the given store.
func NewRefresher(f fetcher.Interface, store *Store, url URLSource, logger *logging.Logger) *Refresher {
	return &Refresher{
		fetcher: f,
		store:   store,
		url:     url,
		logger:  logger,
	}
}

// Refresh fetches the native data payload and stores it. Only one refresh
// runs at a time.
func (r *Refresher) Refresh(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	url := r.url()
	if url == "" {
		metrics.RecordNativeRefresh("error")
		return ErrNoDataURL
	}

	started := time.Now()

	payload, fromCache, err := r.fetcher.FetchWithCacheFallback(url)
	if err != nil {
		metrics.RecordNativeRefresh("error")
		return fmt.Errorf("failed to fetch native data: %w", err)
	}

	if err := r.store.StoreData(payload); err != nil {
		metrics.RecordNativeRefresh("error")
		return fmt.Errorf("failed to store native data: %w", err)
	}

	if fromCache {
		metrics.RecordNativeRefresh("restored")
		r.logger.LogNativeRestore("fetch failed, cached payload stored")
	} else {
		metrics.RecordNativeRefresh("ok")
	}

	r.logger.LogNativeRefresh(len(r.store.GetChannels()), len(r.store.GetLiveEvents()), time.Since(started))

	return nil
}
