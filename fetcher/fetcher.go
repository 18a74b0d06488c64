package fetcher

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/livetvpro/event-manager/cache"
)

// Fetcher handles fetching remote payloads with cache fallback
type Fetcher struct {
	client   *http.Client
	storage  cache.Storage
	cacheTTL time.Duration
}

// New creates a new Fetcher with the specified timeout and cache configuration
func New(timeout time.Duration, storage cache.Storage, cacheTTL time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		storage:  storage,
		cacheTTL: cacheTTL,
	}
}

// FetchWithCacheFallback fetches a payload from the URL, falling back to the
// last successfully cached copy when the source is unreachable.
// Returns the content and a boolean indicating whether it was served from cache
func (f *Fetcher) FetchWithCacheFallback(url string) ([]byte, bool, error) {
	cacheKey := cache.PayloadKey(url)

	content, err := f.fetchFromURL(url)
	if err == nil {
		// Success: update cache and return fresh content
		if setErr := f.storage.Set(cacheKey, content); setErr != nil {
			log.Printf("Warning: Failed to update cache for %s: %v", url, setErr)
		}
		return content, false, nil
	}

	// Fetch failed: try the cache, even if expired
	log.Printf("Failed to fetch payload from source: %v", err)

	entry, cacheErr := f.storage.Get(cacheKey)
	if cacheErr != nil {
		return nil, false, fmt.Errorf("upstream fetch failed and no cache available: %w", err)
	}

	log.Printf("Serving stale cache for: %s (cached at: %s)", url, entry.Timestamp.Format(time.RFC3339))
	return entry.Content, true, nil
}

// FetchWithCache fetches a payload with cache-first strategy
// Checks cache freshness first, only fetches if expired
// Returns the content, whether it was from cache, and whether cache was stale
func (f *Fetcher) FetchWithCache(url string) ([]byte, bool, bool, error) {
	cacheKey := cache.PayloadKey(url)

	entry, cacheErr := f.storage.Get(cacheKey)
	if cacheErr == nil {
		expired, expErr := f.storage.IsExpired(cacheKey, f.cacheTTL)
		if expErr != nil {
			log.Printf("Error checking cache expiration for %s: %v", url, expErr)
			// Treat as expired and continue to fetch
		} else if !expired {
			return entry.Content, true, false, nil
		}
	}

	content, fetchErr := f.fetchFromURL(url)
	if fetchErr == nil {
		if setErr := f.storage.Set(cacheKey, content); setErr != nil {
			log.Printf("Warning: Failed to update cache for %s: %v", url, setErr)
		}
		return content, false, false, nil
	}

	// Fetch failed - serve stale cache if we have one
	log.Printf("Failed to fetch payload from source: %v", fetchErr)

	if cacheErr != nil {
		return nil, false, false, fmt.Errorf("upstream fetch failed and no cache available: %w", fetchErr)
	}

	log.Printf("WARNING: Serving stale cache for: %s (cached at: %s, age: %s)",
		url, entry.Timestamp.Format(time.RFC3339), time.Since(entry.Timestamp))
	return entry.Content, true, true, nil
}

// IsExpired checks if the cached content for the URL is expired
func (f *Fetcher) IsExpired(url string) (bool, error) {
	cacheKey := cache.PayloadKey(url)
	return f.storage.IsExpired(cacheKey, f.cacheTTL)
}

// fetchFromURL performs the actual HTTP fetch with timeout
func (f *Fetcher) fetchFromURL(url string) ([]byte, error) {
	resp, err := f.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("warning: failed to close response body: %v", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP request returned status %d: %s", resp.StatusCode, resp.Status)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return content, nil
}
