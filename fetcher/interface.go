package fetcher

// Interface defines the contract for fetching remote payloads with caching.
// The same fetcher serves M3U playlists, the native data file and the
// external event feed; what differs per consumer is the Storage behind it.
type Interface interface {
	// FetchWithCache fetches a payload with cache-first strategy
	// Returns: content, fromCache, stale, error
	FetchWithCache(url string) ([]byte, bool, bool, error)

	// FetchWithCacheFallback fetches a payload from the URL with cache fallback
	// Returns: content, fromCache, error
	FetchWithCacheFallback(url string) ([]byte, bool, error)

	// IsExpired checks if the cached content for the URL is expired
	IsExpired(url string) (bool, error)
}
