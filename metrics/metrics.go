package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeedFetches tracks external feed fetch attempts by result
	// (ok, cache, error)
	FeedFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "livetv_feed_fetches_total",
		Help: "Total number of external feed fetch attempts by result",
	}, []string{"result"})

	// FeedDecodeFailures tracks malformed feed payloads
	FeedDecodeFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "livetv_feed_decode_failures_total",
		Help: "Total number of feed payloads that failed to decode",
	})

	// NativeRefreshes tracks native data refresh cycles by result
	// (ok, restored, error)
	NativeRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "livetv_native_refreshes_total",
		Help: "Total number of native data refresh cycles by result",
	}, []string{"result"})

	// MergedEvents tracks the size of the last merged event list
	MergedEvents = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "livetv_merged_events",
		Help: "Number of events in the last merged result",
	})

	// RemoteConfigRefreshes tracks app-config refresh attempts by result
	RemoteConfigRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "livetv_remote_config_refreshes_total",
		Help: "Total number of remote config refresh attempts by result",
	}, []string{"result"})
)

// RecordFeedFetch increments the feed fetch counter for a result
func RecordFeedFetch(result string) {
	FeedFetches.WithLabelValues(result).Inc()
}

// RecordFeedDecodeFailure increments the feed decode failure counter
func RecordFeedDecodeFailure() {
	FeedDecodeFailures.Inc()
}

// RecordNativeRefresh increments the native refresh counter for a result
func RecordNativeRefresh(result string) {
	NativeRefreshes.WithLabelValues(result).Inc()
}

// SetMergedEvents sets the size of the last merged event list
func SetMergedEvents(count int) {
	MergedEvents.Set(float64(count))
}

// RecordRemoteConfigRefresh increments the remote config refresh counter
func RecordRemoteConfigRefresh(result string) {
	RemoteConfigRefreshes.WithLabelValues(result).Inc()
}
