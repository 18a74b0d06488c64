package playlists

import (
	"context"
	"fmt"

	"github.com/livetvpro/event-manager/fetcher"
	"github.com/livetvpro/event-manager/m3u"
)

// Service resolves a stored playlist into its channel entries by fetching
// and parsing its M3U content. Fetch failures fall back to the last cached
// copy of the playlist.
type Service struct {
	store   *Store
	fetcher fetcher.Interface
}

// NewService creates a playlist service.
func NewService(store *Store, f fetcher.Interface) *Service {
	return &Service{store: store, fetcher: f}
}

// Store exposes the underlying playlist store.
func (s *Service) Store() *Store {
	return s.store
}

// Channels fetches a playlist's content and returns its parsed entries.
func (s *Service) Channels(ctx context.Context, id string) ([]m3u.Entry, error) {
	pl, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	content, _, err := s.fetcher.FetchWithCacheFallback(pl.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch playlist %s: %w", pl.Name, err)
	}

	entries := m3u.Parse(content)
	if entries == nil {
		entries = []m3u.Entry{}
	}

	return entries, nil
}
