// Package playlists manages user-added M3U playlists.
package playlists

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

const playlistsBucket = "playlists"

// Store errors.
var (
	ErrNotFound    = errors.New("playlist not found")
	ErrMissingName = errors.New("playlist name is required")
	ErrMissingURL  = errors.New("playlist URL is required")
)

// Playlist is one user-added M3U playlist source.
type Playlist struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	AddedAt int64  `json:"addedAt"`
}

// Store is the bbolt-backed playlist store.
type Store struct {
	db    *bbolt.DB
	now   func() time.Time
	newID func() string
}

// NewStore creates a playlist store on the given database, initializing the
// bucket if needed.
func NewStore(db *bbolt.DB) (*Store, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(playlistsBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Store{
		db:    db,
		now:   time.Now,
		newID: uuid.NewString,
	}, nil
}

// Add creates a new playlist and returns it with a generated id.
func (s *Store) Add(ctx context.Context, name, url string) (Playlist, error) {
	if err := ctx.Err(); err != nil {
		return Playlist{}, err
	}

	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)
	if name == "" {
		return Playlist{}, ErrMissingName
	}
	if url == "" {
		return Playlist{}, ErrMissingURL
	}

	pl := Playlist{
		ID:      s.newID(),
		Name:    name,
		URL:     url,
		AddedAt: s.now().UnixMilli(),
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(playlistsBucket))
		if bucket == nil {
			return errors.New("playlists bucket not found")
		}

		data, err := json.Marshal(pl)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(pl.ID), data)
	})
	if err != nil {
		return Playlist{}, err
	}

	return pl, nil
}

// Get retrieves a playlist by id.
func (s *Store) Get(ctx context.Context, id string) (Playlist, error) {
	if err := ctx.Err(); err != nil {
		return Playlist{}, err
	}

	var pl Playlist

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(playlistsBucket))
		if bucket == nil {
			return errors.New("playlists bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return ErrNotFound
		}

		return json.Unmarshal(data, &pl)
	})

	return pl, err
}

// List returns all playlists, newest first.
func (s *Store) List(ctx context.Context) ([]Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var playlists []Playlist

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(playlistsBucket))
		if bucket == nil {
			return errors.New("playlists bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			var pl Playlist
			if err := json.Unmarshal(v, &pl); err != nil {
				return err
			}
			playlists = append(playlists, pl)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(playlists, func(i, j int) bool {
		return playlists[i].AddedAt > playlists[j].AddedAt
	})

	if playlists == nil {
		playlists = []Playlist{}
	}

	return playlists, nil
}

// Remove deletes a playlist by id.
func (s *Store) Remove(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(playlistsBucket))
		if bucket == nil {
			return errors.New("playlists bucket not found")
		}

		if bucket.Get([]byte(id)) == nil {
			return ErrNotFound
		}

		return bucket.Delete([]byte(id))
	})
}
