// Package favorites persists the user's favorite channels.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"github.com/livetvpro/event-manager/channels"
)

const favoritesBucket = "favorites"

// Store errors.
var (
	ErrNotFound      = errors.New("favorite not found")
	ErrAlreadyExists = errors.New("favorite already exists")
	ErrMissingID     = errors.New("favorite channel id is required")
)

// Favorite is a favorited channel with the time it was added.
type Favorite struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	LogoURL      string          `json:"logoUrl,omitempty"`
	StreamURL    string          `json:"streamUrl,omitempty"`
	CategoryID   string          `json:"categoryId,omitempty"`
	CategoryName string          `json:"categoryName,omitempty"`
	Links        []channels.Link `json:"links,omitempty"`
	AddedAt      int64           `json:"addedAt"`
}

// Store is the bbolt-backed favorites store.
type Store struct {
	db  *bbolt.DB
	now func() time.Time
}

// NewStore creates a favorites store on the given database, initializing the
// bucket if needed.
func NewStore(db *bbolt.DB) (*Store, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(favoritesBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Store{db: db, now: time.Now}, nil
}

// Add persists a channel as a favorite, stamping it with the current time.
func (s *Store) Add(ctx context.Context, fav Favorite) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if fav.ID == "" {
		return ErrMissingID
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(favoritesBucket))
		if bucket == nil {
			return errors.New("favorites bucket not found")
		}

		key := []byte(fav.ID)
		if bucket.Get(key) != nil {
			return ErrAlreadyExists
		}

		fav.AddedAt = s.now().UnixMilli()

		data, err := json.Marshal(fav)
		if err != nil {
			return err
		}

		return bucket.Put(key, data)
	})
}

// Remove deletes a favorite by channel id.
func (s *Store) Remove(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(favoritesBucket))
		if bucket == nil {
			return errors.New("favorites bucket not found")
		}

		key := []byte(id)
		if bucket.Get(key) == nil {
			return ErrNotFound
		}

		return bucket.Delete(key)
	})
}

// List returns all favorites, newest first.
func (s *Store) List(ctx context.Context) ([]Favorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var favorites []Favorite

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(favoritesBucket))
		if bucket == nil {
			return errors.New("favorites bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			var fav Favorite
			if err := json.Unmarshal(v, &fav); err != nil {
				return err
			}
			favorites = append(favorites, fav)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(favorites, func(i, j int) bool {
		return favorites[i].AddedAt > favorites[j].AddedAt
	})

	if favorites == nil {
		favorites = []Favorite{}
	}

	return favorites, nil
}

// IsFavorite reports whether a channel id is favorited.
func (s *Store) IsFavorite(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	found := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(favoritesBucket))
		if bucket == nil {
			return errors.New("favorites bucket not found")
		}
		found = bucket.Get([]byte(id)) != nil
		return nil
	})

	return found, err
}
