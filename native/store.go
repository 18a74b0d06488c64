// Package native persists and serves the native data payload: the single
// JSON document carrying categories, channels, live events, event categories
// and sports channels for the app.
package native

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/livetvpro/event-manager/channels"
	"github.com/livetvpro/event-manager/events"
)

const nativeBucket = "native_data"

// Section keys inside the native bucket. Each holds the raw JSON array for
// one payload section.
const (
	sectionCategories      = "categories"
	sectionChannels        = "channels"
	sectionLiveEvents      = "live_events"
	sectionEventCategories = "event_categories"
	sectionSports          = "sports"
)

// Defaults applied to sports channels that arrive without a category.
const (
	defaultSportsCategoryID   = "sports_slug"
	defaultSportsCategoryName = "Sports"
)

// payload is the wire shape of the native data document.
type payload struct {
	Categories      json.RawMessage `json:"categories"`
	Channels        json.RawMessage `json:"channels"`
	LiveEvents      json.RawMessage `json:"live_events"`
	EventCategories json.RawMessage `json:"event_categories"`
	Sports          json.RawMessage `json:"sports"`
}

// Store is the bbolt-backed native data store. Getters never fail across the
// boundary: any storage or decode problem yields an empty list.
type Store struct {
	db *bbolt.DB
}

// NewStore creates a native data store on the given database, initializing
// the bucket if needed.
func NewStore(db *bbolt.DB) (*Store, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(nativeBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// StoreData validates and persists a native data payload, replacing all
// sections atomically. A payload that is not a JSON object is rejected.
func (s *Store) StoreData(data []byte) error {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("invalid native data payload: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(nativeBucket))
		if bucket == nil {
			return errors.New("native data bucket not found")
		}

		sections := map[string]json.RawMessage{
			sectionCategories:      p.Categories,
			sectionChannels:        p.Channels,
			sectionLiveEvents:      p.LiveEvents,
			sectionEventCategories: p.EventCategories,
			sectionSports:          p.Sports,
		}

		for key, raw := range sections {
			if len(raw) == 0 {
				raw = json.RawMessage("[]")
			}
			if err := bucket.Put([]byte(key), raw); err != nil {
				return err
			}
		}

		return nil
	})
}

// IsDataLoaded reports whether a payload has been stored.
func (s *Store) IsDataLoaded() bool {
	loaded := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(nativeBucket))
		if bucket == nil {
			return nil
		}
		loaded = bucket.Get([]byte(sectionLiveEvents)) != nil
		return nil
	})
	if err != nil {
		return false
	}
	return loaded
}

// section reads one section's raw JSON. Missing sections come back empty.
func (s *Store) section(key string) []byte {
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(nativeBucket))
		if bucket == nil {
			return nil
		}
		if data := bucket.Get([]byte(key)); data != nil {
			raw = append([]byte(nil), data...)
		}
		return nil
	})
	if err != nil || raw == nil {
		return []byte("[]")
	}
	return raw
}

// GetCategories returns the stored channel categories, empty on any failure.
func (s *Store) GetCategories() []channels.Category {
	var result []channels.Category
	if err := json.Unmarshal(s.section(sectionCategories), &result); err != nil {
		return []channels.Category{}
	}
	if result == nil {
		result = []channels.Category{}
	}
	return result
}

// GetChannels returns the stored channels, empty on any failure.
func (s *Store) GetChannels() []channels.Channel {
	var result []channels.Channel
	if err := json.Unmarshal(s.section(sectionChannels), &result); err != nil {
		return []channels.Channel{}
	}
	if result == nil {
		result = []channels.Channel{}
	}
	return result
}

// GetLiveEvents returns the stored native live events, empty on any failure.
func (s *Store) GetLiveEvents() []events.Event {
	var result []events.Event
	if err := json.Unmarshal(s.section(sectionLiveEvents), &result); err != nil {
		return []events.Event{}
	}
	if result == nil {
		result = []events.Event{}
	}
	return result
}

// GetEventCategories returns the stored event categories, empty on any failure.
func (s *Store) GetEventCategories() []events.EventCategory {
	var result []events.EventCategory
	if err := json.Unmarshal(s.section(sectionEventCategories), &result); err != nil {
		return []events.EventCategory{}
	}
	if result == nil {
		result = []events.EventCategory{}
	}
	return result
}

// GetSports returns the stored sports channels. Channels without a category
// get the default sports category.
func (s *Store) GetSports() []channels.Channel {
	var result []channels.Channel
	if err := json.Unmarshal(s.section(sectionSports), &result); err != nil {
		return []channels.Channel{}
	}
	if result == nil {
		result = []channels.Channel{}
	}
	for i := range result {
		if result[i].CategoryID == "" {
			result[i].CategoryID = defaultSportsCategoryID
			result[i].CategoryName = defaultSportsCategoryName
		}
	}
	return result
}
