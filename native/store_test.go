package native

import (
	"path/filepath"
	"testing"

	"go.etcd.io/bbolt"
)

// setupTestDB creates a temporary BoltDB instance for testing.
func setupTestDB(t *testing.T) *bbolt.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

const testPayload = `{
	"categories": [{"id":"cat1","name":"Sports","slug":"sports","order":1}],
	"channels": [{"id":"ch1","name":"Channel One","categoryId":"cat1","categoryName":"Sports","streamUrl":"http://example.com/1.m3u8"}],
	"live_events": [{"id":"ev1","category":"Football","startTime":"2024-05-01T17:30:00.000Z","links":[]}],
	"event_categories": [{"id":"ec1","name":"Football","slug":"football"}],
	"sports": [
		{"id":"sp1","name":"Sky Sports","categoryId":"existing","categoryName":"Existing"},
		{"id":"sp2","name":"ESPN"}
	]
}`

func TestNewStore(t *testing.T) {
	t.Run("creates store and bucket successfully", func(t *testing.T) {
		db := setupTestDB(t)

		store, err := NewStore(db)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if store == nil {
			t.Fatal("expected non-nil store")
		}

		err = db.View(func(tx *bbolt.Tx) error {
			if tx.Bucket([]byte(nativeBucket)) == nil {
				t.Error("expected native data bucket to exist")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("failed to verify bucket: %v", err)
		}
	})

	t.Run("returns error for nil database", func(t *testing.T) {
		if _, err := NewStore(nil); err == nil {
			t.Fatal("expected error for nil database")
		}
	})
}

func TestStoreData(t *testing.T) {
	t.Run("stores valid payload", func(t *testing.T) {
		db := setupTestDB(t)
		store, err := NewStore(db)
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}

		if err := store.StoreData([]byte(testPayload)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !store.IsDataLoaded() {
			t.Error("expected data to be loaded")
		}
	})

	t.Run("rejects malformed payload", func(t *testing.T) {
		db := setupTestDB(t)
		store, _ := NewStore(db)

		if err := store.StoreData([]byte("not json")); err == nil {
			t.Error("expected error for malformed payload")
		}
		if store.IsDataLoaded() {
			t.Error("expected data not to be loaded after rejected payload")
		}
	})

	t.Run("missing sections become empty lists", func(t *testing.T) {
		db := setupTestDB(t)
		store, _ := NewStore(db)

		if err := store.StoreData([]byte(`{"channels":[]}`)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if got := store.GetCategories(); len(got) != 0 {
			t.Errorf("expected 0 categories, got %d", len(got))
		}
		if got := store.GetLiveEvents(); len(got) != 0 {
			t.Errorf("expected 0 live events, got %d", len(got))
		}
	})
}

func TestIsDataLoaded_EmptyStore(t *testing.T) {
	db := setupTestDB(t)
	store, _ := NewStore(db)

	if store.IsDataLoaded() {
		t.Error("expected empty store to report not loaded")
	}
}

func TestGetters(t *testing.T) {
	db := setupTestDB(t)
	store, _ := NewStore(db)

	if err := store.StoreData([]byte(testPayload)); err != nil {
		t.Fatalf("failed to store payload: %v", err)
	}

	t.Run("categories", func(t *testing.T) {
		categories := store.GetCategories()
		if len(categories) != 1 {
			t.Fatalf("expected 1 category, got %d", len(categories))
		}
		if categories[0].Slug != "sports" {
			t.Errorf("expected slug sports, got %q", categories[0].Slug)
		}
	})

	t.Run("channels", func(t *testing.T) {
		chs := store.GetChannels()
		if len(chs) != 1 {
			t.Fatalf("expected 1 channel, got %d", len(chs))
		}
		if chs[0].Name != "Channel One" {
			t.Errorf("expected Channel One, got %q", chs[0].Name)
		}
	})

	t.Run("live events", func(t *testing.T) {
		evts := store.GetLiveEvents()
		if len(evts) != 1 {
			t.Fatalf("expected 1 live event, got %d", len(evts))
		}
		if evts[0].ID != "ev1" {
			t.Errorf("expected event ev1, got %q", evts[0].ID)
		}
	})

	t.Run("event categories", func(t *testing.T) {
		cats := store.GetEventCategories()
		if len(cats) != 1 {
			t.Fatalf("expected 1 event category, got %d", len(cats))
		}
		if cats[0].Name != "Football" {
			t.Errorf("expected Football, got %q", cats[0].Name)
		}
	})

	t.Run("sports default category", func(t *testing.T) {
		sports := store.GetSports()
		if len(sports) != 2 {
			t.Fatalf("expected 2 sports channels, got %d", len(sports))
		}
		if sports[0].CategoryID != "existing" {
			t.Errorf("expected existing category kept, got %q", sports[0].CategoryID)
		}
		if sports[1].CategoryID != defaultSportsCategoryID {
			t.Errorf("expected default category id, got %q", sports[1].CategoryID)
		}
		if sports[1].CategoryName != defaultSportsCategoryName {
			t.Errorf("expected default category name, got %q", sports[1].CategoryName)
		}
	})
}

func TestGetters_EmptyStore(t *testing.T) {
	db := setupTestDB(t)
	store, _ := NewStore(db)

	if got := store.GetCategories(); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil categories, got %v", got)
	}
	if got := store.GetChannels(); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil channels, got %v", got)
	}
	if got := store.GetLiveEvents(); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil live events, got %v", got)
	}
	if got := store.GetSports(); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil sports, got %v", got)
	}
}

func TestStoreData_ReplacesPreviousPayload(t *testing.T) {
	db := setupTestDB(t)
	store, _ := NewStore(db)

	if err := store.StoreData([]byte(testPayload)); err != nil {
		t.Fatalf("failed to store payload: %v", err)
	}
	if err := store.StoreData([]byte(`{"channels":[],"live_events":[]}`)); err != nil {
		t.Fatalf("failed to store second payload: %v", err)
	}

	if got := store.GetChannels(); len(got) != 0 {
		t.Errorf("expected channels replaced with empty list, got %d", len(got))
	}
}
