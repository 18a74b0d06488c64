package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Storage holds fetched payloads keyed by source so that a failed refresh
// can fall back to the last good copy.
type Storage interface {
	Get(key string) (*Entry, error)
	Set(key string, content []byte) error
	IsExpired(key string, ttl time.Duration) (bool, error)
}

// Entry is a stored payload plus the instant it was written, which drives
// TTL checks.
type Entry struct {
	Content   []byte    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// FileStorage implements Storage using the file system. It backs caches that
// should survive a restart, like playlist and data-file payloads.
type FileStorage struct {
	baseDir string
}

// NewFileStorage creates a file-backed store rooted at baseDir, creating the
// directory if needed.
func NewFileStorage(baseDir string) (*FileStorage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("cache directory cannot be empty")
	}

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &FileStorage{
		baseDir: baseDir,
	}, nil
}

// Get returns the stored entry for key.
func (fs *FileStorage) Get(key string) (*Entry, error) {
	filePath := fs.entryPath(key)

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("cache entry not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache entry: %w", err)
	}

	return &entry, nil
}

// Set stores content under key, stamped with the current time.
func (fs *FileStorage) Set(key string, content []byte) error {
	entry := Entry{
		Content:   content,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	filePath := fs.entryPath(key)

	// The base directory may have been removed since startup.
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create cache subdirectory: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}

// IsExpired reports whether the entry for key is older than ttl. A missing
// entry counts as expired.
func (fs *FileStorage) IsExpired(key string, ttl time.Duration) (bool, error) {
	entry, err := fs.Get(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, nil
		}
		return false, fmt.Errorf("failed to check expiration: %w", err)
	}

	age := time.Since(entry.Timestamp)
	return age > ttl, nil
}

// entryPath maps a key to its file. Keys are hashed so arbitrary URLs make
// safe filenames.
func (fs *FileStorage) entryPath(key string) string {
	hash := sha256.Sum256([]byte(key))
	filename := hex.EncodeToString(hash[:]) + ".json"
	return filepath.Join(fs.baseDir, filename)
}

// PayloadKey derives the cache key for a source URL. The URL itself is the
// key; hashing happens at the storage layer.
func PayloadKey(url string) string {
	return url
}
