package cache

import "time"

// MockStorage implements Storage for tests. Unset funcs behave as an empty
// store that never errors.
type MockStorage struct {
	GetFunc       func(key string) (*Entry, error)
	SetFunc       func(key string, content []byte) error
	IsExpiredFunc func(key string, ttl time.Duration) (bool, error)
}

func (m *MockStorage) Get(key string) (*Entry, error) {
	if m.GetFunc != nil {
		return m.GetFunc(key)
	}
	return nil, nil
}

func (m *MockStorage) Set(key string, content []byte) error {
	if m.SetFunc != nil {
		return m.SetFunc(key, content)
	}
	return nil
}

func (m *MockStorage) IsExpired(key string, ttl time.Duration) (bool, error) {
	if m.IsExpiredFunc != nil {
		return m.IsExpiredFunc(key, ttl)
	}
	return false, nil
}
