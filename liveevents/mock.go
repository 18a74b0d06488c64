package liveevents

import (
	"context"

	"github.com/livetvpro/event-manager/events"
)

// MockNativeSource is a mock implementation of NativeSource for testing
type MockNativeSource struct {
	IsDataLoadedFunc       func() bool
	GetLiveEventsFunc      func() []events.Event
	GetEventCategoriesFunc func() []events.EventCategory
}

// IsDataLoaded implements NativeSource.IsDataLoaded
func (m *MockNativeSource) IsDataLoaded() bool {
	if m.IsDataLoadedFunc != nil {
		return m.IsDataLoadedFunc()
	}
	return false
}

// GetLiveEvents implements NativeSource.GetLiveEvents
func (m *MockNativeSource) GetLiveEvents() []events.Event {
	if m.GetLiveEventsFunc != nil {
		return m.GetLiveEventsFunc()
	}
	return []events.Event{}
}

// GetEventCategories implements NativeSource.GetEventCategories
func (m *MockNativeSource) GetEventCategories() []events.EventCategory {
	if m.GetEventCategoriesFunc != nil {
		return m.GetEventCategoriesFunc()
	}
	return []events.EventCategory{}
}

// MockExternalSource is a mock implementation of ExternalSource for testing
type MockExternalSource struct {
	FetchFunc func(ctx context.Context) []events.Event
}

// Fetch implements ExternalSource.Fetch
func (m *MockExternalSource) Fetch(ctx context.Context) []events.Event {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return nil
}
