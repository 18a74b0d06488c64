// Package liveevents merges native and external live events into the single
// list the HTTP surface serves.
package liveevents

import (
	"context"

	"github.com/livetvpro/event-manager/events"
	"github.com/livetvpro/event-manager/metrics"
)

// NativeSource is the native store's read side.
type NativeSource interface {
	IsDataLoaded() bool
	GetLiveEvents() []events.Event
	GetEventCategories() []events.EventCategory
}

// ExternalSource supplies external feed events. A nil result means the feed
// is not configured.
type ExternalSource interface {
	Fetch(ctx context.Context) []events.Event
}

// Service combines the two event sources. The external feed is consulted
// first and never gated on native readiness; the native list contributes
// only once its store has loaded a payload.
type Service struct {
	native   NativeSource
	external ExternalSource
}

// NewService creates a live events service.
func NewService(native NativeSource, external ExternalSource) *Service {
	return &Service{native: native, external: external}
}

// GetLiveEvents returns the merged event list.
func (s *Service) GetLiveEvents(ctx context.Context) []events.Event {
	external := s.external.Fetch(ctx)

	native := []events.Event{}
	if s.native.IsDataLoaded() {
		native = s.native.GetLiveEvents()
	}

	merged := events.Merge(native, external)
	metrics.SetMergedEvents(len(merged))

	return merged
}

// GetEventByID returns the event with the given id from the merged list.
func (s *Service) GetEventByID(ctx context.Context, id string) (events.Event, bool) {
	for _, e := range s.GetLiveEvents(ctx) {
		if e.ID == id {
			return e, true
		}
	}
	return events.Event{}, false
}

// GetEventCategories returns the native event categories plus categories
// synthesized from external feed events.
func (s *Service) GetEventCategories(ctx context.Context) []events.EventCategory {
	external := s.external.Fetch(ctx)

	native := []events.EventCategory{}
	if s.native.IsDataLoaded() {
		native = s.native.GetEventCategories()
	}

	result := events.DeriveCategories(native, external)
	if result == nil {
		result = []events.EventCategory{}
	}
	return result
}
