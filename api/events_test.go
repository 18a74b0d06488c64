package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/livetvpro/event-manager/events"
	"github.com/livetvpro/event-manager/liveevents"
	"github.com/livetvpro/event-manager/logging"
)

func testLogger() *logging.Logger {
	return logging.New(logging.ERROR, "[test]")
}

// fixedNow is the classification instant used across handler tests.
var fixedNow = time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)

func testEventService(external []events.Event, native []events.Event) *liveevents.Service {
	return liveevents.NewService(
		&liveevents.MockNativeSource{
			IsDataLoadedFunc:  func() bool { return true },
			GetLiveEventsFunc: func() []events.Event { return native },
		},
		&liveevents.MockExternalSource{
			FetchFunc: func(ctx context.Context) []events.Event { return external },
		},
	)
}

func TestEventsHandler_List(t *testing.T) {
	external := []events.Event{
		{ID: "live", StartTime: "2024-05-01T17:00:00.000Z", EndTime: "2024-05-01T20:00:00.000Z", Category: "Football"},
		{ID: "upcoming", StartTime: "2024-05-01T19:00:00.000Z", Category: "Cricket"},
	}
	handler := NewEventsHandler(testEventService(external, nil), testLogger(), func() time.Time { return fixedNow })

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var result []EventResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(result))
	}

	if result[0].Status != events.StatusLive {
		t.Errorf("Expected first event LIVE, got %s", result[0].Status)
	}
	if result[0].Display != "01:00:00" {
		t.Errorf("Expected elapsed 01:00:00, got %q", result[0].Display)
	}
	if result[1].Status != events.StatusUpcoming {
		t.Errorf("Expected second event UPCOMING, got %s", result[1].Status)
	}
	if result[1].Display != "01h 00m 00s" {
		t.Errorf("Expected countdown 01h 00m 00s, got %q", result[1].Display)
	}
}

func TestEventsHandler_StatusFilter(t *testing.T) {
	external := []events.Event{
		{ID: "live", StartTime: "2024-05-01T17:00:00.000Z", EndTime: "2024-05-01T20:00:00.000Z"},
		{ID: "upcoming", StartTime: "2024-05-01T19:00:00.000Z"},
		{ID: "recent", StartTime: "2024-05-01T10:00:00.000Z", EndTime: "2024-05-01T12:00:00.000Z"},
	}
	handler := NewEventsHandler(testEventService(external, nil), testLogger(), func() time.Time { return fixedNow })

	tests := []struct {
		filter   string
		expected string
	}{
		{"live", "live"},
		{"UPCOMING", "upcoming"},
		{"recent", "recent"},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/events?status="+tt.filter, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			var result []EventResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if len(result) != 1 {
				t.Fatalf("Expected 1 event, got %d", len(result))
			}
			if result[0].ID != tt.expected {
				t.Errorf("Expected event %q, got %q", tt.expected, result[0].ID)
			}
		})
	}
}

func TestEventsHandler_CategoryFilter(t *testing.T) {
	external := []events.Event{
		{ID: "1", StartTime: "2024-05-01T19:00:00.000Z", Category: "Football", CategoryName: "Football"},
		{ID: "2", StartTime: "2024-05-01T19:00:00.000Z", Category: "Cricket", CategoryName: "Cricket"},
	}
	handler := NewEventsHandler(testEventService(external, nil), testLogger(), func() time.Time { return fixedNow })

	req := httptest.NewRequest(http.MethodGet, "/api/events?category=football", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var result []EventResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(result) != 1 || result[0].ID != "1" {
		t.Errorf("Expected only the football event, got %+v", result)
	}
}

func TestEventsHandler_Get(t *testing.T) {
	external := []events.Event{
		{ID: "42", Title: "The Final", StartTime: "2024-05-01T17:00:00.000Z", EndTime: "2024-05-01T20:00:00.000Z"},
	}
	handler := NewEventsHandler(testEventService(external, nil), testLogger(), func() time.Time { return fixedNow })

	req := httptest.NewRequest(http.MethodGet, "/api/events/42", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var result EventResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result.Title != "The Final" {
		t.Errorf("Expected The Final, got %q", result.Title)
	}
	if result.Status != events.StatusLive {
		t.Errorf("Expected LIVE, got %s", result.Status)
	}
}

func TestEventsHandler_GetNotFound(t *testing.T) {
	handler := NewEventsHandler(testEventService([]events.Event{}, nil), testLogger(), func() time.Time { return fixedNow })

	req := httptest.NewRequest(http.MethodGet, "/api/events/missing", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestEventsHandler_MethodNotAllowed(t *testing.T) {
	handler := NewEventsHandler(testEventService(nil, nil), testLogger(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/events", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", rec.Code)
	}
}

func TestCategoriesHandler(t *testing.T) {
	service := liveevents.NewService(
		&liveevents.MockNativeSource{
			IsDataLoadedFunc: func() bool { return true },
			GetEventCategoriesFunc: func() []events.EventCategory {
				return []events.EventCategory{{ID: "football", Name: "Football", Slug: "football"}}
			},
		},
		&liveevents.MockExternalSource{
			FetchFunc: func(ctx context.Context) []events.Event {
				return []events.Event{{ID: "1", Category: "Darts"}}
			},
		},
	)
	handler := NewCategoriesHandler(service, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var result []events.EventCategory
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(result))
	}
	if result[1].ID != "Darts" || result[1].Slug != "darts" {
		t.Errorf("Expected synthesized Darts category, got %+v", result[1])
	}
}
