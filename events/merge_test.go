package events

import (
	"reflect"
	"testing"
)

func TestMerge_NilExternalReturnsNativeVerbatim(t *testing.T) {
	native := []Event{{ID: "n1"}, {ID: "n2"}, {ID: "n3"}}

	merged := Merge(native, nil)

	if !reflect.DeepEqual(merged, native) {
		t.Errorf("Expected native list unchanged, got %+v", merged)
	}
}

func TestMerge_EmptyExternalKeepsNativeContent(t *testing.T) {
	native := []Event{{ID: "n1"}, {ID: "n2"}}

	merged := Merge(native, []Event{})

	if len(merged) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(merged))
	}
	if merged[0].ID != "n1" || merged[1].ID != "n2" {
		t.Errorf("Expected native order preserved, got %+v", merged)
	}
}

func TestMerge_ExternalWinsOnCollision(t *testing.T) {
	native := []Event{
		{ID: "1", Title: "native one"},
		{ID: "2", Title: "native two"},
	}
	external := []Event{
		{ID: "2", Title: "external two"},
		{ID: "3", Title: "external three"},
	}

	merged := Merge(native, external)

	if len(merged) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(merged))
	}

	// External events first, in feed order.
	if merged[0].ID != "2" || merged[0].Title != "external two" {
		t.Errorf("Expected external event to win collision, got %+v", merged[0])
	}
	if merged[1].ID != "3" {
		t.Errorf("Expected external event second, got %+v", merged[1])
	}
	if merged[2].ID != "1" || merged[2].Title != "native one" {
		t.Errorf("Expected non-colliding native event last, got %+v", merged[2])
	}

	// Exactly one event per id.
	seen := make(map[string]int)
	for _, e := range merged {
		seen[e.ID]++
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("Expected id %s exactly once, got %d", id, count)
		}
	}
}

func TestDeriveCategories_SynthesizesFromExternalEvents(t *testing.T) {
	native := []EventCategory{{ID: "c1", Name: "Football", Slug: "football"}}
	external := []Event{
		{ID: "1", Category: "Football"},
		{ID: "2", Category: "Cricket"},
		{ID: "3", Category: "Cricket"},
	}

	derived := DeriveCategories(native, external)

	if len(derived) != 2 {
		t.Fatalf("Expected 2 categories, got %d: %+v", len(derived), derived)
	}
	if derived[0].ID != "c1" {
		t.Errorf("Expected native category first, got %+v", derived[0])
	}
	if derived[1].ID != "Cricket" || derived[1].Name != "Cricket" || derived[1].Slug != "cricket" {
		t.Errorf("Expected synthesized Cricket category, got %+v", derived[1])
	}
	if derived[1].LogoURL != "" {
		t.Errorf("Expected synthesized category without logo, got %q", derived[1].LogoURL)
	}
}

func TestDeriveCategories_DedupeByNativeName(t *testing.T) {
	// The native category carries a slug-style id, so external events name it
	// by display name. No duplicate may be synthesized for it.
	native := []EventCategory{{ID: "c1", Name: "Football", Slug: "football"}}
	external := []Event{{ID: "1", Category: "Football"}}

	derived := DeriveCategories(native, external)

	if len(derived) != 1 {
		t.Fatalf("Expected 1 category, got %d: %+v", len(derived), derived)
	}
	if derived[0].ID != "c1" {
		t.Errorf("Expected the native category, got %+v", derived[0])
	}
}

func TestDeriveCategories_DedupeByNativeID(t *testing.T) {
	// "Football" is the native category's id here, so the external name must
	// not be synthesized again even though the display name differs.
	native := []EventCategory{{ID: "Football", Name: "Football"}}
	external := []Event{{ID: "1", Category: "Football"}}

	derived := DeriveCategories(native, external)

	if len(derived) != 1 {
		t.Errorf("Expected no duplicate category, got %+v", derived)
	}
}

func TestDeriveCategories_SkipsBlankNames(t *testing.T) {
	external := []Event{
		{ID: "1", Category: ""},
		{ID: "2", Category: "   "},
		{ID: "3", Category: "Tennis"},
	}

	derived := DeriveCategories(nil, external)

	if len(derived) != 1 {
		t.Fatalf("Expected 1 category, got %d", len(derived))
	}
	if derived[0].ID != "Tennis" {
		t.Errorf("Expected Tennis, got %+v", derived[0])
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Cricket":        "cricket",
		"Premier League": "premier_league",
		"UFC Fight Night": "ufc_fight_night",
	}

	for input, expected := range cases {
		if got := Slugify(input); got != expected {
			t.Errorf("Slugify(%q): expected %q, got %q", input, expected, got)
		}
	}
}
