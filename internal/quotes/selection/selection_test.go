package selection

import (
	"testing"
)

func TestToggleTwiceIsIdempotent(t *testing.T) {
	set := New()

	set.Toggle("logo")
	if !set.Has("logo") {
		t.Fatal("expected logo selected after first toggle")
	}

	set.Toggle("logo")
	if set.Has("logo") {
		t.Fatal("expected logo deselected after second toggle")
	}
	if set.Count() != 0 {
		t.Fatalf("expected empty set, got %d", set.Count())
	}
}

func TestToggleUnknownIDNeverSurfaces(t *testing.T) {
	set := New()
	set.Toggle("no-such-service")

	if len(set.Services()) != 0 {
		t.Fatal("expected unknown id absent from derived services")
	}
	if len(set.ByCategory()) != 0 {
		t.Fatal("expected unknown id absent from category groups")
	}
}

func TestBrowseCategoryDoesNotDeselect(t *testing.T) {
	set := New()
	set.Toggle("logo")

	set.BrowseCategory("video")
	if set.Browsing() != "video" {
		t.Fatalf("expected browse cursor video, got %q", set.Browsing())
	}
	if !set.Has("logo") {
		t.Fatal("expected browsing to leave selection untouched")
	}

	set.BrowseCategory("")
	if set.Browsing() != "" {
		t.Fatal("expected browse cursor cleared")
	}
}

func TestServicesReturnCatalogOrder(t *testing.T) {
	// Select in reverse catalog order; the derived view must not care.
	set, err := FromIDs([]string{"logo", "reel", "single-page"})
	if err != nil {
		t.Fatalf("from ids: %v", err)
	}

	services := set.Services()
	if len(services) != 3 {
		t.Fatalf("expected 3 services, got %d", len(services))
	}

	expected := []string{"single-page", "reel", "logo"}
	for i, id := range expected {
		if services[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, services[i].ID)
		}
	}
}

func TestFromIDsCollapsesDuplicates(t *testing.T) {
	set, err := FromIDs([]string{"logo", "logo", "logo"})
	if err != nil {
		t.Fatalf("from ids: %v", err)
	}
	if set.Count() != 1 {
		t.Fatalf("expected 1 selection, got %d", set.Count())
	}
}

func TestFromIDsRejectsUnknown(t *testing.T) {
	if _, err := FromIDs([]string{"logo", "bogus"}); err == nil {
		t.Fatal("expected error for unknown service id")
	}
}

func TestByCategoryGroupsAndOmitsEmpty(t *testing.T) {
	set, err := FromIDs([]string{"logo", "poster", "reel"})
	if err != nil {
		t.Fatalf("from ids: %v", err)
	}

	groups := set.ByCategory()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Category.ID != "video" {
		t.Fatalf("expected video group first, got %s", groups[0].Category.ID)
	}
	if groups[1].Category.ID != "design" || len(groups[1].Services) != 2 {
		t.Fatalf("expected design group with 2 services, got %s with %d",
			groups[1].Category.ID, len(groups[1].Services))
	}
}
