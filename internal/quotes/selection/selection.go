// Package selection tracks which catalog services a visitor has picked while
// building a quote. The set is unordered internally; ordered views are always
// derived from catalog order so the quote reads the same regardless of the
// order services were clicked in.
package selection

import (
	"pxplabs_backend/internal/catalog"
	"pxplabs_backend/platform/apperr"
)

// Set is a selection of catalog services keyed by service id, plus a
// transient browse cursor over categories.
type Set struct {
	picked   map[string]struct{}
	browsing string
}

// New creates an empty selection set.
func New() *Set {
	return &Set{picked: make(map[string]struct{})}
}

// FromIDs builds a selection set from a list of service ids. Unknown ids are
// rejected; duplicates collapse into a single selection.
func FromIDs(ids []string) (*Set, error) {
	set := New()
	for _, id := range ids {
		if _, ok := catalog.ServiceByID(id); !ok {
			return nil, apperr.Validation("unknown service: " + id)
		}
		set.picked[id] = struct{}{}
	}
	return set, nil
}

// Toggle adds the service if absent and removes it if present. Toggling the
// same id twice returns the set to its previous state. Ids are not validated
// here: unknown ids simply never surface in the derived views, which only
// walk the catalog. Callers crossing a trust boundary use FromIDs instead.
func (s *Set) Toggle(id string) {
	if _, ok := s.picked[id]; ok {
		delete(s.picked, id)
	} else {
		s.picked[id] = struct{}{}
	}
}

// BrowseCategory sets the transient browse cursor; an empty id clears it.
// Browsing never deselects anything.
func (s *Set) BrowseCategory(categoryID string) {
	s.browsing = categoryID
}

// Browsing returns the current browse cursor, or "" when none is set.
func (s *Set) Browsing() string {
	return s.browsing
}

// Has reports whether the service id is selected.
func (s *Set) Has(id string) bool {
	_, ok := s.picked[id]
	return ok
}

// Count returns the number of selected services.
func (s *Set) Count() int {
	return len(s.picked)
}

// Clear removes all selections.
func (s *Set) Clear() {
	s.picked = make(map[string]struct{})
}

// Services returns the selected services in catalog order: categories in
// display order, services in their in-category order.
func (s *Set) Services() []catalog.Service {
	out := make([]catalog.Service, 0, len(s.picked))
	for _, cat := range catalog.Categories {
		for _, svc := range cat.Services {
			if s.Has(svc.ID) {
				out = append(out, svc)
			}
		}
	}
	return out
}

// ByCategory returns the selected services grouped by owning category, with
// both groups and members in catalog order. Categories with no selected
// services are omitted.
func (s *Set) ByCategory() []CategoryGroup {
	groups := make([]CategoryGroup, 0)
	for _, cat := range catalog.Categories {
		var members []catalog.Service
		for _, svc := range cat.Services {
			if s.Has(svc.ID) {
				members = append(members, svc)
			}
		}
		if len(members) > 0 {
			groups = append(groups, CategoryGroup{Category: cat, Services: members})
		}
	}
	return groups
}

// CategoryGroup pairs a category with its selected services.
type CategoryGroup struct {
	Category catalog.Category
	Services []catalog.Service
}
