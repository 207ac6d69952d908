package app

import (
	"strings"

	"github.com/tienhung-ho/my-hotel-merger/internal/domain"
)

// IDFilter is one allow-list of identifiers. The zero value matches
// anything.
type IDFilter struct {
	ids map[string]struct{}
}

// ParseIDFilter builds a filter from a comma-separated list. The literal
// "none" (any case) or an empty string means match anything.
func ParseIDFilter(raw string) IDFilter {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "none") {
		return IDFilter{}
	}
	ids := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			ids[p] = struct{}{}
		}
	}
	if len(ids) == 0 {
		return IDFilter{}
	}
	return IDFilter{ids: ids}
}

// Matches reports whether id passes the allow-list.
func (f IDFilter) Matches(id string) bool {
	if f.ids == nil {
		return true
	}
	_, ok := f.ids[id]
	return ok
}

// Wildcard reports whether the filter matches anything.
func (f IDFilter) Wildcard() bool { return f.ids == nil }

// FilterGroups keeps groups passing both allow-lists. Both must match
// independently; an empty result is a valid outcome, not an error.
func FilterGroups(groups []domain.Group, hotels, destinations IDFilter) []domain.Group {
	if hotels.Wildcard() && destinations.Wildcard() {
		return groups
	}
	out := make([]domain.Group, 0, len(groups))
	for _, g := range groups {
		if hotels.Matches(g.Key.HotelID) && destinations.Matches(g.Key.DestinationID) {
			out = append(out, g)
		}
	}
	return out
}
