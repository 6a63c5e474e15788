// Package transfer implements the paired available/assigned list used to
// assign roles and permissions. Items are identified by a stable key so lists
// rebuilt from fresh API responses keep their membership.
package transfer

import (
	"regexp"
	"slices"
)

// Item is anything that can be moved between the two lists.
type Item interface {
	GetID() string
	GetDisplayName() string
}

// Side selects one of the two lists.
type Side string

const (
	Available Side = "available"
	Assigned  Side = "assigned"
)

// Valid reports whether s names one of the two lists.
func (s Side) Valid() bool {
	return s == Available || s == Assigned
}

// Move appends every checked item that is not already in to, then removes
// every element of the new destination from from. Relative order is kept and
// newly added items follow the order of checked.
func Move[T Item](checked, from, to []T) ([]T, []T) {
	nextTo := slices.Clone(to)
	present := keySet(to)

	for _, item := range checked {
		if _, exists := present[item.GetID()]; exists {
			continue
		}
		present[item.GetID()] = struct{}{}
		nextTo = append(nextTo, item)
	}

	nextFrom := make([]T, 0, len(from))
	for _, item := range from {
		if _, moved := present[item.GetID()]; moved {
			continue
		}
		nextFrom = append(nextFrom, item)
	}

	return nextFrom, nextTo
}

// Filter returns the items whose display name contains query, ignoring case.
// The query is matched literally. An empty query returns all items.
func Filter[T Item](items []T, query string) []T {
	if len(query) == 0 {
		return slices.Clone(items)
	}

	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))

	filtered := []T{}
	for _, item := range items {
		if re.MatchString(item.GetDisplayName()) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func keySet[T Item](items []T) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item.GetID()] = struct{}{}
	}
	return set
}
