package common

// Set is an unordered collection of distinct values.
type Set[T comparable] map[T]struct{}

// NewSet builds a set from items. Zero values such as "" are skipped so that
// blank entries in a query or config list never match anything.
func NewSet[T comparable](items ...T) Set[T] {
	var zero T
	set := make(Set[T], len(items))
	for _, item := range items {
		if item == zero {
			continue
		}
		set[item] = struct{}{}
	}
	return set
}

// Has reports whether item is in the set. A nil set contains nothing.
func (s Set[T]) Has(item T) bool {
	_, ok := s[item]
	return ok
}

func (s Set[T]) Len() int {
	return len(s)
}
