// Package types holds small generic containers shared across packages.
package types

// Set is a hash set of comparable values. The zero value is not usable;
// create sets with NewSet.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding the given values.
func NewSet[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	s.Add(values...)
	return s
}

// Add inserts values into the set.
func (s Set[T]) Add(values ...T) {
	for _, v := range values {
		s[v] = struct{}{}
	}
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}
