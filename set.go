// set.go - read-only set, members stored in slot order
//
// (c) Sudhi Herle 2018
//
// License GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package phf

import "iter"

// Set is an immutable membership table over a fixed set of keys; it is
// a Map with no values. Iteration order is stable but arbitrary; use
// OrderedSet when it must follow definition order.
//
// The zero value is an empty set.
type Set[K Key[K]] struct {
	m Map[K, struct{}]
}

// NewSet assembles a Set from precomputed state; keys must be in slot
// order. This is the embedding surface for generated code - most
// callers want SetBuilder instead.
func NewSet[K Key[K]](key uint64, disps []Displacement, keys []K) *Set[K] {
	entries := make([]Entry[K, struct{}], len(keys))
	for i := range keys {
		entries[i].Key = keys[i]
	}
	return &Set[K]{
		m: Map[K, struct{}]{key: key, disps: disps, entries: entries},
	}
}

// Len returns the number of members.
func (s *Set[K]) Len() int {
	return s.m.Len()
}

// IsEmpty returns true if the set has no members.
func (s *Set[K]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// Contains reports whether 'key' is a member.
func (s *Set[K]) Contains(key K) bool {
	return s.m.Contains(key)
}

// Get returns the set's internal instance of the given key.
func (s *Set[K]) Get(key K) (*K, bool) {
	return s.m.GetKey(key)
}

// Iter iterates over the members in slot order.
func (s *Set[K]) Iter() iter.Seq[K] {
	return s.m.Keys()
}

// IsDisjoint returns true if other shares no members with s.
func (s *Set[K]) IsDisjoint(other *Set[K]) bool {
	for k := range s.Iter() {
		if other.Contains(k) {
			return false
		}
	}
	return true
}

// IsSubset returns true if other contains every member of s.
func (s *Set[K]) IsSubset(other *Set[K]) bool {
	for k := range s.Iter() {
		if !other.Contains(k) {
			return false
		}
	}
	return true
}

// IsSuperset returns true if s contains every member of other.
func (s *Set[K]) IsSuperset(other *Set[K]) bool {
	return other.IsSubset(s)
}

// Equal reports element-wise equality of the backing member arrays.
func (s *Set[K]) Equal(other *Set[K]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i := range s.m.entries {
		if !s.m.entries[i].Key.Equal(other.m.entries[i].Key) {
			return false
		}
	}
	return true
}
