// ordered_set.go - read-only set preserving definition order
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

// OrderedSet is an immutable membership table whose iteration order and
// positional accessors follow the order members were defined in; it is
// an OrderedMap with no values.
//
// The zero value is an empty set.
type OrderedSet[K Key[K]] struct {
	m OrderedMap[K, struct{}]
}

// NewOrderedSet assembles an OrderedSet from precomputed state; keys
// are in definition order and idxs is the generator's slot permutation.
// This is the embedding surface for generated code - most callers want
// OrderedSetBuilder instead.
func NewOrderedSet[K Key[K]](key uint64, disps []Displacement, idxs []int, keys []K) *OrderedSet[K] {
	entries := make([]Entry[K, struct{}], len(keys))
	for i := range keys {
		entries[i].Key = keys[i]
	}
	return &OrderedSet[K]{
		m: OrderedMap[K, struct{}]{key: key, disps: disps, idxs: idxs, entries: entries},
	}
}

// Len returns the number of members.
func (s *OrderedSet[K]) Len() int {
	return s.m.Len()
}

// IsEmpty returns true if the set has no members.
func (s *OrderedSet[K]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// Contains reports whether 'key' is a member.
func (s *OrderedSet[K]) Contains(key K) bool {
	return s.m.Contains(key)
}

// Get returns the set's internal instance of the given key.
func (s *OrderedSet[K]) Get(key K) (*K, bool) {
	return s.m.GetKey(key)
}

// GetIndex returns the position 'key' had in the definition list.
func (s *OrderedSet[K]) GetIndex(key K) (int, bool) {
	return s.m.GetIndex(key)
}

// Index returns the member at definition position i.
func (s *OrderedSet[K]) Index(i int) (*K, bool) {
	k, _, ok := s.m.Index(i)
	return k, ok
}

// Iter iterates over the members in definition order.
func (s *OrderedSet[K]) Iter() iter.Seq[K] {
	return s.m.Keys()
}

// IsDisjoint returns true if other shares no members with s.
func (s *OrderedSet[K]) IsDisjoint(other *OrderedSet[K]) bool {
	for k := range s.Iter() {
		if other.Contains(k) {
			return false
		}
	}
	return true
}

// IsSubset returns true if other contains every member of s.
func (s *OrderedSet[K]) IsSubset(other *OrderedSet[K]) bool {
	for k := range s.Iter() {
		if !other.Contains(k) {
			return false
		}
	}
	return true
}

// IsSuperset returns true if s contains every member of other.
func (s *OrderedSet[K]) IsSuperset(other *OrderedSet[K]) bool {
	return other.IsSubset(s)
}

// Equal reports element-wise equality of the backing member arrays.
func (s *OrderedSet[K]) Equal(other *OrderedSet[K]) bool {
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
