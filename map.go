// map.go - read-only map, entries stored in slot order
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

// Entry is one key/value pair in a map's backing array.
type Entry[K, V any] struct {
	Key K
	Val V
}

// Map is an immutable lookup table over a fixed set of keys. Entries
// are stored in slot order, so no index indirection is needed on the
// lookup path; iteration order is stable but arbitrary. Use OrderedMap
// when iteration must follow definition order.
//
// The zero value is an empty map. Lookups are pure reads, allocate
// nothing and are safe from any number of goroutines.
type Map[K Key[K], V any] struct {
	key     uint64
	disps   []Displacement
	entries []Entry[K, V]
}

// NewMap assembles a Map from precomputed state; entries must be in
// slot order. This is the embedding surface for generated code - most
// callers want MapBuilder instead.
func NewMap[K Key[K], V any](key uint64, disps []Displacement, entries []Entry[K, V]) *Map[K, V] {
	return &Map[K, V]{
		key:     key,
		disps:   disps,
		entries: entries,
	}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// IsEmpty returns true if the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// find returns the slot owning 'key', or -1 on a miss. The slot
// computation always lands somewhere; the equality check against the
// single candidate entry is what rejects foreign keys.
func (m *Map[K, V]) find(key K) int {
	if len(m.disps) == 0 {
		return -1
	}

	hs := phfHash(key, m.key)
	slot := slotIndex(hs, m.disps, len(m.entries))
	if m.entries[slot].Key.Equal(key) {
		return slot
	}
	return -1
}

// Get returns the value 'key' maps to.
func (m *Map[K, V]) Get(key K) (*V, bool) {
	if i := m.find(key); i >= 0 {
		return &m.entries[i].Val, true
	}
	return nil, false
}

// GetKey returns the map's internal instance of the given key, which
// can be useful for interning schemes.
func (m *Map[K, V]) GetKey(key K) (*K, bool) {
	if i := m.find(key); i >= 0 {
		return &m.entries[i].Key, true
	}
	return nil, false
}

// GetEntry is Get returning both the stored key and the value.
func (m *Map[K, V]) GetEntry(key K) (*K, *V, bool) {
	if i := m.find(key); i >= 0 {
		e := &m.entries[i]
		return &e.Key, &e.Val, true
	}
	return nil, nil, false
}

// Contains reports whether 'key' is in the map.
func (m *Map[K, V]) Contains(key K) bool {
	return m.find(key) >= 0
}

// Entries iterates over the key/value pairs in slot order.
func (m *Map[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].Key, m.entries[i].Val) {
				return
			}
		}
	}
}

// Keys iterates over the keys in slot order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].Key) {
				return
			}
		}
	}
}

// Values iterates over the values in slot order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].Val) {
				return
			}
		}
	}
}

// MapsEqual reports whether two maps hold element-wise equal entry
// arrays. Seed and displacements are derived state and do not
// participate.
func MapsEqual[K Key[K], V comparable](a, b *Map[K, V]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.entries {
		ea, eb := &a.entries[i], &b.entries[i]
		if !ea.Key.Equal(eb.Key) || ea.Val != eb.Val {
			return false
		}
	}
	return true
}
