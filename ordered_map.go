// ordered_map.go - read-only map preserving definition order
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

// OrderedMap is an immutable lookup table whose iteration order and
// positional accessors follow the order entries were defined in. It
// carries one extra index table relative to Map: the hash path yields a
// slot, idxs[slot] yields the definition index, and the entry array -
// kept in definition order - is dereferenced once.
//
// The zero value is an empty map. Lookups are pure reads, allocate
// nothing and are safe from any number of goroutines.
type OrderedMap[K Key[K], V any] struct {
	key     uint64
	disps   []Displacement
	idxs    []int
	entries []Entry[K, V]
}

// NewOrderedMap assembles an OrderedMap from precomputed state; entries
// are in definition order and idxs is the generator's slot permutation.
// This is the embedding surface for generated code - most callers want
// OrderedMapBuilder instead.
func NewOrderedMap[K Key[K], V any](key uint64, disps []Displacement, idxs []int, entries []Entry[K, V]) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		key:     key,
		disps:   disps,
		idxs:    idxs,
		entries: entries,
	}
}

// Len returns the number of entries in the map.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.entries)
}

// IsEmpty returns true if the map has no entries.
func (m *OrderedMap[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// find returns the definition index of 'key', or -1 on a miss.
func (m *OrderedMap[K, V]) find(key K) int {
	if len(m.disps) == 0 {
		return -1
	}

	hs := phfHash(key, m.key)
	slot := slotIndex(hs, m.disps, len(m.idxs))
	idx := m.idxs[slot]
	if m.entries[idx].Key.Equal(key) {
		return idx
	}
	return -1
}

// Get returns the value 'key' maps to.
func (m *OrderedMap[K, V]) Get(key K) (*V, bool) {
	if i := m.find(key); i >= 0 {
		return &m.entries[i].Val, true
	}
	return nil, false
}

// GetKey returns the map's internal instance of the given key.
func (m *OrderedMap[K, V]) GetKey(key K) (*K, bool) {
	if i := m.find(key); i >= 0 {
		return &m.entries[i].Key, true
	}
	return nil, false
}

// GetEntry is Get returning both the stored key and the value.
func (m *OrderedMap[K, V]) GetEntry(key K) (*K, *V, bool) {
	if i := m.find(key); i >= 0 {
		e := &m.entries[i]
		return &e.Key, &e.Val, true
	}
	return nil, nil, false
}

// Contains reports whether 'key' is in the map.
func (m *OrderedMap[K, V]) Contains(key K) bool {
	return m.find(key) >= 0
}

// GetIndex returns the position 'key' had in the definition list.
func (m *OrderedMap[K, V]) GetIndex(key K) (int, bool) {
	if i := m.find(key); i >= 0 {
		return i, true
	}
	return 0, false
}

// Index returns the key and value at definition position i.
func (m *OrderedMap[K, V]) Index(i int) (*K, *V, bool) {
	if i < 0 || i >= len(m.entries) {
		return nil, nil, false
	}
	e := &m.entries[i]
	return &e.Key, &e.Val, true
}

// Entries iterates over the key/value pairs in definition order.
func (m *OrderedMap[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].Key, m.entries[i].Val) {
				return
			}
		}
	}
}

// Keys iterates over the keys in definition order.
func (m *OrderedMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].Key) {
				return
			}
		}
	}
}

// Values iterates over the values in definition order.
func (m *OrderedMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].Val) {
				return
			}
		}
	}
}

// OrderedMapsEqual reports whether two maps hold element-wise equal
// entry arrays. Seed, displacements and the index table are derived
// state and do not participate.
func OrderedMapsEqual[K Key[K], V comparable](a, b *OrderedMap[K, V]) bool {
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
