// bimap.go - read-only bidirectional map
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

// BiEntry is one left/right pair in a BiMap's backing array.
type BiEntry[L, R any] struct {
	Left  L
	Right R
}

// BiMap is an immutable bidirectional map: two independent MPHFs index
// the same entry array, one keyed by the left element and one by the
// right. Both sides must be duplicate-free. Iteration follows
// definition order.
//
// The zero value is an empty map.
type BiMap[L Key[L], R Key[R]] struct {
	key0    uint64
	key1    uint64
	disps0  []Displacement
	disps1  []Displacement
	idxs0   []int
	idxs1   []int
	entries []BiEntry[L, R]
}

// NewBiMap assembles a BiMap from two precomputed builder states over
// the same definition-order entry array. This is the embedding surface
// for generated code - most callers want BiMapBuilder instead.
func NewBiMap[L Key[L], R Key[R]](left, right *BuilderState, entries []BiEntry[L, R]) *BiMap[L, R] {
	return &BiMap[L, R]{
		key0:    left.Key,
		key1:    right.Key,
		disps0:  left.Disps,
		disps1:  right.Disps,
		idxs0:   left.Idxs,
		idxs1:   right.Idxs,
		entries: entries,
	}
}

// Len returns the number of entries in the map.
func (m *BiMap[L, R]) Len() int {
	return len(m.entries)
}

// IsEmpty returns true if the map has no entries.
func (m *BiMap[L, R]) IsEmpty() bool {
	return m.Len() == 0
}

func (m *BiMap[L, R]) findLeft(key L) int {
	if len(m.disps0) == 0 {
		return -1
	}

	hs := phfHash(key, m.key0)
	idx := m.idxs0[slotIndex(hs, m.disps0, len(m.idxs0))]
	if m.entries[idx].Left.Equal(key) {
		return idx
	}
	return -1
}

func (m *BiMap[L, R]) findRight(key R) int {
	if len(m.disps1) == 0 {
		return -1
	}

	hs := phfHash(key, m.key1)
	idx := m.idxs1[slotIndex(hs, m.disps1, len(m.idxs1))]
	if m.entries[idx].Right.Equal(key) {
		return idx
	}
	return -1
}

// GetByLeft returns the right element paired with 'key'.
func (m *BiMap[L, R]) GetByLeft(key L) (*R, bool) {
	if i := m.findLeft(key); i >= 0 {
		return &m.entries[i].Right, true
	}
	return nil, false
}

// GetByRight returns the left element paired with 'key'.
func (m *BiMap[L, R]) GetByRight(key R) (*L, bool) {
	if i := m.findRight(key); i >= 0 {
		return &m.entries[i].Left, true
	}
	return nil, false
}

// GetEntryByLeft returns the full pair whose left element is 'key'.
func (m *BiMap[L, R]) GetEntryByLeft(key L) (*L, *R, bool) {
	if i := m.findLeft(key); i >= 0 {
		e := &m.entries[i]
		return &e.Left, &e.Right, true
	}
	return nil, nil, false
}

// GetEntryByRight returns the full pair whose right element is 'key'.
func (m *BiMap[L, R]) GetEntryByRight(key R) (*L, *R, bool) {
	if i := m.findRight(key); i >= 0 {
		e := &m.entries[i]
		return &e.Left, &e.Right, true
	}
	return nil, nil, false
}

// ContainsLeft reports whether some entry has 'key' as its left element.
func (m *BiMap[L, R]) ContainsLeft(key L) bool {
	return m.findLeft(key) >= 0
}

// ContainsRight reports whether some entry has 'key' as its right element.
func (m *BiMap[L, R]) ContainsRight(key R) bool {
	return m.findRight(key) >= 0
}

// Entries iterates over the pairs in definition order.
func (m *BiMap[L, R]) Entries() iter.Seq2[L, R] {
	return func(yield func(L, R) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].Left, m.entries[i].Right) {
				return
			}
		}
	}
}

// Lefts iterates over the left elements in definition order.
func (m *BiMap[L, R]) Lefts() iter.Seq[L] {
	return func(yield func(L) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].Left) {
				return
			}
		}
	}
}

// Rights iterates over the right elements in definition order.
func (m *BiMap[L, R]) Rights() iter.Seq[R] {
	return func(yield func(R) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].Right) {
				return
			}
		}
	}
}
