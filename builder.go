// builder.go - runtime construction of the containers
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

import (
	"context"
	"fmt"
)

// MapBuilder accumulates key/value pairs and freezes them into a Map.
// Keys must be distinct; duplicates are diagnosed at Freeze time with
// their definition indices.
type MapBuilder[K Key[K], V any] struct {
	keys []K
	vals []V
}

// NewMapBuilder returns an empty Map builder.
func NewMapBuilder[K Key[K], V any]() *MapBuilder[K, V] {
	return &MapBuilder[K, V]{}
}

// Add appends an entry; its position becomes the definition index.
func (b *MapBuilder[K, V]) Add(key K, val V) *MapBuilder[K, V] {
	b.keys = append(b.keys, key)
	b.vals = append(b.vals, val)
	return b
}

// Len returns the number of entries added so far.
func (b *MapBuilder[K, V]) Len() int {
	return len(b.keys)
}

// Freeze builds the minimal perfect hash and returns the finished map.
func (b *MapBuilder[K, V]) Freeze() (*Map[K, V], error) {
	st, err := generate(b.keys)
	if err != nil {
		return nil, err
	}
	return b.assemble(st), nil
}

// FreezeParallel is Freeze with the seed search spread across nw
// workers (GOMAXPROCS if nw <= 0); the result is identical to
// Freeze()'s.
func (b *MapBuilder[K, V]) FreezeParallel(ctx context.Context, nw int) (*Map[K, V], error) {
	st, err := generateParallel(ctx, b.keys, nw)
	if err != nil {
		return nil, err
	}
	return b.assemble(st), nil
}

func (b *MapBuilder[K, V]) assemble(st *BuilderState) *Map[K, V] {
	// slot order: entries[slot] is the winning entry for that slot, so
	// the lookup path needs no index table
	entries := make([]Entry[K, V], len(b.keys))
	for slot, idx := range st.Idxs {
		entries[slot] = Entry[K, V]{Key: b.keys[idx], Val: b.vals[idx]}
	}
	return &Map[K, V]{key: st.Key, disps: st.Disps, entries: entries}
}

// OrderedMapBuilder accumulates key/value pairs and freezes them into
// an OrderedMap.
type OrderedMapBuilder[K Key[K], V any] struct {
	keys []K
	vals []V
}

// NewOrderedMapBuilder returns an empty OrderedMap builder.
func NewOrderedMapBuilder[K Key[K], V any]() *OrderedMapBuilder[K, V] {
	return &OrderedMapBuilder[K, V]{}
}

// Add appends an entry; its position becomes the definition index.
func (b *OrderedMapBuilder[K, V]) Add(key K, val V) *OrderedMapBuilder[K, V] {
	b.keys = append(b.keys, key)
	b.vals = append(b.vals, val)
	return b
}

// Len returns the number of entries added so far.
func (b *OrderedMapBuilder[K, V]) Len() int {
	return len(b.keys)
}

// Freeze builds the minimal perfect hash and returns the finished map.
func (b *OrderedMapBuilder[K, V]) Freeze() (*OrderedMap[K, V], error) {
	st, err := generate(b.keys)
	if err != nil {
		return nil, err
	}
	return b.assemble(st), nil
}

// FreezeParallel is Freeze with the seed search spread across nw
// workers (GOMAXPROCS if nw <= 0); the result is identical to
// Freeze()'s.
func (b *OrderedMapBuilder[K, V]) FreezeParallel(ctx context.Context, nw int) (*OrderedMap[K, V], error) {
	st, err := generateParallel(ctx, b.keys, nw)
	if err != nil {
		return nil, err
	}
	return b.assemble(st), nil
}

func (b *OrderedMapBuilder[K, V]) assemble(st *BuilderState) *OrderedMap[K, V] {
	// definition order; the idxs table carries slot -> definition index
	entries := make([]Entry[K, V], len(b.keys))
	for i := range b.keys {
		entries[i] = Entry[K, V]{Key: b.keys[i], Val: b.vals[i]}
	}
	return &OrderedMap[K, V]{key: st.Key, disps: st.Disps, idxs: st.Idxs, entries: entries}
}

// SetBuilder accumulates keys and freezes them into a Set.
type SetBuilder[K Key[K]] struct {
	m MapBuilder[K, struct{}]
}

// NewSetBuilder returns an empty Set builder.
func NewSetBuilder[K Key[K]]() *SetBuilder[K] {
	return &SetBuilder[K]{}
}

// Add appends a member; its position becomes the definition index.
func (b *SetBuilder[K]) Add(key K) *SetBuilder[K] {
	b.m.Add(key, struct{}{})
	return b
}

// Len returns the number of members added so far.
func (b *SetBuilder[K]) Len() int {
	return b.m.Len()
}

// Freeze builds the minimal perfect hash and returns the finished set.
func (b *SetBuilder[K]) Freeze() (*Set[K], error) {
	m, err := b.m.Freeze()
	if err != nil {
		return nil, err
	}
	return &Set[K]{m: *m}, nil
}

// FreezeParallel is Freeze with a parallel seed search; see
// MapBuilder.FreezeParallel.
func (b *SetBuilder[K]) FreezeParallel(ctx context.Context, nw int) (*Set[K], error) {
	m, err := b.m.FreezeParallel(ctx, nw)
	if err != nil {
		return nil, err
	}
	return &Set[K]{m: *m}, nil
}

// OrderedSetBuilder accumulates keys and freezes them into an
// OrderedSet.
type OrderedSetBuilder[K Key[K]] struct {
	m OrderedMapBuilder[K, struct{}]
}

// NewOrderedSetBuilder returns an empty OrderedSet builder.
func NewOrderedSetBuilder[K Key[K]]() *OrderedSetBuilder[K] {
	return &OrderedSetBuilder[K]{}
}

// Add appends a member; its position becomes the definition index.
func (b *OrderedSetBuilder[K]) Add(key K) *OrderedSetBuilder[K] {
	b.m.Add(key, struct{}{})
	return b
}

// Len returns the number of members added so far.
func (b *OrderedSetBuilder[K]) Len() int {
	return b.m.Len()
}

// Freeze builds the minimal perfect hash and returns the finished set.
func (b *OrderedSetBuilder[K]) Freeze() (*OrderedSet[K], error) {
	m, err := b.m.Freeze()
	if err != nil {
		return nil, err
	}
	return &OrderedSet[K]{m: *m}, nil
}

// FreezeParallel is Freeze with a parallel seed search; see
// MapBuilder.FreezeParallel.
func (b *OrderedSetBuilder[K]) FreezeParallel(ctx context.Context, nw int) (*OrderedSet[K], error) {
	m, err := b.m.FreezeParallel(ctx, nw)
	if err != nil {
		return nil, err
	}
	return &OrderedSet[K]{m: *m}, nil
}

// BiMapBuilder accumulates left/right pairs and freezes them into a
// BiMap. Both the left keys and the right keys must be duplicate-free.
type BiMapBuilder[L Key[L], R Key[R]] struct {
	lefts  []L
	rights []R
}

// NewBiMapBuilder returns an empty BiMap builder.
func NewBiMapBuilder[L Key[L], R Key[R]]() *BiMapBuilder[L, R] {
	return &BiMapBuilder[L, R]{}
}

// Add appends a pair; its position becomes the definition index.
func (b *BiMapBuilder[L, R]) Add(left L, right R) *BiMapBuilder[L, R] {
	b.lefts = append(b.lefts, left)
	b.rights = append(b.rights, right)
	return b
}

// Len returns the number of pairs added so far.
func (b *BiMapBuilder[L, R]) Len() int {
	return len(b.lefts)
}

// Freeze builds one minimal perfect hash per direction and returns the
// finished map.
func (b *BiMapBuilder[L, R]) Freeze() (*BiMap[L, R], error) {
	stL, err := generate(b.lefts)
	if err != nil {
		return nil, fmt.Errorf("phf: left keys: %w", err)
	}
	stR, err := generate(b.rights)
	if err != nil {
		return nil, fmt.Errorf("phf: right keys: %w", err)
	}
	return NewBiMap(stL, stR, b.entries()), nil
}

// FreezeParallel is Freeze with parallel seed searches; see
// MapBuilder.FreezeParallel.
func (b *BiMapBuilder[L, R]) FreezeParallel(ctx context.Context, nw int) (*BiMap[L, R], error) {
	stL, err := generateParallel(ctx, b.lefts, nw)
	if err != nil {
		return nil, fmt.Errorf("phf: left keys: %w", err)
	}
	stR, err := generateParallel(ctx, b.rights, nw)
	if err != nil {
		return nil, fmt.Errorf("phf: right keys: %w", err)
	}
	return NewBiMap(stL, stR, b.entries()), nil
}

func (b *BiMapBuilder[L, R]) entries() []BiEntry[L, R] {
	entries := make([]BiEntry[L, R], len(b.lefts))
	for i := range b.lefts {
		entries[i] = BiEntry[L, R]{Left: b.lefts[i], Right: b.rights[i]}
	}
	return entries
}
