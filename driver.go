// driver.go - retry harnesses around the generator
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
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// generate is the serial driver: duplicate pre-check, then at most
// _MaxGenerations candidate seeds from the fixed wyrand stream.
func generate[K Key[K]](keys []K) (*BuilderState, error) {
	if err := checkDuplicates(keys); err != nil {
		return nil, err
	}

	rng := newWyRand(_FixedSeed)
	var seed uint64
	for try := 0; try < _MaxGenerations; try++ {
		seed = rng.next()
		if st, ok := tryGenerate(hashAll(keys, seed), seed); ok {
			return st, nil
		}
	}

	return nil, &SeedExhaustedError{Seed: seed, Attempts: _MaxGenerations}
}

// generateParallel evaluates the same candidate-seed sequence across nw
// workers and returns the state of the lowest successful attempt, so
// its output is byte-identical to generate()'s. Useful when N is large
// enough that single-seed attempts take real time. nw <= 0 means
// GOMAXPROCS.
func generateParallel[K Key[K]](ctx context.Context, keys []K, nw int) (*BuilderState, error) {
	if err := checkDuplicates(keys); err != nil {
		return nil, err
	}

	if nw <= 0 {
		nw = runtime.GOMAXPROCS(0)
	}

	// attempt seeds are fixed up front; workers only race over who
	// evaluates which attempt
	seeds := make([]uint64, _MaxGenerations)
	rng := newWyRand(_FixedSeed)
	for i := range seeds {
		seeds[i] = rng.next()
	}

	var mu sync.Mutex
	var next int
	best := -1
	var bestState *BuilderState

	// hand out the next attempt, or -1 once the sequence is exhausted
	// or every remaining attempt is above a known success
	take := func() int {
		mu.Lock()
		defer mu.Unlock()
		if next >= len(seeds) || (best >= 0 && next > best) {
			return -1
		}
		i := next
		next++
		return i
	}

	record := func(i int, st *BuilderState) {
		mu.Lock()
		defer mu.Unlock()
		if best < 0 || i < best {
			best = i
			bestState = st
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < nw; w++ {
		g.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				i := take()
				if i < 0 {
					return nil
				}
				if st, ok := tryGenerate(hashAll(keys, seeds[i]), seeds[i]); ok {
					record(i, st)
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if bestState == nil {
		return nil, &SeedExhaustedError{Seed: seeds[len(seeds)-1], Attempts: len(seeds)}
	}
	return bestState, nil
}

// checkDuplicates hashes every key under the (0, 0) seed, sorts the
// digests and compares equal-hash neighbors for semantic equality. Runs
// before the seed search so duplicate diagnostics are deterministic and
// name definition indices.
func checkDuplicates[K Key[K]](keys []K) error {
	type keyHash struct {
		h1, h2 uint64
		idx    int
	}

	hs := make([]keyHash, len(keys))
	for i := range keys {
		h := NewHasher(0, 0)
		keys[i].PhfHash(&h)
		h1, h2 := h.Finish128()
		hs[i] = keyHash{h1: h1, h2: h2, idx: i}
	}

	sort.Slice(hs, func(i, j int) bool {
		a, b := &hs[i], &hs[j]
		if a.h1 != b.h1 {
			return a.h1 < b.h1
		}
		if a.h2 != b.h2 {
			return a.h2 < b.h2
		}
		return a.idx < b.idx
	})

	for i := 1; i < len(hs); i++ {
		a, b := &hs[i-1], &hs[i]
		if a.h1 == b.h1 && a.h2 == b.h2 && keys[a.idx].Equal(keys[b.idx]) {
			return &DuplicateKeyError{Idx1: min(a.idx, b.idx), Idx2: max(a.idx, b.idx)}
		}
	}
	return nil
}
