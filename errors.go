// errors.go - public errors exposed by phf
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
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey is returned when two entries added to a builder
	// compare equal. Use errors.As with *DuplicateKeyError to recover
	// the offending definition indices.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrMPHFail is returned when no seed admits a valid placement
	// within the retry budget. Use errors.As with *SeedExhaustedError
	// to recover the final seed and attempt count.
	ErrMPHFail = errors.New("failed to build MPH")
)

// DuplicateKeyError reports two entries with equal keys. Idx1 and Idx2
// are definition indices (positions in Add order), Idx1 < Idx2.
type DuplicateKeyError struct {
	Idx1 int
	Idx2 int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("phf: duplicate keys at indices %d and %d", e.Idx1, e.Idx2)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// SeedExhaustedError reports a failed seed search: either a pathological
// key set or a bug.
type SeedExhaustedError struct {
	Seed     uint64 // last seed tried
	Attempts int
}

func (e *SeedExhaustedError) Error() string {
	return fmt.Sprintf("phf: no MPH after %d seeds (last %#x)", e.Attempts, e.Seed)
}

func (e *SeedExhaustedError) Unwrap() error {
	return ErrMPHFail
}
