// rng.go - fixed-seed PRNG for the seed search
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

import "math/bits"

// wyRand is a tiny wyrand-based PRNG. The drivers seed it with
// _FixedSeed so the candidate-seed sequence, and therefore every
// generated table, is reproducible. Not suitable for anything
// security-relevant.
type wyRand struct {
	state uint64
}

func newWyRand(seed uint64) wyRand {
	return wyRand{state: seed}
}

func (r *wyRand) next() uint64 {
	r.state += 0xa0761d6478bd642f
	hi, lo := bits.Mul64(r.state, r.state^0xe7037ed1a0b428db)
	return hi ^ lo
}
