// doc.go - top level documentation
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

// Package phf builds immutable lookup containers keyed by values known
// up front, using a minimal perfect hash function constructed with the
// Compress-Hash-Displace algorithm
// (http://cmph.sourceforge.net/papers/esa09.pdf).
//
// Given N distinct keys, the generator finds a 64-bit seed and a small
// table of per-bucket displacement pairs such that every key hashes to
// a distinct slot in an N-length table. A lookup hashes the candidate
// key once, consults exactly one slot and confirms with a single
// equality check; there are no probe chains and no allocation.
//
// Keys are hashed with SipHash-1-3 (128-bit output) over a canonical
// little-endian byte encoding, so the tables a build produces are
// byte-for-byte identical on every host. Construction is driven by a
// fixed-seed PRNG and is fully reproducible.
//
// Several container flavors are provided. Map and Set store entries in
// slot order and iterate in that (stable, but arbitrary) order.
// OrderedMap and OrderedSet additionally keep the original definition
// order for iteration and positional access, at the cost of one extra
// index table. BiMap indexes the same entry array in both directions.
// All of them are built either through the Add/Freeze builders in this
// package, or from precomputed state embedded as constants by an
// external generator.
package phf
