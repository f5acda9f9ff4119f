// siphash.go - SipHash-1-3 with a 128-bit result
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
	"math/bits"
)

// Hasher is an incremental SipHash-1-3 hasher with a 128-bit result.
//
// Its output depends only on the two 64-bit keys and the sequence of
// bytes absorbed; all typed writes canonicalize to little-endian first,
// so digests are identical on every architecture. General purpose
// hashers (including hash/maphash and the usual siphash libraries)
// either consume host-order integers or run the 2-4 round schedule,
// neither of which reproduces these tables.
//
// The zero value is not usable; construct with NewHasher.
type Hasher struct {
	k0, k1 uint64

	v0, v1, v2, v3 uint64

	// bytes absorbed so far; the low byte feeds the final block
	length int

	// pending bytes that don't yet fill a 64-bit block, little-endian
	tail  uint64
	ntail int
}

// NewHasher returns a Hasher keyed with (k0, k1).
func NewHasher(k0, k1 uint64) Hasher {
	return Hasher{
		k0: k0,
		k1: k1,
		v0: k0 ^ 0x736f6d6570736575,
		// "dorandom" ^ 0xee: the 128-bit output tweak
		v1: k1 ^ 0x646f72616e646f83,
		v2: k0 ^ 0x6c7967656e657261,
		v3: k1 ^ 0x7465646279746573,
	}
}

func sipRound(v0, v1, v2, v3 uint64) (uint64, uint64, uint64, uint64) {
	v0 += v1
	v1 = bits.RotateLeft64(v1, 13)
	v1 ^= v0
	v0 = bits.RotateLeft64(v0, 32)
	v2 += v3
	v3 = bits.RotateLeft64(v3, 16)
	v3 ^= v2
	v0 += v3
	v3 = bits.RotateLeft64(v3, 21)
	v3 ^= v0
	v2 += v1
	v1 = bits.RotateLeft64(v1, 17)
	v1 ^= v2
	v2 = bits.RotateLeft64(v2, 32)
	return v0, v1, v2, v3
}

func (h *Hasher) round(m uint64) {
	h.v3 ^= m
	h.v0, h.v1, h.v2, h.v3 = sipRound(h.v0, h.v1, h.v2, h.v3)
	h.v0 ^= m
}

// load up to 7 little-endian bytes of msg[start:start+n] into a uint64
func u8to64le[T ~[]byte | ~string](msg T, start, n int) uint64 {
	var out uint64
	for i := 0; i < n; i++ {
		out |= uint64(msg[start+i]) << (8 * i)
	}
	return out
}

// one body for Write and WriteString; indexing works on both and the
// string path avoids a copy
func hasherWrite[T ~[]byte | ~string](h *Hasher, msg T) {
	length := len(msg)
	h.length += length

	needed := 0
	if h.ntail != 0 {
		needed = 8 - h.ntail
		if length < needed {
			h.tail |= u8to64le(msg, 0, length) << (8 * h.ntail)
			h.ntail += length
			return
		}
		h.tail |= u8to64le(msg, 0, needed) << (8 * h.ntail)
		h.round(h.tail)
		h.ntail = 0
	}

	left := (length - needed) & 7

	i := needed
	for i < length-left {
		mi := uint64(msg[i]) | uint64(msg[i+1])<<8 |
			uint64(msg[i+2])<<16 | uint64(msg[i+3])<<24 |
			uint64(msg[i+4])<<32 | uint64(msg[i+5])<<40 |
			uint64(msg[i+6])<<48 | uint64(msg[i+7])<<56
		h.round(mi)
		i += 8
	}

	h.tail = u8to64le(msg, i, left)
	h.ntail = left
}

// Write absorbs p. Bytes are processed in order irrespective of
// architecture; hashing never fails.
func (h *Hasher) Write(p []byte) {
	hasherWrite(h, p)
}

// WriteString absorbs the bytes of s without copying. The resulting
// state is identical to Write([]byte(s)).
func (h *Hasher) WriteString(s string) {
	hasherWrite(h, s)
}

// shortWrite absorbs the low 'size' bytes of x, which must already be
// little-endian and zero-extended. Bit-identical to the bulk Write path.
func (h *Hasher) shortWrite(x uint64, size int) {
	h.length += size

	needed := 8 - h.ntail
	h.tail |= x << (8 * h.ntail)
	if size < needed {
		h.ntail += size
		return
	}

	h.round(h.tail)

	h.ntail = size - needed
	if needed < 8 {
		h.tail = x >> (8 * needed)
	} else {
		h.tail = 0
	}
}

// WriteUint8 absorbs one byte.
func (h *Hasher) WriteUint8(x uint8) {
	h.shortWrite(uint64(x), 1)
}

// WriteUint16 absorbs x as 2 little-endian bytes.
func (h *Hasher) WriteUint16(x uint16) {
	h.shortWrite(uint64(x), 2)
}

// WriteUint32 absorbs x as 4 little-endian bytes.
func (h *Hasher) WriteUint32(x uint32) {
	h.shortWrite(uint64(x), 4)
}

// WriteUint64 absorbs x as 8 little-endian bytes.
func (h *Hasher) WriteUint64(x uint64) {
	h.shortWrite(x, 8)
}

// WriteUint128 absorbs the 128-bit value hi<<64|lo as 16 little-endian
// bytes.
func (h *Hasher) WriteUint128(hi, lo uint64) {
	h.shortWrite(lo, 8)
	h.shortWrite(hi, 8)
}

// Finish128 returns the two 64-bit halves of the 128-bit digest. It
// does not consume the hasher; further writes may follow.
func (h *Hasher) Finish128() (h1, h2 uint64) {
	v0, v1, v2, v3 := h.v0, h.v1, h.v2, h.v3

	b := uint64(h.length&0xff)<<56 | h.tail

	v3 ^= b
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0 ^= b

	v2 ^= 0xee
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	h1 = v0 ^ v1 ^ v2 ^ v3

	v1 ^= 0xdd
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	h2 = v0 ^ v1 ^ v2 ^ v3

	return h1, h2
}
