// siphash_test.go -- test suite for the SipHash-1-3 hasher
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
	"testing"
)

// reference digest of the empty input under the standard test key,
// from the SipHash128-1-3 vectors
func TestSipHashVector(t *testing.T) {
	assert := newAsserter(t)

	h := NewHasher(0x0706050403020100, 0x0f0e0d0c0b0a0908)
	h1, h2 := h.Finish128()

	assert(h1 == 0xbea58827b2bc7ee7, "h1 mismatch: %#x", h1)
	assert(h2 == 0x013030dd6adb62fd, "h2 mismatch: %#x", h2)
}

func TestSipHashFinishIsNonConsuming(t *testing.T) {
	assert := newAsserter(t)

	h := NewHasher(1, 2)
	h.WriteString("abc")
	a1, a2 := h.Finish128()
	b1, b2 := h.Finish128()
	assert(a1 == b1 && a2 == b2, "finish not idempotent")

	h.WriteString("def")
	c1, c2 := h.Finish128()
	assert(c1 != a1 || c2 != a2, "state did not advance after finish")
}

// one byte at a time, in fixed-size chunks, and in one bulk write must all
// produce the same digest
func TestSipHashIncremental(t *testing.T) {
	assert := newAsserter(t)

	msg := make([]byte, 259)
	for i := range msg {
		msg[i] = byte(i * 131)
	}

	bulk := NewHasher(0xdead, 0xbeef)
	bulk.Write(msg)
	w1, w2 := bulk.Finish128()

	solo := NewHasher(0xdead, 0xbeef)
	for _, c := range msg {
		solo.Write([]byte{c})
	}
	s1, s2 := solo.Finish128()
	assert(w1 == s1 && w2 == s2, "byte-at-a-time digest differs")

	for _, chunk := range []int{2, 3, 5, 7, 8, 9, 13} {
		h := NewHasher(0xdead, 0xbeef)
		for i := 0; i < len(msg); i += chunk {
			j := i + chunk
			if j > len(msg) {
				j = len(msg)
			}
			h.Write(msg[i:j])
		}
		c1, c2 := h.Finish128()
		assert(w1 == c1 && w2 == c2, "chunk size %d digest differs", chunk)
	}
}

func TestSipHashWriteString(t *testing.T) {
	assert := newAsserter(t)

	for _, s := range keyw {
		a := NewHasher(3, 4)
		a.Write([]byte(s))
		a1, a2 := a.Finish128()

		b := NewHasher(3, 4)
		b.WriteString(s)
		b1, b2 := b.Finish128()

		assert(a1 == b1 && a2 == b2, "WriteString(%q) differs from Write", s)
	}
}

// every typed write must equal the bulk write of its little-endian
// encoding, regardless of how the tail is aligned when it happens
func TestSipHashTypedWrites(t *testing.T) {
	assert := newAsserter(t)

	type op struct {
		bytes []byte
		write func(h *Hasher)
	}
	ops := []op{
		{[]byte{0xab}, func(h *Hasher) { h.WriteUint8(0xab) }},
		{[]byte{0x34, 0x12}, func(h *Hasher) { h.WriteUint16(0x1234) }},
		{[]byte{0x78, 0x56, 0x34, 0x12}, func(h *Hasher) { h.WriteUint32(0x12345678) }},
		{[]byte{0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01},
			func(h *Hasher) { h.WriteUint64(0x0123456789abcdef) }},
		{[]byte{8, 7, 6, 5, 4, 3, 2, 1, 16, 15, 14, 13, 12, 11, 10, 9},
			func(h *Hasher) { h.WriteUint128(0x090a0b0c0d0e0f10, 0x0102030405060708) }},
	}

	// prefix of 0..7 bytes exercises every tail alignment
	for pfx := 0; pfx < 8; pfx++ {
		prefix := make([]byte, pfx)
		for i := range prefix {
			prefix[i] = byte(0xc0 + i)
		}

		for i, o := range ops {
			a := NewHasher(11, 13)
			a.Write(prefix)
			o.write(&a)
			a1, a2 := a.Finish128()

			b := NewHasher(11, 13)
			b.Write(prefix)
			b.Write(o.bytes)
			b1, b2 := b.Finish128()

			assert(a1 == b1 && a2 == b2, "op %d at alignment %d differs", i, pfx)
		}
	}
}

func TestSipHashKeyed(t *testing.T) {
	assert := newAsserter(t)

	a := NewHasher(0, 1)
	a.WriteString("phf")
	a1, a2 := a.Finish128()

	b := NewHasher(0, 2)
	b.WriteString("phf")
	b1, b2 := b.Finish128()

	assert(a1 != b1 || a2 != b2, "digest independent of key")
}
