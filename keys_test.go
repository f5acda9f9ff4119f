// keys_test.go -- canonicalization and equality of the key types
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

	"github.com/stretchr/testify/require"
)

func digest[K Key[K]](k K) (uint64, uint64) {
	h := NewHasher(0, 0)
	k.PhfHash(&h)
	return h.Finish128()
}

func sameDigest[A Key[A], B Key[B]](a A, b B) bool {
	a1, a2 := digest(a)
	b1, b2 := digest(b)
	return a1 == b1 && a2 == b2
}

func TestKeyCanonicalization(t *testing.T) {
	// a String hashes like its raw bytes
	require.True(t, sameDigest(String("hello"), Bytes("hello")))

	// integer widths are distinct streams even for equal values
	require.False(t, sameDigest(Uint8(1), Uint16(1)))
	require.False(t, sameDigest(Uint16(1), Uint32(1)))
	require.False(t, sameDigest(Uint32(1), Uint64(1)))

	// signed and unsigned alias the same two's-complement bytes
	require.True(t, sameDigest(Int8(-1), Uint8(0xff)))
	require.True(t, sameDigest(Int64(-1), Uint64(0xffffffffffffffff)))
	require.True(t, sameDigest(
		Int128{Hi: -1, Lo: 0xffffffffffffffff},
		Uint128{Hi: 0xffffffffffffffff, Lo: 0xffffffffffffffff}))

	// a Pair hashes its fields back to back
	p := Pair[Uint32, String]{A: 7, B: "x"}
	h := NewHasher(0, 0)
	h.WriteUint32(7)
	h.WriteString("x")
	h1, h2 := h.Finish128()
	p1, p2 := digest(p)
	require.Equal(t, h1, p1)
	require.Equal(t, h2, p2)
}

func TestUncased(t *testing.T) {
	require.True(t, Uncased("Foo").Equal("foo"))
	require.True(t, Uncased("BAR").Equal("bar"))
	require.False(t, Uncased("baz").Equal("bar"))
	require.False(t, Uncased("foo").Equal("fooo"))

	require.True(t, sameDigest(Uncased("Foo"), Uncased("fOO")))
	require.True(t, sameDigest(Uncased("foo"), String("foo")))

	m, err := NewMapBuilder[Uncased, int]().
		Add("Foo", 0).
		Add("Bar", 1).
		Freeze()
	require.NoError(t, err)

	v, ok := m.Get("foo")
	require.True(t, ok)
	require.Equal(t, 0, *v)

	v, ok = m.Get("BAR")
	require.True(t, ok)
	require.Equal(t, 1, *v)

	_, ok = m.Get("baz")
	require.False(t, ok)
}

// an application type is a key once it hashes canonically and compares
// consistently
type point struct {
	x, y Int32
}

func (p point) PhfHash(h *Hasher) {
	p.x.PhfHash(h)
	p.y.PhfHash(h)
}

func (p point) Equal(o point) bool {
	return p == o
}

func TestCustomKey(t *testing.T) {
	m, err := NewOrderedMapBuilder[point, string]().
		Add(point{0, 0}, "origin").
		Add(point{1, 0}, "east").
		Add(point{0, -1}, "south").
		Freeze()
	require.NoError(t, err)

	v, ok := m.Get(point{0, -1})
	require.True(t, ok)
	require.Equal(t, "south", *v)

	_, ok = m.Get(point{2, 2})
	require.False(t, ok)
}

func TestBoolRuneKeys(t *testing.T) {
	s, err := NewSetBuilder[Bool]().Add(true).Freeze()
	require.NoError(t, err)
	require.True(t, s.Contains(true))
	require.False(t, s.Contains(false))

	r, err := NewOrderedSetBuilder[Rune]().
		Add('a').Add('ä').Add('本').
		Freeze()
	require.NoError(t, err)
	require.True(t, r.Contains('本'))
	require.False(t, r.Contains('b'))
}
