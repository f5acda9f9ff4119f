// bimap_test.go -- test suite for BiMap
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

func buildCodeMap(t *testing.T) *BiMap[String, Uint16] {
	t.Helper()

	m, err := NewBiMapBuilder[String, Uint16]().
		Add("continue", 100).
		Add("switching-protocols", 101).
		Add("ok", 200).
		Add("not-found", 404).
		Add("teapot", 418).
		Freeze()
	require.NoError(t, err)
	return m
}

func TestBiMapLookup(t *testing.T) {
	m := buildCodeMap(t)
	require.Equal(t, 5, m.Len())
	require.False(t, m.IsEmpty())

	r, ok := m.GetByLeft("not-found")
	require.True(t, ok)
	require.Equal(t, Uint16(404), *r)

	l, ok := m.GetByRight(418)
	require.True(t, ok)
	require.Equal(t, String("teapot"), *l)

	require.True(t, m.ContainsLeft("ok"))
	require.True(t, m.ContainsRight(200))

	_, ok = m.GetByLeft("gone")
	require.False(t, ok)
	_, ok = m.GetByRight(500)
	require.False(t, ok)
	require.False(t, m.ContainsLeft("teapo"))
	require.False(t, m.ContainsRight(0))
}

func TestBiMapEntry(t *testing.T) {
	m := buildCodeMap(t)

	l, r, ok := m.GetEntryByLeft("ok")
	require.True(t, ok)
	require.Equal(t, String("ok"), *l)
	require.Equal(t, Uint16(200), *r)

	l, r, ok = m.GetEntryByRight(101)
	require.True(t, ok)
	require.Equal(t, String("switching-protocols"), *l)
	require.Equal(t, Uint16(101), *r)

	_, _, ok = m.GetEntryByRight(102)
	require.False(t, ok)
}

// both directions round-trip through each other for every entry, and
// iteration follows definition order
func TestBiMapRoundTrip(t *testing.T) {
	m := buildCodeMap(t)

	var lefts []String
	var rights []Uint16
	for l, r := range m.Entries() {
		back, ok := m.GetByRight(r)
		require.True(t, ok)
		require.Equal(t, l, *back)

		fwd, ok := m.GetByLeft(l)
		require.True(t, ok)
		require.Equal(t, r, *fwd)

		lefts = append(lefts, l)
		rights = append(rights, r)
	}

	require.Equal(t, []String{"continue", "switching-protocols", "ok", "not-found", "teapot"}, lefts)
	require.Equal(t, []Uint16{100, 101, 200, 404, 418}, rights)

	var ls []String
	for l := range m.Lefts() {
		ls = append(ls, l)
	}
	require.Equal(t, lefts, ls)

	var rs []Uint16
	for r := range m.Rights() {
		rs = append(rs, r)
	}
	require.Equal(t, rights, rs)
}

func TestBiMapZeroValue(t *testing.T) {
	var m BiMap[String, Uint32]

	require.True(t, m.IsEmpty())
	_, ok := m.GetByLeft("x")
	require.False(t, ok)
	_, ok = m.GetByRight(1)
	require.False(t, ok)
}
