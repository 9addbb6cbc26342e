package alphabet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderBuildOrdersByDescendingCount(t *testing.T) {
	b := NewBuilder()
	b.Add('a', 5)
	b.Add('b', 10)
	b.Add('c', 1)

	m := b.Build(3)
	require.Equal(t, uint16(1), m.Get('b'))
	require.Equal(t, uint16(2), m.Get('a'))
	require.Equal(t, uint16(3), m.Get('c'))
	require.Equal(t, 3, b.NumKeys())
}

func TestBuilderBuildMinimumSize(t *testing.T) {
	b := NewBuilder()
	b.Add('x', 1)
	m := b.Build(1)
	require.Equal(t, PersistLen, m.Len())
}

func TestMapSetGrowsAndGet(t *testing.T) {
	m := New(1)
	m.Set(100, 7)
	require.Equal(t, uint16(7), m.Get(100))
	require.Equal(t, uint16(0), m.Get(99))
	require.Equal(t, uint16(0), m.Get(-1))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := New(4)
	m.Set(0, 1)
	m.Set(1, 2)
	m.Set(2, 0xFFFF)
	m.Set(3, 3)

	var buf bytes.Buffer
	require.NoError(t, m.Save(&buf))

	got, err := Load(&buf)
	require.NoError(t, err)
	require.Equal(t, m.ids, got.ids)
}

func TestLoadTruncatedErrors(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte{0x01}))
	require.ErrorIs(t, err, ErrTruncated)
}

func TestTruncate(t *testing.T) {
	m := New(10)
	m.Set(5, 9)
	out := m.Truncate(6)
	require.Equal(t, 6, out.Len())
	require.Equal(t, uint16(9), out.Get(5))

	out2 := m.Truncate(100)
	require.Equal(t, 10, out2.Len())
}
