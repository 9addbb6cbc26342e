package intern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToIAssignsStableIDs(t *testing.T) {
	b := New()
	id1 := b.ToI("foo")
	id2 := b.ToI("bar")
	id3 := b.ToI("foo")

	require.Equal(t, id1, id3)
	require.NotEqual(t, id1, id2)
	require.Equal(t, 2, b.Size())
}

func TestFindMissing(t *testing.T) {
	b := New()
	b.ToI("present")
	require.Equal(t, -1, b.Find("absent"))
	require.Equal(t, 0, b.Find("present"))
}

func TestToSRoundTrip(t *testing.T) {
	b := New()
	id := b.ToI("hello")
	require.Equal(t, "hello", b.ToS(id))
}

func TestToIDefensiveCopy(t *testing.T) {
	buf := []byte("mutable")
	b := New()
	id := b.ToI(string(buf))
	copy(buf, "XXXXXXX")
	require.Equal(t, "mutable", b.ToS(id))
}

func TestBlobLayout(t *testing.T) {
	b := New()
	b.ToI("ab")
	b.ToI("cde")

	blob, offsets := b.Blob()
	require.Equal(t, "abcde", string(blob))
	require.Equal(t, []uint32{0, 2}, offsets)
}
