package scanner

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestReadASCII(t *testing.T) {
	cp, n := Read([]byte("A"))
	require.Equal(t, int32('A'), cp)
	require.Equal(t, 1, n)
}

func TestReadMultiByte(t *testing.T) {
	for _, r := range []rune{'あ', '漢', '🎌'} {
		buf := make([]byte, utf8.RuneLen(r))
		utf8.EncodeRune(buf, r)
		cp, n := Read(buf)
		require.Equal(t, int32(r), cp)
		require.Equal(t, utf8.RuneLen(r), n)
	}
}

func TestReadInvalidLeadByteFallsBackToSingleByte(t *testing.T) {
	cp, n := Read([]byte{0xFF, 'x'})
	require.Equal(t, int32(0xFF), cp)
	require.Equal(t, 1, n)
}

func TestReadTruncatedMultiByteFallsBack(t *testing.T) {
	full := make([]byte, utf8.RuneLen('漢'))
	utf8.EncodeRune(full, '漢')
	cp, n := Read(full[:1])
	require.Equal(t, int32(full[0]), cp)
	require.Equal(t, 1, n)
}

func TestLen(t *testing.T) {
	require.Equal(t, 0, Len(nil))
	require.Equal(t, 1, Len([]byte("x")))
	buf := make([]byte, utf8.RuneLen('あ'))
	utf8.EncodeRune(buf, 'あ')
	require.Equal(t, 3, Len(buf))
	require.Equal(t, 1, Len(buf[:1]))
}
