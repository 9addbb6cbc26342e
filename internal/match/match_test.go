package match

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ynaga-lab/jagger-go/internal/alphabet"
	"github.com/ynaga-lab/jagger-go/internal/codec"
	"github.com/ynaga-lab/jagger-go/internal/trie"
)

func buildFixture(t *testing.T) *Matcher {
	t.Helper()
	tr := trie.New()
	c2i := alphabet.New(alphabet.PersistLen)

	sid := func(r rune, s uint16) int32 {
		c2i.Set(int32(r), s)
		return int32(s)
	}
	neko := sid('猫', 1)
	ga := sid('が', 2)

	*tr.Update([]int32{neko}) = int64(codec.EncodePayload(3, 3, 0))
	*tr.Update([]int32{ga}) = int64(codec.EncodePayload(3, 3, 1))
	// neko conditioned on ctx_sid 50 (an imagined previous-POS symbol).
	*tr.Update([]int32{neko, 50}) = int64(codec.EncodePayload(3, 3, 2))

	return New(tr, c2i)
}

func TestLongestPrefixSearchUnconditioned(t *testing.T) {
	m := buildFixture(t)
	got := m.LongestPrefixSearchWithPOS([]byte("猫"), 0)
	bytesLen, _, patternID := codec.DecodePayload(got)
	require.Equal(t, uint32(3), bytesLen)
	require.Equal(t, uint32(0), patternID)
}

func TestLongestPrefixSearchWithMatchingContext(t *testing.T) {
	m := buildFixture(t)
	got := m.LongestPrefixSearchWithPOS([]byte("猫"), 50)
	_, _, patternID := codec.DecodePayload(got)
	require.Equal(t, uint32(2), patternID, "POS-conditioned entry should win over the unconditioned one")
}

func TestLongestPrefixSearchWithNonMatchingContext(t *testing.T) {
	m := buildFixture(t)
	got := m.LongestPrefixSearchWithPOS([]byte("猫"), 999)
	_, _, patternID := codec.DecodePayload(got)
	require.Equal(t, uint32(0), patternID, "falls back to the unconditioned match when no POS entry exists")
}

func TestLongestPrefixSearchUnknownCharacter(t *testing.T) {
	m := buildFixture(t)
	got := m.LongestPrefixSearchWithPOS([]byte("X"), 0)
	require.Equal(t, uint32(0), got)
}
