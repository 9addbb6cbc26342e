package compile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectPicksHighestCountFeature(t *testing.T) {
	counts := candidateStats{
		candKey{prefix: "走る"}: {
			"動詞,自立,*,*,走る": {bytes: 6, count: 3},
			"動詞,自立,*,*,走ル": {bytes: 6, count: 9},
		},
	}
	pats := Select(counts)
	require.Len(t, pats, 1)
	require.Equal(t, "動詞,自立,*,*,走ル", pats[0].Feature)
	require.Equal(t, 9, pats[0].Count)
}

func TestSelectBreaksTiesWithLongerFeature(t *testing.T) {
	counts := candidateStats{
		candKey{prefix: "x"}: {
			"短":  {bytes: 1, count: 5},
			"長い方": {bytes: 1, count: 5},
		},
	}
	pats := Select(counts)
	require.Equal(t, "長い方", pats[0].Feature)
}

func TestSelectOrdersByDescendingCount(t *testing.T) {
	counts := candidateStats{
		candKey{prefix: "a"}: {"f1": {count: 1}},
		candKey{prefix: "b"}: {"f2": {count: 50}},
		candKey{prefix: "c"}: {"f3": {count: 10}},
	}
	pats := Select(counts)
	require.Len(t, pats, 3)
	require.Equal(t, "b", pats[0].Prefix)
	require.Equal(t, "c", pats[1].Prefix)
	require.Equal(t, "a", pats[2].Prefix)
}
