package compile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ynaga-lab/jagger-go/internal/intern"
)

func TestParseDictBasic(t *testing.T) {
	src := "猫,0,0,100,名詞,一般,*,*,猫\nが,0,0,50,助詞,格助詞,*,*,が\n"
	pbag, fbag := intern.New(), intern.New()

	entries, maxPlen, err := ParseDict(strings.NewReader(src), pbag, fbag)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, len("猫"), maxPlen)

	require.Equal(t, "猫", pbag.ToS(entries[0].PatternID))
	require.Equal(t, "名詞,一般,*,*,猫", fbag.ToS(entries[0].FullFID))
	require.Equal(t, "名詞,一般,*,*", fbag.ToS(entries[0].PosPrefixFID))
}

func TestParseDictQuotedSurface(t *testing.T) {
	src := `"a,b",0,0,10,記号,一般,*,*,a-b` + "\n"
	pbag, fbag := intern.New(), intern.New()

	entries, _, err := ParseDict(strings.NewReader(src), pbag, fbag)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "a,b", pbag.ToS(entries[0].PatternID))
}

func TestParseDictSkipsMalformedLines(t *testing.T) {
	src := "\nbadline\nok,0,0,1,名詞,*,*,*,ok\n"
	pbag, fbag := intern.New(), intern.New()

	entries, _, err := ParseDict(strings.NewReader(src), pbag, fbag)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "ok", pbag.ToS(entries[0].PatternID))
}

func TestFeaturePrefixShorterThanN(t *testing.T) {
	require.Equal(t, "a,b", featurePrefix("a,b", 4))
	require.Equal(t, "a,b,c,d", featurePrefix("a,b,c,d,e", 4))
}
