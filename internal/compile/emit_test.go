package compile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmitParseRoundTrip(t *testing.T) {
	pats := []Pattern{
		{Prefix: "猫", PrevPOS: "", Feature: "名詞,一般,*,*,猫", Bytes: 3, Count: 42},
		{Prefix: "が", PrevPOS: "名詞,一般,*,*", Feature: "助詞,格助詞,*,*,が", Bytes: 3, Count: 7},
		{Prefix: "", PrevPOS: "BOS", Feature: "名詞,一般,*,*", Bytes: 0, Count: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, EmitText(&buf, pats))

	got, err := ParseText(&buf)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := range pats {
		require.Equal(t, pats[i].Prefix, got[i].Prefix)
		require.Equal(t, pats[i].PrevPOS, got[i].PrevPOS)
		require.Equal(t, pats[i].Feature, got[i].Feature)
		require.Equal(t, pats[i].Bytes, got[i].Bytes)
		require.Equal(t, pats[i].Count, got[i].Count)
	}
}

func TestParseTextRejectsMalformedLine(t *testing.T) {
	_, err := ParseText(bytes.NewReader([]byte("not\tenough\tfields\n")))
	require.Error(t, err)
}
