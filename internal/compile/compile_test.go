package compile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrainEndToEnd(t *testing.T) {
	dict := "猫,0,0,100,名詞,一般,*,*,猫\nが,0,0,50,助詞,格助詞,*,*,が\n"
	corpus := "猫\t名詞,一般,*,*,猫\nが\t助詞,格助詞,*,*,が\nEOS\n" +
		"猫\t名詞,一般,*,*,猫\nが\t助詞,格助詞,*,*,が\nEOS\n"

	pats, err := Train(strings.NewReader(dict), strings.NewReader(corpus))
	require.NoError(t, err)
	require.NotEmpty(t, pats)

	found := false
	for _, p := range pats {
		if p.Prefix == "猫" && p.PrevPOS == "" {
			found = true
			require.Equal(t, 2, p.Count)
		}
	}
	require.True(t, found)
}
