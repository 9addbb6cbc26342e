// Package compile implements the offline trainer (spec §4.8): it turns a
// seed dictionary plus an annotated corpus into the pattern set that
// internal/model compiles into the four runtime artifacts.
package compile

import (
	"io"

	"github.com/ynaga-lab/jagger-go/internal/intern"
)

// Train runs the full dictionary-seeding, corpus-mining and pruning
// pipeline and returns the final pattern set, sorted by descending
// support count.
func Train(dict, corpus io.Reader) ([]Pattern, error) {
	pbag, fbag := intern.New(), intern.New()
	entries, _, err := ParseDict(dict, pbag, fbag)
	if err != nil {
		return nil, err
	}

	dictPatterns := make(map[string]bool, len(entries))
	for _, e := range entries {
		dictPatterns[pbag.ToS(e.PatternID)] = true
	}

	counts, err := Mine(corpus, dictPatterns)
	if err != nil {
		return nil, err
	}
	Seed(counts)
	return Select(counts), nil
}
