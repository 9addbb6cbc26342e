// Package batch drives the tokenizer across many lines concurrently,
// mirroring the fixed-worker fan-out benchmark/run-multiprocess-jagger.py
// uses to scale single-line tokenization across cores.
package batch

import (
	"context"

	"github.com/fatih/semgroup"

	jagger "github.com/ynaga-lab/jagger-go"
	"github.com/ynaga-lab/jagger-go/internal/tokenize"
)

// Process tokenizes every line concurrently, bounded to workers
// in-flight goroutines, and returns results in the same order as lines.
// A tokenizer never errors (spec §8 property 1), so the only failure mode
// is ctx cancellation.
func Process(ctx context.Context, tok *tokenize.Tokenizer, lines [][]byte, workers int) ([][]jagger.Token, error) {
	if workers < 1 {
		workers = 1
	}
	out := make([][]jagger.Token, len(lines))

	sg := semgroup.NewGroup(ctx, int64(workers))
	for i, line := range lines {
		i, line := i, line
		sg.Go(func() error {
			out[i] = tok.Tokenize(line)
			return nil
		})
	}
	if err := sg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
