package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	jagger "github.com/ynaga-lab/jagger-go"
	"github.com/ynaga-lab/jagger-go/internal/batch"
	"github.com/ynaga-lab/jagger-go/internal/tokenize"
)

func main() {
	os.Exit(Execute())
}

func runStreaming(tok *tokenize.Tokenizer, wakati bool) error {
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		writeLine(out, tok.Tokenize(sc.Bytes()), wakati)
		out.Flush()
	}
	return sc.Err()
}

func runBuffered(ctx context.Context, tok *tokenize.Tokenizer, wakati bool, workers int) error {
	var lines [][]byte
	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		lines = append(lines, append([]byte(nil), sc.Bytes()...))
	}
	if err := sc.Err(); err != nil {
		return err
	}

	results, err := batch.Process(ctx, tok, lines, workers)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for _, toks := range results {
		writeLine(out, toks, wakati)
	}
	return nil
}

func writeLine(out *bufio.Writer, toks []jagger.Token, wakati bool) {
	if wakati {
		for i, t := range toks {
			if i > 0 {
				out.WriteByte(' ')
			}
			out.WriteString(t.Surface)
		}
		out.WriteByte('\n')
		return
	}
	for _, t := range toks {
		fmt.Fprintf(out, "%s\t%s\n", t.Surface, t.Feature)
	}
	out.WriteString("EOS\n")
}
