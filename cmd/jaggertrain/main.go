// Command jaggertrain is the offline trainer: it reads a seed dictionary
// and an annotated corpus and writes the `patterns` text artifact that
// internal/model compiles into a runtime dictionary (spec §4.8, §6).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ynaga-lab/jagger-go/internal/compile"
)

func main() {
	var dictPath string
	var corpusPath string
	var outPath string
	var quiet bool

	flag.StringVar(&dictPath, "dict", "", "path to the seed dictionary (surface,lid,rid,cost,feature...)")
	flag.StringVar(&corpusPath, "corpus", "", "path to the annotated training corpus (surface\\tfeature, EOS-separated)")
	flag.StringVar(&outPath, "output", "", "output `patterns` text path")
	flag.BoolVar(&quiet, "quiet", false, "suppress stats")
	flag.Parse()

	if dictPath == "" || corpusPath == "" || outPath == "" {
		exitf("-dict, -corpus and -output are required")
	}

	dict, err := os.Open(dictPath)
	if err != nil {
		exitErr(err)
	}
	defer dict.Close()

	corpus, err := os.Open(corpusPath)
	if err != nil {
		exitErr(err)
	}
	defer corpus.Close()

	pats, err := compile.Train(dict, corpus)
	if err != nil {
		exitErr(err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		exitErr(err)
	}
	defer out.Close()

	if err := compile.EmitText(out, pats); err != nil {
		exitErr(err)
	}

	if !quiet {
		info, _ := os.Stat(outPath)
		var outputBytes int64
		if info != nil {
			outputBytes = info.Size()
		}
		fmt.Fprintf(os.Stderr, "jaggertrain: patterns=%d out_bytes=%d\n", len(pats), outputBytes)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "jaggertrain: "+format+"\n", args...)
	os.Exit(2)
}

func exitErr(err error) {
	fmt.Fprintf(os.Stderr, "jaggertrain: %v\n", err)
	os.Exit(1)
}
