package compile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// EmitText writes pats as the `patterns` text artifact: one tab-separated
// record per line, `count\tprefix\tprevPOS\tbytes\tctype\tfeature`. This is
// a clean reinterpretation of train_jagger.cc's embedded-tab pattern dump,
// chosen for unambiguous round-tripping rather than byte-for-byte parity
// with the original format.
func EmitText(w io.Writer, pats []Pattern) error {
	bw := bufio.NewWriter(w)
	for _, p := range pats {
		ctype := int(charType(p.Prefix))
		if p.Prefix == "" {
			ctype = 0
		}
		feature := strings.ReplaceAll(p.Feature, "\n", "")
		if _, err := fmt.Fprintf(bw, "%d\t%s\t%s\t%d\t%d\t%s\n",
			p.Count, p.Prefix, p.PrevPOS, p.Bytes, ctype, feature); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ParseText reads back a `patterns` text artifact written by EmitText.
func ParseText(r io.Reader) ([]Pattern, error) {
	var pats []Pattern
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 6)
		if len(fields) != 6 {
			return nil, fmt.Errorf("compile: malformed patterns line %q", line)
		}
		count, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("compile: bad count in %q: %w", line, err)
		}
		bytesLen, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, fmt.Errorf("compile: bad byte length in %q: %w", line, err)
		}
		pats = append(pats, Pattern{
			Prefix:  fields[1],
			PrevPOS: fields[2],
			Bytes:   bytesLen,
			Feature: fields[5],
			Count:   count,
		})
	}
	return pats, sc.Err()
}
