package compile

import (
	"bufio"
	"io"
	"strings"
)

// featStat accumulates, for one candidate pattern, how many bytes it
// would consume and how often it supported a given full feature string.
type featStat struct {
	bytes int
	count int
}

// candKey identifies a mined pattern candidate: a surface prefix,
// optionally conditioned on the previous token's short POS-prefix feature
// (spec §4.8 stage 3). prevPOS == "" means unconditioned.
type candKey struct {
	prefix  string
	prevPOS string
}

// candidateStats maps a candidate key to its per-feature support counts.
type candidateStats map[candKey]map[string]*featStat

// Mine scans an annotated training corpus (`surface\tfeature\n` lines,
// sentences separated by lone `EOS` lines) and accumulates candidate
// pattern statistics.
//
// Simplification versus train_jagger.cc: the original slides a byte
// window that may extend past a token's own surface into the bytes of
// following tokens, discovering patterns longer than a single token. This
// implementation mines exactly one candidate length per token occurrence
// (the token's own surface), both unconditioned and conditioned on the
// preceding token's POS-prefix; recorded in DESIGN.md.
func Mine(r io.Reader, dictPatterns map[string]bool) (candidateStats, error) {
	counts := make(candidateStats)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	posPrev := "BOS"
	for sc.Scan() {
		line := sc.Text()
		if line == "EOS" {
			posPrev = "BOS"
			continue
		}
		tab := strings.IndexByte(line, '\t')
		if tab < 0 {
			continue // malformed corpus line: skipped
		}
		surface := line[:tab]
		full := line[tab+1:]
		pos := featurePrefix(full, NumPOSFields)

		add(counts, candKey{prefix: surface}, full, len(surface))
		add(counts, candKey{prefix: surface, prevPOS: posPrev}, full, len(surface))

		if !dictPatterns[surface] && charType(surface) != 0 {
			// POS-only fallback pattern for tokens absent from the seed
			// dictionary: conditioned purely on context, matching zero
			// surface bytes (spec §4.7's concatenated-unknown path).
			add(counts, candKey{prevPOS: posPrev}, pos, 0)
		}

		posPrev = pos
	}
	return counts, sc.Err()
}

func add(counts candidateStats, k candKey, feature string, bytes int) {
	m, ok := counts[k]
	if !ok {
		m = make(map[string]*featStat)
		counts[k] = m
	}
	st, ok := m[feature]
	if !ok {
		st = &featStat{bytes: bytes}
		m[feature] = st
	}
	st.count++
}
