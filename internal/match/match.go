// Package match implements the longest-prefix matcher extended with a
// previous-POS context probe (spec §4.6).
package match

import (
	"github.com/ynaga-lab/jagger-go/internal/alphabet"
	"github.com/ynaga-lab/jagger-go/internal/scanner"
	"github.com/ynaga-lab/jagger-go/internal/trie"
)

// Matcher bundles a loaded trie with the alphabet map it was compiled
// against.
type Matcher struct {
	Trie     *trie.Trie
	Alphabet *alphabet.Map
}

// New returns a Matcher over t keyed by c2i.
func New(t *trie.Trie, c2i *alphabet.Map) *Matcher {
	return &Matcher{Trie: t, Alphabet: c2i}
}

// LongestPrefixSearchWithPOS walks key from its start, remembering the
// deepest dictionary match, then probes upward from the deepest node the
// walk reached, back to that match's node (the root if none), for a
// pattern conditioned on fiPrev (the previous token's ctx_sid, 0 for BOS
// or no context). It returns the raw 32-bit trie payload for whichever
// match wins — the POS-conditioned one if found, otherwise the
// unconditioned longest-prefix match (possibly 0, the unknown fallback).
func (m *Matcher) LongestPrefixSearchWithPOS(key []byte, fiPrev uint32) uint32 {
	var (
		from          int32
		fromLastValue int32
		best          uint32
	)

	pos := 0
	for pos < len(key) {
		cp, n := scanner.Read(key[pos:])
		sym := m.Alphabet.Get(cp)
		if sym == 0 {
			break
		}
		v := m.Trie.Traverse(int32(sym), &from)
		if v == trie.NoPath {
			break
		}
		pos += n
		if v != trie.NoValue {
			best = uint32(v)
			fromLastValue = from
		}
	}

	if fiPrev == 0 {
		return best
	}

	cur := from
	for i := 0; i < trie.MaxParentWalk; i++ {
		v := m.Trie.ExactMatchSearch([]int32{int32(fiPrev)}, cur)
		if v >= 0 {
			return uint32(v)
		}
		if cur == fromLastValue {
			break
		}
		parent := m.Trie.Check(cur)
		if parent < 0 {
			break
		}
		cur = parent
	}
	return best
}
