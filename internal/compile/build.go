package compile

import (
	"github.com/ynaga-lab/jagger-go/internal/alphabet"
	"github.com/ynaga-lab/jagger-go/internal/codec"
	"github.com/ynaga-lab/jagger-go/internal/intern"
	"github.com/ynaga-lab/jagger-go/internal/trie"
)

// Artifacts holds the four in-memory structures that get persisted as
// patterns.da, patterns.c2i, patterns.p2f and patterns.fs (spec §6).
type Artifacts struct {
	Trie     *trie.Trie
	Alphabet *alphabet.Map
	P2F      []uint64
	Features []byte
}

// Build turns a selected pattern set into the four runtime artifacts
// (spec §4.8 stage 5 / §4.4-§4.5), grounded on cmd/buildwordsac's
// builder-then-serialize shape.
//
// Every pattern's own POS-prefix feature is assigned a trie symbol in a
// range disjoint from, and numbered immediately after, the code-point
// symbols assigned to the bytes seen in pattern prefixes. A pattern
// conditioned on a previous token's POS-prefix (Pattern.PrevPOS) has that
// same symbol appended as one extra key symbol past its prefix's
// code-point symbols, so the matcher's upward parent-chain probe
// (internal/match) can reach it with a plain ExactMatchSearch.
func Build(pats []Pattern) *Artifacts {
	cpBuilder := alphabet.NewBuilder()
	for _, p := range pats {
		for _, r := range p.Prefix {
			// spec §4.2: weight by count+1, not count, so even a
			// zero-evidence seed pattern (internal/compile.Seed) still
			// contributes a nonzero weight to its code points.
			cpBuilder.Add(int32(r), int64(p.Count)+1)
		}
	}
	numCP := cpBuilder.NumKeys()
	c2i := cpBuilder.Build(numCP)

	posBase := int32(numCP) + 1
	posSyms := make(map[string]int32)
	posSymFor := func(s string) int32 {
		if sym, ok := posSyms[s]; ok {
			return sym
		}
		sym := posBase + int32(len(posSyms))
		posSyms[s] = sym
		return sym
	}

	fbag := intern.New()
	featureIDs := make([]int, len(pats))
	for i, p := range pats {
		featureIDs[i] = fbag.ToI(p.Feature)
	}
	blob, featOffsets := fbag.Blob()

	p2f := make([]uint64, len(pats))
	tr := trie.New()
	for i, p := range pats {
		ownPos := featurePrefix(p.Feature, NumPOSFields)
		ctxSID := uint32(posSymFor(ownPos))
		surfLen := uint32(len(ownPos))
		fullLen := uint32(len(p.Feature))
		featOff := featOffsets[featureIDs[i]]
		p2f[i] = codec.EncodeRecord(ctxSID, surfLen, fullLen, featOff)

		key := make([]int32, 0, len(p.Prefix)+1)
		for _, r := range p.Prefix {
			key = append(key, int32(c2i.Get(int32(r))))
		}
		if p.PrevPOS != "" {
			key = append(key, posSymFor(p.PrevPOS))
		}
		ctype := uint32(charType(p.Prefix))
		if p.Prefix == "" {
			ctype = 0
		}
		payload := codec.EncodePayload(uint32(p.Bytes), ctype, uint32(i))
		v := tr.Update(key)
		*v = int64(payload)
	}

	return &Artifacts{Trie: tr, Alphabet: c2i, P2F: p2f, Features: blob}
}
