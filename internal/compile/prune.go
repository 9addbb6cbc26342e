package compile

import (
	"sort"

	"golang.org/x/exp/maps"
)

// Pattern is one surviving mined pattern, ready for emission to the
// `patterns` text artifact (spec §4.8 stage 4/5).
type Pattern struct {
	Prefix  string // surface bytes; empty for a POS-only fallback pattern
	PrevPOS string // "" if unconditioned
	Feature string
	Bytes   int
	Count   int
}

// Select picks, for every mined candidate key, the feature that won the
// most occurrences (ties broken by the longer feature string, matching
// train_jagger.cc's preference for the more specific annotation), and
// returns the survivors ordered by descending count.
//
// A candidate dominated by a shorter key with the same bytes and feature
// is dropped. Mined bytes always equal the prefix length, so the only
// shorter key that can dominate is a conditioned candidate's own
// unconditioned sibling (same prefix, previous-POS symbol removed). The
// original trainer's support-count threshold on this rule is not applied:
// see unusedMinDominatedCount.
func Select(counts candidateStats) []Pattern {
	// Walk the candidate (pattern-bag) and per-candidate feature (feature-
	// bag) maps via x/exp/maps, sorted, rather than ranging Go's map
	// directly — keeps emission order reproducible independent of map
	// iteration order, the way the teacher walks its own accumulated maps
	// before writing them out.
	keys := maps.Keys(counts)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].prefix != keys[j].prefix {
			return keys[i].prefix < keys[j].prefix
		}
		return keys[i].prevPOS < keys[j].prevPOS
	})

	pats := make([]Pattern, 0, len(keys))
	for _, k := range keys {
		feats := counts[k]
		featKeys := maps.Keys(feats)
		sort.Strings(featKeys)

		var bestFeat string
		var bestStat *featStat
		for _, feat := range featKeys {
			st := feats[feat]
			switch {
			case bestStat == nil:
				bestFeat, bestStat = feat, st
			case st.count > bestStat.count:
				bestFeat, bestStat = feat, st
			case st.count == bestStat.count && len(feat) > len(bestFeat):
				bestFeat, bestStat = feat, st
			}
		}
		pats = append(pats, Pattern{
			Prefix:  k.prefix,
			PrevPOS: k.prevPOS,
			Feature: bestFeat,
			Bytes:   bestStat.bytes,
			Count:   bestStat.count,
		})
	}
	// Drop a conditioned candidate whose unconditioned sibling (the same
	// key minus its previous-POS symbol) yields the same bytes and feature.
	uncond := make(map[string]Pattern)
	for _, p := range pats {
		if p.PrevPOS == "" {
			uncond[p.Prefix] = p
		}
	}
	kept := pats[:0]
	for _, p := range pats {
		if u, ok := uncond[p.Prefix]; !ok || p.PrevPOS == "" || u.Bytes != p.Bytes || u.Feature != p.Feature {
			kept = append(kept, p)
		}
	}
	pats = kept
	sort.SliceStable(pats, func(i, j int) bool {
		if pats[i].Count != pats[j].Count {
			return pats[i].Count > pats[j].Count
		}
		if pats[i].Prefix != pats[j].Prefix {
			return pats[i].Prefix < pats[j].Prefix
		}
		return pats[i].PrevPOS < pats[j].PrevPOS
	})
	return pats
}

// unusedMinDominatedCount mirrors train_jagger.cc's commented-out
// support-count threshold on domination pruning. Kept unreferenced:
// Select drops every dominated candidate regardless of its count.
const unusedMinDominatedCount = 70
