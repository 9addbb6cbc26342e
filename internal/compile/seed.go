package compile

import jagger "github.com/ynaga-lab/jagger-go"

// seedChars carries train_jagger.cc's chars_[] seed strings verbatim: index
// 0 is numeric/kanji-numeral, 1 is fullwidth Latin, 2 is kana.
// Any character not covered here, and not a plain ASCII digit or letter,
// classifies as CTypePunct (kanji, punctuation, everything else).
var seedChars = [3]string{
	"０１２３４５６７８９〇一二三四五六七八九十百千万億兆数・",
	"ａｂｃｄｅｆｇｈｉｊｋｌｍｎｏｐｑｒｓｔｕｖｗｘｙｚＡＢＣＤＥＦＧＨＩＪＫＬＭＮＯＰＱＲＳＴＵＶＷＸＹＺ＠：／．",
	"ァアィイゥウェエォオカガキギクグケゲコゴサザシジスズセゼソゾタダチヂッツヅテデトドナニヌネノハバパヒビピフブプヘベペホボポマミムメモャヤュユョヨラリルレロヮワヰヱヲンヴヵヶヷヸヹヺーヽヾヿ",
}

var seedSet [3]map[rune]bool

func init() {
	for i, s := range seedChars {
		seedSet[i] = make(map[rune]bool, len(s))
		for _, r := range s {
			seedSet[i][r] = true
		}
	}
}

// classify returns the ctype (spec GLOSSARY) of a single rune.
func classify(r rune) jagger.CType {
	switch {
	case r >= '0' && r <= '9':
		return jagger.CTypeOther
	case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		return jagger.CTypeAlpha
	}
	if seedSet[0][r] {
		return jagger.CTypeOther
	}
	if seedSet[1][r] {
		return jagger.CTypeAlpha
	}
	if seedSet[2][r] {
		return jagger.CTypeKana
	}
	return jagger.CTypePunct
}

// charType classifies a whole surface by its first rune, matching
// train_jagger.cc's char_type() as used to tag single-pattern ctype.
func charType(surface string) jagger.CType {
	for _, r := range surface {
		return classify(r)
	}
	return jagger.CTypeOther
}

// seedFeature is the placeholder feature attached to a seed pattern: a
// pattern's ctype is always recomputed from its prefix by charType, so the
// feature itself only needs to be a well-formed, 4-field POS-prefix
// (matching the "*,*,*,*" wildcard convention the tokenizer's concatenated-
// unknown path already emits, tokenize.go's decodeFeature).
const seedFeature = "*,*,*,*"

// Seed adds one zero-evidence candidate per code point in seedChars to
// counts, for every code point not already mined from the corpus (spec
// §4.8 stage 2, train_jagger.cc:62-69's `chars.update(...)`). Without this
// step, a num/alpha/kana code point that never occurs as a standalone
// token in the training corpus gets no trie entry at all and falls
// through to the unknown path at runtime instead of its correct ctype,
// silently breaking the kana/alpha concatenation heuristics (spec §4.7)
// for exactly the characters the seed tables exist to cover.
//
// A seed candidate never outranks a real mined one: Select already prefers
// the higher-count feature for a given key, and Seed only inserts a key
// that Mine never produced.
func Seed(counts candidateStats) {
	for _, s := range seedChars {
		for _, r := range s {
			surface := string(r)
			k := candKey{prefix: surface}
			if _, ok := counts[k]; ok {
				continue
			}
			add(counts, k, seedFeature, len(surface))
		}
	}
}

// SeedPatterns returns the baseline seed patterns (see Seed) as a
// standalone Pattern slice, for composing a dictionary without a mined
// corpus — e.g. in tests that need the num/alpha/kana code points to
// carry their correct ctype.
func SeedPatterns() []Pattern {
	counts := make(candidateStats)
	Seed(counts)
	return Select(counts)
}
