// Package tokenize implements the per-line tokenizer driver (spec §4.7):
// it repeatedly invokes the matcher, decides word boundaries using
// character-type heuristics, and emits surface + feature pairs.
package tokenize

import (
	jagger "github.com/ynaga-lab/jagger-go"
	"github.com/ynaga-lab/jagger-go/internal/codec"
	"github.com/ynaga-lab/jagger-go/internal/match"
	"github.com/ynaga-lab/jagger-go/internal/scanner"
)

// kanaConcatLimit is the byte-length threshold at which a run of
// concatenated kana characters is forcibly split (spec §4.7 step 3).
const kanaConcatLimit = 18

// Dictionary is the minimal read-only view of a compiled model the
// tokenizer needs: a matcher plus the pattern->feature table and feature
// blob it was compiled against.
type Dictionary struct {
	Matcher  *match.Matcher
	P2F      []uint64
	Features []byte
}

// Tokenizer drives LongestPrefixSearchWithPOS across a line and turns the
// resulting payload stream into tokens.
type Tokenizer struct {
	dict *Dictionary
}

// New returns a Tokenizer bound to dict.
func New(dict *Dictionary) *Tokenizer {
	return &Tokenizer{dict: dict}
}

// Tokenize splits line (without its trailing newline) into tokens. It
// never fails: every byte of line is accounted for by exactly one token's
// surface (spec §8 property 1). Unmatched bytes are consumed one
// character at a time as unknown (ctype 0) matches, and consecutive ones
// concatenate into a single token.
func (t *Tokenizer) Tokenize(line []byte) []jagger.Token {
	if len(line) == 0 {
		return nil
	}
	d := t.dict

	var tokens []jagger.Token
	var (
		offsets    uint64 // previous token's p2f record
		tokenBytes int     // bytes consumed by the token under construction
		ctypePrev  jagger.CType
		bos        = true
		tokenStart = 0
		curConcat  = false
		haveToken  = false
	)

	flush := func(end int) {
		if !haveToken {
			return
		}
		_, surfLen, fullLen, featOff := codec.DecodeRecord(offsets)
		surface := string(line[tokenStart:end])
		feature := decodeFeature(d.Features, featOff, surfLen, fullLen, curConcat)
		tokens = append(tokens, jagger.Token{
			Surface: surface,
			Feature: feature,
			CType:   ctypePrev,
			Concat:  curConcat,
		})
	}

	for p := 0; p < len(line); {
		fiPrev := uint32(offsets & 0x3FFF)
		r := d.Matcher.LongestPrefixSearchWithPOS(line[p:], fiPrev)
		bytesLen, ctypeRaw, patternID := codec.DecodePayload(r)
		if bytesLen == 0 {
			bytesLen = uint32(scanner.Len(line[p:]))
		}
		if bytesLen == 0 {
			// defensive: never spin on an empty advance
			bytesLen = 1
		}
		ctype := jagger.CType(ctypeRaw)

		boundary := false
		switch {
		case bos:
			boundary = true
			bos = false
		case ctypePrev != ctype:
			boundary = true
		case ctypePrev == jagger.CTypePunct:
			boundary = true
		case ctypePrev == jagger.CTypeKana && tokenBytes+int(bytesLen) >= kanaConcatLimit:
			boundary = true
		}

		if boundary {
			flush(p)
			tokenStart = p
			curConcat = false
			haveToken = true
			tokenBytes = 0
		} else {
			curConcat = true
		}

		tokenBytes += int(bytesLen)
		ctypePrev = ctype
		if int(patternID) < len(d.P2F) {
			offsets = d.P2F[patternID]
		} else {
			offsets = 0
		}
		p += int(bytesLen)
	}

	flush(len(line))
	return tokens
}

func decodeFeature(blob []byte, featOff, surfLen, fullLen uint32, concat bool) string {
	if concat {
		end := featOff + surfLen
		if int(end) > len(blob) {
			return ""
		}
		return string(blob[featOff:end]) + ",*,*,*"
	}
	end := featOff + fullLen
	if int(end) > len(blob) {
		return ""
	}
	return string(blob[featOff:end])
}
