// Package scanner decodes UTF-8 input one code point at a time, the way
// the trie matcher expects to be fed (spec §4.1).
package scanner

// MaxCodePoint is the highest valid Unicode scalar value.
const MaxCodePoint = 0x10FFFF

// Read decodes one UTF-8 code point from the head of b and returns its
// numeric value and its byte length. b must be non-empty.
//
// Invalid sequences are never rejected: a lead byte that doesn't start a
// well-formed, in-bounds encoding is treated as a single-byte unknown
// token. The caller never needs to special-case decode errors; the trie
// simply won't have a path for the returned code point and the matcher
// falls through to the unknown-token path.
func Read(b []byte) (cp int32, length int) {
	c0 := b[0]
	switch {
	case c0 < 0x80:
		return int32(c0), 1
	case c0 < 0xC0:
		// stray continuation byte
		return int32(c0), 1
	case c0 < 0xE0:
		if len(b) < 2 || !isCont(b[1]) {
			return int32(c0), 1
		}
		cp := int32(c0&0x1F)<<6 | int32(b[1]&0x3F)
		if cp < 0x80 {
			return int32(c0), 1
		}
		return cp, 2
	case c0 < 0xF0:
		if len(b) < 3 || !isCont(b[1]) || !isCont(b[2]) {
			return int32(c0), 1
		}
		cp := int32(c0&0x0F)<<12 | int32(b[1]&0x3F)<<6 | int32(b[2]&0x3F)
		if cp < 0x800 {
			return int32(c0), 1
		}
		return cp, 3
	case c0 < 0xF8:
		if len(b) < 4 || !isCont(b[1]) || !isCont(b[2]) || !isCont(b[3]) {
			return int32(c0), 1
		}
		cp := int32(c0&0x07)<<18 | int32(b[1]&0x3F)<<12 | int32(b[2]&0x3F)<<6 | int32(b[3]&0x3F)
		if cp < 0x10000 || cp > MaxCodePoint {
			return int32(c0), 1
		}
		return cp, 4
	default:
		return int32(c0), 1
	}
}

func isCont(b byte) bool { return b&0xC0 == 0x80 }

// Len returns the byte length of the UTF-8 character starting at b[0]
// without validating the full sequence; used by the tokenizer's unknown
// single-character fallback (spec §4.7 step 2, bytes==0 case).
func Len(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	c0 := b[0]
	switch {
	case c0 < 0x80:
		return 1
	case c0 < 0xC0:
		return 1
	case c0 < 0xE0:
		return min(2, len(b))
	case c0 < 0xF0:
		return min(3, len(b))
	case c0 < 0xF8:
		return min(4, len(b))
	default:
		return 1
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
