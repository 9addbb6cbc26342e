// Package codec implements the bit-packed on-disk record formats defined
// by spec §3 and §4.5: the 32-bit trie payload and the 64-bit
// pattern->feature record. Field boundaries here are load-bearing — the
// .da and .p2f headers carry a framing version but nothing that records
// this bit layout, so a change to any shift/mask here breaks every
// previously compiled dictionary.
package codec

const (
	payloadPatternIDBits = 20
	payloadCTypeBits     = 3
	payloadBytesBits     = 9

	payloadPatternIDMask = (1 << payloadPatternIDBits) - 1
	payloadCTypeMask     = (1 << payloadCTypeBits) - 1
	payloadBytesMask     = (1 << payloadBytesBits) - 1
)

// EncodePayload packs (bytes, ctype, patternID) into the 32-bit trie
// payload stored at a pattern's node (spec §3). The previous-POS
// conditioning a pattern carries is not part of this payload at all: the
// trainer appends the condition as an extra trie key symbol (see
// internal/compile), in the same symbol space a p2f record's ctx_sid
// names a pattern's own POS-prefix by (recordCtxSIDBits below).
func EncodePayload(bytes, ctype, patternID uint32) uint32 {
	return (bytes&payloadBytesMask)<<(payloadCTypeBits+payloadPatternIDBits) |
		(ctype&payloadCTypeMask)<<payloadPatternIDBits |
		(patternID & payloadPatternIDMask)
}

// DecodePayload unpacks a 32-bit trie payload into its three fields.
func DecodePayload(payload uint32) (bytesLen, ctype, patternID uint32) {
	patternID = payload & payloadPatternIDMask
	ctype = (payload >> payloadPatternIDBits) & payloadCTypeMask
	bytesLen = (payload >> (payloadPatternIDBits + payloadCTypeBits)) & payloadBytesMask
	return
}

const (
	recordCtxSIDBits   = 14
	recordSurfLenBits  = 7
	recordFullLenBits  = 13
	recordOffsetBits   = 30
	recordCtxSIDMask   = (1 << recordCtxSIDBits) - 1
	recordSurfLenMask  = (1 << recordSurfLenBits) - 1
	recordFullLenMask  = (1 << recordFullLenBits) - 1
	recordOffsetMask   = (1 << recordOffsetBits) - 1
	recordCtxSIDShift  = 0
	recordSurfShift    = recordCtxSIDBits
	recordFullShift    = recordCtxSIDBits + recordSurfLenBits
	recordOffsetShift  = recordCtxSIDBits + recordSurfLenBits + recordFullLenBits
)

// EncodeRecord packs the per-pattern p2f record (spec §3): the POS symbol
// this pattern emits as context for the next match, the short and full
// feature lengths, and the feature blob offset.
func EncodeRecord(ctxSID uint32, surfaceFeatLen, fullFeatLen uint32, featOffset uint32) uint64 {
	var rec uint64
	rec |= uint64(ctxSID&recordCtxSIDMask) << recordCtxSIDShift
	rec |= uint64(surfaceFeatLen&recordSurfLenMask) << recordSurfShift
	rec |= uint64(fullFeatLen&recordFullLenMask) << recordFullShift
	rec |= uint64(featOffset&recordOffsetMask) << recordOffsetShift
	return rec
}

// DecodeRecord unpacks a p2f record into its four fields.
func DecodeRecord(rec uint64) (ctxSID, surfaceFeatLen, fullFeatLen, featOffset uint32) {
	ctxSID = uint32(rec>>recordCtxSIDShift) & recordCtxSIDMask
	surfaceFeatLen = uint32(rec>>recordSurfShift) & recordSurfLenMask
	fullFeatLen = uint32(rec>>recordFullShift) & recordFullLenMask
	featOffset = uint32(rec>>recordOffsetShift) & recordOffsetMask
	return
}
