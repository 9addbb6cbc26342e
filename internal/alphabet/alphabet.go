// Package alphabet implements the dense code-point-to-symbol map (c2i,
// spec §4.2): code points and a handful of synthetic IDs (BOS, per-POS
// context) are remapped to small 16-bit symbol IDs so that hot characters
// get cache-dense IDs inside the trie.
package alphabet

import (
	"encoding/binary"
	"errors"
	"io"
	"sort"
)

// CPMax is the highest valid Unicode scalar value a code point may take
// before the synthetic tail begins.
const CPMax = 0x10FFFF

// BOS is the synthetic code point denoting beginning-of-sentence.
const BOS = CPMax + 1

// PersistLen is the number of entries written to the on-disk .c2i file:
// one per code point in [0, CPMax] plus the BOS sentinel.
const PersistLen = CPMax + 2

// ErrTruncated is returned when a .c2i stream has an odd number of bytes.
var ErrTruncated = errors.New("alphabet: truncated c2i stream")

// Map is a loaded (or in-progress) code-point -> symbol-ID table. sid 0 is
// always reserved for "terminator / unknown".
type Map struct {
	ids []uint16
}

// New allocates a Map with n zeroed entries.
func New(n int) *Map {
	if n < 1 {
		n = 1
	}
	return &Map{ids: make([]uint16, n)}
}

// Get returns the symbol ID for cp, or 0 if cp is out of range or was
// never observed during training.
func (m *Map) Get(cp int32) uint16 {
	if cp < 0 || int(cp) >= len(m.ids) {
		return 0
	}
	return m.ids[cp]
}

// Set assigns sid to cp, growing the table if necessary.
func (m *Map) Set(cp int32, sid uint16) {
	for int(cp) >= len(m.ids) {
		m.ids = append(m.ids, 0)
	}
	m.ids[cp] = sid
}

// Len reports how many entries the table currently has.
func (m *Map) Len() int { return len(m.ids) }

// Truncate returns a copy containing only the first n entries, used to
// cap the table at PersistLen before persisting (spec §4.2: "Persist only
// the first CP_MAX+2 entries").
func (m *Map) Truncate(n int) *Map {
	if n > len(m.ids) {
		n = len(m.ids)
	}
	out := make([]uint16, n)
	copy(out, m.ids[:n])
	return &Map{ids: out}
}

// Save writes the table as a sequence of little-endian uint16 values.
func (m *Map) Save(w io.Writer) error {
	buf := make([]byte, len(m.ids)*2)
	for i, id := range m.ids {
		binary.LittleEndian.PutUint16(buf[i*2:], id)
	}
	_, err := w.Write(buf)
	return err
}

// Load reads a table previously written by Save.
func Load(r io.Reader) (*Map, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data)%2 != 0 {
		return nil, ErrTruncated
	}
	ids := make([]uint16, len(data)/2)
	for i := range ids {
		ids[i] = binary.LittleEndian.Uint16(data[i*2:])
	}
	return &Map{ids: ids}, nil
}

// Builder accumulates weighted code-point occurrence counts during
// training and assigns dense symbol IDs in descending-count order.
type Builder struct {
	counts map[int32]int64
	order  []int32
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{counts: make(map[int32]int64)}
}

// Add records weight additional occurrences of cp.
func (b *Builder) Add(cp int32, weight int64) {
	if _, ok := b.counts[cp]; !ok {
		b.order = append(b.order, cp)
	}
	b.counts[cp] += weight
}

// Count returns the accumulated weight for cp (for tests and diagnostics).
func (b *Builder) Count(cp int32) int64 { return b.counts[cp] }

// NumKeys reports how many distinct code points have been added.
func (b *Builder) NumKeys() int { return len(b.order) }

// Build sorts every observed code point by descending count, breaking ties
// by first-seen order (a stable secondary index), and assigns
// sid = 1, 2, ... in that order. size is the length of the resulting Map;
// it is raised to at least PersistLen.
func (b *Builder) Build(size int) *Map {
	if size < PersistLen {
		size = PersistLen
	}
	type entry struct {
		cp  int32
		cnt int64
		seq int
	}
	entries := make([]entry, 0, len(b.order))
	for seq, cp := range b.order {
		entries = append(entries, entry{cp: cp, cnt: b.counts[cp], seq: seq})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].cnt > entries[j].cnt
	})
	m := New(size)
	for i, e := range entries {
		sid := uint16(i + 1)
		if int(e.cp) < len(m.ids) {
			m.ids[e.cp] = sid
		}
	}
	return m
}
