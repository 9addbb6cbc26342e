// Package intern implements the append-only string interner used both as
// the "pattern bag" (surface keys mined during training) and the "feature
// bag" (comma-separated feature strings), spec §4.3.
package intern

import "bytes"

// Bag is an append-only set of byte strings with stable small-integer IDs.
type Bag struct {
	strs []string
	ids  map[string]int
}

// New returns an empty Bag.
func New() *Bag {
	return &Bag{ids: make(map[string]int)}
}

// ToI interns s, returning its existing ID or allocating a new one.
func (b *Bag) ToI(s string) int {
	if id, ok := b.ids[s]; ok {
		return id
	}
	id := len(b.strs)
	// strs is grown by value; copy s so later callers mutating a shared
	// byte slice behind s can't retroactively corrupt the bag.
	owned := string(append([]byte(nil), s...))
	b.strs = append(b.strs, owned)
	b.ids[owned] = id
	return id
}

// Find returns s's ID, or -1 if s was never interned.
func (b *Bag) Find(s string) int {
	if id, ok := b.ids[s]; ok {
		return id
	}
	return -1
}

// ToS returns the string previously interned with ID id.
func (b *Bag) ToS(id int) string { return b.strs[id] }

// Size returns the number of distinct interned strings.
func (b *Bag) Size() int { return len(b.strs) }

// Blob concatenates every interned string in ID order and returns the
// blob along with each string's starting byte offset, the layout the
// on-disk .fs feature blob and its p2f offsets rely on.
func (b *Bag) Blob() (blob []byte, offsets []uint32) {
	offsets = make([]uint32, len(b.strs))
	var buf bytes.Buffer
	for i, s := range b.strs {
		offsets[i] = uint32(buf.Len())
		buf.WriteString(s)
	}
	return buf.Bytes(), offsets
}
