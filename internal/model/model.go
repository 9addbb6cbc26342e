// Package model loads (and, if necessary, builds) a compiled dictionary:
// the four on-disk artifacts sharing a basename, as described by spec §6.
package model

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/ynaga-lab/jagger-go/internal/alphabet"
	"github.com/ynaga-lab/jagger-go/internal/compile"
	"github.com/ynaga-lab/jagger-go/internal/match"
	"github.com/ynaga-lab/jagger-go/internal/tokenize"
	"github.com/ynaga-lab/jagger-go/internal/trie"
)

// ErrBadFormat is returned when the .p2f artifact fails its header or
// checksum validation.
var ErrBadFormat = errors.New("model: bad .p2f format")

// Model is a loaded dictionary ready to back a Tokenizer.
type Model struct {
	Matcher  *match.Matcher
	P2F      []uint64
	Features []byte
}

// Dictionary adapts m to the minimal view internal/tokenize needs,
// avoiding an import cycle between the two packages.
func (m *Model) Dictionary() *tokenize.Dictionary {
	return &tokenize.Dictionary{Matcher: m.Matcher, P2F: m.P2F, Features: m.Features}
}

// Load reads the compiled dictionary sharing basename under dir. If
// <basename>.da is absent, Load compiles it (and its siblings) from the
// plain-text <basename> pattern file first (spec §6).
func Load(dir, basename string) (*Model, error) {
	base := filepath.Join(dir, basename)
	if _, err := os.Stat(base + ".da"); errors.Is(err, os.ErrNotExist) {
		if err := compileToDisk(base); err != nil {
			return nil, fmt.Errorf("model: auto-compile %s: %w", base, err)
		}
	}

	tr, err := loadTrie(base + ".da")
	if err != nil {
		return nil, err
	}
	c2i, err := loadAlphabet(base + ".c2i")
	if err != nil {
		return nil, err
	}
	p2f, err := loadP2F(base + ".p2f")
	if err != nil {
		return nil, err
	}
	features, err := loadFeatures(base)
	if err != nil {
		return nil, err
	}

	return &Model{Matcher: match.New(tr, c2i), P2F: p2f, Features: features}, nil
}

func compileToDisk(base string) error {
	text, err := os.Open(base)
	if err != nil {
		return err
	}
	defer text.Close()

	pats, err := compile.ParseText(text)
	if err != nil {
		return err
	}
	artifacts := compile.Build(pats)

	if err := writeFile(base+".da", artifacts.Trie.Save); err != nil {
		return err
	}
	if err := writeFile(base+".c2i", artifacts.Alphabet.Truncate(alphabet.PersistLen).Save); err != nil {
		return err
	}
	if err := writeFile(base+".p2f", func(w io.Writer) error { return saveP2F(w, artifacts.P2F) }); err != nil {
		return err
	}
	return os.WriteFile(base+".fs", artifacts.Features, 0o644)
}

func writeFile(path string, save func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return save(f)
}

func loadTrie(path string) (*trie.Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return trie.Load(f)
}

func loadAlphabet(path string) (*alphabet.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return alphabet.Load(f)
}

const (
	p2fMagic      = "JP2F"
	p2fVersion    = uint16(1)
	p2fHeaderSize = 16
)

// saveP2F writes recs as a little-endian, CRC32-checked binary image, the
// same framing style as internal/trie's .da artifact.
func saveP2F(w io.Writer, recs []uint64) error {
	body := make([]byte, len(recs)*8)
	for i, r := range recs {
		binary.LittleEndian.PutUint64(body[i*8:], r)
	}

	header := make([]byte, p2fHeaderSize)
	copy(header[0:4], p2fMagic)
	binary.LittleEndian.PutUint16(header[4:6], p2fVersion)
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(recs)))
	binary.LittleEndian.PutUint32(header[12:16], crc32.ChecksumIEEE(body))

	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}

func loadP2F(path string) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if len(data) < p2fHeaderSize || !bytes.Equal(data[0:4], []byte(p2fMagic)) {
		return nil, ErrBadFormat
	}
	if binary.LittleEndian.Uint16(data[4:6]) != p2fVersion {
		return nil, ErrBadFormat
	}
	n := int(binary.LittleEndian.Uint32(data[8:12]))
	wantCRC := binary.LittleEndian.Uint32(data[12:16])

	body := data[p2fHeaderSize:]
	if len(body) != n*8 {
		return nil, ErrBadFormat
	}
	if crc32.ChecksumIEEE(body) != wantCRC {
		return nil, ErrBadFormat
	}

	recs := make([]uint64, n)
	for i := range recs {
		recs[i] = binary.LittleEndian.Uint64(body[i*8:])
	}
	return recs, nil
}

// loadFeatures reads <base>.fs, falling back to a zstd-compressed
// <base>.fs.zst when the plain artifact is absent (spec's optional
// compressed feature blob).
func loadFeatures(base string) ([]byte, error) {
	if data, err := os.ReadFile(base + ".fs"); err == nil {
		return data, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	f, err := os.Open(base + ".fs.zst")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return io.ReadAll(dec)
}

// CompressFeatures replaces <dir>/<basename>.fs with a zstd-compressed
// <dir>/<basename>.fs.zst, for deployments that would rather ship a
// smaller feature blob than the fastest possible load.
func CompressFeatures(dir, basename string) error {
	base := filepath.Join(dir, basename)
	data, err := os.ReadFile(base + ".fs")
	if err != nil {
		return err
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return err
	}
	compressed := enc.EncodeAll(data, nil)
	if err := enc.Close(); err != nil {
		return err
	}

	if err := os.WriteFile(base+".fs.zst", compressed, 0o644); err != nil {
		return err
	}
	return os.Remove(base + ".fs")
}
