package compile

import (
	"bufio"
	"io"
	"strings"

	"github.com/ynaga-lab/jagger-go/internal/intern"
	"github.com/ynaga-lab/jagger-go/logging"
)

// NumPOSFields is the number of leading comma-separated sub-fields of a
// dictionary feature string that make up the short "POS-prefix" feature
// used as previous-token context (spec GLOSSARY: "POS context").
const NumPOSFields = 4

// DictEntry is one parsed lexicon row: a surface pattern plus the
// (posPrefixID, fullFeatureID) pair recorded for it. A surface may recur
// across rows with different features; every occurrence is kept.
type DictEntry struct {
	PatternID    int
	PosPrefixFID int
	FullFID      int
}

// ParseDict reads a lexicon CSV (`surface,lid,rid,cost,pos1,pos2,...`,
// optionally double-quoted to protect an embedded comma in surface) and
// interns every surface as a pattern candidate, spec §4.8 stage 1.
func ParseDict(r io.Reader, pbag, fbag *intern.Bag) ([]DictEntry, int, error) {
	var entries []DictEntry
	maxPlen := 0

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		surface, rest, ok := splitSurface(line)
		if !ok {
			// malformed pattern line: skipped with a diagnostic
			logging.Warn().Str("line", line).Msg("compile: skipping malformed dictionary line")
			continue
		}
		if len(surface) > maxPlen {
			maxPlen = len(surface)
		}
		fields := strings.SplitN(rest, ",", 4) // lid, rid, cost, feature...
		if len(fields) < 4 {
			logging.Warn().Str("line", line).Msg("compile: skipping malformed dictionary line")
			continue
		}
		feature := fields[3]
		posPrefix := featurePrefix(feature, NumPOSFields)

		pi := pbag.ToI(surface)
		posFID := fbag.ToI(posPrefix)
		fullFID := fbag.ToI(feature)
		entries = append(entries, DictEntry{PatternID: pi, PosPrefixFID: posFID, FullFID: fullFID})
	}
	return entries, maxPlen, sc.Err()
}

// splitSurface extracts the (possibly quoted) surface field from a raw
// dictionary line and returns the remainder (still comma-joined).
func splitSurface(line string) (surface, rest string, ok bool) {
	if strings.HasPrefix(line, `"`) {
		end := strings.Index(line[1:], `"`)
		if end < 0 {
			return "", "", false
		}
		end++ // index within line
		surface = line[1:end]
		if end+2 > len(line) || line[end+1] != ',' {
			return "", "", false
		}
		return surface, line[end+2:], true
	}
	idx := strings.IndexByte(line, ',')
	if idx < 0 {
		return "", "", false
	}
	return line[:idx], line[idx+1:], true
}

// featurePrefix joins the first n comma-separated sub-fields of feature.
func featurePrefix(feature string, n int) string {
	fields := strings.Split(feature, ",")
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, ",")
}
