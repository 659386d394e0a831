// Package dictionary provides CC-CEDICT backed gloss lookup for Chinese
// breakdown entries. A small embedded seed keeps lookups working when no
// dictionary file is configured; a full cedict_ts.u8 can be pointed at via
// configuration for production use.
package dictionary

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// Entry is one CC-CEDICT line. Definitions keep the file's slash-separated
// senses in order.
type Entry struct {
	Traditional string
	Simplified  string
	Pinyin      string
	Definitions []string
}

// CEDICT is an in-memory dictionary keyed by both traditional and simplified
// forms. It is immutable after load and safe for concurrent reads.
type CEDICT struct {
	entries map[string]Entry
}

var lineRe = regexp.MustCompile(`^(\S+)\s+(\S+)\s+\[([^\]]+)\]\s+/(.+)/$`)

// Load parses CC-CEDICT formatted lines from r. Comment lines and lines that
// do not match the format are skipped.
func Load(r io.Reader) (*CEDICT, error) {
	d := &CEDICT{entries: make(map[string]Entry)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		e := Entry{
			Traditional: m[1],
			Simplified:  m[2],
			Pinyin:      m[3],
			Definitions: strings.Split(m[4], "/"),
		}
		if _, exists := d.entries[e.Traditional]; !exists {
			d.entries[e.Traditional] = e
		}
		if _, exists := d.entries[e.Simplified]; !exists {
			d.entries[e.Simplified] = e
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadFile loads a CC-CEDICT file from path. When path is empty or the file
// cannot be read, the embedded seed dictionary is returned instead so Chinese
// gloss lookup always has something to work with.
func LoadFile(path string) *CEDICT {
	if path != "" {
		f, err := os.Open(path)
		if err == nil {
			defer f.Close()
			d, err := Load(f)
			if err == nil {
				logrus.WithFields(logrus.Fields{"path": path, "entries": len(d.entries)}).Info("CEDICT dictionary loaded")
				return d
			}
			logrus.WithError(err).Warn("Failed to parse CEDICT file, using embedded seed")
		} else {
			logrus.WithError(err).Warn("Failed to open CEDICT file, using embedded seed")
		}
	}
	d, err := Load(strings.NewReader(seedData))
	if err != nil {
		// The seed is compiled in; a parse failure here is a programming error.
		logrus.WithError(err).Error("Failed to parse embedded CEDICT seed")
		return &CEDICT{entries: make(map[string]Entry)}
	}
	return d
}

// Len reports how many distinct headwords are loaded.
func (d *CEDICT) Len() int {
	return len(d.entries)
}

// Lookup returns the entry for word, trying the exact form as written.
func (d *CEDICT) Lookup(word string) (Entry, bool) {
	e, ok := d.entries[word]
	return e, ok
}

// Grammatical particles whose dictionary senses read badly as standalone
// glosses. These take priority over per-character decomposition.
var particleGlosses = map[string]string{
	"的": "(possessive/descriptive particle)",
	"了": "(completion/change particle)",
	"是": "is; am; are",
	"在": "at; in; (progressive particle)",
	"把": "(object-marking particle)",
	"被": "(passive particle)",
	"得": "(complement particle)",
	"地": "(adverbial particle)",
	"著": "(continuous aspect particle)",
	"過": "(experiential particle)",
	"會": "will; can",
	"能": "can; able to",
	"要": "want; need; will",
}

// Gloss resolves an English meaning for word by layered lookup: exact
// dictionary entry, then the particle table, then a per-character
// decomposition joined with " + ", and finally the word itself when nothing
// matched.
func (d *CEDICT) Gloss(word string) string {
	if e, ok := d.entries[word]; ok {
		if def := bestDefinition(e.Definitions); def != "" {
			return def
		}
	}
	if g, ok := particleGlosses[word]; ok {
		return g
	}
	runes := []rune(word)
	if len(runes) > 1 {
		parts := make([]string, 0, len(runes))
		matched := false
		for _, r := range runes {
			s := string(r)
			if g, ok := particleGlosses[s]; ok {
				parts = append(parts, g)
				matched = true
				continue
			}
			if e, ok := d.entries[s]; ok {
				if def := bestDefinition(e.Definitions); def != "" {
					parts = append(parts, def)
					matched = true
					continue
				}
			}
			parts = append(parts, s)
		}
		if matched {
			return strings.Join(parts, " + ")
		}
	}
	return word
}

// bestDefinition picks the first sense that is a usable standalone gloss,
// skipping cross-references and proper-name senses.
func bestDefinition(defs []string) string {
	for _, def := range defs {
		def = strings.TrimSpace(def)
		if def == "" {
			continue
		}
		lower := strings.ToLower(def)
		if strings.Contains(lower, "variant of") || strings.Contains(lower, "surname") {
			continue
		}
		return def
	}
	return ""
}
