package romanize

import (
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/sirupsen/logrus"
)

// Reading overrides for tokens where the IPA dictionary's default reading is
// overly formal (私 comes back as watakushi).
var jaReadingOverrides = map[string]string{
	"私": "watashi",
	"俺": "ore",
	"僕": "boku",
}

// Particles whose written kana differs from its pronunciation. Applied only
// when the token's part of speech marks it as a particle.
var jaParticleReadings = map[string]string{
	"は": "wa",
	"を": "o",
	"へ": "e",
}

const jaPunct = "、。！？「」『』（）…—·〜～，"

var (
	jaTokenizer     *tokenizer.Tokenizer
	jaTokenizerOnce sync.Once
)

func japaneseTokenizer() *tokenizer.Tokenizer {
	jaTokenizerOnce.Do(func() {
		t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
		if err != nil {
			logrus.WithError(err).Error("Failed to initialize Japanese tokenizer")
			return
		}
		jaTokenizer = t
	})
	return jaTokenizer
}

func isAllPunct(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(jaPunct, r) {
			return false
		}
	}
	return true
}

// Japanese romanizes Japanese text to Hepburn romaji: morphological
// tokenization, reading extraction with override and particle correction,
// kana conversion, then long-vowel collapsing over the joined string.
// Empty or whitespace-only input yields an empty string.
func Japanese(text string) string {
	t := japaneseTokenizer()
	if t == nil || strings.TrimSpace(text) == "" {
		return ""
	}

	var parts []string
	for _, tok := range t.Tokenize(text) {
		surface := tok.Surface
		if surface == "" || isAllPunct(surface) {
			continue
		}

		if override, ok := jaReadingOverrides[surface]; ok {
			parts = append(parts, override)
			continue
		}

		pos := tok.POS()
		if len(pos) > 0 && pos[0] == "助詞" {
			if fixed, ok := jaParticleReadings[surface]; ok {
				parts = append(parts, fixed)
				continue
			}
		}

		reading, ok := tok.Reading()
		if !ok || reading == "" || reading == "*" {
			reading = surface
		}
		if romaji := kanaToRomaji(reading); strings.TrimSpace(romaji) != "" {
			parts = append(parts, romaji)
		}
	}

	return collapseLongVowels(strings.Join(parts, " "))
}

// Long-vowel replacements in application order. Raw kana concatenation writes
// doubled letters (せんせい → sensee); Hepburn wants macrons (sensē).
var longVowelPairs = [][2]string{
	{"aa", "ā"},
	{"ii", "ī"},
	{"uu", "ū"},
	{"ee", "ē"},
	{"ou", "ō"},
	{"oo", "ō"},
}

func collapseLongVowels(romaji string) string {
	for _, p := range longVowelPairs {
		romaji = strings.ReplaceAll(romaji, p[0], p[1])
	}
	return romaji
}
