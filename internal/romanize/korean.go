package romanize

import "strings"

// Revised Romanization jamo tables, indexed by the decomposed syllable parts.
var (
	koreanInitials = []string{
		"g", "kk", "n", "d", "tt", "r", "m", "b", "pp", "s",
		"ss", "", "j", "jj", "ch", "k", "t", "p", "h",
	}
	koreanMedials = []string{
		"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o", "wa",
		"wae", "oe", "yo", "u", "wo", "we", "wi", "yu", "eu", "ui", "i",
	}
	koreanFinals = []string{
		"", "g", "kk", "gs", "n", "nj", "nh", "d", "l", "lg",
		"lm", "lb", "ls", "lt", "lp", "lh", "m", "b", "bs", "s",
		"ss", "ng", "j", "ch", "k", "t", "p", "h",
	}
)

const (
	hangulBase = 0xAC00
	hangulEnd  = 0xD7A3
)

// Korean romanizes precomposed hangul syllables by arithmetic decomposition
// into initial, medial and final jamo. Runes outside the syllable block pass
// through unchanged.
func Korean(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r < hangulBase || r > hangulEnd {
			b.WriteRune(r)
			continue
		}
		idx := int(r - hangulBase)
		initial := idx / (21 * 28)
		medial := (idx % (21 * 28)) / 28
		final := idx % 28
		b.WriteString(koreanInitials[initial])
		b.WriteString(koreanMedials[medial])
		b.WriteString(koreanFinals[final])
	}
	return b.String()
}
