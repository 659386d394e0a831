package romanize

import "strings"

// Two-letter combinations checked before single letters. Ordering inside the
// slice keeps the scan deterministic; case variants are spelled out because a
// title-case digraph romanizes differently from an all-caps one.
var greekDigraphs = []struct {
	seq string
	rom string
}{
	{"ου", "ou"}, {"Ου", "Ou"}, {"ΟΥ", "OU"},
	{"αι", "e"}, {"Αι", "E"}, {"ΑΙ", "E"},
	{"ει", "i"}, {"Ει", "I"}, {"ΕΙ", "I"},
	{"οι", "i"}, {"Οι", "I"}, {"ΟΙ", "I"},
	{"αυ", "av"}, {"Αυ", "Av"}, {"ΑΥ", "AV"},
	{"ευ", "ev"}, {"Ευ", "Ev"}, {"ΕΥ", "EV"},
	{"μπ", "b"}, {"Μπ", "B"}, {"ΜΠ", "B"},
	{"ντ", "nt"}, {"Ντ", "Nt"}, {"ΝΤ", "NT"},
	{"γκ", "gk"}, {"Γκ", "Gk"}, {"ΓΚ", "GK"},
	{"γγ", "ng"}, {"ΓΓ", "NG"},
}

var greekLetters = map[rune]string{
	'Α': "A", 'Β': "V", 'Γ': "G", 'Δ': "D", 'Ε': "E", 'Ζ': "Z",
	'Η': "I", 'Θ': "Th", 'Ι': "I", 'Κ': "K", 'Λ': "L", 'Μ': "M",
	'Ν': "N", 'Ξ': "X", 'Ο': "O", 'Π': "P", 'Ρ': "R", 'Σ': "S",
	'Τ': "T", 'Υ': "Y", 'Φ': "F", 'Χ': "Ch", 'Ψ': "Ps", 'Ω': "O",
	'α': "a", 'β': "v", 'γ': "g", 'δ': "d", 'ε': "e", 'ζ': "z",
	'η': "i", 'θ': "th", 'ι': "i", 'κ': "k", 'λ': "l", 'μ': "m",
	'ν': "n", 'ξ': "x", 'ο': "o", 'π': "p", 'ρ': "r", 'σ': "s",
	'ς': "s", 'τ': "t", 'υ': "y", 'φ': "f", 'χ': "ch", 'ψ': "ps",
	'ω': "o",
	'ά': "á", 'έ': "é", 'ή': "í", 'ί': "í", 'ό': "ó", 'ύ': "ý",
	'ώ': "ó", 'ϊ': "i", 'ϋ': "y", 'ΐ': "í", 'ΰ': "ý",
	'Ά': "Á", 'Έ': "É", 'Ή': "Í", 'Ί': "Í", 'Ό': "Ó", 'Ύ': "Ý",
	'Ώ': "Ó",
}

// Greek transliterates using the modern pronunciation-oriented scheme: the
// digraph table is consulted at every position before single letters, so
// "μπύρα" yields "býra" rather than "mpýra". Non-Greek runes pass through.
func Greek(text string) string {
	runes := []rune(text)
	var b strings.Builder
	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) {
			pair := string(runes[i : i+2])
			matched := false
			for _, d := range greekDigraphs {
				if d.seq == pair {
					b.WriteString(d.rom)
					i++
					matched = true
					break
				}
			}
			if matched {
				continue
			}
		}
		if s, ok := greekLetters[runes[i]]; ok {
			b.WriteString(s)
		} else {
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}
