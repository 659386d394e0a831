package romanize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Consonant transliterations. Alef and ayin carry no sound of their own and
// map to empty / apostrophe; final forms map the same as their base letters.
var hebrewConsonants = map[rune]string{
	'א': "", 'ב': "v", 'ג': "g", 'ד': "d", 'ה': "h", 'ז': "z",
	'ח': "ch", 'ט': "t", 'כ': "kh", 'ך': "kh", 'ל': "l", 'מ': "m",
	'ם': "m", 'נ': "n", 'ן': "n", 'ס': "s", 'ע': "'", 'פ': "f",
	'ף': "f", 'צ': "ts", 'ץ': "ts", 'ק': "k", 'ר': "r", 'ש': "sh",
	'ת': "t",
}

// Letters whose sound changes when a dagesh (or shin/sin dot) follows. The key
// is the base letter plus the combining mark, which survives NFC as two runes.
var hebrewDagesh = map[string]string{
	"בּ": "b", "גּ": "g", "דּ": "d", "כּ": "k", "פּ": "p", "תּ": "t",
	"שׁ": "sh", "שׂ": "s",
}

// Niqqud vowel points.
var hebrewVowels = map[rune]string{
	'ְ': "e", // shva
	'ֱ': "e", // hataf segol
	'ֲ': "a", // hataf patah
	'ֳ': "o", // hataf qamats
	'ִ': "i", // hiriq
	'ֵ': "e", // tsere
	'ֶ': "e", // segol
	'ַ': "a", // patah
	'ָ': "a", // qamats
	'ֹ': "o", // holam
	'ֺ': "o", // holam haser for vav
	'ֻ': "u", // qubuts
}

func isHebrewLetter(r rune) bool {
	return r >= 'א' && r <= 'ת'
}

func isHebrewConsonant(r rune) bool {
	_, ok := hebrewConsonants[r]
	return ok
}

func trimHebrewPunct(word string) string {
	return strings.Trim(word, ".,!?;:'\"“”‘’()׳״")
}

// Hebrew romanizes text word by word. Each word is first tried against the
// curated dictionary; misses fall through to a character-level heuristic that
// reads niqqud when present and treats vav and yod as vowel letters when their
// position suggests they act as ones.
func Hebrew(text string) string {
	words := strings.Fields(norm.NFC.String(text))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if r := HebrewDictLookup(w); r != "" {
			out = append(out, r)
			continue
		}
		out = append(out, hebrewWord(w))
	}
	return strings.Join(out, " ")
}

func hebrewWord(word string) string {
	runes := []rune(word)
	var b strings.Builder
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if i+1 < len(runes) {
			if s, ok := hebrewDagesh[string(runes[i:i+2])]; ok {
				b.WriteString(s)
				i++
				continue
			}
		}
		switch {
		case r == 'ו':
			i += hebrewVav(&b, runes, i)
		case r == 'י':
			hebrewYod(&b, runes, i)
		default:
			if s, ok := hebrewConsonants[r]; ok {
				b.WriteString(s)
			} else if s, ok := hebrewVowels[r]; ok {
				b.WriteString(s)
			} else if !unicode.Is(unicode.Mn, r) {
				// cantillation and other unmapped combining marks are inaudible
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// hebrewVav writes the romanization of a vav at index i and returns how many
// extra runes were consumed. A doubled vav is consonantal; a word-initial vav
// before a consonant is the conjunction "ve"; between consonants, or closing a
// word, it reads as the vowel "o".
func hebrewVav(b *strings.Builder, runes []rune, i int) int {
	next, hasNext := nextRune(runes, i)
	if hasNext && next == 'ו' {
		b.WriteString("v")
		return 1
	}
	prevCons := i > 0 && isHebrewConsonant(runes[i-1])
	nextCons := hasNext && isHebrewConsonant(next)
	switch {
	case i == 0 && nextCons:
		b.WriteString("ve")
	case prevCons && nextCons:
		b.WriteString("o")
	case prevCons && (!hasNext || !isHebrewLetter(next)):
		b.WriteString("o")
	default:
		b.WriteString("v")
	}
	return 0
}

// hebrewYod reads as the vowel "i" when wedged between consonants or closing a
// word, and as the consonant "y" otherwise.
func hebrewYod(b *strings.Builder, runes []rune, i int) {
	next, hasNext := nextRune(runes, i)
	prevCons := i > 0 && isHebrewConsonant(runes[i-1]) && runes[i-1] != 'ו' && runes[i-1] != 'י'
	nextCons := hasNext && isHebrewConsonant(next)
	if prevCons && (nextCons || !hasNext || !isHebrewLetter(next)) {
		b.WriteString("i")
		return
	}
	b.WriteString("y")
}

func nextRune(runes []rune, i int) (rune, bool) {
	if i+1 < len(runes) {
		return runes[i+1], true
	}
	return 0, false
}
