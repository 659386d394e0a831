package utils

import "strings"

// sentencePunct covers ASCII and fullwidth sentence punctuation that gets
// stripped before substring containment checks.
const sentencePunct = " ，,。.！!？?；;：:、"

// surroundingPunct is what gets trimmed off a single word before dictionary
// lookups.
const surroundingPunct = ".,!?;:'\"“”‘’"

// StripSentencePunct removes spaces and sentence punctuation everywhere in s.
func StripSentencePunct(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(sentencePunct, r) {
			return -1
		}
		return r
	}, s)
}

// TrimWordPunct trims surrounding punctuation and quotes from a word.
func TrimWordPunct(word string) string {
	return strings.Trim(word, surroundingPunct)
}

// SanitizeTSVCell normalizes tabs and newlines so a flashcard stays a single
// TSV row.
func SanitizeTSVCell(value string) string {
	value = strings.ReplaceAll(value, "\r\n", "\n")
	value = strings.ReplaceAll(value, "\r", "\n")
	value = strings.ReplaceAll(value, "\t", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	return strings.TrimSpace(value)
}
