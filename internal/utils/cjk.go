// Package utils holds small cross-cutting helpers: logger setup and
// script/character classification used across the repair pipeline.
package utils

import (
	"regexp"
	"strings"
)

var (
	cjkRunPattern        = regexp.MustCompile(`[\x{4e00}-\x{9fff}\x{3040}-\x{309f}\x{30a0}-\x{30ff}\x{ac00}-\x{d7af}]+`)
	hanRunPattern        = regexp.MustCompile(`[\x{4e00}-\x{9fff}]+`)
	whitespaceRunPattern = regexp.MustCompile(`\s+`)
)

// IsHan reports whether r is in the CJK Unified Ideographs block.
func IsHan(r rune) bool {
	return r >= 0x4e00 && r <= 0x9fff
}

// ContainsHan reports whether s contains at least one Chinese character.
func ContainsHan(s string) bool {
	for _, r := range s {
		if IsHan(r) {
			return true
		}
	}
	return false
}

// HanRatio returns the fraction of Chinese characters among the non-space
// runes of s. Empty input yields 0.
func HanRatio(s string) float64 {
	total := 0
	han := 0
	for _, r := range s {
		if r == ' ' {
			continue
		}
		total++
		if IsHan(r) {
			han++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(han) / float64(total)
}

// MostlyCJK reports whether more than threshold of the non-space runes of s
// are Chinese characters.
func MostlyCJK(s string, threshold float64) bool {
	if s == "" {
		return false
	}
	return HanRatio(s) > threshold
}

// StripCJKRuns removes all CJK runs (Han, kana, hangul) from s.
func StripCJKRuns(s string) string {
	return cjkRunPattern.ReplaceAllString(s, "")
}

// StripHanRuns removes only Chinese-character runs from s.
func StripHanRuns(s string) string {
	return hanRunPattern.ReplaceAllString(s, "")
}

// CollapseWhitespace squeezes whitespace runs to single spaces and trims
// leftover punctuation that CJK stripping tends to leave behind.
func CollapseWhitespace(s string) string {
	s = whitespaceRunPattern.ReplaceAllString(s, " ")
	return strings.Trim(s, " ()-:,.")
}
