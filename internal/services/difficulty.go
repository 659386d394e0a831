package services

import (
	"fmt"
	"strings"

	"sentsei/internal/models"
	"sentsei/internal/utils"
)

// Punctuation that does not count toward the length of a CJK sentence.
const cjkPunct = "，。！？、「」『』（）…—·"

// Subordinators and connectives that signal grammatically complex English.
var complexityMarkers = []string{
	"although", "however", "nevertheless", "whereas", "furthermore",
	"consequently", "notwithstanding", "if", "because", "since", "while",
	"unless", "whether", "whom", "whose", "whereby",
}

// DetectSentenceDifficulty estimates how hard a sentence is to learn, from
// its length, vocabulary, and the difficulty labels the model assigned to
// breakdown words. The estimate is heuristic and deterministic.
func DetectSentenceDifficulty(sentence string, breakdownDifficulties []string) *models.SentenceDifficulty {
	factors := []string{}
	score := 0
	text := strings.TrimSpace(sentence)

	if isCJKSentence(text) {
		score = scoreCJK(text, &factors)
	} else {
		score = scoreWords(text, &factors)
	}

	score += scoreBreakdown(breakdownDifficulties, &factors)

	if score > 100 {
		score = 100
	}
	level := "advanced"
	switch {
	case score <= 25:
		level = "beginner"
	case score <= 55:
		level = "intermediate"
	}

	return &models.SentenceDifficulty{Level: level, Score: score, Factors: factors}
}

// isCJKSentence reports whether more than 30% of the non-space runes are CJK
// (Han, kana, or hangul).
func isCJKSentence(text string) bool {
	cjk := 0
	total := 0
	for _, r := range text {
		if r == ' ' {
			continue
		}
		total++
		if isCJKRune(r) {
			cjk++
		}
	}
	if total == 0 {
		total = 1
	}
	return float64(cjk)/float64(total) > 0.3
}

func isCJKRune(r rune) bool {
	return (r >= 0x4e00 && r <= 0x9fff) ||
		(r >= 0x3040 && r <= 0x30ff) ||
		(r >= 0xac00 && r <= 0xd7af)
}

func scoreCJK(text string, factors *[]string) int {
	meaningful := 0
	uniqueHan := map[rune]bool{}
	for _, r := range text {
		if r != ' ' && !strings.ContainsRune(cjkPunct, r) {
			meaningful++
		}
		if utils.IsHan(r) {
			uniqueHan[r] = true
		}
	}

	score := 0
	switch {
	case meaningful <= 5:
		score += 5
		*factors = append(*factors, "Very short phrase")
	case meaningful <= 12:
		score += 20
		*factors = append(*factors, fmt.Sprintf("Medium length (%d characters)", meaningful))
	case meaningful <= 25:
		score += 45
		*factors = append(*factors, fmt.Sprintf("Long sentence (%d characters)", meaningful))
	default:
		score += 65
		*factors = append(*factors, fmt.Sprintf("Very long sentence (%d characters)", meaningful))
	}

	if len(uniqueHan) > 15 {
		score += 15
		*factors = append(*factors, fmt.Sprintf("High character diversity (%d unique)", len(uniqueHan)))
	} else if len(uniqueHan) > 8 {
		score += 8
	}
	return score
}

func scoreWords(text string, factors *[]string) int {
	words := strings.Fields(text)
	wordCount := len(words)

	score := 0
	switch {
	case wordCount <= 4:
		score += 5
		*factors = append(*factors, "Short phrase")
	case wordCount <= 10:
		score += 20
		*factors = append(*factors, fmt.Sprintf("Medium sentence (%d words)", wordCount))
	case wordCount <= 20:
		score += 40
		*factors = append(*factors, fmt.Sprintf("Long sentence (%d words)", wordCount))
	default:
		score += 60
		*factors = append(*factors, fmt.Sprintf("Very long sentence (%d words)", wordCount))
	}

	totalLen := 0
	for _, w := range words {
		totalLen += len([]rune(strings.Trim(w, ".,!?;:")))
	}
	divisor := wordCount
	if divisor == 0 {
		divisor = 1
	}
	avgLen := float64(totalLen) / float64(divisor)
	if avgLen > 7 {
		score += 15
		*factors = append(*factors, "Complex vocabulary (long words)")
	} else if avgLen > 5 {
		score += 8
	}

	lower := strings.ToLower(text)
	var found []string
	for _, marker := range complexityMarkers {
		if strings.Contains(lower, marker) {
			found = append(found, marker)
		}
	}
	if len(found) > 0 {
		bonus := len(found) * 8
		if bonus > 20 {
			bonus = 20
		}
		score += bonus
		shown := found
		if len(shown) > 3 {
			shown = shown[:3]
		}
		*factors = append(*factors, fmt.Sprintf("Complex grammar (%s)", strings.Join(shown, ", ")))
	}
	return score
}

func scoreBreakdown(difficulties []string, factors *[]string) int {
	total := len(difficulties)
	if total == 0 {
		return 0
	}
	hard := 0
	medium := 0
	for _, d := range difficulties {
		switch d {
		case models.DifficultyHard:
			hard++
		case models.DifficultyMedium:
			medium++
		}
	}

	score := 0
	hardRatio := float64(hard) / float64(total)
	if hardRatio > 0.3 {
		score += 20
		*factors = append(*factors, fmt.Sprintf("%d/%d words marked hard", hard, total))
	} else if hardRatio > 0.1 {
		score += 10
	}
	if float64(medium)/float64(total) > 0.5 {
		score += 5
	}
	return score
}
