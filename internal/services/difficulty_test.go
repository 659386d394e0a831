package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSentenceDifficulty(t *testing.T) {
	tests := []struct {
		name      string
		sentence  string
		breakdown []string
		wantLevel string
	}{
		{"short english phrase", "Hello there", nil, "beginner"},
		{"short cjk phrase", "你好嗎", nil, "beginner"},
		{"medium cjk sentence", "今天晚上我想吃拉麵", nil, "intermediate"},
		{"long cjk sentence", "路漫漫其修遠兮吾將上下而求索路漫漫其修遠兮", nil, "intermediate"},
		{
			"complex english sentence",
			"Although the committee deliberated extensively, the resolution nevertheless remained contentious because several members dissented",
			nil,
			"advanced",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sd := DetectSentenceDifficulty(tt.sentence, tt.breakdown)
			require.NotNil(t, sd)
			assert.Equal(t, tt.wantLevel, sd.Level)
			assert.LessOrEqual(t, sd.Score, 100)
		})
	}
}

func TestDetectSentenceDifficultyFactors(t *testing.T) {
	t.Run("short phrase factor", func(t *testing.T) {
		sd := DetectSentenceDifficulty("Hi there", nil)
		assert.Contains(t, sd.Factors, "Short phrase")
	})

	t.Run("very short cjk factor", func(t *testing.T) {
		sd := DetectSentenceDifficulty("你好", nil)
		assert.Contains(t, sd.Factors, "Very short phrase")
	})

	t.Run("complexity markers capped at 20", func(t *testing.T) {
		// Six markers would add 48 uncapped; length 20 + avg-length 8 +
		// capped markers 20.
		sd := DetectSentenceDifficulty("if because since while unless whether", nil)
		assert.Equal(t, 48, sd.Score)
	})

	t.Run("cjk punctuation does not count toward length", func(t *testing.T) {
		bare := DetectSentenceDifficulty("你好嗎", nil)
		punctuated := DetectSentenceDifficulty("你好嗎？！！", nil)
		assert.Equal(t, bare.Score, punctuated.Score)
	})
}

func TestDetectSentenceDifficultyBreakdownBonus(t *testing.T) {
	base := DetectSentenceDifficulty("I want to order a coffee please", nil)

	t.Run("mostly hard words", func(t *testing.T) {
		sd := DetectSentenceDifficulty("I want to order a coffee please",
			[]string{"hard", "hard", "easy"})
		assert.Equal(t, base.Score+20, sd.Score)
		assert.Contains(t, sd.Factors, "2/3 words marked hard")
	})

	t.Run("a few hard words", func(t *testing.T) {
		sd := DetectSentenceDifficulty("I want to order a coffee please",
			[]string{"hard", "easy", "easy", "easy", "easy"})
		assert.Equal(t, base.Score+10, sd.Score)
	})

	t.Run("mostly medium words", func(t *testing.T) {
		sd := DetectSentenceDifficulty("I want to order a coffee please",
			[]string{"medium", "medium", "medium", "easy"})
		assert.Equal(t, base.Score+5, sd.Score)
	})

	t.Run("empty breakdown adds nothing", func(t *testing.T) {
		sd := DetectSentenceDifficulty("I want to order a coffee please", []string{})
		assert.Equal(t, base.Score, sd.Score)
	})
}

func TestDetectSentenceDifficultyScoreCap(t *testing.T) {
	long := "Although nevertheless whereas furthermore consequently notwithstanding " +
		"the extraordinarily complicated deliberations continued indefinitely throughout " +
		"numerous parliamentary sessions wherein distinguished representatives argued " +
		"passionately about constitutional interpretations"
	sd := DetectSentenceDifficulty(long, []string{"hard", "hard", "hard"})
	assert.Equal(t, 100, sd.Score)
	assert.Equal(t, "advanced", sd.Level)
}
