package services

import (
	"strings"
	"testing"

	"sentsei/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTSV(t *testing.T) {
	svc := NewAnkiService()

	t.Run("full card", func(t *testing.T) {
		tsv := svc.BuildTSV([]models.AnkiExportEntry{{
			Sentence:      "コーヒーをください",
			Translation:   "a coffee, please",
			Pronunciation: "koohii o kudasai",
			Target:        "ja",
		}})
		assert.Equal(t, "コーヒーをください\ta coffee, please<br>Pronunciation: koohii o kudasai<br>Language: Japanese (ja)", tsv)
	})

	t.Run("lang falls back when target empty", func(t *testing.T) {
		tsv := svc.BuildTSV([]models.AnkiExportEntry{{
			Sentence:    "hola",
			Translation: "hello",
			Lang:        "es",
		}})
		assert.Equal(t, "hola\thello<br>Language: Spanish (es)", tsv)
	})

	t.Run("unknown code renders bare", func(t *testing.T) {
		tsv := svc.BuildTSV([]models.AnkiExportEntry{{
			Sentence: "bonjour",
			Target:   "fr",
		}})
		assert.Equal(t, "bonjour\tLanguage: fr", tsv)
	})

	t.Run("empty sentences are skipped", func(t *testing.T) {
		tsv := svc.BuildTSV([]models.AnkiExportEntry{
			{Sentence: "   "},
			{Sentence: "hola", Translation: "hello"},
		})
		require.Equal(t, 1, len(strings.Split(tsv, "\n")))
		assert.True(t, strings.HasPrefix(tsv, "hola\t"))
	})

	t.Run("tabs and newlines are sanitized", func(t *testing.T) {
		tsv := svc.BuildTSV([]models.AnkiExportEntry{{
			Sentence:    "line one\nline two",
			Translation: "tab\there",
		}})
		assert.Equal(t, "line one line two\ttab here", tsv)
	})

	t.Run("no entries", func(t *testing.T) {
		assert.Equal(t, "", svc.BuildTSV(nil))
	})
}
