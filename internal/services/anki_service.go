package services

import (
	"fmt"
	"strings"

	"sentsei/internal/models"
	"sentsei/internal/utils"
)

// AnkiFilename is the download name for exported flashcards.
const AnkiFilename = "sent-say-flashcards.txt"

// AnkiContentType is the media type for exported flashcards.
const AnkiContentType = "text/tab-separated-values"

// AnkiService renders flashcard exports in Anki's tab-separated format.
type AnkiService struct{}

// NewAnkiService creates an AnkiService.
func NewAnkiService() *AnkiService {
	return &AnkiService{}
}

// BuildTSV renders one TSV row per entry: front is the sentence, back joins
// the translation, pronunciation, and language label with <br>. Entries with
// an empty sentence are skipped.
func (s *AnkiService) BuildTSV(entries []models.AnkiExportEntry) string {
	rows := make([]string, 0, len(entries))
	for _, entry := range entries {
		front := utils.SanitizeTSVCell(entry.Sentence)
		if front == "" {
			continue
		}

		translation := utils.SanitizeTSVCell(entry.Translation)
		pronunciation := utils.SanitizeTSVCell(entry.Pronunciation)
		langCode := strings.TrimSpace(entry.Target)
		if langCode == "" {
			langCode = strings.TrimSpace(entry.Lang)
		}

		var backParts []string
		if translation != "" {
			backParts = append(backParts, translation)
		}
		if pronunciation != "" {
			backParts = append(backParts, "Pronunciation: "+pronunciation)
		}
		if langCode != "" {
			backParts = append(backParts, "Language: "+ankiLanguageLabel(langCode))
		}

		back := utils.SanitizeTSVCell(strings.Join(backParts, "<br>"))
		rows = append(rows, front+"\t"+back)
	}
	return strings.Join(rows, "\n")
}

// ankiLanguageLabel renders "Name (code)" for known languages and the bare
// code otherwise.
func ankiLanguageLabel(code string) string {
	lang := models.LanguageCode(code)
	if name := lang.Name(); name != code {
		return fmt.Sprintf("%s (%s)", name, code)
	}
	return code
}
