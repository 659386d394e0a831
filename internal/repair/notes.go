package repair

import (
	"strings"
	"unicode/utf8"

	"sentsei/internal/utils"
)

const fallbackGrammarNote = "Note: The original grammar notes were in the target language. Review the breakdown for word-by-word details."

// passExplanationLanguage enforces English explanations when the learner
// wrote in English. Mostly-CJK grammar notes get their CJK runs stripped and
// are kept only when enough English survives; breakdown meanings like
// "一杯 (a cup of)" are reduced to their English part.
func (r *Repairer) passExplanationLanguage(t *task) {
	if t.in.SourceIsChinese {
		return
	}

	notes := t.payload.GrammarNotes
	cleaned := make([]string, 0, len(notes))
	for _, note := range notes {
		if !utils.MostlyCJK(note, explanationCJKMax) {
			cleaned = append(cleaned, note)
			continue
		}
		salvaged := utils.CollapseWhitespace(utils.StripCJKRuns(note))
		if utf8.RuneCountInString(salvaged) > salvagedNoteMinLen {
			cleaned = append(cleaned, salvaged)
		}
	}
	t.payload.GrammarNotes = cleaned
	if len(cleaned) == 0 && len(notes) > 0 && t.payload.Translation != "" {
		t.payload.GrammarNotes = []string{fallbackGrammarNote}
	}

	for i := range t.payload.Breakdown {
		meaning := t.payload.Breakdown[i].Meaning
		if !utils.ContainsHan(meaning) {
			continue
		}
		stripped := strings.Trim(strings.TrimSpace(utils.StripHanRuns(meaning)), "() ")
		if stripped != "" {
			t.payload.Breakdown[i].Meaning = stripped
		}
	}
}
