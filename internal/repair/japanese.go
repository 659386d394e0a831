package repair

import (
	"fmt"
	"strings"

	"sentsei/internal/models"
)

const genderNotePrefix = "Gender/formality note: "

// First-person pronouns that carry gender or register connotations a learner
// copying the translation should know about. Slice order fixes the note
// wording.
var genderMarkers = []struct {
	marker  string
	reading string
	desc    string
}{
	{"私", "watashi", "neutral/formal, used by all genders"},
	{"僕", "boku", "masculine, casual — used by boys/men"},
	{"俺", "ore", "masculine, very casual/rough — used by men"},
	{"あたし", "atashi", "feminine, casual — used by women/girls"},
	{"わたくし", "watakushi", "very formal, gender-neutral"},
}

// passGenderAnnotation prepends an advisory grammar note when a Japanese
// translation uses a gendered or register-marked first-person pronoun.
func (r *Repairer) passGenderAnnotation(t *task) {
	if t.in.Target != models.LangJapanese || t.payload.Translation == "" {
		return
	}
	if len(t.payload.GrammarNotes) > 0 && strings.HasPrefix(t.payload.GrammarNotes[0], genderNotePrefix) {
		return
	}
	var detected []string
	for _, m := range genderMarkers {
		if strings.Contains(t.payload.Translation, m.marker) {
			detected = append(detected, fmt.Sprintf("⚠️ '%s' (%s): %s", m.marker, m.reading, m.desc))
		}
	}
	if len(detected) == 0 {
		return
	}
	note := genderNotePrefix + strings.Join(detected, " | ")
	t.payload.GrammarNotes = append([]string{note}, t.payload.GrammarNotes...)
}
