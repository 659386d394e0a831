package repair

import (
	"strings"

	"sentsei/internal/utils"
)

// passNativeExpression sanitizes the "sentence | pronunciation | explanation"
// field. A native rephrasing identical to the translation carries no value
// and is nulled; otherwise the pronunciation segment is recomputed and an
// explanation in the wrong language for the learner is blanked rather than
// shown. A value with no pipe delimiters is treated as sentence-only and gets
// nothing recomputed.
func (r *Repairer) passNativeExpression(t *task) {
	native := t.payload.NativeExpression
	if native == "" {
		return
	}
	parts := strings.SplitN(native, "|", 3)
	sentence := strings.TrimSpace(parts[0])

	if coreForm(sentence) == coreForm(t.payload.Translation) {
		t.payload.NativeExpression = ""
		return
	}
	if len(parts) < 2 {
		return
	}

	explanation := ""
	if len(parts) >= 3 {
		explanation = strings.TrimSpace(parts[2])
	}
	pron, ok := romanizeText(sentence, t.in.Target)
	if !ok {
		return
	}
	if explanation != "" && wrongExplanationLanguage(explanation, t.in.SourceIsChinese) {
		explanation = ""
	}
	if explanation != "" {
		t.payload.NativeExpression = sentence + " | " + pron + " | " + explanation
	} else {
		t.payload.NativeExpression = sentence + " | " + pron
	}
}

// coreForm normalizes a sentence for the duplicate check: closing punctuation
// does not make a rephrasing distinct.
func coreForm(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), "。.!！?？")
}

// wrongExplanationLanguage reports whether the explanation's script does not
// match the language the learner asked in.
func wrongExplanationLanguage(explanation string, sourceIsChinese bool) bool {
	if sourceIsChinese {
		return !utils.MostlyCJK(explanation, explanationCJKMax)
	}
	return utils.MostlyCJK(explanation, explanationCJKMax)
}
