// Package repair implements the deterministic output-repair pipeline that
// runs over every raw LLM translation payload before it is cached or
// returned. The passes run in a fixed order, each one reading the state the
// previous passes produced; none of them ever calls back into the model, and
// all of them degrade to a no-op instead of failing the request.
package repair

import (
	"strings"

	"github.com/sirupsen/logrus"

	"sentsei/internal/models"
	"sentsei/internal/romanize"
	"sentsei/internal/utils"
)

// Tuning constants. The resegmentation trigger values are empirical: a
// breakdown averaging at most 1.2 characters per word over more than 3
// entries means the model split character by character.
const (
	resegmentMaxAvgLen = 1.2
	resegmentMinWords  = 3

	echoCJKRatio       = 0.5
	explanationCJKMax  = 0.3
	salvagedNoteMinLen = 15
)

// Segmenter tokenizes a Chinese sentence into words. It must be a pure
// function of its input.
type Segmenter interface {
	Cut(text string) []string
}

// Input carries the request-side facts a repair run needs alongside the
// payload itself.
type Input struct {
	Sentence        string
	Target          models.LanguageCode
	SourceIsChinese bool
}

type task struct {
	payload *models.TranslationPayload
	in      Input
}

type pass struct {
	name  string
	apply func(*Repairer, *task)
}

// Repairer runs the repair pipeline. It holds only immutable rule data and is
// safe for unlimited concurrent use.
type Repairer struct {
	dict      glosser
	segmenter Segmenter
	passes    []pass
}

type glosser interface {
	Gloss(word string) string
}

// New builds a Repairer. dict supplies Chinese glosses for resegmented
// breakdowns; segmenter may be nil, which disables resegmentation but leaves
// every other pass active.
func New(dict glosser, segmenter Segmenter) *Repairer {
	r := &Repairer{dict: dict, segmenter: segmenter}
	r.passes = []pass{
		{"echo_detection", (*Repairer).passEchoDetection},
		{"script_leakage", (*Repairer).passScriptLeakage},
		{"pronunciation_override", (*Repairer).passPronunciationOverride},
		{"chinese_resegmentation", (*Repairer).passResegmentation},
		{"hallucination_filter", (*Repairer).passHallucinationFilter},
		{"gender_annotation", (*Repairer).passGenderAnnotation},
		{"native_expression", (*Repairer).passNativeExpression},
		{"explanation_language", (*Repairer).passExplanationLanguage},
	}
	return r
}

// Repair mutates payload in place, running every pass in order. Passes never
// short-circuit: a later pass always sees the current payload state,
// including fields nulled or dropped earlier.
func (r *Repairer) Repair(payload *models.TranslationPayload, in Input) {
	t := &task{payload: payload, in: in}
	for _, p := range r.passes {
		p.apply(r, t)
	}
}

// passEchoDetection attaches an advisory warning when a Chinese input appears
// to have been echoed back, or translated into the wrong script entirely.
// Japanese is special: kanji makes CJK content normal there, so only an
// actual echo of the input is flagged.
func (r *Repairer) passEchoDetection(t *task) {
	if t.in.Target == models.LangChinese || t.in.Target == models.LangEnglish || !t.in.SourceIsChinese {
		return
	}
	inputClean := strings.ReplaceAll(strings.TrimSpace(t.in.Sentence), " ", "")
	transClean := strings.ReplaceAll(strings.TrimSpace(t.payload.Translation), " ", "")
	if inputClean == "" || transClean == "" {
		return
	}
	if utils.HanRatio(transClean) <= echoCJKRatio {
		return
	}
	if t.in.Target == models.LangJapanese {
		if transClean == inputClean || strings.Contains(transClean, inputClean) {
			t.payload.Warning = "Translation may be echoing input. Model struggled with this input."
		}
		return
	}
	t.payload.Warning = "Translation may be in the wrong language."
}

// passPronunciationOverride replaces the model's romanization, the least
// trustworthy field in the payload, with deterministic output for both the
// full translation and every breakdown word.
func (r *Repairer) passPronunciationOverride(t *task) {
	if pron, ok := romanizeText(t.payload.Translation, t.in.Target); ok {
		t.payload.Pronunciation = pron
	}
	for i := range t.payload.Breakdown {
		if pron, ok := romanizeText(t.payload.Breakdown[i].Word, t.in.Target); ok {
			t.payload.Breakdown[i].Pronunciation = pron
		}
	}
}

// passHallucinationFilter drops breakdown entries whose word does not occur
// in the translation. The model regularly annotates words that exist only in
// its imagination; those entries are worse than useless to a learner.
func (r *Repairer) passHallucinationFilter(t *task) {
	if len(t.payload.Breakdown) == 0 || t.payload.Translation == "" {
		return
	}
	clean := utils.StripSentencePunct(t.payload.Translation)
	filtered := t.payload.Breakdown[:0]
	dropped := 0
	for _, item := range t.payload.Breakdown {
		word := strings.TrimSpace(item.Word)
		if word == "" {
			dropped++
			continue
		}
		if strings.Contains(clean, strings.ReplaceAll(word, " ", "")) {
			filtered = append(filtered, item)
			continue
		}
		dropped++
	}
	if dropped > 0 {
		logrus.WithFields(logrus.Fields{
			"language": t.in.Target,
			"dropped":  dropped,
		}).Debug("Dropped hallucinated breakdown words")
	}
	t.payload.Breakdown = filtered
}

// romanizeText wraps the dispatcher, reporting false for unknown languages
// and empty results so callers keep whatever value the model supplied.
func romanizeText(text string, lang models.LanguageCode) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	pron, ok := romanize.Romanize(text, lang)
	if !ok || pron == "" {
		return "", false
	}
	return pron, true
}
