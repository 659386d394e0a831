package repair

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"sentsei/internal/models"
	"sentsei/internal/utils"
)

var latinRunPattern = regexp.MustCompile(`[a-zA-Z]{2,}`)

// English terms the model habitually leaves untranslated inside Chinese
// output, with their Taiwan Mandarin equivalents.
var latinLeakageTerms = map[string]string{
	"menu": "菜單", "bill": "帳單", "coffee": "咖啡", "beer": "啤酒",
	"ok": "好", "sorry": "抱歉", "thanks": "謝謝", "thank": "謝",
	"taxi": "計程車", "bus": "公車", "hotel": "旅館", "wifi": "無線網路",
	"email": "電子郵件", "phone": "手機", "app": "應用程式",
	"restaurant": "餐廳", "bar": "酒吧", "shop": "商店",
}

// passScriptLeakage substitutes known English terms embedded in a Chinese
// translation. Leakage with no known substitution is left alone.
func (r *Repairer) passScriptLeakage(t *task) {
	if t.in.Target != models.LangChinese || t.payload.Translation == "" {
		return
	}
	words := latinRunPattern.FindAllString(t.payload.Translation, -1)
	if len(words) == 0 {
		return
	}
	fixed := t.payload.Translation
	for _, word := range words {
		if replacement, ok := latinLeakageTerms[strings.ToLower(word)]; ok {
			fixed = strings.ReplaceAll(fixed, word, replacement)
		}
	}
	if fixed != t.payload.Translation {
		logrus.WithField("translation", fixed).Debug("Substituted leaked English terms in Chinese translation")
		t.payload.Translation = fixed
	}
}

// passResegmentation rebuilds a Chinese breakdown that degenerated into a
// character-by-character split. Multi-character words carry the real meaning
// units, so the model's list is discarded and the translation re-tokenized;
// meanings come from the layered dictionary lookup and pronunciations from
// the dispatcher.
func (r *Repairer) passResegmentation(t *task) {
	if t.in.Target != models.LangChinese || r.segmenter == nil {
		return
	}
	breakdown := t.payload.Breakdown
	if len(breakdown) <= resegmentMinWords || t.payload.Translation == "" {
		return
	}
	total := 0
	for _, item := range breakdown {
		total += len([]rune(item.Word))
	}
	avg := float64(total) / float64(len(breakdown))
	if avg > resegmentMaxAvgLen {
		return
	}

	text := utils.StripSentencePunct(t.payload.Translation)
	segments := r.segmenter.Cut(text)
	rebuilt := make([]models.WordEntry, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		pron, _ := romanizeText(seg, models.LangChinese)
		entry := models.WordEntry{
			Word:          seg,
			Pronunciation: pron,
			Meaning:       seg,
			Difficulty:    models.DifficultyMedium,
		}
		if r.dict != nil {
			entry.Meaning = r.dict.Gloss(seg)
		}
		rebuilt = append(rebuilt, entry)
	}
	logrus.WithFields(logrus.Fields{
		"avg_word_len": avg,
		"words":        len(rebuilt),
	}).Debug("Resegmented character-split Chinese breakdown")
	t.payload.Breakdown = rebuilt
}
