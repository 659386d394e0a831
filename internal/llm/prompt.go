package llm

import (
	"fmt"

	"sentsei/internal/models"
)

// Script hints teach the model which writing system the target uses, with a
// concrete example sentence.
var scriptExamples = map[models.LanguageCode]string{
	models.LangKorean:   "Korean script (한국어). Example: 커피 한 잔 주문하고 싶어요",
	models.LangJapanese: "Japanese script (日本語). Example: コーヒーを一杯注文したいです. IMPORTANT: For Japanese, always note gender implications of pronouns (e.g. 私/watashi vs 僕/boku vs 俺/ore) and formality levels in your notes.",
	models.LangHebrew:   "Hebrew script (עברית). Example: אני רוצה להזמין כוס קפה",
	models.LangGreek:    "Greek script (Ελληνικά). Example: Θέλω να παραγγείλω έναν καφέ",
	models.LangChinese:  "Traditional Chinese (繁體中文). Example: 我想點一杯咖啡",
	models.LangEnglish:  "English. Example: I want to order a coffee",
	models.LangItalian:  "Italian. Example: Vorrei ordinare un caffè",
	models.LangSpanish:  "Spanish. Example: Quiero pedir un café",
}

const taiwanChineseRules = `
TAIWAN CHINESE RULES (apply when target is Chinese or explanations are in Chinese):
- Use ONLY Traditional Chinese (繁體中文) with Taiwan usage (台灣用法)
- NEVER use mainland China phrasing. Use Taiwanese daily speech patterns.
- Examples of correct Taiwan vs incorrect mainland usage:
  - ✅ 跟我說一個笑話 / ❌ 給我講一個笑話
  - ✅ 講個笑話給我聽 / ❌ 給我講個笑話
  - ✅ 好棒 / ❌ 真棒
  - ✅ 沒問題 / ❌ 沒事兒
  - ✅ 很厲害 / ❌ 牛逼
  - ✅ 軟體 / ❌ 軟件
  - ✅ 資訊 / ❌ 信息
  - ✅ 影片 / ❌ 視頻
  - ✅ 計程車 / ❌ 出租車
  - ✅ 捷運 / ❌ 地鐵
  - ✅ 腳踏車 / ❌ 自行車
`

// TranslationPromptInput carries everything the translation prompt depends
// on.
type TranslationPromptInput struct {
	Sentence        string
	Target          models.LanguageCode
	SourceIsChinese bool
	Gender          string
	Formality       string
}

// BuildTranslationPrompt returns the system and user messages for one
// sentence translation request.
func BuildTranslationPrompt(in TranslationPromptInput) (system, user string) {
	langName := in.Target.Name()
	scriptHint := scriptExamples[in.Target]
	if scriptHint == "" {
		scriptHint = langName + " script"
	}

	sourceLang := "English"
	sourceLangShort := "English"
	if in.SourceIsChinese {
		sourceLang = "Traditional Chinese (繁體中文, 台灣用法)"
		sourceLangShort = "繁體中文"
	}

	user = fmt.Sprintf(`TASK: Translate this sentence into %[1]s and break it down.

TARGET LANGUAGE: %[1]s — %[2]s
SOURCE LANGUAGE (what the user typed in): %[3]s

INPUT: "%[4]s"

IMPORTANT: The input may contain mixed languages (e.g. Chinese + English words). Understand the MEANING of the entire sentence, then translate the WHOLE MEANING into %[1]s. Do NOT keep any source language words in the translation.

You MUST translate into %[1]s. For example, if target is Korean, write 한국어. If Japanese, write 日本語. If Hebrew, write עברית. Do NOT output Chinese unless the target language IS Chinese. Do NOT echo back the input sentence as the translation.

CRITICAL RULES:
1. The "translation" field MUST be written in %[1]s using %[2]s. NOT Chinese, NOT English (unless target IS English).
2. The "word" fields in breakdown MUST be %[1]s words in %[1]s script.
3. ALL "meaning" fields MUST be in %[5]s. ALL "grammar_notes" MUST be in %[5]s. ALL "cultural_note" and "note" fields MUST be in %[5]s. The user reads %[5]s, so write ALL explanations in %[5]s. NEVER write explanations in Chinese if the source is English. NEVER write explanations in English if the source is Chinese.
4. When writing ANY Chinese text, use ONLY Traditional Chinese (繁體中文) with Taiwan usage. NEVER Simplified Chinese.
5. Do NOT mix languages. Explanations in one language only.

Respond with ONLY valid JSON (no markdown, no code fences) in this exact structure:
{
  "translation": "DIRECT translation — stay close to the structure and meaning of the input sentence. Translate faithfully in %[1]s script (e.g. for Korean use 한글, for Japanese use 日本語, etc.)",
  "pronunciation": "FULL romanized pronunciation of the translation using standard systems: Japanese=Hepburn romaji (e.g. oshiete kudasai, NOT OLLOW-te), Chinese=pinyin with tones, Korean=Revised Romanization, Hebrew=standard transliteration, Greek=standard transliteration",
  "literal": "word-by-word literal translation back to the detected source language",
  "breakdown": [
    {
      "word": "each word/particle EXACTLY as it appears in the translation above — do NOT invent words that aren't in the translation. Split naturally (e.g. for Chinese: 我/練得越多/越/覺得/自信, NOT 越自信 if the sentence says 越覺得自信). For grammar patterns like 越...越..., show each 越 with its attached word separately.",
      "pronunciation": "romanized pronunciation (Japanese: Hepburn romaji like 'kudasai', NOT made-up spellings)",
      "meaning": "meaning in %[5]s ONLY",
      "difficulty": "easy|medium|hard",
      "note": "brief grammar/usage note in %[5]s ONLY, otherwise null. NEVER write notes in %[1]s when source is %[5]s."
    }
  ],
  "grammar_notes": [
    "Key grammar pattern or structure explanation (1-3 short notes). MUST be written in %[5]s. NEVER in %[1]s unless %[1]s IS %[5]s."
  ],
  "cultural_note": "optional cultural context or usage tip (in the detected source language), null if none",
  "formality": "casual|polite|formal — what register this translation uses",
  "alternative": "an alternative way to say this (different formality or phrasing), or null",
  "native_expression": "ALWAYS provide this. This is how a native %[1]s speaker would NATURALLY rephrase this — more colloquial, idiomatic, or restructured compared to the direct translation above. Format: 'native sentence | FULL PRONUNCIATION | EXPLANATION IN %[5]s'. When mentioning %[1]s words in the explanation, always add pronunciation and meaning in parentheses. CRITICAL: The native expression must preserve the SAME MEANING as the input. You can change structure, formality, and phrasing, but the core meaning must stay the same. If the native expression uses different vocabulary, explain WHY in the explanation. Only null if the direct translation is already exactly how a native would say it."
}`, langName, scriptHint, sourceLang, in.Sentence, sourceLangShort)

	user += fmt.Sprintf(`

SPEAKER IDENTITY:
- Gender: %[1]s — adjust pronouns, gendered words accordingly. For Japanese: use 僕/俺 for male, あたし for female, 私 for neutral. For Hebrew: adjust verb conjugation, adjectives, pronouns. For Spanish/Italian: adjust adjective agreement.
- Formality: %[2]s — use appropriate register. For Korean: casual=반말, polite=존댓말, formal=격식체. For Japanese: casual=タメ口, polite=です/ます, formal=敬語. For Chinese: casual=street/口語 (e.g. 老闆買單, 我要吃拉麵), polite=standard (e.g. 請問可以結帳嗎), formal=written/公文. IMPORTANT: If casual, translate like how a young Taiwanese person would actually say it in daily life — short, direct, colloquial. Do NOT use 請問/可以...嗎 patterns for casual speech.
The "formality" field in the response MUST be "%[2]s".
`, in.Gender, in.Formality)

	system = buildTranslationSystem(in, langName, sourceLangShort)
	return system, user
}

func buildTranslationSystem(in TranslationPromptInput, langName, sourceLangShort string) string {
	explanationRule := fmt.Sprintf("CRITICAL: ALL explanations (meaning, grammar_notes, note, cultural_note) MUST be written in %s. Do NOT write explanations in any other language.", sourceLangShort)

	switch {
	case in.Target == models.LangChinese:
		casualHint := "口語程度：禮貌/標準用法。"
		switch in.Formality {
		case models.FormalityCasual:
			casualHint = "口語程度：口語/街頭用法。像台灣年輕人跟朋友或在小吃店講話一樣。例：'Can I get the bill?' → '老闆，買單！'，不要用'請問可以開帳單嗎'。簡短、直接、自然。"
		case models.FormalityFormal:
			casualHint = "口語程度：正式/書面用法。使用敬語和完整句型。"
		}
		return fmt.Sprintf("你是一位台灣華語教師，專門教外國人學繁體中文（台灣用法）。翻譯必須完全使用繁體中文，絕對不可以使用簡體字或大陸用語。%s 重要：翻譯中不可以夾雜任何英文單字（例如 menu 要翻成「菜單」，bill 要翻成「帳單」）。%s 請只回傳有效的 JSON 格式。\n%s", casualHint, explanationRule, taiwanChineseRules)
	case in.SourceIsChinese && in.Target == models.LangEnglish:
		return fmt.Sprintf("You are an English language teacher helping Chinese speakers learn English. The user writes in Chinese and you translate into ENGLISH. The 'translation' field MUST be in English. The 'pronunciation' field should be English pronunciation guide. The 'word' fields in breakdown MUST be English words. %s The 'native_expression' field should show how a native English speaker would naturally say it in English, with 繁體中文 explanation. Always respond with valid JSON only.\n%s", explanationRule, taiwanChineseRules)
	case in.SourceIsChinese:
		return fmt.Sprintf("You are a %[1]s language teacher. You ONLY output %[1]s translations. You NEVER translate into Chinese unless the target language is Chinese. When the target is Korean, you write in 한국어. When Japanese, you write in 日本語. %[2]s Always respond with valid JSON only.\n%[3]s", langName, explanationRule, taiwanChineseRules)
	default:
		return fmt.Sprintf("You are a %[1]s language teacher. You ONLY output %[1]s translations. You NEVER translate into Chinese unless the target language is Chinese. When the target is Korean, you write in 한국어. When Japanese, you write in 日本語. %[2]s Always respond with valid JSON only.", langName, explanationRule)
	}
}

// BuildWordDetailPrompt returns the messages for a single-word detail lookup.
// Explanations follow the language of the stored meaning.
func BuildWordDetailPrompt(word, meaning, sentenceContext string, target models.LanguageCode, meaningIsChinese bool) (system, user string) {
	langName := target.Name()
	explainLang := "English"
	if meaningIsChinese {
		explainLang = "繁體中文 (Traditional Chinese, Taiwan usage)"
	}
	contextLine := ""
	if sentenceContext != "" {
		contextLine = fmt.Sprintf("\nThe word appeared in this sentence: %q", sentenceContext)
	}

	user = fmt.Sprintf(`Give details about the %[1]s word "%[2]s" (meaning: %[3]s).%[4]s

Respond with ONLY valid JSON (no markdown, no code fences):
{
  "examples": [
    {"sentence": "example sentence using the word in %[1]s", "pronunciation": "romanized", "meaning": "translation in %[5]s"},
    {"sentence": "another example", "pronunciation": "romanized", "meaning": "translation in %[5]s"}
  ],
  "conjugations": [
    {"form": "conjugated/inflected form in %[1]s", "label": "tense/form name in %[5]s"}
  ],
  "related": [
    {"word": "related word in %[1]s", "meaning": "meaning in %[5]s"}
  ]
}

Rules:
- Give 2-3 example sentences, 2-4 conjugations/forms (if applicable), 2-3 related words
- If the word doesn't conjugate (particles, nouns), return empty conjugations array
- All explanations in %[5]s
- Examples should be simple, practical sentences`, langName, word, meaning, contextLine, explainLang)

	system = fmt.Sprintf("You are a %s vocabulary teacher. Respond with valid JSON only.", langName)
	return system, user
}

// BuildQuizPrompt asks for both reference answers for a curated quiz
// sentence.
func BuildQuizPrompt(sentence string, target models.LanguageCode, gender, formality string) (system, user string) {
	user = fmt.Sprintf(`Translate this %s sentence into both English and Traditional Chinese (Taiwan usage).

Sentence: %q
Context:
- Speaker gender: %s
- Formality: %s

Return ONLY valid JSON:
{
  "translation_en": "Natural English meaning",
  "translation_zh": "Natural Traditional Chinese meaning (Taiwan usage)"
}`, target.Name(), sentence, gender, formality)
	return "You are a translation assistant. Return valid JSON only.", user
}

// BuildQuizGradePrompt asks for a semantic-equivalence grade of a learner
// answer.
func BuildQuizGradePrompt(sentence, answerEN, answerZH, learnerAnswer string, target models.LanguageCode) (system, user string) {
	user = fmt.Sprintf(`Evaluate whether the learner answer captures the MEANING of the target sentence.
Do not require exact wording.

Target sentence (%s): %q
Reference English meaning: %q
Reference Traditional Chinese meaning: %q
Learner answer: %q

Scoring rubric:
- perfect: meaning is fully accurate and complete
- good: meaning is correct with minor wording differences
- partial: some meaning is correct but key details are missing or off
- wrong: meaning is mostly incorrect

Return JSON only in this format:
{"score": "perfect|good|partial|wrong", "feedback": "brief explanation"}`, target.Name(), sentence, answerEN, answerZH, learnerAnswer)
	system = "You are a translation quiz grader. Grade semantic equivalence only. Return strict JSON only."
	return system, user
}
