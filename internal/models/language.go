package models

// LanguageCode identifies one of the supported target languages.
type LanguageCode string

const (
	LangHebrew   LanguageCode = "he"
	LangJapanese LanguageCode = "ja"
	LangKorean   LanguageCode = "ko"
	LangEnglish  LanguageCode = "en"
	LangChinese  LanguageCode = "zh"
	LangGreek    LanguageCode = "el"
	LangItalian  LanguageCode = "it"
	LangSpanish  LanguageCode = "es"
)

// SupportedLanguages maps language codes to display names.
var SupportedLanguages = map[LanguageCode]string{
	LangHebrew:   "Hebrew",
	LangJapanese: "Japanese",
	LangKorean:   "Korean",
	LangEnglish:  "English",
	LangChinese:  "Chinese",
	LangGreek:    "Greek",
	LangItalian:  "Italian",
	LangSpanish:  "Spanish",
}

// IsSupported reports whether code is one of the eight target languages.
func (c LanguageCode) IsSupported() bool {
	_, ok := SupportedLanguages[c]
	return ok
}

// Name returns the English display name, or the raw code if unknown.
func (c LanguageCode) Name() string {
	if name, ok := SupportedLanguages[c]; ok {
		return name
	}
	return string(c)
}
