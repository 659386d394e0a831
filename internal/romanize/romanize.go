// Package romanize recomputes pronunciation for the supported target
// languages without any model call. Japanese, Hebrew, and Greek use hand-built
// phonological rules; Chinese and Korean go through deterministic libraries;
// Latin-script languages pass through unchanged.
//
// All rule tables are immutable package-level data, so every function here is
// pure and safe for unlimited concurrent use.
package romanize

import "sentsei/internal/models"

// Romanize converts text in the given target language to a Latin-script
// pronunciation. The second return value is false only when the language code
// is not one of the supported targets; callers treat that as "no deterministic
// override available" and keep whatever value they already have.
func Romanize(text string, lang models.LanguageCode) (string, bool) {
	switch lang {
	case models.LangJapanese:
		return Japanese(text), true
	case models.LangChinese:
		return Chinese(text), true
	case models.LangKorean:
		return Korean(text), true
	case models.LangGreek:
		return Greek(text), true
	case models.LangHebrew:
		return Hebrew(text), true
	case models.LangItalian, models.LangSpanish, models.LangEnglish:
		return text, true
	}
	return "", false
}
