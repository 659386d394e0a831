package locales

// MessagesEnUS English (US) translations
var MessagesEnUS = map[string]string{
	// Common messages
	"success":        "Operation successful",
	"common.success": "Success",
	"error":          "Operation failed",
	"unauthorized":   "Unauthorized",
	"forbidden":      "Forbidden",
	"not_found":      "Not found",
	"bad_request":    "Bad request",
	"internal_error": "Internal error",
	"rate_limited":   "Too many requests, please slow down",

	// Authentication related
	"auth.invalid_key":  "Invalid access password",
	"auth.key_required": "Access password required",

	// Translation related
	"translate.empty_sentence":       "Sentence cannot be empty",
	"translate.too_long":             "Sentence is too long ({{.max}} characters max)",
	"translate.unsupported_language": "Unsupported target language: {{.lang}}",
	"translate.injection_detected":   "Input contains disallowed instructions",
	"translate.model_failed":         "The language model returned an unusable response",
	"translate.model_timeout":        "The language model took too long to respond",

	// Quiz related
	"quiz.not_found":   "Quiz not found or expired",
	"quiz.no_history":  "Not enough history for a quiz yet",
	"quiz.graded":      "Answer graded",
	"quiz.bad_request": "Quiz answer cannot be empty",

	// Feedback related
	"feedback.received":      "Feedback received, thank you",
	"feedback.cache_cleared": "Cached translation cleared",

	// Review (spaced repetition) related
	"srs.saved":     "Review progress saved",
	"srs.not_found": "No review data for this user",

	// Export related
	"anki.exported": "Anki deck exported",

	// Validation related
	"validation.invalid_gender":    "Invalid gender value. Must be 'neutral', 'male' or 'female'",
	"validation.invalid_formality": "Invalid formality value. Must be 'polite' or 'casual'",
	"validation.invalid_user_id":   "Invalid user ID format",
	"validation.missing_word":      "Word is required",
}
