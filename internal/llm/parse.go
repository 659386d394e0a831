package llm

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"

	"sentsei/internal/models"
)

// ExtractJSONObject pulls a JSON object out of model output. Models regularly
// wrap their JSON in prose or code fences despite instructions; the fallback
// takes the outermost brace-delimited region and validates it.
func ExtractJSONObject(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") && gjson.Valid(trimmed) {
		return trimmed, true
	}
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start < 0 || end <= start {
		return "", false
	}
	candidate := trimmed[start : end+1]
	if !gjson.Valid(candidate) {
		return "", false
	}
	return candidate, true
}

// ParseTranslationPayload decodes model output into a TranslationPayload.
func ParseTranslationPayload(text string) (*models.TranslationPayload, bool) {
	raw, ok := ExtractJSONObject(text)
	if !ok {
		return nil, false
	}
	var payload models.TranslationPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, false
	}
	return &payload, true
}

// ParseWordDetail decodes model output into a WordDetail; a parse failure
// yields an empty detail rather than an error, matching the endpoint's
// degrade-to-empty behavior.
func ParseWordDetail(text string) *models.WordDetail {
	detail := &models.WordDetail{
		Examples:     []models.WordExample{},
		Conjugations: []models.Conjugation{},
		Related:      []models.RelatedWord{},
	}
	raw, ok := ExtractJSONObject(text)
	if !ok {
		return detail
	}
	_ = json.Unmarshal([]byte(raw), detail)
	if detail.Examples == nil {
		detail.Examples = []models.WordExample{}
	}
	if detail.Conjugations == nil {
		detail.Conjugations = []models.Conjugation{}
	}
	if detail.Related == nil {
		detail.Related = []models.RelatedWord{}
	}
	return detail
}
