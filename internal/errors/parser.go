package errors

import (
	"strings"

	"github.com/tidwall/gjson"
)

// maxErrorBodyLength caps the length of error messages extracted from
// upstream response bodies.
const maxErrorBodyLength = 2048

// ParseUpstreamError extracts a human-readable message from an upstream
// error response body. It understands the common JSON error shapes used by
// LLM servers and falls back to the raw body for anything else.
func ParseUpstreamError(body []byte) string {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return ""
	}

	if gjson.ValidBytes(body) {
		for _, path := range []string{"error.message", "error_msg", "error", "message"} {
			result := gjson.GetBytes(body, path)
			if result.Type == gjson.String && result.Str != "" {
				return truncateString(strings.TrimSpace(result.Str), maxErrorBodyLength)
			}
		}
	}

	return truncateString(raw, maxErrorBodyLength)
}

// truncateString limits a string to maxLength bytes.
func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength]
}
