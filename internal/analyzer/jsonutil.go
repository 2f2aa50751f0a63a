package analyzer

import (
	"regexp"
	"strings"
)

// Models asked for structured output commonly wrap it in a markdown fence and
// leave trailing commas behind. These patterns undo that.
var (
	jsonBlockPattern     = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\{.*\\})\\s*```")
	trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)
)

// ExtractJSON extracts a JSON object from a fenced markdown block in an LLM
// response. When the response carries no fenced JSON object, it returns ""
// and the caller should use the response as-is.
func ExtractJSON(content string) string {
	matches := jsonBlockPattern.FindStringSubmatch(content)
	if len(matches) < 2 {
		// A reply that is nothing but a JSON object needs no unfencing,
		// only cleanup.
		trimmed := strings.TrimSpace(content)
		if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
			return cleanJSON(trimmed)
		}
		return ""
	}
	return cleanJSON(matches[1])
}

// cleanJSON removes trailing commas before } or ].
func cleanJSON(raw string) string {
	return trailingCommaPattern.ReplaceAllString(raw, "$1")
}
