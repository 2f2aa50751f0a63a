// Package analyzer implements the optional LLM escalation step: a best-effort
// free-text analysis of an order and its deterministic issue list. The rule
// validator never depends on this package; commands inject an Analyzer where
// escalation is requested, and an escalation failure never suppresses the
// deterministic report.
package analyzer

import (
	"context"

	"github.com/bomgrid/bomcheck/internal/bom"
	"github.com/bomgrid/bomcheck/internal/issues"
)

// Analyzer produces a supplementary free-text analysis for an order. It is a
// possibly-slow, possibly-failing external call.
type Analyzer interface {
	Analyze(ctx context.Context, order *bom.Order, found []issues.Issue) (string, error)
}

// Message is a single chat message sent to a provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Settings selects the provider endpoint and model for one client.
type Settings struct {
	Provider   string
	Model      string
	Endpoint   string
	Deployment string // Azure deployment name
	APIVersion string // Azure API version
	MaxTokens  int
}

// DefaultSettings returns the provider defaults used when neither config nor
// flags say otherwise.
func DefaultSettings() Settings {
	return Settings{
		Provider:   "openai",
		Model:      "o3-mini",
		APIVersion: "2024-02-01",
	}
}
