package providers

import (
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/bomgrid/bomcheck/internal/analyzer"
)

// OllamaProvider implements the Ollama OpenAI-compatible chat API for local
// models. No authentication is required.
type OllamaProvider struct {
	OpenAIProvider
}

func init() {
	analyzer.RegisterProvider(&OllamaProvider{})
}

// Name returns the provider identifier.
func (o *OllamaProvider) Name() string {
	return "ollama"
}

// BuildURL constructs the local Ollama endpoint.
func (o *OllamaProvider) BuildURL(s analyzer.Settings) string {
	baseURL := s.Endpoint
	if baseURL == "" {
		baseURL = "http://localhost:11434/v1"
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	if strings.HasSuffix(baseURL, "/chat/completions") {
		return baseURL
	}
	return baseURL + "/chat/completions"
}

// SetHeaders is a no-op for local Ollama.
func (o *OllamaProvider) SetHeaders(_ *resty.Request) {}
