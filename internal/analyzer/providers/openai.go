// Package providers implements the LLM provider adapters for the escalation
// client. Importing the package registers every adapter.
package providers

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/bomgrid/bomcheck/internal/analyzer"
)

// OpenAIProvider implements the OpenAI chat completions API.
type OpenAIProvider struct{}

func init() {
	analyzer.RegisterProvider(&OpenAIProvider{})
}

// Name returns the provider identifier.
func (o *OpenAIProvider) Name() string {
	return "openai"
}

// BuildURL constructs the OpenAI chat completions endpoint.
func (o *OpenAIProvider) BuildURL(s analyzer.Settings) string {
	baseURL := s.Endpoint
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	if strings.HasSuffix(baseURL, "/chat/completions") {
		return baseURL
	}
	return baseURL + "/chat/completions"
}

// SetHeaders adds OpenAI authentication headers.
func (o *OpenAIProvider) SetHeaders(req *resty.Request) {
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		req.SetHeader("Authorization", "Bearer "+apiKey)
	}
}

type openaiRequest struct {
	Model     string             `json:"model"`
	Messages  []analyzer.Message `json:"messages"`
	MaxTokens int                `json:"max_completion_tokens,omitempty"`
}

// BuildRequestBody creates the OpenAI chat completions request body.
func (o *OpenAIProvider) BuildRequestBody(s analyzer.Settings, messages []analyzer.Message) ([]byte, error) {
	return json.Marshal(openaiRequest{
		Model:     s.Model,
		Messages:  messages,
		MaxTokens: s.MaxTokens,
	})
}

type openaiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// ParseResponse extracts the completion text from an OpenAI response.
func (o *OpenAIProvider) ParseResponse(body []byte) (string, error) {
	var resp openaiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse openai response: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("openai API error: %s (%s)", resp.Error.Message, resp.Error.Type)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai response contains no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
