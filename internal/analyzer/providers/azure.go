package providers

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/bomgrid/bomcheck/internal/analyzer"
)

// AzureProvider implements the Azure OpenAI chat completions API. It shares
// the OpenAI request and response wire format but differs in URL layout and
// authentication.
type AzureProvider struct {
	OpenAIProvider
}

func init() {
	analyzer.RegisterProvider(&AzureProvider{})
}

// Name returns the provider identifier.
func (a *AzureProvider) Name() string {
	return "azure"
}

// BuildURL constructs the Azure OpenAI deployment endpoint. The endpoint and
// deployment come from settings; AZURE_OPENAI_ENDPOINT is the fallback.
func (a *AzureProvider) BuildURL(s analyzer.Settings) string {
	endpoint := s.Endpoint
	if endpoint == "" {
		endpoint = os.Getenv("AZURE_OPENAI_ENDPOINT")
	}
	endpoint = strings.TrimSuffix(endpoint, "/")
	return fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		endpoint, s.Deployment, s.APIVersion)
}

// SetHeaders adds Azure OpenAI authentication headers.
func (a *AzureProvider) SetHeaders(req *resty.Request) {
	if apiKey := os.Getenv("AZURE_OPENAI_API_KEY"); apiKey != "" {
		req.SetHeader("api-key", apiKey)
	}
}
