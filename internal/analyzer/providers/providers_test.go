package providers

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"

	"github.com/bomgrid/bomcheck/internal/analyzer"
)

func TestRegisteredProviders(t *testing.T) {
	for _, name := range []string{"openai", "azure", "ollama"} {
		if analyzer.GetProvider(name) == nil {
			t.Errorf("expected provider %q to be registered", name)
		}
	}
}

func TestOpenAIBuildURL(t *testing.T) {
	p := &OpenAIProvider{}

	tests := []struct {
		name     string
		endpoint string
		want     string
	}{
		{name: "default endpoint", endpoint: "", want: "https://api.openai.com/v1/chat/completions"},
		{name: "custom endpoint", endpoint: "https://proxy.example.com/v1", want: "https://proxy.example.com/v1/chat/completions"},
		{name: "trailing slash", endpoint: "https://proxy.example.com/v1/", want: "https://proxy.example.com/v1/chat/completions"},
		{name: "full path given", endpoint: "https://proxy.example.com/v1/chat/completions", want: "https://proxy.example.com/v1/chat/completions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.BuildURL(analyzer.Settings{Endpoint: tt.endpoint}); got != tt.want {
				t.Errorf("BuildURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpenAISetHeaders(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	req := resty.New().R()
	(&OpenAIProvider{}).SetHeaders(req)

	if got := req.Header.Get("Authorization"); got != "Bearer sk-test" {
		t.Errorf("Authorization = %q, want Bearer sk-test", got)
	}
}

func TestOpenAIBuildRequestBody(t *testing.T) {
	p := &OpenAIProvider{}
	messages := []analyzer.Message{{Role: "user", Content: "analyze this"}}

	body, err := p.BuildRequestBody(analyzer.Settings{Model: "o3-mini", MaxTokens: 500}, messages)
	if err != nil {
		t.Fatalf("BuildRequestBody() returned unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("request body did not parse: %v", err)
	}
	if decoded["model"] != "o3-mini" {
		t.Errorf("model = %v, want o3-mini", decoded["model"])
	}
	if decoded["max_completion_tokens"] != float64(500) {
		t.Errorf("max_completion_tokens = %v, want 500", decoded["max_completion_tokens"])
	}

	// Zero max tokens is omitted so the provider default applies.
	body, err = p.BuildRequestBody(analyzer.Settings{Model: "o3-mini"}, messages)
	if err != nil {
		t.Fatalf("BuildRequestBody() returned unexpected error: %v", err)
	}
	if strings.Contains(string(body), "max_completion_tokens") {
		t.Errorf("expected max_completion_tokens to be omitted, got %s", body)
	}
}

func TestOpenAIParseResponse(t *testing.T) {
	p := &OpenAIProvider{}

	tests := []struct {
		name    string
		body    string
		want    string
		wantErr string
	}{
		{
			name: "valid completion",
			body: `{"choices": [{"message": {"content": "looks fine"}, "finish_reason": "stop"}]}`,
			want: "looks fine",
		},
		{
			name:    "api error",
			body:    `{"error": {"message": "invalid key", "type": "auth_error"}}`,
			wantErr: "invalid key",
		},
		{
			name:    "no choices",
			body:    `{"choices": []}`,
			wantErr: "no choices",
		},
		{
			name:    "not json",
			body:    `<html>bad gateway</html>`,
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseResponse([]byte(tt.body))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ParseResponse() error = %v, expected it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseResponse() returned unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseResponse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAzureBuildURL(t *testing.T) {
	p := &AzureProvider{}
	settings := analyzer.Settings{
		Endpoint:   "https://example.openai.azure.com/",
		Deployment: "bom-validator",
		APIVersion: "2024-02-01",
	}

	want := "https://example.openai.azure.com/openai/deployments/bom-validator/chat/completions?api-version=2024-02-01"
	if got := p.BuildURL(settings); got != want {
		t.Errorf("BuildURL() = %q, want %q", got, want)
	}
}

func TestAzureBuildURLEnvFallback(t *testing.T) {
	t.Setenv("AZURE_OPENAI_ENDPOINT", "https://env.openai.azure.com")

	p := &AzureProvider{}
	got := p.BuildURL(analyzer.Settings{Deployment: "d", APIVersion: "v"})
	if !strings.HasPrefix(got, "https://env.openai.azure.com/openai/deployments/d/") {
		t.Errorf("expected the endpoint from the environment, got %q", got)
	}
}

func TestAzureSetHeaders(t *testing.T) {
	t.Setenv("AZURE_OPENAI_API_KEY", "az-test")

	req := resty.New().R()
	(&AzureProvider{}).SetHeaders(req)

	if got := req.Header.Get("api-key"); got != "az-test" {
		t.Errorf("api-key = %q, want az-test", got)
	}
}

func TestOllamaBuildURL(t *testing.T) {
	p := &OllamaProvider{}

	if got := p.BuildURL(analyzer.Settings{}); got != "http://localhost:11434/v1/chat/completions" {
		t.Errorf("BuildURL() = %q", got)
	}
	if got := p.BuildURL(analyzer.Settings{Endpoint: "http://gpu-box:11434/v1"}); got != "http://gpu-box:11434/v1/chat/completions" {
		t.Errorf("BuildURL() = %q", got)
	}
}
