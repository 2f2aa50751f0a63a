package analyzer

import (
	"sync"

	"github.com/go-resty/resty/v2"
)

// Provider adapts the escalation client to one LLM API surface.
type Provider interface {
	// Name returns the provider identifier (e.g. "openai", "azure", "ollama").
	Name() string

	// BuildURL constructs the full API endpoint URL from the settings.
	BuildURL(s Settings) string

	// SetHeaders adds provider-specific headers, including authentication
	// read from the environment.
	SetHeaders(req *resty.Request)

	// BuildRequestBody creates the JSON request body for the provider.
	BuildRequestBody(s Settings, messages []Message) ([]byte, error)

	// ParseResponse extracts the generated text from the provider response.
	ParseResponse(body []byte) (string, error)
}

var (
	providerRegistry = make(map[string]Provider)
	providerMu       sync.RWMutex
)

// RegisterProvider adds a provider to the registry. Providers register
// themselves from init functions in the providers subpackage.
func RegisterProvider(p Provider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	providerRegistry[p.Name()] = p
}

// GetProvider retrieves a provider by name, or nil when unknown.
func GetProvider(name string) Provider {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return providerRegistry[name]
}

// ListProviders returns all registered provider names.
func ListProviders() []string {
	providerMu.RLock()
	defer providerMu.RUnlock()

	names := make([]string, 0, len(providerRegistry))
	for name := range providerRegistry {
		names = append(names, name)
	}
	return names
}
