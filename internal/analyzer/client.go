package analyzer

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/bomgrid/bomcheck/internal/bom"
	"github.com/bomgrid/bomcheck/internal/issues"
)

// Client calls a registered LLM provider over HTTP. It implements Analyzer.
type Client struct {
	httpc    *resty.Client
	provider Provider
	settings Settings
	logger   hclog.Logger
}

// NewClient builds an escalation client for the named provider. The resty
// client carries the retry and timeout behavior configured globally.
func NewClient(httpc *resty.Client, settings Settings, logger hclog.Logger) (*Client, error) {
	if settings.Provider == "" {
		settings.Provider = DefaultSettings().Provider
	}
	if settings.Model == "" {
		settings.Model = DefaultSettings().Model
	}
	if settings.APIVersion == "" {
		settings.APIVersion = DefaultSettings().APIVersion
	}

	provider := GetProvider(settings.Provider)
	if provider == nil {
		return nil, fmt.Errorf("unknown analyzer provider %q, available: %v", settings.Provider, ListProviders())
	}

	return &Client{
		httpc:    httpc,
		provider: provider,
		settings: settings,
		logger:   logger,
	}, nil
}

// Analyze sends the order and the deterministic issue list to the provider
// and returns its free-text analysis. Any transport or API failure is
// returned as an error; callers keep the deterministic report either way.
func (c *Client) Analyze(ctx context.Context, order *bom.Order, found []issues.Issue) (string, error) {
	messages, err := BuildMessages(order, found)
	if err != nil {
		return "", err
	}

	body, err := c.provider.BuildRequestBody(c.settings, messages)
	if err != nil {
		return "", fmt.Errorf("failed to build %s request: %w", c.provider.Name(), err)
	}

	url := c.provider.BuildURL(c.settings)
	req := c.httpc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	c.provider.SetHeaders(req)

	c.logger.Debug("sending escalation request", "provider", c.provider.Name(), "model", c.settings.Model)

	resp, err := req.Post(url)
	if err != nil {
		return "", fmt.Errorf("%s request failed: %w", c.provider.Name(), err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%s returned status %d: %s", c.provider.Name(), resp.StatusCode(), resp.String())
	}

	content, err := c.provider.ParseResponse(resp.Body())
	if err != nil {
		return "", err
	}
	if content == "" {
		return "", fmt.Errorf("%s returned an empty completion", c.provider.Name())
	}

	// Models sometimes wrap a structured reply in a markdown fence; surface
	// the payload rather than the fence.
	if extracted := ExtractJSON(content); extracted != "" {
		return extracted, nil
	}
	return content, nil
}
