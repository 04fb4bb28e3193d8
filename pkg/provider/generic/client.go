// Package generic provides a provider.Client for arbitrary lookup services
// described entirely by their ProviderConfig: a templated base URL, optional
// JSON parameter and header templates, and a conventional score/reputation
// response shape.
package generic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"scamwatch/pkg/domain"
	"scamwatch/pkg/logger"
	"scamwatch/pkg/provider"

	"go.uber.org/zap"
)

// Client calls a provider described by its config. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
}

// New constructs a Client that uses the provided http.Client.
func New(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// parseObject decodes a JSON object template from a config field. A malformed
// template is logged and treated as empty rather than failing the lookup.
func parseObject(ctx context.Context, raw string, field string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		logger.Get(ctx).Warn("malformed provider config template, ignoring",
			zap.String("field", field),
			zap.Error(err))

		return map[string]any{}
	}

	return obj
}

// Lookup sends a templated JSON POST to the configured endpoint and
// normalizes the response. Keys and inputs travel in the body, never in the
// URL, unless the config's own URL template places them there.
func (c *Client) Lookup(ctx context.Context,
	lookupType domain.LookupType,
	value string,
	cfg domain.ProviderConfig) (*domain.ScamLookupResult, error) {
	vars := provider.Vars{Input: value, APIKey: cfg.APIKey}

	params := parseObject(ctx, cfg.ParameterMapping, "parameter_mapping")
	if len(params) == 0 {
		params = map[string]any{
			string(lookupType): value,
			"key":              cfg.APIKey,
		}
	} else {
		params = provider.ExpandValues(params, vars)
	}

	headers := make(map[string]string)
	for k, v := range parseObject(ctx, cfg.Headers, "headers") {
		if s, ok := v.(string); ok {
			headers[k] = s
		}
	}
	headers = provider.ExpandHeaders(headers, vars)

	url := provider.Expand(cfg.BaseURL, vars)
	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request body: %w", err)
	}

	respBody, err := provider.PostJSON(ctx, c.httpClient, url, headers, body)
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	score := scoreFromPayload(payload)
	reputation := "unknown"
	if r, ok := payload["reputation"].(string); ok && r != "" {
		reputation = r
	}

	var status domain.LookupStatus
	switch {
	case score >= 80:
		status = domain.LookupStatusMalicious
	case score >= 50:
		status = domain.LookupStatusSuspicious
	case score >= 20:
		status = domain.LookupStatusSuspicious
	default:
		status = domain.LookupStatusSafe
	}

	return &domain.ScamLookupResult{
		Input:       value,
		Provider:    cfg.Name,
		RiskScore:   score,
		Reputation:  reputation,
		Status:      status,
		Details:     payload,
		RawResponse: respBody,
		CheckedAt:   time.Now().UTC(),
		Request: domain.OutboundRequest{
			Method:  http.MethodPost,
			URL:     url,
			Headers: headers,
			Body:    body,
		},
	}, nil
}

// scoreFromPayload reads the risk score from the conventional fields,
// preferring risk_score over score. Missing or non-numeric fields yield 0.
func scoreFromPayload(payload map[string]any) int {
	for _, field := range []string{"risk_score", "score"} {
		if n, ok := payload[field].(float64); ok {
			return int(n)
		}
	}

	return 0
}

// Ensure Client conforms to the provider.Client interface at compile time.
var _ provider.Client = (*Client)(nil)
