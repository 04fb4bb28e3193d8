// Package ipqs provides a provider.Client for the IPQualityScore fraud
// scoring API.
package ipqs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"scamwatch/pkg/domain"
	"scamwatch/pkg/provider"
)

// Client talks to the IPQS API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
}

// New constructs a Client that uses the provided http.Client.
func New(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// Lookup posts the value to the configured IPQS endpoint and maps the
// fraud_score to a normalized verdict.
func (c *Client) Lookup(ctx context.Context,
	lookupType domain.LookupType,
	value string,
	cfg domain.ProviderConfig) (*domain.ScamLookupResult, error) {
	body, err := json.Marshal(map[string]string{
		string(lookupType): value,
		"key":              cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request body: %w", err)
	}

	respBody, err := provider.PostJSON(ctx, c.httpClient, cfg.BaseURL, nil, body)
	if err != nil {
		return nil, err
	}

	var payload struct {
		FraudScore  float64 `json:"fraud_score"`
		RecentAbuse bool    `json:"recent_abuse"`
		Message     string  `json:"message"`
	}
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	score := int(payload.FraudScore)
	var status domain.LookupStatus
	var reputation string
	switch {
	case score >= 85:
		status, reputation = domain.LookupStatusMalicious, "high"
	case score >= 50:
		status, reputation = domain.LookupStatusSuspicious, "medium"
	case score >= 25:
		status, reputation = domain.LookupStatusSuspicious, "low"
	default:
		status, reputation = domain.LookupStatusSafe, "clean"
	}

	return &domain.ScamLookupResult{
		Input:      value,
		Provider:   cfg.Name,
		RiskScore:  score,
		Reputation: reputation,
		Status:     status,
		Details: map[string]any{
			"fraud_score":  payload.FraudScore,
			"recent_abuse": payload.RecentAbuse,
			"message":      payload.Message,
		},
		RawResponse: respBody,
		CheckedAt:   time.Now().UTC(),
		Request: domain.OutboundRequest{
			Method: http.MethodPost,
			URL:    cfg.BaseURL,
			Body:   body,
		},
	}, nil
}

// Ensure Client conforms to the provider.Client interface at compile time.
var _ provider.Client = (*Client)(nil)
