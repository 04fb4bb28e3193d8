// Package abuseipdb provides a provider.Client for the AbuseIPDB IP
// reputation API.
package abuseipdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"scamwatch/pkg/domain"
	"scamwatch/pkg/provider"
)

// Client talks to the AbuseIPDB API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
}

// New constructs a Client that uses the provided http.Client.
func New(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// Lookup posts the value to the configured AbuseIPDB endpoint and maps the
// abuse confidence score to a normalized verdict.
func (c *Client) Lookup(ctx context.Context,
	lookupType domain.LookupType,
	value string,
	cfg domain.ProviderConfig) (*domain.ScamLookupResult, error) {
	body, err := json.Marshal(map[string]string{
		"ipAddress": value,
	})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request body: %w", err)
	}

	headers := map[string]string{"Key": cfg.APIKey}
	respBody, err := provider.PostJSON(ctx, c.httpClient, cfg.BaseURL, headers, body)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Data struct {
			AbuseConfidenceScore float64 `json:"abuseConfidenceScore"`
			TotalReports         int     `json:"totalReports"`
			CountryCode          string  `json:"countryCode"`
			ISP                  string  `json:"isp"`
		} `json:"data"`
	}
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	score := int(payload.Data.AbuseConfidenceScore)
	var status domain.LookupStatus
	var reputation string
	switch {
	case score >= 75:
		status, reputation = domain.LookupStatusMalicious, "high"
	case score >= 25:
		status, reputation = domain.LookupStatusSuspicious, "medium"
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
			"abuseConfidenceScore": payload.Data.AbuseConfidenceScore,
			"totalReports":         payload.Data.TotalReports,
			"countryCode":          payload.Data.CountryCode,
			"isp":                  payload.Data.ISP,
		},
		RawResponse: respBody,
		CheckedAt:   time.Now().UTC(),
		Request: domain.OutboundRequest{
			Method:  http.MethodPost,
			URL:     cfg.BaseURL,
			Headers: headers,
			Body:    body,
		},
	}, nil
}

// Ensure Client conforms to the provider.Client interface at compile time.
var _ provider.Client = (*Client)(nil)
