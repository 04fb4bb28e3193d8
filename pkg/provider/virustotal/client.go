// Package virustotal provides a provider.Client for the VirusTotal analysis
// API.
package virustotal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"scamwatch/pkg/domain"
	"scamwatch/pkg/provider"
)

// Client talks to the VirusTotal API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
}

// New constructs a Client that uses the provided http.Client.
func New(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// Lookup posts the value to the configured VirusTotal endpoint and derives
// the verdict from the per-engine analysis stats: any engine flagging the
// value as malicious outweighs everything else.
func (c *Client) Lookup(ctx context.Context,
	lookupType domain.LookupType,
	value string,
	cfg domain.ProviderConfig) (*domain.ScamLookupResult, error) {
	body, err := json.Marshal(map[string]string{
		string(lookupType): value,
	})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request body: %w", err)
	}

	headers := map[string]string{"x-apikey": cfg.APIKey}
	respBody, err := provider.PostJSON(ctx, c.httpClient, cfg.BaseURL, headers, body)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Data struct {
			Attributes struct {
				LastAnalysisStats struct {
					Malicious  int `json:"malicious"`
					Suspicious int `json:"suspicious"`
					Harmless   int `json:"harmless"`
					Undetected int `json:"undetected"`
				} `json:"last_analysis_stats"`
			} `json:"attributes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	stats := payload.Data.Attributes.LastAnalysisStats
	var status domain.LookupStatus
	var reputation string
	switch {
	case stats.Malicious > 0:
		status, reputation = domain.LookupStatusMalicious, "malicious"
	case stats.Suspicious > 0:
		status, reputation = domain.LookupStatusSuspicious, "suspicious"
	default:
		status, reputation = domain.LookupStatusSafe, "harmless"
	}

	// score is the share of engines flagging the value
	total := stats.Malicious + stats.Suspicious + stats.Harmless + stats.Undetected
	score := 0
	if total > 0 {
		score = (stats.Malicious + stats.Suspicious) * 100 / total
	}

	return &domain.ScamLookupResult{
		Input:      value,
		Provider:   cfg.Name,
		RiskScore:  score,
		Reputation: reputation,
		Status:     status,
		Details: map[string]any{
			"malicious":  stats.Malicious,
			"suspicious": stats.Suspicious,
			"harmless":   stats.Harmless,
			"undetected": stats.Undetected,
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
