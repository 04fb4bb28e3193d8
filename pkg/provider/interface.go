// Package provider defines the client abstraction for third-party scam lookup
// services, plus the request templating and HTTP plumbing the concrete clients
// share.
package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"scamwatch/pkg/domain"
)

// Client is the abstraction for lookup providers. Implementations send one
// request for one input value and normalize the response into a
// domain.ScamLookupResult.
type Client interface {
	// Lookup checks the given value against the provider described by cfg.
	// Implementations return an error for transport failures, non-2xx
	// responses and unparseable bodies; degrading those to an "unknown"
	// result is the caller's concern.
	Lookup(ctx context.Context,
		lookupType domain.LookupType,
		value string,
		cfg domain.ProviderConfig) (*domain.ScamLookupResult, error)
}

// PostJSON sends a JSON POST to url with the given extra headers and returns
// the raw response body. Non-2xx responses are returned as errors carrying the
// trimmed body text.
func PostJSON(ctx context.Context,
	httpClient *http.Client,
	url string,
	headers map[string]string,
	body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return b, nil
}
