package generic_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"scamwatch/pkg/domain"
	"scamwatch/pkg/provider/generic"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *generic.Client {
	return generic.New(&http.Client{Transport: fn})
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestClient_Lookup_TemplatedMapping(t *testing.T) {
	cfg := domain.ProviderConfig{
		Name:             "phonecheck",
		LookupType:       domain.LookupTypePhone,
		BaseURL:          "https://api.phonecheck.example/v1/check",
		APIKey:           "ABC123",
		ParameterMapping: `{"phone": "{{phone}}", "key": "{{apiKey}}", "strict": true}`,
		Headers:          `{"X-Api-Key": "{{key}}"}`,
	}

	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "https://api.phonecheck.example/v1/check", r.URL.String())
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "ABC123", r.Header.Get("X-Api-Key"))

		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(b, &body))
		require.Equal(t, map[string]any{
			"phone":  "+15551234567",
			"key":    "ABC123",
			"strict": true,
		}, body)

		return jsonResponse(http.StatusOK, `{"risk_score": 91, "reputation": "high"}`), nil
	})

	res, err := c.Lookup(context.Background(), domain.LookupTypePhone, "+15551234567", cfg)
	require.NoError(t, err)
	require.Equal(t, "+15551234567", res.Input)
	require.Equal(t, "phonecheck", res.Provider)
	require.Equal(t, 91, res.RiskScore)
	require.Equal(t, "high", res.Reputation)
	require.Equal(t, domain.LookupStatusMalicious, res.Status)
	require.Equal(t, http.MethodPost, res.Request.Method)
	require.JSONEq(t, `{"risk_score": 91, "reputation": "high"}`, string(res.RawResponse))
}

func TestClient_Lookup_SynthesizedParams(t *testing.T) {
	cfg := domain.ProviderConfig{
		Name:       "emailrep",
		LookupType: domain.LookupTypeEmail,
		BaseURL:    "https://api.emailrep.example/check",
		APIKey:     "K",
	}

	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(b, &body))
		// empty mapping synthesizes {<type>: value, key: apiKey}
		require.Equal(t, map[string]any{
			"email": "test@example.com",
			"key":   "K",
		}, body)

		return jsonResponse(http.StatusOK, `{"score": 10}`), nil
	})

	res, err := c.Lookup(context.Background(), domain.LookupTypeEmail, "test@example.com", cfg)
	require.NoError(t, err)
	require.Equal(t, 10, res.RiskScore)
	require.Equal(t, "unknown", res.Reputation)
	require.Equal(t, domain.LookupStatusSafe, res.Status)
}

func TestClient_Lookup_MalformedMappingFallsBack(t *testing.T) {
	cfg := domain.ProviderConfig{
		Name:             "broken",
		LookupType:       domain.LookupTypeIP,
		BaseURL:          "https://api.broken.example/check",
		APIKey:           "K",
		ParameterMapping: `{not json`,
		Headers:          `[1,2]`,
	}

	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(b, &body))
		require.Equal(t, map[string]any{"ip": "8.8.8.8", "key": "K"}, body)

		return jsonResponse(http.StatusOK, `{}`), nil
	})

	res, err := c.Lookup(context.Background(), domain.LookupTypeIP, "8.8.8.8", cfg)
	require.NoError(t, err)
	require.Equal(t, 0, res.RiskScore)
	require.Equal(t, domain.LookupStatusSafe, res.Status)
}

func TestClient_Lookup_URLTemplating(t *testing.T) {
	cfg := domain.ProviderConfig{
		Name:             "pathy",
		LookupType:       domain.LookupTypeURL,
		BaseURL:          "https://api.pathy.example/check/{{input}}",
		APIKey:           "K",
		ParameterMapping: `{"url": "{{url}}"}`,
	}

	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/check/https://example.com", r.URL.Path)

		return jsonResponse(http.StatusOK, `{"risk_score": 55}`), nil
	})

	res, err := c.Lookup(context.Background(), domain.LookupTypeURL, "https://example.com", cfg)
	require.NoError(t, err)
	require.Equal(t, domain.LookupStatusSuspicious, res.Status)
}

func TestClient_Lookup_StatusThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  domain.LookupStatus
	}{
		{80, domain.LookupStatusMalicious},
		{79, domain.LookupStatusSuspicious},
		{50, domain.LookupStatusSuspicious},
		{20, domain.LookupStatusSuspicious},
		{19, domain.LookupStatusSafe},
		{0, domain.LookupStatusSafe},
	}

	for _, tt := range tests {
		c := newTestClient(func(r *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK,
				`{"risk_score": `+strconv.Itoa(tt.score)+`}`), nil
		})

		res, err := c.Lookup(context.Background(), domain.LookupTypeIP, "8.8.8.8", domain.ProviderConfig{
			Name:       "scorer",
			LookupType: domain.LookupTypeIP,
			BaseURL:    "https://api.scorer.example/check",
		})
		require.NoError(t, err)
		require.Equal(t, tt.want, res.Status, "score %d", tt.score)
		require.Equal(t, tt.score, res.RiskScore)
	}
}

func TestClient_Lookup_Non2xx(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusForbidden, "bad key"), nil
	})

	res, err := c.Lookup(context.Background(), domain.LookupTypeIP, "8.8.8.8", domain.ProviderConfig{
		Name:    "denied",
		BaseURL: "https://api.denied.example/check",
	})
	require.Error(t, err)
	require.Nil(t, res)
	require.Contains(t, err.Error(), "bad key")
}

func TestClient_Lookup_UnparseableBody(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "<html>"), nil
	})

	res, err := c.Lookup(context.Background(), domain.LookupTypeIP, "8.8.8.8", domain.ProviderConfig{
		Name:    "htmlish",
		BaseURL: "https://api.htmlish.example/check",
	})
	require.Error(t, err)
	require.Nil(t, res)
}
