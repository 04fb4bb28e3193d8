package lookup_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"scamwatch/internal/lookup"

	mockstorage "scamwatch/pkg/storage/mock"

	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/mock/gomock"

	"scamwatch/pkg/domain"
	"scamwatch/pkg/serrors"
	"scamwatch/pkg/storage"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestService(t *testing.T, rt http.RoundTripper) (*mockstorage.MockStorage, lookup.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s, err := lookup.New(st, &http.Client{Transport: rt}, noop.NewMeterProvider())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return st, s
}

func okBody(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestService_Lookup_FanOutPreservesOrderAndDegradesFailures(t *testing.T) {
	st, s := newTestService(t, rtFunc(func(r *http.Request) (*http.Response, error) {
		switch r.URL.Host {
		case "good.example":
			return okBody(`{"risk_score": 90, "reputation": "bad"}`), nil
		case "broken.example":
			return nil, errors.New("connection refused")
		default:
			return nil, errors.New("unexpected host " + r.URL.Host)
		}
	}))

	cfgs := []domain.ProviderConfig{
		{Name: "good", LookupType: domain.LookupTypePhone, BaseURL: "https://good.example/check", Enabled: true},
		{Name: "broken", LookupType: domain.LookupTypePhone, BaseURL: "https://broken.example/check", Enabled: true},
	}
	st.EXPECT().EnabledProviderConfigs(gomock.Any(), domain.LookupTypePhone).Return(cfgs, nil)

	results, err := s.Lookup(context.Background(), domain.LookupTypePhone, "+15551234567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	// first provider succeeds with the real verdict
	if results[0].Provider != "good" || results[0].Status != domain.LookupStatusMalicious {
		t.Fatalf("unexpected first result: %+v", results[0])
	}
	if results[0].RiskScore != 90 || results[0].Reputation != "bad" {
		t.Fatalf("unexpected first result: %+v", results[0])
	}

	// second provider degrades instead of failing the lookup
	if results[1].Provider != "broken" || results[1].Status != domain.LookupStatusUnknown {
		t.Fatalf("unexpected second result: %+v", results[1])
	}
	if results[1].Reputation != "error" {
		t.Fatalf("expected error reputation, got %q", results[1].Reputation)
	}
	if _, ok := results[1].Details["error"]; !ok {
		t.Fatalf("expected error detail, got %+v", results[1].Details)
	}
}

func TestService_Lookup_NoProvidersYieldsEmptyResults(t *testing.T) {
	st, s := newTestService(t, rtFunc(func(r *http.Request) (*http.Response, error) {
		t.Fatalf("unexpected request to %s", r.URL)

		return nil, nil
	}))

	st.EXPECT().EnabledProviderConfigs(gomock.Any(), domain.LookupTypeEmail).Return(nil, nil)

	results, err := s.Lookup(context.Background(), domain.LookupTypeEmail, "x@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %+v", results)
	}
}

func TestService_Lookup_Validation(t *testing.T) {
	_, s := newTestService(t, nil)

	_, err := s.Lookup(context.Background(), "dns", "example.com")
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}

	_, err = s.Lookup(context.Background(), domain.LookupTypePhone, "  ")
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestService_Lookup_NamedIntegrationSelectedByName(t *testing.T) {
	st, s := newTestService(t, rtFunc(func(r *http.Request) (*http.Response, error) {
		// the ipqs client authenticates in the body, not a header
		b, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(b), `"key":"ipqs-key"`) && !strings.Contains(string(b), `"key": "ipqs-key"`) {
			t.Fatalf("expected ipqs body with key, got %s", b)
		}

		return okBody(`{"fraud_score": 90, "recent_abuse": true}`), nil
	}))

	cfgs := []domain.ProviderConfig{{
		Name:       "IPQS",
		LookupType: domain.LookupTypePhone,
		BaseURL:    "https://ipqs.example/phone",
		APIKey:     "ipqs-key",
		Enabled:    true,
	}}
	st.EXPECT().EnabledProviderConfigs(gomock.Any(), domain.LookupTypePhone).Return(cfgs, nil)

	results, err := s.Lookup(context.Background(), domain.LookupTypePhone, "+15551234567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Status != domain.LookupStatusMalicious || results[0].Reputation != "high" {
		t.Fatalf("unexpected result: %+v", results[0])
	}
}

func TestService_Lookup_MappingOverridesNamedIntegration(t *testing.T) {
	st, s := newTestService(t, rtFunc(func(r *http.Request) (*http.Response, error) {
		b, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(b), `"number":"+15551234567"`) {
			t.Fatalf("expected templated body, got %s", b)
		}

		return okBody(`{"score": 10}`), nil
	}))

	// named like a built-in but carries a custom mapping, the template wins
	cfgs := []domain.ProviderConfig{{
		Name:             "ipqs",
		LookupType:       domain.LookupTypePhone,
		BaseURL:          "https://custom.example/check",
		APIKey:           "k",
		Enabled:          true,
		ParameterMapping: `{"number": "{{input}}"}`,
	}}
	st.EXPECT().EnabledProviderConfigs(gomock.Any(), domain.LookupTypePhone).Return(cfgs, nil)

	results, err := s.Lookup(context.Background(), domain.LookupTypePhone, "+15551234567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Status != domain.LookupStatusSafe {
		t.Fatalf("unexpected result: %+v", results[0])
	}
}

func TestService_TestConfig_UsesCannedInput(t *testing.T) {
	var gotBody string
	st, s := newTestService(t, rtFunc(func(r *http.Request) (*http.Response, error) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)

		return okBody(`{"risk_score": 0}`), nil
	}))

	id := domain.ProviderConfigID{}
	st.EXPECT().ProviderConfigByID(gomock.Any(), id).Return(&domain.ProviderConfig{
		Name:       "custom",
		LookupType: domain.LookupTypeEmail,
		BaseURL:    "https://custom.example/check",
		APIKey:     "k",
		Enabled:    true,
	}, nil)

	res, err := s.TestConfig(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Input != "test@example.com" {
		t.Fatalf("expected canned email input, got %q", res.Input)
	}
	if !strings.Contains(gotBody, "test@example.com") {
		t.Fatalf("expected canned input in request body, got %s", gotBody)
	}
}

func TestService_TestConfig_NotFound(t *testing.T) {
	st, s := newTestService(t, nil)

	id := domain.ProviderConfigID{}
	st.EXPECT().ProviderConfigByID(gomock.Any(), id).Return(nil, nil)

	_, err := s.TestConfig(context.Background(), id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_TestConfig_ReturnsDegradedResultOnFailure(t *testing.T) {
	st, s := newTestService(t, rtFunc(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	}))

	id := domain.ProviderConfigID{}
	st.EXPECT().ProviderConfigByID(gomock.Any(), id).Return(&domain.ProviderConfig{
		Name:       "custom",
		LookupType: domain.LookupTypeIP,
		BaseURL:    "https://custom.example/check",
	}, nil)

	res, err := s.TestConfig(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != domain.LookupStatusUnknown || res.Reputation != "error" {
		t.Fatalf("expected degraded result, got %+v", res)
	}
}

func TestService_CreateProviderConfig(t *testing.T) {
	st, s := newTestService(t, nil)

	cfg := domain.ProviderConfig{
		Name:       "custom",
		LookupType: domain.LookupTypeURL,
		BaseURL:    "https://custom.example/check",
	}

	st.EXPECT().StoreProviderConfigs(gomock.Any(), cfg).
		Return([]domain.ProviderConfig{cfg}, nil)

	res, err := s.CreateProviderConfig(context.Background(), cfg)
	if err != nil || res == nil || res.Name != "custom" {
		t.Fatalf("unexpected: res=%+v err=%v", res, err)
	}

	// validation
	for _, bad := range []domain.ProviderConfig{
		{LookupType: domain.LookupTypeURL, BaseURL: "https://x"},          // missing name
		{Name: "x", LookupType: domain.LookupTypeURL},                     // missing base URL
		{Name: "x", LookupType: "dns", BaseURL: "https://custom.example"}, // bad type
	} {
		if _, err := s.CreateProviderConfig(context.Background(), bad); !errors.Is(err, serrors.ErrBadRequest) {
			t.Fatalf("expected ErrBadRequest for %+v, got %v", bad, err)
		}
	}
}

func TestService_UpdateProviderConfig(t *testing.T) {
	st, s := newTestService(t, nil)
	id := domain.ProviderConfigID{}

	enabled := false
	updates := storage.ProviderConfigUpdates{Enabled: &enabled}

	// success
	st.EXPECT().UpdateProviderConfigByID(gomock.Any(), id, updates).
		Return(&domain.ProviderConfig{Enabled: false}, nil)
	res, err := s.UpdateProviderConfig(context.Background(), id, updates)
	if err != nil || res == nil || res.Enabled {
		t.Fatalf("unexpected: res=%+v err=%v", res, err)
	}

	// not found
	st.EXPECT().UpdateProviderConfigByID(gomock.Any(), id, updates).Return(nil, nil)
	_, err = s.UpdateProviderConfig(context.Background(), id, updates)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// invalid lookup type
	bad := domain.LookupType("dns")
	_, err = s.UpdateProviderConfig(context.Background(), id, storage.ProviderConfigUpdates{LookupType: &bad})
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestService_DeleteProviderConfig(t *testing.T) {
	st, s := newTestService(t, nil)
	id := domain.ProviderConfigID{}

	// success
	st.EXPECT().DeleteProviderConfig(gomock.Any(), id).Return(&domain.ProviderConfig{}, nil)
	if err := s.DeleteProviderConfig(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// not found
	st.EXPECT().DeleteProviderConfig(gomock.Any(), id).Return(nil, nil)
	err := s.DeleteProviderConfig(context.Background(), id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
