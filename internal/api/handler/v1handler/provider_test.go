package v1handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"scamwatch/internal/api/handler/v1handler"
	mocklookup "scamwatch/internal/lookup/mock"
	"scamwatch/pkg/domain"
	"scamwatch/pkg/serrors"
	"scamwatch/pkg/storage"
)

func newProviderHandler(t *testing.T) (*mocklookup.MockService, *v1handler.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocklookup.NewMockService(ctrl)

	return m, v1handler.New(v1handler.Deps{Lookup: m})
}

func serveProvider(h *v1handler.Handler, r *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/lookups", v1handler.LookupHandler(h))
	mux.HandleFunc("GET /v1/admin/providers", v1handler.ListProviderConfigsHandler(h))
	mux.HandleFunc("POST /v1/admin/providers", v1handler.CreateProviderConfigHandler(h))
	mux.HandleFunc("GET /v1/admin/providers/{id}", v1handler.GetProviderConfigHandler(h))
	mux.HandleFunc("PATCH /v1/admin/providers/{id}", v1handler.UpdateProviderConfigHandler(h))
	mux.HandleFunc("DELETE /v1/admin/providers/{id}", v1handler.DeleteProviderConfigHandler(h))
	mux.HandleFunc("POST /v1/admin/providers/{id}/test", v1handler.ProviderConfigTestHandler(h))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, r)

	return rec
}

func TestHandler_Lookup(t *testing.T) {
	m, h := newProviderHandler(t)

	m.EXPECT().Lookup(gomock.Any(), domain.LookupTypePhone, "+15551234567").
		Return([]domain.ScamLookupResult{{
			Provider: "ipqs",
			Status:   domain.LookupStatusMalicious,
		}}, nil)

	rec := serveProvider(h, authedRequest(http.MethodPost, "/v1/lookups",
		`{"lookupType":"phone","value":"+15551234567"}`, domain.UserID{}))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"malicious"`)
}

func TestHandler_Lookup_EmptyResults(t *testing.T) {
	m, h := newProviderHandler(t)

	m.EXPECT().Lookup(gomock.Any(), domain.LookupTypeIP, "8.8.8.8").Return(nil, nil)

	rec := serveProvider(h, authedRequest(http.MethodPost, "/v1/lookups",
		`{"lookupType":"ip","value":"8.8.8.8"}`, domain.UserID{}))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"results":[]`)
}

func TestHandler_ListProviderConfigs(t *testing.T) {
	m, h := newProviderHandler(t)

	m.EXPECT().ProviderConfigs(gomock.Any()).
		Return([]domain.ProviderConfig{{Name: "ipqs"}}, nil)

	rec := serveProvider(h, authedRequest(http.MethodGet, "/v1/admin/providers", "", domain.UserID{}))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"name":"ipqs"`)
}

func TestHandler_CreateProviderConfig(t *testing.T) {
	m, h := newProviderHandler(t)

	m.EXPECT().CreateProviderConfig(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cfg domain.ProviderConfig) (*domain.ProviderConfig, error) {
			require.Equal(t, "ipqs", cfg.Name)
			require.Equal(t, domain.LookupTypePhone, cfg.LookupType)
			require.Equal(t, "secret", cfg.APIKey)
			require.Equal(t, 10*time.Second, cfg.Timeout)

			return &cfg, nil
		},
	)

	body := `{"name":"ipqs","lookupType":"phone","baseUrl":"https://api.ipqs.example","apiKey":"secret","enabled":true,"timeoutSeconds":10}`
	rec := serveProvider(h, authedRequest(http.MethodPost, "/v1/admin/providers", body, domain.UserID{}))
	require.Equal(t, http.StatusCreated, rec.Code)
	// API keys never appear in responses
	require.NotContains(t, rec.Body.String(), "secret")
}

func TestHandler_UpdateProviderConfig_PartialFields(t *testing.T) {
	m, h := newProviderHandler(t)
	id := uuid.New()

	m.EXPECT().UpdateProviderConfig(gomock.Any(), domain.ProviderConfigID(id), gomock.Any()).DoAndReturn(
		func(_ context.Context,
			_ domain.ProviderConfigID,
			updates storage.ProviderConfigUpdates) (*domain.ProviderConfig, error) {
			require.NotNil(t, updates.Enabled)
			require.False(t, *updates.Enabled)
			require.Nil(t, updates.Name)
			require.Nil(t, updates.BaseURL)

			return &domain.ProviderConfig{Enabled: false}, nil
		},
	)

	rec := serveProvider(h, authedRequest(http.MethodPatch,
		"/v1/admin/providers/"+id.String(), `{"enabled":false}`, domain.UserID{}))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_DeleteProviderConfig(t *testing.T) {
	m, h := newProviderHandler(t)
	id := uuid.New()

	m.EXPECT().DeleteProviderConfig(gomock.Any(), domain.ProviderConfigID(id)).Return(nil)

	rec := serveProvider(h, authedRequest(http.MethodDelete,
		"/v1/admin/providers/"+id.String(), "", domain.UserID{}))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_DeleteProviderConfig_NotFound(t *testing.T) {
	m, h := newProviderHandler(t)
	id := uuid.New()

	m.EXPECT().DeleteProviderConfig(gomock.Any(), domain.ProviderConfigID(id)).
		Return(serrors.With(serrors.ErrNotFound, "provider config not found"))

	rec := serveProvider(h, authedRequest(http.MethodDelete,
		"/v1/admin/providers/"+id.String(), "", domain.UserID{}))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_TestProviderConfig(t *testing.T) {
	m, h := newProviderHandler(t)
	id := uuid.New()

	m.EXPECT().TestConfig(gomock.Any(), domain.ProviderConfigID(id)).
		Return(&domain.ScamLookupResult{Input: "test@example.com", Status: domain.LookupStatusSafe}, nil)

	rec := serveProvider(h, authedRequest(http.MethodPost,
		"/v1/admin/providers/"+id.String()+"/test", "", domain.UserID{}))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"input":"test@example.com"`)
}
