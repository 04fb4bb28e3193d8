package v1handler

import (
	"net/http"
	"time"

	"scamwatch/pkg/domain"
	"scamwatch/pkg/serrors"
	"scamwatch/pkg/storage"

	"github.com/google/uuid"
)

// providerConfigRequest is the payload for creating a provider configuration.
// The timeout is expressed in seconds; zero means the default.
type providerConfigRequest struct {
	Name             string            `json:"name"`
	LookupType       domain.LookupType `json:"lookupType"`
	BaseURL          string            `json:"baseUrl"`
	APIKey           string            `json:"apiKey"`
	Enabled          bool              `json:"enabled"`
	ParameterMapping string            `json:"parameterMapping,omitempty"`
	Headers          string            `json:"headers,omitempty"`
	TimeoutSeconds   int               `json:"timeoutSeconds,omitempty"`
}

// providerConfigUpdateRequest is the partial-update payload; only present
// fields are applied.
type providerConfigUpdateRequest struct {
	Name             *string            `json:"name,omitempty"`
	LookupType       *domain.LookupType `json:"lookupType,omitempty"`
	BaseURL          *string            `json:"baseUrl,omitempty"`
	APIKey           *string            `json:"apiKey,omitempty"`
	Enabled          *bool              `json:"enabled,omitempty"`
	ParameterMapping *string            `json:"parameterMapping,omitempty"`
	Headers          *string            `json:"headers,omitempty"`
	TimeoutSeconds   *int               `json:"timeoutSeconds,omitempty"`
}

// providerIDFromPath parses the {id} path value of provider config routes.
func providerIDFromPath(r *http.Request) (domain.ProviderConfigID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.ProviderConfigID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid provider config ID")
	}

	return domain.ProviderConfigID(id), nil
}

// listProviderConfigs returns all provider configurations.
func (h *Handler) listProviderConfigs(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Lookup.ProviderConfigs(r.Context())
	if err != nil {
		WriteError(w, r, err)

		return
	}
	if res == nil {
		res = []domain.ProviderConfig{}
	}

	writeJSON(w, http.StatusOK, res)
}

// createProviderConfig stores a new provider configuration.
func (h *Handler) createProviderConfig(w http.ResponseWriter, r *http.Request) {
	var req providerConfigRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)

		return
	}

	res, err := h.deps.Lookup.CreateProviderConfig(r.Context(), domain.ProviderConfig{
		Name:             req.Name,
		LookupType:       req.LookupType,
		BaseURL:          req.BaseURL,
		APIKey:           req.APIKey,
		Enabled:          req.Enabled,
		ParameterMapping: req.ParameterMapping,
		Headers:          req.Headers,
		Timeout:          time.Duration(req.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// getProviderConfig returns a single provider configuration.
func (h *Handler) getProviderConfig(w http.ResponseWriter, r *http.Request) {
	id, err := providerIDFromPath(r)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	res, err := h.deps.Lookup.ProviderConfig(r.Context(), id)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, res)
}

// updateProviderConfig applies a partial update to a provider configuration.
func (h *Handler) updateProviderConfig(w http.ResponseWriter, r *http.Request) {
	id, err := providerIDFromPath(r)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	var req providerConfigUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)

		return
	}

	updates := storage.ProviderConfigUpdates{
		Name:             req.Name,
		LookupType:       req.LookupType,
		BaseURL:          req.BaseURL,
		APIKey:           req.APIKey,
		Enabled:          req.Enabled,
		ParameterMapping: req.ParameterMapping,
		Headers:          req.Headers,
	}
	if req.TimeoutSeconds != nil {
		d := time.Duration(*req.TimeoutSeconds) * time.Second
		updates.Timeout = &d
	}

	res, err := h.deps.Lookup.UpdateProviderConfig(r.Context(), id, updates)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, res)
}

// deleteProviderConfig soft-deletes a provider configuration.
func (h *Handler) deleteProviderConfig(w http.ResponseWriter, r *http.Request) {
	id, err := providerIDFromPath(r)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	if err := h.deps.Lookup.DeleteProviderConfig(r.Context(), id); err != nil {
		WriteError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// testProviderConfig runs a lookup with a canned input against one config.
func (h *Handler) testProviderConfig(w http.ResponseWriter, r *http.Request) {
	id, err := providerIDFromPath(r)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	res, err := h.deps.Lookup.TestConfig(r.Context(), id)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, res)
}
