// Package v1handler implements the HTTP handlers for version 1 of the API.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"scamwatch/internal/checklist"
	"scamwatch/internal/lookup"
	"scamwatch/internal/report"
	"scamwatch/pkg/logger"
	"scamwatch/pkg/serrors"

	"go.uber.org/zap"
)

// DefaultLimit is the page size used when the client does not specify one.
const DefaultLimit = 20

// maxBodyBytes bounds request bodies to keep malformed clients from holding
// connections open.
const maxBodyBytes = 1 << 20

// Deps carries the services the handlers delegate to.
type Deps struct {
	Report    report.Service
	Lookup    lookup.Service
	Checklist checklist.Service
}

// Handler serves the v1 API endpoints.
type Handler struct {
	deps Deps
}

// New constructs a Handler with the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register attaches all v1 routes to the mux. User endpoints require a valid
// bearer token; admin endpoints additionally require the admin claim.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	user := func(fn http.HandlerFunc) http.Handler { return sec.RequireUser(fn) }
	admin := func(fn http.HandlerFunc) http.Handler { return sec.RequireAdmin(fn) }

	mux.Handle("POST /v1/reports", user(h.createReport))
	mux.Handle("GET /v1/reports", user(h.listReports))
	mux.Handle("GET /v1/reports/{id}", user(h.getReport))
	mux.Handle("PUT /v1/reports/{id}/verify", admin(h.verifyReport))
	mux.Handle("PUT /v1/reports/{id}/publish", admin(h.publishReport))

	mux.HandleFunc("GET /v1/scams", h.searchScams)
	mux.Handle("POST /v1/lookups", user(h.lookup))

	mux.HandleFunc("GET /v1/checklist", h.listChecklist)
	mux.Handle("GET /v1/checklist/me", user(h.userChecklist))
	mux.Handle("PUT /v1/checklist/{slug}", user(h.setChecklistCompletion))

	mux.Handle("GET /v1/admin/providers", admin(h.listProviderConfigs))
	mux.Handle("POST /v1/admin/providers", admin(h.createProviderConfig))
	mux.Handle("GET /v1/admin/providers/{id}", admin(h.getProviderConfig))
	mux.Handle("PATCH /v1/admin/providers/{id}", admin(h.updateProviderConfig))
	mux.Handle("DELETE /v1/admin/providers/{id}", admin(h.deleteProviderConfig))
	mux.Handle("POST /v1/admin/providers/{id}/test", admin(h.testProviderConfig))
}

// errorResponse is the JSON error envelope returned for every failed request.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusForError maps semantic error kinds to HTTP status codes. Unrecognized
// errors are treated as internal.
func statusForError(err error) int {
	switch {
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, serrors.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, serrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes the JSON error envelope for err. Internal errors are
// logged with their cause but surfaced to the client as a generic message.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)

	code := serrors.ErrInternal.Error()
	message := "internal error"
	var se *serrors.Error
	if errors.As(err, &se) && se.Kind() != nil {
		code = se.Kind().Error()
		if status != http.StatusInternalServerError {
			if m := se.Message(); m != "" {
				message = m
			} else {
				message = se.Kind().Error()
			}
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
	} else {
		logger.Debug(r.Context(), "request rejected", zap.Error(err))
	}

	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into dst, rejecting unknown fields and
// oversized bodies as bad requests.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
