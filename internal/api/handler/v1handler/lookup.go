package v1handler

import (
	"net/http"

	"scamwatch/pkg/domain"
)

// lookupRequest is the payload for an on-demand provider lookup.
type lookupRequest struct {
	LookupType domain.LookupType `json:"lookupType"`
	Value      string            `json:"value"`
}

// lookupResponse carries the per-provider results of one lookup.
type lookupResponse struct {
	Results []domain.ScamLookupResult `json:"results"`
}

// lookup checks a value against every enabled provider for its type.
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)

		return
	}

	results, err := h.deps.Lookup.Lookup(r.Context(), req.LookupType, req.Value)
	if err != nil {
		WriteError(w, r, err)

		return
	}
	if results == nil {
		results = []domain.ScamLookupResult{}
	}

	writeJSON(w, http.StatusOK, lookupResponse{Results: results})
}
