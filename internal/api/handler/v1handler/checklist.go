package v1handler

import (
	"net/http"

	"scamwatch/pkg/domain"
)

// listChecklist returns the shared checklist items. The list is public; no
// authentication required.
func (h *Handler) listChecklist(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Checklist.Items(r.Context())
	if err != nil {
		WriteError(w, r, err)

		return
	}
	if res == nil {
		res = []domain.ChecklistItem{}
	}

	writeJSON(w, http.StatusOK, res)
}

// userChecklist returns the checklist merged with the authenticated user's
// completion state.
func (h *Handler) userChecklist(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Checklist.UserChecklist(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		WriteError(w, r, err)

		return
	}
	if res == nil {
		res = []domain.ChecklistEntry{}
	}

	writeJSON(w, http.StatusOK, res)
}

// setChecklistCompletion marks an item completed or not for the user.
func (h *Handler) setChecklistCompletion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Completed bool `json:"completed"`
	}
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)

		return
	}

	res, err := h.deps.Checklist.SetCompletion(r.Context(),
		GetUserIDFromContext(r.Context()),
		r.PathValue("slug"),
		req.Completed)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, res)
}
