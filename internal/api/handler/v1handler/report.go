package v1handler

import (
	"net/http"
	"strconv"

	"scamwatch/pkg/domain"
	"scamwatch/pkg/serrors"

	"github.com/google/uuid"
)

// createReportRequest is the payload for submitting a new scam report.
type createReportRequest struct {
	ScamType      domain.ScamType `json:"scamType"`
	PhoneNumber   string          `json:"phoneNumber,omitempty"`
	EmailAddress  string          `json:"emailAddress,omitempty"`
	BusinessName  string          `json:"businessName,omitempty"`
	Description   string          `json:"description"`
	City          string          `json:"city,omitempty"`
	Region        string          `json:"region,omitempty"`
	Country       string          `json:"country,omitempty"`
	ProofDocument string          `json:"proofDocument,omitempty"`
}

// reportList is a page of reports with an optional cursor for the next page.
type reportList struct {
	Items      []domain.ScamReport `json:"items"`
	NextCursor string              `json:"nextCursor,omitempty"`
}

// reportIDFromPath parses the {id} path value of report routes.
func reportIDFromPath(r *http.Request) (domain.ReportID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.ReportID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid report ID")
	}

	return domain.ReportID(id), nil
}

// createReport submits a new scam report for the authenticated user.
func (h *Handler) createReport(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)

		return
	}

	res, err := h.deps.Report.Submit(r.Context(), domain.ScamReport{
		UserID:        GetUserIDFromContext(r.Context()),
		Type:          req.ScamType,
		PhoneNumber:   req.PhoneNumber,
		EmailAddress:  req.EmailAddress,
		BusinessName:  req.BusinessName,
		Description:   req.Description,
		City:          req.City,
		Region:        req.Region,
		Country:       req.Country,
		ProofDocument: req.ProofDocument,
	})
	if err != nil {
		WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// listReports returns a page of the authenticated user's reports.
func (h *Handler) listReports(w http.ResponseWriter, r *http.Request) {
	limit := uint(DefaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || n == 0 {
			WriteError(w, r, serrors.With(serrors.ErrBadRequest, "invalid limit"))

			return
		}
		limit = uint(n)
	}

	reports, next, err := h.deps.Report.UserReports(r.Context(),
		GetUserIDFromContext(r.Context()),
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		WriteError(w, r, err)

		return
	}
	if reports == nil {
		reports = []domain.ScamReport{}
	}

	writeJSON(w, http.StatusOK, reportList{Items: reports, NextCursor: next})
}

// getReport returns one of the authenticated user's reports by ID.
func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	id, err := reportIDFromPath(r)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	res, err := h.deps.Report.Report(r.Context(), GetUserIDFromContext(r.Context()), id)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, res)
}

// verifyReport sets the verification flag on a report.
func (h *Handler) verifyReport(w http.ResponseWriter, r *http.Request) {
	id, err := reportIDFromPath(r)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	var req struct {
		Verified bool `json:"verified"`
	}
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)

		return
	}

	res, err := h.deps.Report.Verify(r.Context(),
		GetUserIDFromContext(r.Context()), id, req.Verified)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, res)
}

// publishReport sets the publication flag on a report.
func (h *Handler) publishReport(w http.ResponseWriter, r *http.Request) {
	id, err := reportIDFromPath(r)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	var req struct {
		Published bool `json:"published"`
	}
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)

		return
	}

	res, err := h.deps.Report.Publish(r.Context(),
		GetUserIDFromContext(r.Context()), id, req.Published)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, res)
}

// searchScams returns consolidated aggregates matching the query.
func (h *Handler) searchScams(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Report.SearchScams(r.Context(),
		domain.ScamType(r.URL.Query().Get("scamType")),
		r.URL.Query().Get("q"))
	if err != nil {
		WriteError(w, r, err)

		return
	}
	if res == nil {
		res = []domain.ConsolidatedScam{}
	}

	writeJSON(w, http.StatusOK, res)
}
