package v1handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"scamwatch/internal/api/handler/v1handler"
	mockreport "scamwatch/internal/report/mock"
	"scamwatch/pkg/domain"
	"scamwatch/pkg/serrors"
)

func newReportHandler(t *testing.T) (*mockreport.MockService, *v1handler.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mockreport.NewMockService(ctrl)

	return m, v1handler.New(v1handler.Deps{Report: m})
}

func authedRequest(method, target, body string, userID domain.UserID) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}

	ctx := context.WithValue(r.Context(), v1handler.UserIDKey, userID)

	return r.WithContext(ctx)
}

// serve routes the request through a mux with the handler's route patterns so
// path values are populated. The sec middleware is bypassed; identity comes
// from the request context.
func serve(h *v1handler.Handler, r *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/reports", v1handler.CreateReportHandler(h))
	mux.HandleFunc("GET /v1/reports", v1handler.ListReportsHandler(h))
	mux.HandleFunc("GET /v1/reports/{id}", v1handler.GetReportHandler(h))
	mux.HandleFunc("PUT /v1/reports/{id}/verify", v1handler.VerifyReportHandler(h))
	mux.HandleFunc("PUT /v1/reports/{id}/publish", v1handler.PublishReportHandler(h))
	mux.HandleFunc("GET /v1/scams", v1handler.SearchScamsHandler(h))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, r)

	return rec
}

func TestHandler_CreateReport(t *testing.T) {
	m, h := newReportHandler(t)

	userID := domain.UserID(uuid.New())
	stored := domain.ScamReport{
		ID:          domain.ReportID(uuid.New()),
		UserID:      userID,
		Type:        domain.ScamTypePhone,
		PhoneNumber: "+15551234567",
		Description: "robocall",
		ReportedAt:  time.Now().UTC(),
	}
	m.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r domain.ScamReport) (*domain.ScamReport, error) {
			require.Equal(t, userID, r.UserID)
			require.Equal(t, domain.ScamTypePhone, r.Type)
			require.Equal(t, "+15551234567", r.PhoneNumber)

			return &stored, nil
		},
	)

	body := `{"scamType":"phone","phoneNumber":"+15551234567","description":"robocall"}`
	rec := serve(h, authedRequest(http.MethodPost, "/v1/reports", body, userID))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"phoneNumber":"+15551234567"`)
}

func TestHandler_CreateReport_BadBody(t *testing.T) {
	_, h := newReportHandler(t)

	rec := serve(h, authedRequest(http.MethodPost, "/v1/reports", `{"scamType":`, domain.UserID{}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ListReports_DefaultLimit(t *testing.T) {
	m, h := newReportHandler(t)
	userID := domain.UserID(uuid.New())

	m.EXPECT().UserReports(gomock.Any(), userID, "", uint(v1handler.DefaultLimit)).
		Return([]domain.ScamReport{{Description: "a"}}, "next123", nil)

	rec := serve(h, authedRequest(http.MethodGet, "/v1/reports", "", userID))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"nextCursor":"next123"`)
}

func TestHandler_ListReports_CustomLimitAndCursor(t *testing.T) {
	m, h := newReportHandler(t)
	userID := domain.UserID(uuid.New())

	m.EXPECT().UserReports(gomock.Any(), userID, "c0", uint(5)).
		Return(nil, "", nil)

	rec := serve(h, authedRequest(http.MethodGet, "/v1/reports?limit=5&cursor=c0", "", userID))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"items":[]`)
}

func TestHandler_ListReports_InvalidLimit(t *testing.T) {
	_, h := newReportHandler(t)

	rec := serve(h, authedRequest(http.MethodGet, "/v1/reports?limit=zero", "", domain.UserID{}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetReport(t *testing.T) {
	m, h := newReportHandler(t)
	userID := domain.UserID(uuid.New())
	id := uuid.New()

	m.EXPECT().Report(gomock.Any(), userID, domain.ReportID(id)).
		Return(&domain.ScamReport{Description: "x"}, nil)

	rec := serve(h, authedRequest(http.MethodGet, "/v1/reports/"+id.String(), "", userID))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_GetReport_NotFound(t *testing.T) {
	m, h := newReportHandler(t)
	id := uuid.New()

	m.EXPECT().Report(gomock.Any(), gomock.Any(), domain.ReportID(id)).
		Return(nil, serrors.With(serrors.ErrNotFound, "report not found"))

	rec := serve(h, authedRequest(http.MethodGet, "/v1/reports/"+id.String(), "", domain.UserID{}))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_GetReport_InvalidID(t *testing.T) {
	_, h := newReportHandler(t)

	rec := serve(h, authedRequest(http.MethodGet, "/v1/reports/not-a-uuid", "", domain.UserID{}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_VerifyReport(t *testing.T) {
	m, h := newReportHandler(t)
	adminID := domain.UserID(uuid.New())
	id := uuid.New()

	m.EXPECT().Verify(gomock.Any(), adminID, domain.ReportID(id), true).
		Return(&domain.ScamReport{Verified: true}, nil)

	rec := serve(h, authedRequest(http.MethodPut,
		"/v1/reports/"+id.String()+"/verify", `{"verified":true}`, adminID))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"verified":true`)
}

func TestHandler_PublishReport(t *testing.T) {
	m, h := newReportHandler(t)
	adminID := domain.UserID(uuid.New())
	id := uuid.New()

	m.EXPECT().Publish(gomock.Any(), adminID, domain.ReportID(id), false).
		Return(&domain.ScamReport{Published: false}, nil)

	rec := serve(h, authedRequest(http.MethodPut,
		"/v1/reports/"+id.String()+"/publish", `{"published":false}`, adminID))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_SearchScams(t *testing.T) {
	m, h := newReportHandler(t)

	m.EXPECT().SearchScams(gomock.Any(), domain.ScamTypeEmail, "phish").
		Return([]domain.ConsolidatedScam{{Identifier: "phish@example.com", ReportCount: 3}}, nil)

	rec := serve(h, authedRequest(http.MethodGet, "/v1/scams?scamType=email&q=phish", "", domain.UserID{}))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"reportCount":3`)
}
