package v1handler

import "net/http"

// Exported wrappers so external tests can route requests through the
// unexported handlers without the security middleware.

func CreateReportHandler(h *Handler) http.HandlerFunc { return h.createReport }

func ListReportsHandler(h *Handler) http.HandlerFunc { return h.listReports }

func GetReportHandler(h *Handler) http.HandlerFunc { return h.getReport }

func VerifyReportHandler(h *Handler) http.HandlerFunc { return h.verifyReport }

func PublishReportHandler(h *Handler) http.HandlerFunc { return h.publishReport }

func SearchScamsHandler(h *Handler) http.HandlerFunc { return h.searchScams }

func LookupHandler(h *Handler) http.HandlerFunc { return h.lookup }

func ListChecklistHandler(h *Handler) http.HandlerFunc { return h.listChecklist }

func UserChecklistHandler(h *Handler) http.HandlerFunc { return h.userChecklist }

func SetChecklistCompletionHandler(h *Handler) http.HandlerFunc { return h.setChecklistCompletion }

func ListProviderConfigsHandler(h *Handler) http.HandlerFunc { return h.listProviderConfigs }

func CreateProviderConfigHandler(h *Handler) http.HandlerFunc { return h.createProviderConfig }

func GetProviderConfigHandler(h *Handler) http.HandlerFunc { return h.getProviderConfig }

func UpdateProviderConfigHandler(h *Handler) http.HandlerFunc { return h.updateProviderConfig }

func DeleteProviderConfigHandler(h *Handler) http.HandlerFunc { return h.deleteProviderConfig }

func ProviderConfigTestHandler(h *Handler) http.HandlerFunc { return h.testProviderConfig }
