package audithandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"rhcore/internal/domain/audit"
	"rhcore/internal/domain/auth"
	"rhcore/internal/transport/http/api"
	"rhcore/internal/transport/http/middleware"
	"rhcore/internal/transport/http/shared"
)

type Handler struct {
	Service     *audit.Service
	Permissions middleware.PermissionSource
}

func NewHandler(service *audit.Service, permissions middleware.PermissionSource) *Handler {
	return &Handler{Service: service, Permissions: permissions}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermViewReports, h.Permissions)).
		Get("/action-logs", h.handleListActionLogs)
}

func (h *Handler) handleListActionLogs(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 200)
	logs, err := h.Service.List(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "action_log_list_failed", "failed to list action logs", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, logs, middleware.GetRequestID(r.Context()))
}
