package performancehandler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"rhcore/internal/domain/audit"
	"rhcore/internal/domain/performance"
	"rhcore/internal/transport/http/api"
	"rhcore/internal/transport/http/middleware"
	"rhcore/internal/transport/http/shared"
)

type Handler struct {
	Store *performance.Store
	Audit *audit.Service
}

func NewHandler(store *performance.Store, auditSvc *audit.Service) *Handler {
	return &Handler{Store: store, Audit: auditSvc}
}

// RegisterEmployeeRoutes mounts under /employees/{employeeID}.
func (h *Handler) RegisterEmployeeRoutes(r chi.Router) {
	r.Route("/reviews", func(r chi.Router) {
		r.Get("/", h.handleListReviews)
		r.Post("/", h.handleCreateReview)
	})
}

type reviewRequest struct {
	ReviewDate string `json:"reviewDate"`
	Score      int    `json:"score"`
	Comments   string `json:"comments"`
}

func (h *Handler) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	reviewDate, _ := v.Date("reviewDate", req.ReviewDate)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	review := performance.Review{
		EmployeeID: employeeID,
		ReviewDate: reviewDate,
		Score:      req.Score,
		Comments:   strings.TrimSpace(req.Comments),
	}
	if err := review.Validate(); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_score", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	user, _ := middleware.GetUser(r.Context())
	err := h.Audit.PersistWithLog(r.Context(), review, user.UserID, "Created performance review", func(ctx context.Context) error {
		id, err := h.Store.InsertReview(ctx, review)
		if err != nil {
			return err
		}
		review.ID = id
		return nil
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "review_create_failed", "failed to create review", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": review.ID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Store.ListReviews(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "review_list_failed", "failed to list reviews", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, reviews, middleware.GetRequestID(r.Context()))
}
