package leavehandler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"rhcore/internal/domain/audit"
	"rhcore/internal/domain/leave"
	"rhcore/internal/transport/http/api"
	"rhcore/internal/transport/http/middleware"
	"rhcore/internal/transport/http/shared"
)

type Handler struct {
	Store *leave.Store
	Audit *audit.Service
}

func NewHandler(store *leave.Store, auditSvc *audit.Service) *Handler {
	return &Handler{Store: store, Audit: auditSvc}
}

// RegisterEmployeeRoutes mounts under /employees/{employeeID}.
func (h *Handler) RegisterEmployeeRoutes(r chi.Router) {
	r.Route("/vacations", func(r chi.Router) {
		r.Get("/", h.handleListVacations)
		r.Post("/", h.handleCreateVacation)
	})
	r.Route("/leaves", func(r chi.Router) {
		r.Get("/", h.handleListLeaves)
		r.Post("/", h.handleCreateLeave)
	})
	r.Route("/absences", func(r chi.Router) {
		r.Get("/", h.handleListAbsences)
		r.Post("/", h.handleCreateAbsence)
	})
}

type vacationRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	DaysTaken int    `json:"daysTaken"`
	Status    string `json:"status"`
}

func (h *Handler) handleCreateVacation(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req vacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	startDate, _ := v.Date("startDate", req.StartDate)
	endDate, _ := v.Date("endDate", req.EndDate)
	v.DateOrder("startDate", startDate, "endDate", endDate)
	v.Enum("status", req.Status, leave.RequestStatuses, "status must be one of approved, pending")
	if req.DaysTaken < 0 {
		v.Add("daysTaken", "must not be negative")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	days := req.DaysTaken
	if days == 0 {
		computed, err := leave.CalculateDays(startDate, endDate)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_range", err.Error(), middleware.GetRequestID(r.Context()))
			return
		}
		days = computed
	}

	status := req.Status
	if status == "" {
		status = leave.StatusPending
	}

	vac := leave.Vacation{
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		DaysTaken:  days,
		Status:     status,
	}

	user, _ := middleware.GetUser(r.Context())
	err := h.Audit.PersistWithLog(r.Context(), vac, user.UserID, "Created vacation", func(ctx context.Context) error {
		id, err := h.Store.InsertVacation(ctx, vac)
		if err != nil {
			return err
		}
		vac.ID = id
		return nil
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "vacation_create_failed", "failed to create vacation", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": vac.ID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListVacations(w http.ResponseWriter, r *http.Request) {
	vacations, err := h.Store.ListVacations(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "vacation_list_failed", "failed to list vacations", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, vacations, middleware.GetRequestID(r.Context()))
}

type leaveRequest struct {
	LeaveType string `json:"leaveType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}

func (h *Handler) handleCreateLeave(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req leaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("leaveType", req.LeaveType, "leaveType is required")
	v.Enum("leaveType", req.LeaveType, leave.LeaveTypes, "leaveType must be one of sick, personal")
	startDate, _ := v.Date("startDate", req.StartDate)
	endDate, _ := v.Date("endDate", req.EndDate)
	v.DateOrder("startDate", startDate, "endDate", endDate)
	v.Enum("status", req.Status, leave.RequestStatuses, "status must be one of approved, pending")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	status := req.Status
	if status == "" {
		status = leave.StatusPending
	}

	lv := leave.Leave{
		EmployeeID: employeeID,
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     status,
	}

	user, _ := middleware.GetUser(r.Context())
	err := h.Audit.PersistWithLog(r.Context(), lv, user.UserID, "Created leave", func(ctx context.Context) error {
		id, err := h.Store.InsertLeave(ctx, lv)
		if err != nil {
			return err
		}
		lv.ID = id
		return nil
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_create_failed", "failed to create leave", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": lv.ID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListLeaves(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.Store.ListLeaves(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_list_failed", "failed to list leaves", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, leaves, middleware.GetRequestID(r.Context()))
}

type absenceRequest struct {
	AbsenceDate string `json:"absenceDate"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
}

func (h *Handler) handleCreateAbsence(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req absenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	absenceDate, _ := v.Date("absenceDate", req.AbsenceDate)
	v.Required("status", req.Status, "status is required")
	v.Enum("status", req.Status, leave.AbsenceStatuses, "status must be one of excused, unexcused")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	abs := leave.Absence{
		EmployeeID:  employeeID,
		AbsenceDate: absenceDate,
		Reason:      strings.TrimSpace(req.Reason),
		Status:      req.Status,
	}

	user, _ := middleware.GetUser(r.Context())
	err := h.Audit.PersistWithLog(r.Context(), abs, user.UserID, "Registered absence", func(ctx context.Context) error {
		id, err := h.Store.InsertAbsence(ctx, abs)
		if err != nil {
			return err
		}
		abs.ID = id
		return nil
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "absence_create_failed", "failed to register absence", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": abs.ID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListAbsences(w http.ResponseWriter, r *http.Request) {
	absences, err := h.Store.ListAbsences(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "absence_list_failed", "failed to list absences", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, absences, middleware.GetRequestID(r.Context()))
}
