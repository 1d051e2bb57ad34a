package payrollhandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"rhcore/internal/domain/audit"
	"rhcore/internal/domain/core"
	"rhcore/internal/domain/payroll"
	"rhcore/internal/transport/http/api"
	"rhcore/internal/transport/http/middleware"
	"rhcore/internal/transport/http/shared"
)

// EmployeeLookup resolves the statement header fields.
type EmployeeLookup interface {
	GetEmployee(ctx context.Context, employeeID string) (*core.Employee, error)
	GetUser(ctx context.Context, userID string) (*core.User, error)
}

type Handler struct {
	Service   *payroll.Service
	Employees EmployeeLookup
	Audit     *audit.Service
}

func NewHandler(service *payroll.Service, employees EmployeeLookup, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Employees: employees, Audit: auditSvc}
}

// RegisterEmployeeRoutes mounts under /employees/{employeeID}.
func (h *Handler) RegisterEmployeeRoutes(r chi.Router) {
	r.Route("/salaries", func(r chi.Router) {
		r.Get("/", h.handleListSalaries)
		r.Post("/", h.handleCreateSalary)
	})
	r.Route("/salary-discounts", func(r chi.Router) {
		r.Get("/", h.handleListDiscounts)
		r.Post("/", h.handleCreateDiscount)
	})
	r.Route("/advances", func(r chi.Router) {
		r.Get("/", h.handleListAdvances)
		r.Post("/", h.handleCreateAdvance)
	})
	r.Get("/salary-statement", h.handleSalaryStatement)
}

type salaryRequest struct {
	StartDate        string   `json:"startDate"`
	GrossSalary      float64  `json:"grossSalary"`
	NetSalary        float64  `json:"netSalary"`
	Benefits         *float64 `json:"benefits"`
	Bonus            *float64 `json:"bonus"`
	INSSDiscount     float64  `json:"inssDiscount"`
	IRRFDiscount     float64  `json:"irrfDiscount"`
	TransportVoucher *float64 `json:"transportVoucher"`
}

func (h *Handler) handleCreateSalary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req salaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	startDate, _ := v.Date("startDate", req.StartDate)
	if req.GrossSalary <= 0 {
		v.Add("grossSalary", "must be greater than zero")
	}
	if req.NetSalary <= 0 {
		v.Add("netSalary", "must be greater than zero")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	salary := payroll.Salary{
		EmployeeID:       employeeID,
		StartDate:        startDate,
		GrossSalary:      req.GrossSalary,
		NetSalary:        req.NetSalary,
		Benefits:         req.Benefits,
		Bonus:            req.Bonus,
		INSSDiscount:     req.INSSDiscount,
		IRRFDiscount:     req.IRRFDiscount,
		TransportVoucher: req.TransportVoucher,
	}

	user, _ := middleware.GetUser(r.Context())
	err := h.Audit.PersistWithLog(r.Context(), salary, user.UserID, "Created salary", func(ctx context.Context) error {
		id, err := h.Service.CreateSalary(ctx, salary)
		if err != nil {
			return err
		}
		salary.ID = id
		return nil
	})
	if err != nil {
		if errors.Is(err, payroll.ErrSalaryOverlap) {
			api.Fail(w, http.StatusConflict, "salary_overlap", err.Error(), middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "salary_create_failed", "failed to create salary", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": salary.ID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListSalaries(w http.ResponseWriter, r *http.Request) {
	salaries, err := h.Service.ListSalaries(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "salary_list_failed", "failed to list salaries", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, salaries, middleware.GetRequestID(r.Context()))
}

type discountRequest struct {
	DiscountType string  `json:"discountType"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
	Observation  string  `json:"observation"`
}

func (h *Handler) handleCreateDiscount(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req discountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("discountType", req.DiscountType, "discountType is required")
	date, _ := v.Date("date", req.Date)
	if req.Amount <= 0 {
		v.Add("amount", "must be greater than zero")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	discount := payroll.SalaryDiscount{
		EmployeeID:   employeeID,
		DiscountType: strings.TrimSpace(req.DiscountType),
		Amount:       req.Amount,
		Date:         date,
		Observation:  strings.TrimSpace(req.Observation),
	}

	user, _ := middleware.GetUser(r.Context())
	err := h.Audit.PersistWithLog(r.Context(), discount, user.UserID, "Created salary discount", func(ctx context.Context) error {
		id, err := h.Service.CreateDiscount(ctx, discount)
		if err != nil {
			return err
		}
		discount.ID = id
		return nil
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "discount_create_failed", "failed to create discount", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": discount.ID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListDiscounts(w http.ResponseWriter, r *http.Request) {
	discounts, err := h.Service.ListDiscounts(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "discount_list_failed", "failed to list discounts", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, discounts, middleware.GetRequestID(r.Context()))
}

type advanceRequest struct {
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

func (h *Handler) handleCreateAdvance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req advanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	date, _ := v.Date("date", req.Date)
	if req.Amount <= 0 {
		v.Add("amount", "must be greater than zero")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	advance := payroll.Advance{
		EmployeeID:  employeeID,
		Amount:      req.Amount,
		Date:        date,
		Description: strings.TrimSpace(req.Description),
	}

	user, _ := middleware.GetUser(r.Context())
	err := h.Audit.PersistWithLog(r.Context(), advance, user.UserID, "Created advance", func(ctx context.Context) error {
		id, err := h.Service.CreateAdvance(ctx, advance)
		if err != nil {
			return err
		}
		advance.ID = id
		return nil
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "advance_create_failed", "failed to create advance", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": advance.ID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListAdvances(w http.ResponseWriter, r *http.Request) {
	advances, err := h.Service.ListAdvances(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "advance_list_failed", "failed to list advances", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, advances, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSalaryStatement(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	emp, err := h.Employees.GetEmployee(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}

	name := emp.CPF
	if emp.UserID != "" {
		if account, err := h.Employees.GetUser(r.Context(), emp.UserID); err == nil {
			if account.FullName != "" {
				name = account.FullName
			} else {
				name = account.Username
			}
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="salary-statement.pdf"`)
	err = h.Service.WriteStatementPDF(r.Context(), w, employeeID, payroll.StatementData{
		EmployeeName: name,
		CPF:          emp.CPF,
	})
	if err != nil {
		if errors.Is(err, payroll.ErrNoCurrentSalary) {
			w.Header().Del("Content-Disposition")
			api.Fail(w, http.StatusNotFound, "no_current_salary", err.Error(), middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "statement_failed", "failed to render statement", middleware.GetRequestID(r.Context()))
		return
	}
}
