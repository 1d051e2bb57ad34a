package corehandler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"rhcore/internal/domain/audit"
	"rhcore/internal/domain/auth"
	"rhcore/internal/domain/core"
	"rhcore/internal/transport/http/api"
	"rhcore/internal/transport/http/middleware"
	"rhcore/internal/transport/http/shared"
)

type Handler struct {
	Store *core.Store
	Audit *audit.Service
}

func NewHandler(store *core.Store, auditSvc *audit.Service) *Handler {
	return &Handler{Store: store, Audit: auditSvc}
}

// RegisterRoutes mounts the employee, role, permission and achievement
// resources. Sub-resources owned by other packages (salaries, vacations,
// documents, reviews) hook into the employee subtree via employeeSubroutes.
func (h *Handler) RegisterRoutes(r chi.Router, employeeSubroutes ...func(chi.Router)) {
	r.Get("/me", h.handleMe)

	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleListEmployees)
		r.Post("/", h.handleCreateEmployee)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", h.handleGetEmployee)
			r.Put("/", h.handleUpdateEmployee)

			r.Route("/addresses", func(r chi.Router) {
				r.Get("/", h.handleListAddresses)
				r.Post("/", h.handleAddAddress)
				r.Delete("/{addressID}", h.handleRemoveAddress)
			})
			r.Route("/payment-details", func(r chi.Router) {
				r.Get("/", h.handleGetPaymentDetails)
				r.Put("/", h.handleUpsertPaymentDetails)
			})
			r.Route("/achievements", func(r chi.Router) {
				r.Get("/", h.handleListEmployeeAchievements)
				r.Post("/", h.handleGrantAchievement)
			})
			r.Get("/history", h.handleListDataChanges)

			for _, register := range employeeSubroutes {
				register(r)
			}
		})
	})

	r.Route("/roles", func(r chi.Router) {
		r.Get("/", h.handleListRoles)
		r.With(middleware.RequirePermission(auth.PermManageUsers, h.Store)).Post("/", h.handleCreateRole)
	})
	r.Get("/permissions", h.handleListPermissions)
	r.Get("/achievements", h.handleListAchievements)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	account, err := h.Store.GetUser(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	payload := map[string]any{"user": account}
	if emp, err := h.Store.GetEmployeeByUserID(r.Context(), user.UserID); err == nil {
		payload["employee"] = emp
	}
	api.Success(w, payload, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 200)
	employees, err := h.Store.ListEmployees(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Store.GetEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

type employeeRequest struct {
	UserID          string `json:"userId"`
	BirthDate       string `json:"birthDate"`
	CPF             string `json:"cpf"`
	RG              string `json:"rg"`
	CTPS            string `json:"ctps"`
	PISPasep        string `json:"pisPasep"`
	CNH             string `json:"cnh"`
	Phone           string `json:"phone"`
	TerminationDate string `json:"terminationDate"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Gender          string `json:"gender"`
	Status          string `json:"employmentStatus"`
	ContractType    string `json:"contractType"`
	PaymentMethod   string `json:"paymentMethod"`
	RoleID          string `json:"roleId"`
}

func (h *Handler) decodeEmployee(w http.ResponseWriter, r *http.Request) (core.Employee, bool) {
	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return core.Employee{}, false
	}

	v := shared.NewValidator()
	v.Required("cpf", req.CPF, "cpf is required")
	v.Required("rg", req.RG, "rg is required")
	v.Required("phone", req.Phone, "phone is required")
	v.Required("startTime", req.StartTime, "startTime is required")
	v.Required("endTime", req.EndTime, "endTime is required")
	v.Enum("gender", req.Gender, core.Genders, "gender must be one of M, F")
	v.Enum("employmentStatus", req.Status, core.EmploymentStatuses, "employmentStatus must be one of active, on_leave, terminated")
	v.Enum("contractType", req.ContractType, core.ContractTypes, "contractType must be one of clt, pj, internship, apprentice")
	v.Enum("paymentMethod", req.PaymentMethod, core.PaymentMethods, "paymentMethod must be one of monthly, biweekly")

	birthDate, _ := v.Date("birthDate", req.BirthDate)

	var termination *time.Time
	if strings.TrimSpace(req.TerminationDate) != "" {
		parsed, ok := v.Date("terminationDate", req.TerminationDate)
		if ok {
			termination = &parsed
		}
	}

	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return core.Employee{}, false
	}

	return core.Employee{
		UserID:          req.UserID,
		BirthDate:       birthDate,
		CPF:             strings.TrimSpace(req.CPF),
		RG:              strings.TrimSpace(req.RG),
		CTPS:            strings.TrimSpace(req.CTPS),
		PISPasep:        strings.TrimSpace(req.PISPasep),
		CNH:             strings.TrimSpace(req.CNH),
		Phone:           strings.TrimSpace(req.Phone),
		TerminationDate: termination,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Gender:          req.Gender,
		Status:          req.Status,
		ContractType:    req.ContractType,
		PaymentMethod:   req.PaymentMethod,
		RoleID:          req.RoleID,
	}, true
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.decodeEmployee(w, r)
	if !ok {
		return
	}

	user, _ := middleware.GetUser(r.Context())
	err := h.Audit.PersistWithLog(r.Context(), emp, user.UserID, "Created employee", func(ctx context.Context) error {
		id, err := h.Store.CreateEmployee(ctx, emp)
		if err != nil {
			return err
		}
		emp.ID = id
		return nil
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": emp.ID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	existing, err := h.Store.GetEmployee(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}

	emp, ok := h.decodeEmployee(w, r)
	if !ok {
		return
	}
	emp.ID = employeeID

	user, _ := middleware.GetUser(r.Context())
	err = h.Audit.PersistWithLog(r.Context(), emp, user.UserID, "Updated employee", func(ctx context.Context) error {
		return h.Store.UpdateEmployee(ctx, employeeID, emp)
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_update_failed", "failed to update employee", middleware.GetRequestID(r.Context()))
		return
	}

	// Change history is best effort; the update itself already succeeded.
	for _, change := range core.DiffEmployees(employeeID, *existing, emp) {
		if _, err := h.Store.AppendDataChange(r.Context(), change); err != nil {
			slog.Warn("append data change failed", "employeeId", employeeID, "field", change.FieldName, "err", err)
		}
	}

	api.Success(w, map[string]string{"id": employeeID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.Store.ListAddressesForEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "address_list_failed", "failed to list addresses", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, addresses, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAddAddress(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var addr core.Address
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("street", addr.Street, "street is required")
	v.Required("number", addr.Number, "number is required")
	v.Required("neighborhood", addr.Neighborhood, "neighborhood is required")
	v.Required("city", addr.City, "city is required")
	v.Required("state", addr.State, "state is required")
	v.Required("country", addr.Country, "country is required")
	v.Required("postalCode", addr.PostalCode, "postalCode is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	user, _ := middleware.GetUser(r.Context())
	err := h.Audit.PersistWithLog(r.Context(), addr, user.UserID, "Added address", func(ctx context.Context) error {
		id, err := h.Store.CreateAddress(ctx, addr)
		if err != nil {
			return err
		}
		addr.ID = id
		return h.Store.AttachAddress(ctx, employeeID, id)
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "address_create_failed", "failed to add address", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": addr.ID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRemoveAddress(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	addressID := chi.URLParam(r, "addressID")

	if err := h.Store.DetachAddress(r.Context(), employeeID, addressID); err != nil {
		api.Fail(w, http.StatusInternalServerError, "address_detach_failed", "failed to remove address", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": addressID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetPaymentDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.Store.GetPaymentDetails(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "payment_details_not_found", "payment details not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, details, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpsertPaymentDetails(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var details core.PaymentDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}
	details.EmployeeID = employeeID

	if err := core.ValidatePaymentDetails(details); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payment_details", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	user, _ := middleware.GetUser(r.Context())
	err := h.Audit.PersistWithLog(r.Context(), details, user.UserID, "Updated payment details", func(ctx context.Context) error {
		id, err := h.Store.UpsertPaymentDetails(ctx, details)
		if err != nil {
			return err
		}
		details.ID = id
		return nil
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payment_details_save_failed", "failed to save payment details", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": details.ID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListEmployeeAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.Store.ListAchievementsForEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "achievement_list_failed", "failed to list achievements", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, achievements, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGrantAchievement(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req struct {
		AchievementID string `json:"achievementId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.AchievementID) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "achievementId is required", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Store.GrantAchievement(r.Context(), employeeID, req.AchievementID); err != nil {
		api.Fail(w, http.StatusInternalServerError, "achievement_grant_failed", "failed to grant achievement", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"achievementId": req.AchievementID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListDataChanges(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 200)
	changes, err := h.Store.ListDataChanges(r.Context(), chi.URLParam(r, "employeeID"), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "history_list_failed", "failed to list change history", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, changes, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.Store.ListRoles(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "role_list_failed", "failed to list roles", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, roles, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateRole(w http.ResponseWriter, r *http.Request) {
	var role core.Role
	if err := json.NewDecoder(r.Body).Decode(&role); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", role.Name, "name is required")
	v.Required("abbreviation", role.Abbreviation, "abbreviation is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	user, _ := middleware.GetUser(r.Context())
	err := h.Audit.PersistWithLog(r.Context(), role, user.UserID, "Created role", func(ctx context.Context) error {
		id, err := h.Store.CreateRole(ctx, role)
		if err != nil {
			return err
		}
		role.ID = id
		return nil
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "role_create_failed", "failed to create role", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": role.ID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListPermissions(w http.ResponseWriter, r *http.Request) {
	permissions, err := h.Store.ListPermissions(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "permission_list_failed", "failed to list permissions", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, permissions, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.Store.ListAchievements(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "achievement_list_failed", "failed to list achievements", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, achievements, middleware.GetRequestID(r.Context()))
}
