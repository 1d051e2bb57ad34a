package payrollhandler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"rhcore/internal/domain/audit"
	"rhcore/internal/domain/auth"
	"rhcore/internal/domain/core"
	"rhcore/internal/domain/payroll"
	"rhcore/internal/transport/http/middleware"
)

type fakePayrollStore struct {
	current  *payroll.Salary
	closed   []string
	inserted []payroll.Salary
}

func (f *fakePayrollStore) CurrentSalary(ctx context.Context, employeeID string) (*payroll.Salary, error) {
	return f.current, nil
}

func (f *fakePayrollStore) CloseSalary(ctx context.Context, salaryID string, endDate time.Time) error {
	f.closed = append(f.closed, salaryID)
	return nil
}

func (f *fakePayrollStore) InsertSalary(ctx context.Context, salary payroll.Salary) (string, error) {
	f.inserted = append(f.inserted, salary)
	return "sal-new", nil
}

func (f *fakePayrollStore) ListSalaries(ctx context.Context, employeeID string) ([]payroll.Salary, error) {
	return f.inserted, nil
}

func (f *fakePayrollStore) InsertDiscount(ctx context.Context, discount payroll.SalaryDiscount) (string, error) {
	return "disc-1", nil
}

func (f *fakePayrollStore) ListDiscounts(ctx context.Context, employeeID string) ([]payroll.SalaryDiscount, error) {
	return nil, nil
}

func (f *fakePayrollStore) InsertAdvance(ctx context.Context, advance payroll.Advance) (string, error) {
	return "adv-1", nil
}

func (f *fakePayrollStore) ListAdvances(ctx context.Context, employeeID string) ([]payroll.Advance, error) {
	return nil, nil
}

type fakeAuditStore struct {
	entries []string
}

func (f *fakeAuditStore) Insert(ctx context.Context, userID, employeeID, actionText string) error {
	f.entries = append(f.entries, actionText)
	return nil
}

func (f *fakeAuditStore) List(ctx context.Context, limit, offset int) ([]audit.ActionLog, error) {
	return nil, nil
}

type fakeEmployeeLookup struct{}

func (fakeEmployeeLookup) GetEmployee(ctx context.Context, employeeID string) (*core.Employee, error) {
	return &core.Employee{ID: employeeID, CPF: "11122233344"}, nil
}

func (fakeEmployeeLookup) GetUser(ctx context.Context, userID string) (*core.User, error) {
	return &core.User{ID: userID, Username: "ana", FullName: "Ana Souza"}, nil
}

func newSalaryRouter(store *fakePayrollStore, auditStore *fakeAuditStore) chi.Router {
	h := NewHandler(payroll.NewService(store), fakeEmployeeLookup{}, audit.New(auditStore))
	r := chi.NewRouter()
	r.Route("/employees/{employeeID}", h.RegisterEmployeeRoutes)
	return r
}

func postSalary(t *testing.T, r chi.Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/employees/emp-1/salaries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateSalaryLogsAction(t *testing.T) {
	store := &fakePayrollStore{}
	auditStore := &fakeAuditStore{}
	h := NewHandler(payroll.NewService(store), fakeEmployeeLookup{}, audit.New(auditStore))

	r := chi.NewRouter()
	r.Use(middleware.Auth("test-secret"))
	r.Route("/employees/{employeeID}", h.RegisterEmployeeRoutes)

	token, err := auth.GenerateToken("test-secret", auth.Claims{UserID: "u1", Username: "ana"}, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/employees/emp-1/salaries", strings.NewReader(`{
		"startDate": "2025-06-01",
		"grossSalary": 9000,
		"netSalary": 7200,
		"inssDiscount": 900,
		"irrfDiscount": 900
	}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(store.inserted) != 1 {
		t.Fatalf("expected one salary insert, got %d", len(store.inserted))
	}
	if len(auditStore.entries) != 1 || auditStore.entries[0] != "Created salary - [Salary]" {
		t.Fatalf("unexpected audit entries: %v", auditStore.entries)
	}
}

func TestCreateSalaryOverlapReturnsConflict(t *testing.T) {
	current := payroll.Salary{ID: "sal-old", EmployeeID: "emp-1", StartDate: mustDate(t, "2025-06-01")}
	store := &fakePayrollStore{current: &current}
	auditStore := &fakeAuditStore{}

	rec := postSalary(t, newSalaryRouter(store, auditStore), `{
		"startDate": "2025-06-01",
		"grossSalary": 9000,
		"netSalary": 7200
	}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(store.inserted) != 0 {
		t.Fatal("expected no salary insert on overlap")
	}
	if len(auditStore.entries) != 0 {
		t.Fatal("expected no audit entry when the write is rejected")
	}
}

func TestCreateSalaryRejectsInvalidAmounts(t *testing.T) {
	rec := postSalary(t, newSalaryRouter(&fakePayrollStore{}, &fakeAuditStore{}), `{
		"startDate": "2025-06-01",
		"grossSalary": 0,
		"netSalary": -1
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSalaryStatementDownload(t *testing.T) {
	current := payroll.Salary{
		ID:          "sal-1",
		EmployeeID:  "emp-1",
		StartDate:   mustDate(t, "2025-01-01"),
		GrossSalary: 9000,
		NetSalary:   7200,
	}
	store := &fakePayrollStore{current: &current}
	r := newSalaryRouter(store, &fakeAuditStore{})

	req := httptest.NewRequest(http.MethodGet, "/employees/emp-1/salary-statement", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected pdf content type, got %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Fatal("expected body to be a PDF document")
	}
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return parsed
}
