package leavehandler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Validation rejects before any store access, so a nil store suffices here.
func newValidationRouter() chi.Router {
	h := NewHandler(nil, nil)
	r := chi.NewRouter()
	r.Route("/employees/{employeeID}", h.RegisterEmployeeRoutes)
	return r
}

func postJSON(t *testing.T, r chi.Router, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateVacationRejectsReversedRange(t *testing.T) {
	rec := postJSON(t, newValidationRouter(), "/employees/emp-1/vacations", `{
		"startDate": "2025-07-10",
		"endDate": "2025-07-01",
		"status": "approved"
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateVacationRejectsUnknownStatus(t *testing.T) {
	rec := postJSON(t, newValidationRouter(), "/employees/emp-1/vacations", `{
		"startDate": "2025-07-01",
		"endDate": "2025-07-10",
		"status": "maybe"
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateVacationRejectsNegativeDaysTaken(t *testing.T) {
	rec := postJSON(t, newValidationRouter(), "/employees/emp-1/vacations", `{
		"startDate": "2025-07-01",
		"endDate": "2025-07-10",
		"daysTaken": -3,
		"status": "approved"
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateLeaveRejectsUnknownType(t *testing.T) {
	rec := postJSON(t, newValidationRouter(), "/employees/emp-1/leaves", `{
		"leaveType": "sabbatical",
		"startDate": "2025-07-01",
		"endDate": "2025-07-10"
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateAbsenceRequiresStatus(t *testing.T) {
	rec := postJSON(t, newValidationRouter(), "/employees/emp-1/absences", `{
		"absenceDate": "2025-07-01",
		"reason": "doctor"
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
