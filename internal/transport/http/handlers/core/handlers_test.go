package corehandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Validation failures must reject before any store access, so a nil store is
// enough to exercise the 400 paths.
func newValidationRouter() chi.Router {
	h := NewHandler(nil, nil)
	r := chi.NewRouter()
	r.Post("/employees", h.handleCreateEmployee)
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

func decodeIssueFields(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var envelope struct {
		Success bool `json:"success"`
		Error   *struct {
			Code    string `json:"code"`
			Details struct {
				Fields []struct {
					Field string `json:"field"`
				} `json:"fields"`
			} `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Success || envelope.Error == nil {
		t.Fatal("expected error envelope")
	}
	var fields []string
	for _, issue := range envelope.Error.Details.Fields {
		fields = append(fields, issue.Field)
	}
	return fields
}

func TestCreateEmployeeRejectsMalformedBody(t *testing.T) {
	rec := postJSON(t, newValidationRouter(), "/employees", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateEmployeeRejectsMissingAndInvalidFields(t *testing.T) {
	rec := postJSON(t, newValidationRouter(), "/employees", `{
		"birthDate": "1990-03-15",
		"rg": "12345",
		"phone": "11999990000",
		"startTime": "08:00",
		"endTime": "17:00",
		"gender": "X",
		"employmentStatus": "retired",
		"contractType": "clt",
		"paymentMethod": "monthly"
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	fields := decodeIssueFields(t, rec)
	want := map[string]bool{"cpf": false, "gender": false, "employmentStatus": false}
	for _, field := range fields {
		if _, ok := want[field]; ok {
			want[field] = true
		}
	}
	for field, seen := range want {
		if !seen {
			t.Fatalf("expected validation issue for %q, got %v", field, fields)
		}
	}
}

func TestCreateEmployeeRejectsBadDates(t *testing.T) {
	rec := postJSON(t, newValidationRouter(), "/employees", `{
		"birthDate": "not-a-date",
		"cpf": "11122233344",
		"rg": "12345",
		"phone": "11999990000",
		"startTime": "08:00",
		"endTime": "17:00",
		"gender": "F",
		"employmentStatus": "active",
		"contractType": "clt",
		"paymentMethod": "monthly",
		"terminationDate": "31/12/2020"
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	fields := decodeIssueFields(t, rec)
	for _, want := range []string{"birthDate", "terminationDate"} {
		found := false
		for _, field := range fields {
			if field == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected validation issue for %q, got %v", want, fields)
		}
	}
}
