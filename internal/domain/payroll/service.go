package payroll

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

var (
	ErrSalaryOverlap   = errors.New("new salary must start after the current salary")
	ErrNoCurrentSalary = errors.New("employee has no current salary")
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateSalary inserts a new pay record. When the record is open-ended it
// becomes the employee's current salary: any previous open record is closed
// out the day before the new one starts, so only one open record remains.
func (s *Service) CreateSalary(ctx context.Context, salary Salary) (string, error) {
	if salary.EndDate != nil && salary.EndDate.Before(salary.StartDate) {
		return "", errors.New("end date before start date")
	}

	if salary.EndDate == nil {
		current, err := s.store.CurrentSalary(ctx, salary.EmployeeID)
		if err != nil {
			return "", err
		}
		if current != nil {
			if !current.StartDate.Before(salary.StartDate) {
				return "", ErrSalaryOverlap
			}
			if err := s.store.CloseSalary(ctx, current.ID, salary.StartDate.AddDate(0, 0, -1)); err != nil {
				return "", err
			}
		}
	}

	return s.store.InsertSalary(ctx, salary)
}

func (s *Service) ListSalaries(ctx context.Context, employeeID string) ([]Salary, error) {
	return s.store.ListSalaries(ctx, employeeID)
}

func (s *Service) CreateDiscount(ctx context.Context, discount SalaryDiscount) (string, error) {
	return s.store.InsertDiscount(ctx, discount)
}

func (s *Service) ListDiscounts(ctx context.Context, employeeID string) ([]SalaryDiscount, error) {
	return s.store.ListDiscounts(ctx, employeeID)
}

func (s *Service) CreateAdvance(ctx context.Context, advance Advance) (string, error) {
	return s.store.InsertAdvance(ctx, advance)
}

func (s *Service) ListAdvances(ctx context.Context, employeeID string) ([]Advance, error) {
	return s.store.ListAdvances(ctx, employeeID)
}

// StatementData carries the employee header fields for the PDF export; the
// caller resolves them so this package stays independent of the core store.
type StatementData struct {
	EmployeeName string
	CPF          string
}

// WriteStatementPDF renders the employee's current salary as a one-page
// statement.
func (s *Service) WriteStatementPDF(ctx context.Context, w io.Writer, employeeID string, data StatementData) error {
	salary, err := s.store.CurrentSalary(ctx, employeeID)
	if err != nil {
		return err
	}
	if salary == nil {
		return ErrNoCurrentSalary
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Salary Statement")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", data.EmployeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("CPF: %s", data.CPF))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("In effect since: %s", salary.StartDate.Format("2006-01-02")))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %.2f", salary.GrossSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("INSS: %.2f", salary.INSSDiscount))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("IRRF: %.2f", salary.IRRFDiscount))
	pdf.Ln(7)
	if salary.Benefits != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Benefits: %.2f", *salary.Benefits))
		pdf.Ln(7)
	}
	if salary.Bonus != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Bonus: %.2f", *salary.Bonus))
		pdf.Ln(7)
	}
	if salary.TransportVoucher != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Transport voucher: %.2f", *salary.TransportVoucher))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Net: %.2f", salary.NetSalary))

	return pdf.Output(w)
}
