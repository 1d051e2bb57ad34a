package payroll

import (
	"context"
	"time"
)

type Store interface {
	CurrentSalary(ctx context.Context, employeeID string) (*Salary, error)
	CloseSalary(ctx context.Context, salaryID string, endDate time.Time) error
	InsertSalary(ctx context.Context, salary Salary) (string, error)
	ListSalaries(ctx context.Context, employeeID string) ([]Salary, error)
	InsertDiscount(ctx context.Context, discount SalaryDiscount) (string, error)
	ListDiscounts(ctx context.Context, employeeID string) ([]SalaryDiscount, error)
	InsertAdvance(ctx context.Context, advance Advance) (string, error)
	ListAdvances(ctx context.Context, employeeID string) ([]Advance, error)
}
