package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGStore struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{DB: db}
}

const salaryColumns = `
    id, employee_id, start_date, end_date,
    gross_salary, net_salary, benefits, bonus,
    inss_discount, irrf_discount, transport_voucher`

func (s *PGStore) CurrentSalary(ctx context.Context, employeeID string) (*Salary, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+salaryColumns+`
    FROM salaries
    WHERE employee_id = $1 AND end_date IS NULL
    ORDER BY start_date DESC
    LIMIT 1
  `, employeeID)

	var sal Salary
	err := row.Scan(
		&sal.ID, &sal.EmployeeID, &sal.StartDate, &sal.EndDate,
		&sal.GrossSalary, &sal.NetSalary, &sal.Benefits, &sal.Bonus,
		&sal.INSSDiscount, &sal.IRRFDiscount, &sal.TransportVoucher,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sal, nil
}

func (s *PGStore) CloseSalary(ctx context.Context, salaryID string, endDate time.Time) error {
	_, err := s.DB.Exec(ctx, "UPDATE salaries SET end_date = $1 WHERE id = $2", endDate, salaryID)
	return err
}

func (s *PGStore) InsertSalary(ctx context.Context, salary Salary) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO salaries (employee_id, start_date, end_date, gross_salary, net_salary,
      benefits, bonus, inss_discount, irrf_discount, transport_voucher)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    RETURNING id
  `,
		salary.EmployeeID, salary.StartDate, salary.EndDate, salary.GrossSalary, salary.NetSalary,
		salary.Benefits, salary.Bonus, salary.INSSDiscount, salary.IRRFDiscount, salary.TransportVoucher,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *PGStore) ListSalaries(ctx context.Context, employeeID string) ([]Salary, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+salaryColumns+`
    FROM salaries
    WHERE employee_id = $1
    ORDER BY start_date DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Salary
	for rows.Next() {
		var sal Salary
		if err := rows.Scan(
			&sal.ID, &sal.EmployeeID, &sal.StartDate, &sal.EndDate,
			&sal.GrossSalary, &sal.NetSalary, &sal.Benefits, &sal.Bonus,
			&sal.INSSDiscount, &sal.IRRFDiscount, &sal.TransportVoucher,
		); err != nil {
			return nil, err
		}
		out = append(out, sal)
	}
	return out, rows.Err()
}

func (s *PGStore) InsertDiscount(ctx context.Context, discount SalaryDiscount) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO salary_discounts (employee_id, discount_type, amount, date, observation)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, discount.EmployeeID, discount.DiscountType, discount.Amount, discount.Date, nullIfEmpty(discount.Observation)).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *PGStore) ListDiscounts(ctx context.Context, employeeID string) ([]SalaryDiscount, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, discount_type, amount, date, COALESCE(observation, '')
    FROM salary_discounts
    WHERE employee_id = $1
    ORDER BY date DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SalaryDiscount
	for rows.Next() {
		var disc SalaryDiscount
		if err := rows.Scan(&disc.ID, &disc.EmployeeID, &disc.DiscountType, &disc.Amount, &disc.Date, &disc.Observation); err != nil {
			return nil, err
		}
		out = append(out, disc)
	}
	return out, rows.Err()
}

func (s *PGStore) InsertAdvance(ctx context.Context, advance Advance) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO advances (employee_id, amount, date, description)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, advance.EmployeeID, advance.Amount, advance.Date, nullIfEmpty(advance.Description)).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *PGStore) ListAdvances(ctx context.Context, employeeID string) ([]Advance, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, amount, date, COALESCE(description, '')
    FROM advances
    WHERE employee_id = $1
    ORDER BY date DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Advance
	for rows.Next() {
		var adv Advance
		if err := rows.Scan(&adv.ID, &adv.EmployeeID, &adv.Amount, &adv.Date, &adv.Description); err != nil {
			return nil, err
		}
		out = append(out, adv)
	}
	return out, rows.Err()
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
