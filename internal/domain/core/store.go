package core

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

const employeeColumns = `
    id,
    COALESCE(user_id::text, ''),
    birth_date,
    cpf, rg,
    COALESCE(ctps, ''),
    COALESCE(pis_pasep, ''),
    COALESCE(cnh, ''),
    phone,
    hire_date, termination_date,
    start_time::text, end_time::text,
    gender, employment_status, contract_type, payment_method,
    COALESCE(role_id::text, ''),
    created_at, updated_at`

func (s *Store) GetEmployee(ctx context.Context, employeeID string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, employeeID)

	var emp Employee
	if err := row.Scan(
		&emp.ID, &emp.UserID, &emp.BirthDate, &emp.CPF, &emp.RG, &emp.CTPS, &emp.PISPasep, &emp.CNH,
		&emp.Phone, &emp.HireDate, &emp.TerminationDate, &emp.StartTime, &emp.EndTime,
		&emp.Gender, &emp.Status, &emp.ContractType, &emp.PaymentMethod, &emp.RoleID,
		&emp.CreatedAt, &emp.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) GetEmployeeByUserID(ctx context.Context, userID string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE user_id = $1
  `, userID)

	var emp Employee
	if err := row.Scan(
		&emp.ID, &emp.UserID, &emp.BirthDate, &emp.CPF, &emp.RG, &emp.CTPS, &emp.PISPasep, &emp.CNH,
		&emp.Phone, &emp.HireDate, &emp.TerminationDate, &emp.StartTime, &emp.EndTime,
		&emp.Gender, &emp.Status, &emp.ContractType, &emp.PaymentMethod, &emp.RoleID,
		&emp.CreatedAt, &emp.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) ListEmployees(ctx context.Context, limit, offset int) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    ORDER BY hire_date, cpf
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(
			&emp.ID, &emp.UserID, &emp.BirthDate, &emp.CPF, &emp.RG, &emp.CTPS, &emp.PISPasep, &emp.CNH,
			&emp.Phone, &emp.HireDate, &emp.TerminationDate, &emp.StartTime, &emp.EndTime,
			&emp.Gender, &emp.Status, &emp.ContractType, &emp.PaymentMethod, &emp.RoleID,
			&emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) CreateEmployee(ctx context.Context, emp Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (user_id, birth_date, cpf, rg, ctps, pis_pasep, cnh, phone,
      termination_date, start_time, end_time, gender, employment_status, contract_type,
      payment_method, role_id)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
    RETURNING id
  `,
		nullIfEmpty(emp.UserID), emp.BirthDate, emp.CPF, emp.RG, nullIfEmpty(emp.CTPS),
		nullIfEmpty(emp.PISPasep), nullIfEmpty(emp.CNH), emp.Phone, emp.TerminationDate,
		emp.StartTime, emp.EndTime, emp.Gender, emp.Status, emp.ContractType,
		emp.PaymentMethod, nullIfEmpty(emp.RoleID),
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, employeeID string, emp Employee) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET birth_date = $1,
        cpf = $2,
        rg = $3,
        ctps = $4,
        pis_pasep = $5,
        cnh = $6,
        phone = $7,
        termination_date = $8,
        start_time = $9,
        end_time = $10,
        gender = $11,
        employment_status = $12,
        contract_type = $13,
        payment_method = $14,
        role_id = $15,
        updated_at = now()
    WHERE id = $16
  `,
		emp.BirthDate, emp.CPF, emp.RG, nullIfEmpty(emp.CTPS), nullIfEmpty(emp.PISPasep),
		nullIfEmpty(emp.CNH), emp.Phone, emp.TerminationDate, emp.StartTime, emp.EndTime,
		emp.Gender, emp.Status, emp.ContractType, emp.PaymentMethod, nullIfEmpty(emp.RoleID),
		employeeID,
	)
	return err
}
