package leave

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

func (s *Store) InsertVacation(ctx context.Context, vac Vacation) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO vacations (employee_id, start_date, end_date, days_taken, status)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, vac.EmployeeID, vac.StartDate, vac.EndDate, vac.DaysTaken, vac.Status).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListVacations(ctx context.Context, employeeID string) ([]Vacation, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, start_date, end_date, days_taken, status
    FROM vacations
    WHERE employee_id = $1
    ORDER BY start_date DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Vacation
	for rows.Next() {
		var vac Vacation
		if err := rows.Scan(&vac.ID, &vac.EmployeeID, &vac.StartDate, &vac.EndDate, &vac.DaysTaken, &vac.Status); err != nil {
			return nil, err
		}
		out = append(out, vac)
	}
	return out, rows.Err()
}

func (s *Store) InsertLeave(ctx context.Context, lv Leave) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leaves (employee_id, leave_type, start_date, end_date, status)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, lv.EmployeeID, lv.LeaveType, lv.StartDate, lv.EndDate, lv.Status).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListLeaves(ctx context.Context, employeeID string) ([]Leave, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, leave_type, start_date, end_date, status
    FROM leaves
    WHERE employee_id = $1
    ORDER BY start_date DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Leave
	for rows.Next() {
		var lv Leave
		if err := rows.Scan(&lv.ID, &lv.EmployeeID, &lv.LeaveType, &lv.StartDate, &lv.EndDate, &lv.Status); err != nil {
			return nil, err
		}
		out = append(out, lv)
	}
	return out, rows.Err()
}

func (s *Store) InsertAbsence(ctx context.Context, abs Absence) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO absences (employee_id, absence_date, reason, status)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, abs.EmployeeID, abs.AbsenceDate, nullIfEmpty(abs.Reason), abs.Status).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListAbsences(ctx context.Context, employeeID string) ([]Absence, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, absence_date, COALESCE(reason, ''), status
    FROM absences
    WHERE employee_id = $1
    ORDER BY absence_date DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Absence
	for rows.Next() {
		var abs Absence
		if err := rows.Scan(&abs.ID, &abs.EmployeeID, &abs.AbsenceDate, &abs.Reason, &abs.Status); err != nil {
			return nil, err
		}
		out = append(out, abs)
	}
	return out, rows.Err()
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
