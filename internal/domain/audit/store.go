package audit

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PGStore struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{DB: db}
}

func (s *PGStore) Insert(ctx context.Context, userID, employeeID, actionText string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO action_logs (user_id, employee_id, action_text)
    VALUES ($1, $2, $3)
  `, nullIfEmpty(userID), nullIfEmpty(employeeID), actionText)
	return err
}

func (s *PGStore) List(ctx context.Context, limit, offset int) ([]ActionLog, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id,
           COALESCE(user_id::text, ''),
           COALESCE(employee_id::text, ''),
           action_text, action_date
    FROM action_logs
    ORDER BY action_date DESC
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ActionLog
	for rows.Next() {
		var entry ActionLog
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.EmployeeID, &entry.ActionText, &entry.ActionDate); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
