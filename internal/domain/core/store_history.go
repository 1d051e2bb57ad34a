package core

import "context"

// Data change history is an explicit append-only trail per employee. Nothing
// writes to it automatically; callers record individual field changes.
func (s *Store) AppendDataChange(ctx context.Context, change DataChange) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO data_change_history (employee_id, field_name, old_value, new_value)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, change.EmployeeID, change.FieldName, change.OldValue, change.NewValue).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListDataChanges(ctx context.Context, employeeID string, limit, offset int) ([]DataChange, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, field_name, old_value, new_value, change_date
    FROM data_change_history
    WHERE employee_id = $1
    ORDER BY change_date DESC
    LIMIT $2 OFFSET $3
  `, employeeID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DataChange
	for rows.Next() {
		var change DataChange
		if err := rows.Scan(&change.ID, &change.EmployeeID, &change.FieldName, &change.OldValue, &change.NewValue, &change.ChangeDate); err != nil {
			return nil, err
		}
		out = append(out, change)
	}
	return out, rows.Err()
}
