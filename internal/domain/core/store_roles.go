package core

import "context"

func (s *Store) ListRoles(ctx context.Context) ([]Role, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT r.id, r.name, r.abbreviation,
           COALESCE(array_agg(rp.permission_id) FILTER (WHERE rp.permission_id IS NOT NULL), '{}')
    FROM roles r
    LEFT JOIN role_permissions rp ON rp.role_id = r.id
    GROUP BY r.id, r.name, r.abbreviation
    ORDER BY r.name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Role
	for rows.Next() {
		var role Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Abbreviation, &role.PermissionIDs); err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	return out, rows.Err()
}

func (s *Store) CreateRole(ctx context.Context, role Role) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO roles (name, abbreviation)
    VALUES ($1, $2)
    RETURNING id
  `, role.Name, role.Abbreviation).Scan(&id)
	if err != nil {
		return "", err
	}

	for _, permID := range role.PermissionIDs {
		if _, err := s.DB.Exec(ctx, `
      INSERT INTO role_permissions (role_id, permission_id)
      VALUES ($1, $2)
      ON CONFLICT DO NOTHING
    `, id, permID); err != nil {
			return "", err
		}
	}
	return id, nil
}

func (s *Store) ListPermissions(ctx context.Context) ([]Permission, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, name FROM permissions ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Permission
	for rows.Next() {
		var perm Permission
		if err := rows.Scan(&perm.ID, &perm.Name); err != nil {
			return nil, err
		}
		out = append(out, perm)
	}
	return out, rows.Err()
}

func (s *Store) PermissionExists(ctx context.Context, id int) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM permissions WHERE id = $1", id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) CreatePermission(ctx context.Context, id int, name string) error {
	_, err := s.DB.Exec(ctx, "INSERT INTO permissions (id, name) VALUES ($1, $2)", id, name)
	return err
}

// UserHasPermission reports whether the user's employee role carries the
// given seeded permission id. Users without an employee record have no
// role-derived permissions.
func (s *Store) UserHasPermission(ctx context.Context, userID string, permissionID int) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM employees e
    JOIN role_permissions rp ON rp.role_id = e.role_id
    WHERE e.user_id = $1 AND rp.permission_id = $2
  `, userID, permissionID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
