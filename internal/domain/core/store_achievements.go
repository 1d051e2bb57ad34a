package core

import "context"

func (s *Store) ListAchievements(ctx context.Context) ([]Achievement, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, name, image_path FROM achievements ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Achievement
	for rows.Next() {
		var ach Achievement
		if err := rows.Scan(&ach.ID, &ach.Name, &ach.ImagePath); err != nil {
			return nil, err
		}
		out = append(out, ach)
	}
	return out, rows.Err()
}

func (s *Store) AchievementExistsByName(ctx context.Context, name string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM achievements WHERE name = $1", name).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) CreateAchievement(ctx context.Context, name, imagePath string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO achievements (name, image_path)
    VALUES ($1, $2)
    RETURNING id
  `, name, imagePath).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GrantAchievement(ctx context.Context, employeeID, achievementID string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO employee_achievements (employee_id, achievement_id)
    VALUES ($1, $2)
    ON CONFLICT DO NOTHING
  `, employeeID, achievementID)
	return err
}

func (s *Store) ListAchievementsForEmployee(ctx context.Context, employeeID string) ([]Achievement, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT a.id, a.name, a.image_path
    FROM achievements a
    JOIN employee_achievements ea ON ea.achievement_id = a.id
    WHERE ea.employee_id = $1
    ORDER BY a.name
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Achievement
	for rows.Next() {
		var ach Achievement
		if err := rows.Scan(&ach.ID, &ach.Name, &ach.ImagePath); err != nil {
			return nil, err
		}
		out = append(out, ach)
	}
	return out, rows.Err()
}
