package performance

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

func (s *Store) InsertReview(ctx context.Context, review Review) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO performance_reviews (employee_id, review_date, score, comments)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, review.EmployeeID, review.ReviewDate, review.Score, nullIfEmpty(review.Comments)).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListReviews(ctx context.Context, employeeID string) ([]Review, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, review_date, score, COALESCE(comments, '')
    FROM performance_reviews
    WHERE employee_id = $1
    ORDER BY review_date DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Review
	for rows.Next() {
		var review Review
		if err := rows.Scan(&review.ID, &review.EmployeeID, &review.ReviewDate, &review.Score, &review.Comments); err != nil {
			return nil, err
		}
		out = append(out, review)
	}
	return out, rows.Err()
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
