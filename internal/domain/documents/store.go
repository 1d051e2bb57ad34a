package documents

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	InsertFile(ctx context.Context, file UploadedFile) (string, error)
	GetFile(ctx context.Context, fileID string) (*UploadedFile, error)
	InsertDocument(ctx context.Context, doc Document) (string, error)
	ListDocuments(ctx context.Context, employeeID string) ([]Document, error)
	InsertTraining(ctx context.Context, training Training) (string, error)
	ListTrainings(ctx context.Context, employeeID string) ([]Training, error)
}

type PGStore struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{DB: db}
}

func (s *PGStore) InsertFile(ctx context.Context, file UploadedFile) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO uploaded_files (file_path, name)
    VALUES ($1, $2)
    RETURNING id
  `, file.FilePath, nullIfEmpty(file.Name)).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *PGStore) GetFile(ctx context.Context, fileID string) (*UploadedFile, error) {
	var file UploadedFile
	err := s.DB.QueryRow(ctx, `
    SELECT id, file_path, COALESCE(name, ''), uploaded_at
    FROM uploaded_files
    WHERE id = $1
  `, fileID).Scan(&file.ID, &file.FilePath, &file.Name, &file.UploadedAt)
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (s *PGStore) InsertDocument(ctx context.Context, doc Document) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO documents (employee_id, description)
    VALUES ($1, $2)
    RETURNING id
  `, doc.EmployeeID, doc.Description).Scan(&id)
	if err != nil {
		return "", err
	}

	for _, fileID := range doc.FileIDs {
		if _, err := s.DB.Exec(ctx, `
      INSERT INTO document_files (document_id, file_id)
      VALUES ($1, $2)
      ON CONFLICT DO NOTHING
    `, id, fileID); err != nil {
			return "", err
		}
	}
	return id, nil
}

func (s *PGStore) ListDocuments(ctx context.Context, employeeID string) ([]Document, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT d.id, d.employee_id, d.description, d.uploaded_at,
           COALESCE(array_agg(df.file_id::text) FILTER (WHERE df.file_id IS NOT NULL), '{}')
    FROM documents d
    LEFT JOIN document_files df ON df.document_id = d.id
    WHERE d.employee_id = $1
    GROUP BY d.id, d.employee_id, d.description, d.uploaded_at
    ORDER BY d.uploaded_at DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.EmployeeID, &doc.Description, &doc.UploadedAt, &doc.FileIDs); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func (s *PGStore) InsertTraining(ctx context.Context, training Training) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO trainings (employee_id, training_name, provider, start_date, end_date, certificate_path)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, training.EmployeeID, training.TrainingName, training.Provider, training.StartDate, training.EndDate,
		nullIfEmpty(training.CertificatePath)).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *PGStore) ListTrainings(ctx context.Context, employeeID string) ([]Training, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, training_name, provider, start_date, end_date, COALESCE(certificate_path, '')
    FROM trainings
    WHERE employee_id = $1
    ORDER BY start_date DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Training
	for rows.Next() {
		var tr Training
		if err := rows.Scan(&tr.ID, &tr.EmployeeID, &tr.TrainingName, &tr.Provider, &tr.StartDate, &tr.EndDate, &tr.CertificatePath); err != nil {
			return nil, err
		}
		out = append(out, tr)
	}
	return out, rows.Err()
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
