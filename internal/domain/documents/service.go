package documents

import (
	"context"
	"path/filepath"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// RegisterFile records an uploaded file. When no explicit name is given the
// name is derived from the stored file's base name.
func (s *Service) RegisterFile(ctx context.Context, file UploadedFile) (string, error) {
	if file.Name == "" {
		file.Name = filepath.Base(file.FilePath)
	}
	return s.store.InsertFile(ctx, file)
}

func (s *Service) GetFile(ctx context.Context, fileID string) (*UploadedFile, error) {
	return s.store.GetFile(ctx, fileID)
}

func (s *Service) CreateDocument(ctx context.Context, doc Document) (string, error) {
	return s.store.InsertDocument(ctx, doc)
}

func (s *Service) ListDocuments(ctx context.Context, employeeID string) ([]Document, error) {
	return s.store.ListDocuments(ctx, employeeID)
}

func (s *Service) CreateTraining(ctx context.Context, training Training) (string, error) {
	return s.store.InsertTraining(ctx, training)
}

func (s *Service) ListTrainings(ctx context.Context, employeeID string) ([]Training, error) {
	return s.store.ListTrainings(ctx, employeeID)
}
