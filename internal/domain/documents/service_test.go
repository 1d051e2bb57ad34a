package documents

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
)

type fakeStore struct {
	files     []UploadedFile
	documents []Document
	trainings []Training
}

func (f *fakeStore) InsertFile(_ context.Context, file UploadedFile) (string, error) {
	file.ID = "file-1"
	f.files = append(f.files, file)
	return file.ID, nil
}

func (f *fakeStore) GetFile(_ context.Context, fileID string) (*UploadedFile, error) {
	for i := range f.files {
		if f.files[i].ID == fileID {
			return &f.files[i], nil
		}
	}
	return nil, os.ErrNotExist
}

func (f *fakeStore) InsertDocument(_ context.Context, doc Document) (string, error) {
	f.documents = append(f.documents, doc)
	return "doc-1", nil
}

func (f *fakeStore) ListDocuments(_ context.Context, _ string) ([]Document, error) {
	return f.documents, nil
}

func (f *fakeStore) InsertTraining(_ context.Context, training Training) (string, error) {
	f.trainings = append(f.trainings, training)
	return "tr-1", nil
}

func (f *fakeStore) ListTrainings(_ context.Context, _ string) ([]Training, error) {
	return f.trainings, nil
}

func TestRegisterFileDerivesName(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	if _, err := svc.RegisterFile(context.Background(), UploadedFile{FilePath: "uploads/abc123_contract.pdf"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.files[0].Name != "abc123_contract.pdf" {
		t.Fatalf("expected derived name, got %q", store.files[0].Name)
	}
}

func TestRegisterFileKeepsExplicitName(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	if _, err := svc.RegisterFile(context.Background(), UploadedFile{FilePath: "uploads/abc123_contract.pdf", Name: "Employment contract"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.files[0].Name != "Employment contract" {
		t.Fatalf("expected explicit name preserved, got %q", store.files[0].Name)
	}
}

func TestDiskStorageSaveAndOpen(t *testing.T) {
	storage := NewDiskStorage(t.TempDir())

	storedName, err := storage.Save("my contract.pdf", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasSuffix(storedName, "_my_contract.pdf") {
		t.Fatalf("unexpected stored name: %q", storedName)
	}

	reader, err := storage.Open(storedName)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if buf.String() != "content" {
		t.Fatalf("unexpected content: %q", buf.String())
	}
}

func TestDiskStorageDistinctNames(t *testing.T) {
	storage := NewDiskStorage(t.TempDir())

	first, err := storage.Save("doc.pdf", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	second, err := storage.Save("doc.pdf", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct stored names for same original filename")
	}
}
