package documents

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStorage writes uploads under a base directory with uuid-prefixed names
// so distinct uploads of the same filename never collide.
type DiskStorage struct {
	Dir string
}

func NewDiskStorage(dir string) *DiskStorage {
	return &DiskStorage{Dir: dir}
}

func (d *DiskStorage) Save(originalName string, r io.Reader) (string, error) {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return "", err
	}

	storedName := fmt.Sprintf("%s_%s", uuid.NewString(), sanitizeFilename(originalName))
	path := filepath.Join(d.Dir, storedName)

	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return storedName, nil
}

func (d *DiskStorage) Open(storedName string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(d.Dir, filepath.Base(storedName)))
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." {
		name = "file"
	}
	return name
}
