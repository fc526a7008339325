package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"pet-census-api/config"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Upload is an incoming photo to be stored.
type Upload struct {
	Filename string
	Content  io.Reader
}

// PhotoStore writes uploaded photos to a filesystem. Production uses the OS
// filesystem, tests an in-memory one.
type PhotoStore struct {
	fs  afero.Fs
	dir string
}

func NewPhotoStore(fs afero.Fs, cfg config.StorageConfig) (*PhotoStore, error) {
	if err := fs.MkdirAll(cfg.PhotoDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create photo directory: %w", err)
	}
	return &PhotoStore{fs: fs, dir: cfg.PhotoDir}, nil
}

// Save stores the upload under a generated name inside the given subdirectory
// and returns the stored path. The caller keeps any previous reference until
// Save has succeeded.
func (s *PhotoStore) Save(subdir string, upload *Upload) (string, error) {
	ext := strings.ToLower(path.Ext(upload.Filename))
	name := uuid.New().String() + ext
	dir := path.Join(s.dir, subdir)

	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	fullPath := path.Join(dir, name)
	file, err := s.fs.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}

	if _, err := io.Copy(file, upload.Content); err != nil {
		file.Close()
		s.fs.Remove(fullPath)
		return "", fmt.Errorf("failed to write photo file: %w", err)
	}

	if err := file.Close(); err != nil {
		s.fs.Remove(fullPath)
		return "", fmt.Errorf("failed to close photo file: %w", err)
	}

	return path.Join(subdir, name), nil
}

// Delete removes a previously stored photo. A missing file is not an error.
func (s *PhotoStore) Delete(storedPath string) error {
	if storedPath == "" {
		return nil
	}
	err := s.fs.Remove(path.Join(s.dir, storedPath))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
