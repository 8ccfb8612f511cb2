package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pillowcase/pillowcase/internal/adapter/storage"
	"github.com/pillowcase/pillowcase/internal/domain"
)

// DiskStore keeps images as flat files in the configured image directory.
type DiskStore struct {
	dir string
}

// NewDiskStore verifies the directory exists and is writable; the server
// must not come up against a directory it cannot serve from.
func NewDiskStore(dir string) (*DiskStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("image directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("image directory %q is not a directory", dir)
	}

	probe, err := os.CreateTemp(dir, ".write-probe-*")
	if err != nil {
		return nil, fmt.Errorf("image directory %q is not writable: %w", dir, err)
	}
	probe.Close()
	_ = os.Remove(probe.Name())

	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Save(_ context.Context, filename string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: writing %s: %v", domain.ErrStorageFailure, filename, err)
	}
	return path, nil
}

func (s *DiskStore) Open(_ context.Context, filename string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrStorageFailure, filename, err)
	}
	return data, nil
}

func (s *DiskStore) Exists(_ context.Context, filename string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.dir, filename))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: stat %s: %v", domain.ErrStorageFailure, filename, err)
	}
	return true, nil
}

func (s *DiskStore) List(_ context.Context) ([]storage.StoredFile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: listing image directory: %v", domain.ErrStorageFailure, err)
	}

	files := make([]storage.StoredFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, storage.StoredFile{
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return files, nil
}

func (s *DiskStore) Delete(_ context.Context, filename string) error {
	err := os.Remove(filepath.Join(s.dir, filename))
	if errors.Is(err, fs.ErrNotExist) {
		return domain.ErrImageNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: removing %s: %v", domain.ErrStorageFailure, filename, err)
	}
	return nil
}
