package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FSStore persists resume blobs under a base directory, mirroring the object
// store layout: the destination path is namespaced by job id and timestamp so
// candidates reusing a filename cannot collide.
type FSStore struct {
	BaseDir string
}

func NewFSStore(baseDir string) *FSStore {
	return &FSStore{BaseDir: baseDir}
}

// Save writes the blob at the given store path and returns the location to
// reference from the candidate record.
func (s *FSStore) Save(ctx context.Context, path string, data []byte) (string, error) {
	clean, err := s.resolve(path)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(clean), 0o755); err != nil {
		return "", fmt.Errorf("failed to create resume directory: %w", err)
	}
	if err := os.WriteFile(clean, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write resume %s: %w", path, err)
	}

	return path, nil
}

// resolve joins the store path under BaseDir and rejects traversal outside it.
func (s *FSStore) resolve(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty resume path")
	}

	full := filepath.Join(s.BaseDir, filepath.FromSlash(path))
	base := filepath.Clean(s.BaseDir)
	if full != base && !strings.HasPrefix(full, base+string(filepath.Separator)) {
		return "", fmt.Errorf("resume path escapes store: %s", path)
	}
	return full, nil
}
