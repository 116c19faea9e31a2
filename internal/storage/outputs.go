// Package storage writes generated files to the simulation tree.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/dart-prep/dartprep/internal/models"
)

// OutputStore writes generated documents and remembers what it wrote,
// so a preparation run can report its artifacts afterwards.
type OutputStore struct {
	mu      sync.Mutex
	written []models.Artifact
}

// NewOutputStore creates an empty OutputStore.
func NewOutputStore() *OutputStore {
	return &OutputStore{written: make([]models.Artifact, 0)}
}

// Write atomically writes data to path, creating parent directories as
// needed. A crash mid-write never leaves a partial file at path: the
// data goes to a temp file in the same directory first, then renames
// over the destination.
func (s *OutputStore) Write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	s.mu.Lock()
	s.written = append(s.written, models.Artifact{Path: path, Size: int64(len(data))})
	s.mu.Unlock()

	return nil
}

// Artifacts returns the files written so far, in write order.
func (s *OutputStore) Artifacts() []models.Artifact {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Artifact, len(s.written))
	copy(out, s.written)
	return out
}

// BackupOnce copies path to path+".backup" unless the backup already
// exists. Returns the backup path.
func BackupOnce(path string) (string, error) {
	backupPath := path + ".backup"
	if _, err := os.Stat(backupPath); err == nil {
		return backupPath, nil
	}

	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s for backup: %w", path, err)
	}
	defer src.Close()

	dst, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("creating backup: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(backupPath)
		return "", fmt.Errorf("copying backup: %w", err)
	}

	return backupPath, nil
}
