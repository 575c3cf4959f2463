package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// maxNameAttempts bounds the collision-suffix search so a pathological
// directory cannot spin the upload forever.
const maxNameAttempts = 10000

// Store keeps uploaded files in a local directory.
type Store struct {
	baseDir string
}

// NewStore creates a Store rooted at baseDir, creating the directory if needed.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir upload dir: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Save writes the reader to disk under a collision-free variant of fileName.
// When name.pdf is taken it tries name_1.pdf, name_2.pdf, and so on.
// It returns the stored file name and its full path.
func (s *Store) Save(ctx context.Context, fileName string, r io.Reader) (string, string, error) {
	sanitized, err := sanitizeFileName(fileName)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	base := strings.TrimSuffix(sanitized, filepath.Ext(sanitized))
	ext := filepath.Ext(sanitized)

	name := sanitized
	for attempt := 1; ; attempt++ {
		fullPath := filepath.Join(s.baseDir, name)
		f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
		if err == nil {
			_, copyErr := io.Copy(f, r)
			closeErr := f.Close()
			if copyErr != nil {
				os.Remove(fullPath)
				return "", "", fmt.Errorf("write upload: %w", copyErr)
			}
			if closeErr != nil {
				os.Remove(fullPath)
				return "", "", fmt.Errorf("close upload: %w", closeErr)
			}
			return name, fullPath, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", "", fmt.Errorf("create upload file: %w", err)
		}
		if attempt > maxNameAttempts {
			return "", "", fmt.Errorf("no free name for %q after %d attempts", sanitized, maxNameAttempts)
		}
		name = fmt.Sprintf("%s_%d%s", base, attempt, ext)
	}
}

// Open opens a stored file for reading.
func (s *Store) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.checkPath(path); err != nil {
		return nil, err
	}
	return os.Open(path)
}

// Remove deletes a stored file.
func (s *Store) Remove(path string) error {
	if err := s.checkPath(path); err != nil {
		return err
	}
	return os.Remove(path)
}

// checkPath rejects paths outside the store's base directory.
func (s *Store) checkPath(path string) error {
	rel, err := filepath.Rel(s.baseDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("invalid storage path")
	}
	return nil
}

func sanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}
