package documents

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"fastreader/internal/extract"
	"fastreader/internal/shared/metrics"
	"fastreader/internal/shared/telemetry"
)

// LogDeleter removes the reading logs owned by a document. It is implemented
// by the readinglogs repo so that deleting a document cascades in one place
// regardless of which repo backs it.
type LogDeleter interface {
	DeleteByDocument(ctx context.Context, documentID int64) error
}

// Service contains business logic for documents.
type Service struct {
	Store *Store
	Repo  Repo
	Logs  LogDeleter
}

// Upload saves the file, extracts its text, and records the document.
//
// The file is written before extraction runs; if extraction fails the file
// stays on disk and no document row is created. That mirrors the original
// pipeline and the orphaned path is logged for operators.
func (s *Service) Upload(ctx context.Context, fileName string, r io.Reader) (Document, error) {
	if strings.TrimSpace(fileName) == "" {
		return Document{}, fmt.Errorf("%w: no selected file", ErrInvalidInput)
	}
	if !strings.EqualFold(filepath.Ext(fileName), ".pdf") {
		return Document{}, fmt.Errorf("%w: file must be a PDF", ErrInvalidInput)
	}

	storedName, fullPath, err := s.Store.Save(ctx, fileName, r)
	if err != nil {
		return Document{}, err
	}

	data, err := s.readStored(ctx, fullPath)
	if err != nil {
		return Document{}, err
	}

	text, err := extract.Text(ctx, data)
	if err != nil {
		telemetry.Warn("upload.extract_failed", map[string]any{
			"filepath": fullPath,
			"err":      err.Error(),
		})
		return Document{}, err
	}

	doc := Document{
		Filename:   storedName,
		Filepath:   fullPath,
		Content:    text,
		UploadedAt: time.Now().UTC(),
	}
	id, err := s.Repo.Create(ctx, doc)
	if err != nil {
		return Document{}, err
	}
	doc.ID = id

	metrics.CountUpload()
	return doc, nil
}

// Get returns a document by ID.
func (s *Service) Get(ctx context.Context, id int64) (Document, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns all documents, newest first.
func (s *Service) List(ctx context.Context) ([]Document, error) {
	return s.Repo.List(ctx)
}

// Delete removes a document, its reading logs, and its stored file.
// Logs go first so the memory repos cascade the same way the FK does.
func (s *Service) Delete(ctx context.Context, id int64) error {
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s.Logs != nil {
		if err := s.Logs.DeleteByDocument(ctx, id); err != nil {
			return err
		}
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.Store.Remove(doc.Filepath); err != nil {
		telemetry.Warn("delete.file_remove_failed", map[string]any{
			"filepath": doc.Filepath,
			"err":      err.Error(),
		})
	}
	return nil
}

func (s *Service) readStored(ctx context.Context, fullPath string) ([]byte, error) {
	f, err := s.Store.Open(ctx, fullPath)
	if err != nil {
		return nil, fmt.Errorf("open stored file: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read stored file: %w", err)
	}
	return data, nil
}
