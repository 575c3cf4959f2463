package readinglogs

import (
	"context"
	"errors"
	"time"

	"fastreader/internal/documents"
	"fastreader/internal/shared/metrics"
)

// DocumentChecker verifies that a document exists before a log is attached.
type DocumentChecker interface {
	GetByID(ctx context.Context, id int64) (documents.Document, error)
}

// Service contains business logic for reading logs.
type Service struct {
	Repo Repo
	Docs DocumentChecker
}

// Session holds the already-coerced parameters of one reading session.
// Nonsensical values (speed 0, for instance) are accepted as-is; the log
// is telemetry, not configuration.
type Session struct {
	SpeedWPM        int
	ChunkSize       int
	DurationSeconds *int
}

// Record validates the document and persists a reading log for it.
func (s *Service) Record(ctx context.Context, documentID int64, session Session) (int64, error) {
	if _, err := s.Docs.GetByID(ctx, documentID); err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return 0, ErrDocumentNotFound
		}
		return 0, err
	}

	if session.ChunkSize < 1 {
		session.ChunkSize = 1
	}

	id, err := s.Repo.Create(ctx, ReadingLog{
		DocumentID:      documentID,
		StartedAt:       time.Now().UTC(),
		SpeedWPM:        session.SpeedWPM,
		ChunkSize:       session.ChunkSize,
		DurationSeconds: session.DurationSeconds,
	})
	if err != nil {
		return 0, err
	}

	metrics.CountReadingLog()
	return id, nil
}

// ListByDocument returns all logs for a document.
func (s *Service) ListByDocument(ctx context.Context, documentID int64) ([]ReadingLog, error) {
	return s.Repo.ListByDocument(ctx, documentID)
}
