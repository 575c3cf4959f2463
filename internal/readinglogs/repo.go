package readinglogs

import "context"

// Repo defines persistence operations for reading logs.
type Repo interface {
	Create(ctx context.Context, log ReadingLog) (int64, error)
	ListByDocument(ctx context.Context, documentID int64) ([]ReadingLog, error)
	DeleteByDocument(ctx context.Context, documentID int64) error
}
