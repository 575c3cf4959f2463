package documents

import "context"

// Repo defines persistence operations for documents.
type Repo interface {
	Create(ctx context.Context, doc Document) (int64, error)
	GetByID(ctx context.Context, id int64) (Document, error)
	List(ctx context.Context) ([]Document, error)
	Delete(ctx context.Context, id int64) error
}
