package readinglogs

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	data   map[int64][]ReadingLog // documentID -> logs in insert order
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		nextID: 1,
		data:   make(map[int64][]ReadingLog),
	}
}

// Create stores a reading log and assigns it the next ID.
func (r *MemoryRepo) Create(ctx context.Context, log ReadingLog) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	log.ID = r.nextID
	r.nextID++
	r.data[log.DocumentID] = append(r.data[log.DocumentID], log)
	return log.ID, nil
}

// ListByDocument returns all logs for a document, oldest first.
func (r *MemoryRepo) ListByDocument(ctx context.Context, documentID int64) ([]ReadingLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	logs := r.data[documentID]
	out := make([]ReadingLog, len(logs))
	copy(out, logs)
	return out, nil
}

// DeleteByDocument removes all logs owned by a document.
func (r *MemoryRepo) DeleteByDocument(ctx context.Context, documentID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, documentID)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
