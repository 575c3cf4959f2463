package readinglogs

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a reading log and returns its generated ID.
func (r *PGRepo) Create(ctx context.Context, log ReadingLog) (int64, error) {
	const query = `
INSERT INTO reading_logs (document_id, started_at, speed_wpm, chunk_size, duration_seconds)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

	var duration sql.NullInt64
	if log.DurationSeconds != nil {
		duration = sql.NullInt64{Int64: int64(*log.DurationSeconds), Valid: true}
	}

	var id int64
	err := r.DB.QueryRowContext(
		ctx,
		query,
		log.DocumentID,
		log.StartedAt,
		log.SpeedWPM,
		log.ChunkSize,
		duration,
	).Scan(&id)
	return id, err
}

// ListByDocument returns all logs for a document, oldest first.
func (r *PGRepo) ListByDocument(ctx context.Context, documentID int64) ([]ReadingLog, error) {
	const query = `
SELECT id, document_id, started_at, speed_wpm, chunk_size, duration_seconds
FROM reading_logs
WHERE document_id = $1
ORDER BY started_at ASC, id ASC`

	rows, err := r.DB.QueryContext(ctx, query, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ReadingLog
	for rows.Next() {
		var log ReadingLog
		var duration sql.NullInt64
		if err := rows.Scan(
			&log.ID,
			&log.DocumentID,
			&log.StartedAt,
			&log.SpeedWPM,
			&log.ChunkSize,
			&duration,
		); err != nil {
			return nil, err
		}
		if duration.Valid {
			d := int(duration.Int64)
			log.DurationSeconds = &d
		}
		out = append(out, log)
	}
	return out, rows.Err()
}

// DeleteByDocument removes all logs owned by a document.
func (r *PGRepo) DeleteByDocument(ctx context.Context, documentID int64) error {
	const query = `DELETE FROM reading_logs WHERE document_id = $1`
	_, err := r.DB.ExecContext(ctx, query, documentID)
	return err
}

var _ Repo = (*PGRepo)(nil)
