package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document and returns its generated ID.
func (r *PGRepo) Create(ctx context.Context, doc Document) (int64, error) {
	const query = `
INSERT INTO documents (filename, filepath, content, uploaded_at)
VALUES ($1, $2, $3, $4)
RETURNING id`

	var id int64
	err := r.DB.QueryRowContext(
		ctx,
		query,
		doc.Filename,
		doc.Filepath,
		doc.Content,
		doc.UploadedAt,
	).Scan(&id)
	return id, err
}

// GetByID fetches a document by ID.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Document, error) {
	const query = `
SELECT id, filename, filepath, content, uploaded_at
FROM documents
WHERE id = $1`

	var doc Document
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&doc.ID,
		&doc.Filename,
		&doc.Filepath,
		&doc.Content,
		&doc.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// List returns all documents, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Document, error) {
	const query = `
SELECT id, filename, filepath, content, uploaded_at
FROM documents
ORDER BY uploaded_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(
			&doc.ID,
			&doc.Filename,
			&doc.Filepath,
			&doc.Content,
			&doc.UploadedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// Delete removes a document; reading logs follow via the FK cascade.
func (r *PGRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM documents WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
