package documents

import "time"

// Document represents an uploaded PDF's metadata plus its extracted text.
type Document struct {
	ID         int64
	Filename   string
	Filepath   string
	Content    string
	UploadedAt time.Time
}
