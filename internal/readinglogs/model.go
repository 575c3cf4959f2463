package readinglogs

import "time"

// ReadingLog records the parameters of one reading session.
type ReadingLog struct {
	ID              int64
	DocumentID      int64
	StartedAt       time.Time
	SpeedWPM        int
	ChunkSize       int
	DurationSeconds *int
}
