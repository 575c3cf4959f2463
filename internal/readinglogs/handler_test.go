package readinglogs_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"fastreader/internal/bootstrap"
	"fastreader/internal/documents"
	"fastreader/internal/shared/config"
)

func buildAppWithDocument(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:      "0",
		UploadDir: t.TempDir(),
		Env:       "dev",
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}

	if _, err := app.DocumentsRepo.Create(context.Background(), documents.Document{
		Filename:   "book.pdf",
		Filepath:   "/tmp/book.pdf",
		Content:    "some extracted words",
		UploadedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed document: %v", err)
	}
	return app
}

func postLog(t *testing.T, app *bootstrap.App, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	return resp
}

func TestRecordSessionReturnsLogID(t *testing.T) {
	app := buildAppWithDocument(t)

	resp := postLog(t, app, "/api/log/1", `{"speed_wpm": 400, "chunk_size": 3, "duration_seconds": 120}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		LogID int64 `json:"log_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.LogID != 1 {
		t.Fatalf("expected log_id 1, got %d", payload.LogID)
	}

	logs, err := app.ReadingLogsRepo.ListByDocument(context.Background(), 1)
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
	log := logs[0]
	if log.SpeedWPM != 400 || log.ChunkSize != 3 {
		t.Fatalf("unexpected log values: %+v", log)
	}
	if log.DurationSeconds == nil || *log.DurationSeconds != 120 {
		t.Fatalf("expected duration 120, got %v", log.DurationSeconds)
	}
}

func TestRecordSessionCoercesBadValues(t *testing.T) {
	app := buildAppWithDocument(t)

	resp := postLog(t, app, "/api/log/1", `{"speed_wpm": "fast", "chunk_size": "abc", "duration_seconds": "soon"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	logs, err := app.ReadingLogsRepo.ListByDocument(context.Background(), 1)
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
	log := logs[0]
	if log.SpeedWPM != 0 {
		t.Fatalf("expected speed 0, got %d", log.SpeedWPM)
	}
	if log.ChunkSize != 1 {
		t.Fatalf("expected chunk size 1, got %d", log.ChunkSize)
	}
	if log.DurationSeconds != nil {
		t.Fatalf("expected absent duration, got %v", log.DurationSeconds)
	}
}

func TestRecordSessionAcceptsNumericStringsAndFloats(t *testing.T) {
	app := buildAppWithDocument(t)

	resp := postLog(t, app, "/api/log/1", `{"speed_wpm": "350", "chunk_size": 2.9, "duration_seconds": 61.7}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	logs, err := app.ReadingLogsRepo.ListByDocument(context.Background(), 1)
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	log := logs[0]
	if log.SpeedWPM != 350 {
		t.Fatalf("expected speed 350, got %d", log.SpeedWPM)
	}
	if log.ChunkSize != 2 {
		t.Fatalf("expected chunk size 2 (truncated), got %d", log.ChunkSize)
	}
	if log.DurationSeconds == nil || *log.DurationSeconds != 61 {
		t.Fatalf("expected duration 61 (truncated), got %v", log.DurationSeconds)
	}
}

func TestRecordSessionEmptyBodyUsesDefaults(t *testing.T) {
	app := buildAppWithDocument(t)

	resp := postLog(t, app, "/api/log/1", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	logs, err := app.ReadingLogsRepo.ListByDocument(context.Background(), 1)
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	log := logs[0]
	if log.SpeedWPM != 0 || log.ChunkSize != 1 || log.DurationSeconds != nil {
		t.Fatalf("expected defaults, got %+v", log)
	}
}

func TestRecordSessionUnknownDocument(t *testing.T) {
	app := buildAppWithDocument(t)

	for _, path := range []string{"/api/log/99", "/api/log/abc"} {
		resp := postLog(t, app, path, `{"speed_wpm": 200, "chunk_size": 1}`)
		if resp.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, resp.Code)
		}
	}
}
