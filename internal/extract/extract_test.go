package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTextExtractsAllPagesInOrder(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "hello.pdf"))
	if err != nil {
		t.Fatalf("read test pdf: %v", err)
	}

	text, err := Text(context.Background(), data)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	first := strings.Index(text, "Hello")
	second := strings.Index(text, "Second")
	if first < 0 || second < 0 {
		t.Fatalf("expected both pages' text, got %q", text)
	}
	if first > second {
		t.Fatalf("expected page order preserved, got %q", text)
	}
}

func TestTextRejectsNonPDF(t *testing.T) {
	_, err := Text(context.Background(), []byte("definitely not a pdf"))
	if !errors.Is(err, ErrInvalidPDF) {
		t.Fatalf("expected ErrInvalidPDF, got %v", err)
	}
}

func TestTextHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Text(ctx, []byte("%PDF-1.4")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}
