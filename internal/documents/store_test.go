package documents

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStoreSaveResolvesCollisions(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	ctx := context.Background()

	name1, path1, err := store.Save(ctx, "book.pdf", strings.NewReader("first"))
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if name1 != "book.pdf" {
		t.Fatalf("expected book.pdf, got %s", name1)
	}

	name2, path2, err := store.Save(ctx, "book.pdf", strings.NewReader("second"))
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if name2 != "book_1.pdf" {
		t.Fatalf("expected book_1.pdf, got %s", name2)
	}

	name3, _, err := store.Save(ctx, "book.pdf", strings.NewReader("third"))
	if err != nil {
		t.Fatalf("third save: %v", err)
	}
	if name3 != "book_2.pdf" {
		t.Fatalf("expected book_2.pdf, got %s", name3)
	}

	// The first upload must be untouched.
	data, err := os.ReadFile(path1)
	if err != nil {
		t.Fatalf("read first file: %v", err)
	}
	if string(data) != "first" {
		t.Fatalf("first file overwritten: %q", data)
	}
	data, err = os.ReadFile(path2)
	if err != nil {
		t.Fatalf("read second file: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("unexpected second file content: %q", data)
	}
}

func TestStoreSaveRejectsBadNames(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	for _, name := range []string{"", "   ", "../escape.pdf"} {
		if _, _, err := store.Save(context.Background(), name, strings.NewReader("x")); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("name %q: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestStoreSaveSanitizesSeparators(t *testing.T) {
	base := t.TempDir()
	store, err := NewStore(base)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	name, path, err := store.Save(context.Background(), "dir/book.pdf", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if name != "dir_book.pdf" {
		t.Fatalf("expected dir_book.pdf, got %s", name)
	}
	if filepath.Dir(path) != base {
		t.Fatalf("file escaped base dir: %s", path)
	}
}

func TestStoreRemoveRejectsOutsidePaths(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := store.Remove("/etc/passwd"); err == nil {
		t.Fatal("expected error removing path outside base dir")
	}
}
