package rag

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// keywordEmbedder maps texts onto unit vectors by keyword
func keywordEmbedder(_ context.Context, text string) ([]float32, error) {
	text = strings.ToLower(text)
	switch {
	case strings.Contains(text, "rust"):
		return []float32{1, 0, 0}, nil
	case strings.Contains(text, "armyworm"):
		return []float32{0, 1, 0}, nil
	default:
		return []float32{0, 0, 1}, nil
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestQuery(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rust.txt", "Maize rust: spray a fungicide and plant resistant varieties.")
	writeFile(t, dir, "armyworm.txt", "Fall armyworm: scout fields weekly and use approved pesticides.")
	writeFile(t, dir, ".gitkeep", "")

	l, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)), dir, keywordEmbedder, keywordEmbedder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.embeddedDocs != 2 {
		t.Fatalf("expected 2 documents, got %d", l.embeddedDocs)
	}

	res, err := l.Query(context.Background(), "There is rust on my maize", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || !strings.HasPrefix(res[0], "Maize rust") {
		t.Errorf("unexpected result: %v", res)
	}

	// Limit is capped at the number of documents
	res, err = l.Query(context.Background(), "armyworm", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 || !strings.HasPrefix(res[0], "Fall armyworm") {
		t.Errorf("unexpected result: %v", res)
	}
}

func TestDocumentsAndQueriesUseTheirEmbedder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rust.txt", "Maize rust: spray a fungicide.")
	writeFile(t, dir, "armyworm.txt", "Fall armyworm: scout fields weekly.")

	docCalls, queryCalls := 0, 0
	docEmbedder := func(ctx context.Context, text string) ([]float32, error) {
		docCalls++
		return keywordEmbedder(ctx, text)
	}
	queryEmbedder := func(ctx context.Context, text string) ([]float32, error) {
		queryCalls++
		return keywordEmbedder(ctx, text)
	}

	l, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)), dir, docEmbedder, queryEmbedder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if docCalls != 2 || queryCalls != 0 {
		t.Errorf("loading should only embed documents, doc=%d query=%d", docCalls, queryCalls)
	}

	if _, err := l.Query(context.Background(), "rust", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if docCalls != 2 || queryCalls != 1 {
		t.Errorf("query should use the query embedder, doc=%d query=%d", docCalls, queryCalls)
	}
}

func TestNewDocumentEmbeddingError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rust.txt", "Maize rust")

	failing := func(context.Context, string) ([]float32, error) {
		return nil, errors.New("quota exceeded")
	}

	if _, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)), dir, failing, keywordEmbedder); err == nil {
		t.Fatal("expected an error when a document can't be embedded")
	}
}

func TestQueryEmpty(t *testing.T) {
	l, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)), t.TempDir(), keywordEmbedder, keywordEmbedder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := l.Query(context.Background(), "rust", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 0 {
		t.Errorf("expected no results, got %v", res)
	}
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)), filepath.Join(t.TempDir(), "missing"), keywordEmbedder, keywordEmbedder)
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
