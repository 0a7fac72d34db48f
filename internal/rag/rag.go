// Package rag is the optional crop knowledge base used to enrich text questions
package rag

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/philippgille/chromem-go"
)

const collectionKey = "crop-knowledge"

// Logic .
type Logic struct {
	logger  *slog.Logger
	ragPath string

	db           *chromem.DB
	docEmbedder  chromem.EmbeddingFunc
	embeddedDocs int
}

// New loads every file under ragPath into an in-memory collection.
// Files are embedded with docEmbedder, questions with queryEmbedder.
func New(logger *slog.Logger, ragPath string, docEmbedder, queryEmbedder chromem.EmbeddingFunc) (*Logic, error) {
	db := chromem.NewDB()
	_, err := db.CreateCollection(collectionKey, nil, queryEmbedder)
	if err != nil {
		logger.Error("failed to create knowledge collection", slog.String("collection", collectionKey), slog.String("err", err.Error()))

		return nil, err
	}

	l := &Logic{
		logger:  logger,
		ragPath: ragPath,

		db:          db,
		docEmbedder: docEmbedder,
	}

	return l, l.loadContent()
}

func (l *Logic) loadContent() error {
	l.logger.Info("started loading knowledge base", slog.String("path", l.ragPath))
	dir := os.DirFS(l.ragPath)

	coll := l.db.GetCollection(collectionKey, nil)

	ctx := context.Background()
	id := 1
	err := fs.WalkDir(dir, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk dir %s/%s: %w", l.ragPath, path, err)
		}
		if d.IsDir() || d.Name() == ".gitkeep" {
			return nil
		}

		l.logger.Debug("loading knowledge document", slog.String("path", path))

		f, err := dir.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()

		b, err := io.ReadAll(f)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		embedding, err := l.docEmbedder(ctx, string(b))
		if err != nil {
			return fmt.Errorf("failed to embed %s: %w", path, err)
		}

		err = coll.AddDocument(ctx, chromem.Document{
			ID:        fmt.Sprintf("%d", id),
			Content:   string(b),
			Metadata:  map[string]string{"path": path},
			Embedding: embedding,
		})
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", path, err)
		}

		id += 1
		return nil
	})

	l.embeddedDocs = id - 1

	l.logger.Info("knowledge base loaded", slog.Int("documents", l.embeddedDocs))

	return err
}

// Query returns the content of the most similar documents, best match first
func (l *Logic) Query(ctx context.Context, query string, limit int) ([]string, error) {
	if l.embeddedDocs == 0 || limit <= 0 {
		return nil, nil
	}

	if limit > l.embeddedDocs {
		limit = l.embeddedDocs
	}

	coll := l.db.GetCollection(collectionKey, nil)
	res, err := coll.Query(ctx, query, limit, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query knowledge base: %w", err)
	}

	l.logger.Debug("knowledge query done", slog.Int("results", len(res)))

	out := make([]string, 0, len(res))
	for _, r := range res {
		out = append(out, r.Content)
	}

	return out, nil
}
