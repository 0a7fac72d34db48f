// Package geminiembedding adapts Gemini embeddings to the knowledge base
package geminiembedding

import (
	"context"
	"errors"
	"fmt"

	"github.com/philippgille/chromem-go"
	"google.golang.org/genai"
)

// Task types, documents and the questions matched against them are embedded differently
const (
	TaskDocument = "RETRIEVAL_DOCUMENT"
	TaskQuery    = "RETRIEVAL_QUERY"
)

var errNoEmbedding = errors.New("no embeddings returned")

// EmbeddingFunc embeds a single text for the given retrieval task
func EmbeddingFunc(aiClient *genai.Client, embeddingModel string, taskType string) chromem.EmbeddingFunc {
	cfg := &genai.EmbedContentConfig{TaskType: taskType}

	return func(ctx context.Context, text string) ([]float32, error) {
		res, err := aiClient.Models.EmbedContent(ctx, embeddingModel, genai.Text(text), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to embed %s: %w", taskType, err)
		}
		if len(res.Embeddings) == 0 || len(res.Embeddings[0].Values) == 0 {
			return nil, errNoEmbedding
		}

		return res.Embeddings[0].Values, nil
	}
}
