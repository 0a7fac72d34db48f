// Package gemini contains the Gemini implementation of the model service
package gemini

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"astra-kilimo/internal/ai/domain"
)

// Logic .
type Logic struct {
	logger *slog.Logger

	client  *genai.Client
	model   string
	timeout time.Duration
}

// New .
func New(logger *slog.Logger, client *genai.Client, model string, timeout time.Duration) *Logic {
	return &Logic{
		logger:  logger,
		client:  client,
		model:   model,
		timeout: timeout,
	}
}

// Generate sends a single prompt to the model and returns the response text.
// The image bytes, when present, are attached as an inline part after the text.
// Image prompts already carry the data URI in the text, so the image travels twice
// and counts double against the inline request size limit (about 20MB).
func (l *Logic) Generate(ctx context.Context, req domain.Request) (string, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	parts := []*genai.Part{genai.NewPartFromText(req.Message)}
	if req.Image != nil {
		parts = append(parts, genai.NewPartFromBytes(req.Image.Data, req.Image.MimeType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	l.logger.Debug("sending prompt", slog.String("model", l.model), slog.Int("promptLength", len(req.Message)), slog.Bool("image", req.Image != nil))
	resp, err := l.client.Models.GenerateContent(ctx, l.model, contents, nil)
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("empty response from model")
	}

	return text, nil
}
