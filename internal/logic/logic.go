// Package logic turns an inbound chat message into the assistant's reply
package logic

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"astra-kilimo/internal/ai/domain"
	"astra-kilimo/internal/media"
)

// DefaultInstructions is prepended to every prompt
const DefaultInstructions = "You are *Astra Kilimo*, a WhatsApp-based AI assistant. " +
	"You help farmers by explaining agricultural topics and analyzing crop health using images. " +
	"Use simple Swahili or English. If an image is sent, detect diseases/pests and suggest a clear treatment.\n\n"

const imageRequest = "Analyze this crop image for disease or pests and recommend treatment:\n\n"

const knowledgeLimit = 3

type generator interface {
	Generate(ctx context.Context, req domain.Request) (string, error)
}

type fetcher interface {
	Fetch(ctx context.Context, mediaURL string) ([]byte, error)
}

type knowledge interface {
	Query(ctx context.Context, query string, limit int) ([]string, error)
}

// InboundMessage is the part of the webhook call the assistant cares about
type InboundMessage struct {
	From             string
	Body             string
	MediaCount       int
	MediaURL         string
	MediaContentType string
}

// Result is the outcome of handling one message
type Result struct {
	Reply string
	Kind  Kind
	Err   error
}

// Config .
type Config struct {
	Instructions string
	// StrictImageCheck rejects fetched media that does not sniff as an image
	StrictImageCheck bool
	// Knowledge is optional, nil disables context lookup
	Knowledge knowledge
}

// Logic .
type Logic struct {
	logger  *slog.Logger
	model   generator
	fetcher fetcher
	config  Config
}

// New .
func New(logger *slog.Logger, model generator, fetcher fetcher, config Config) *Logic {
	if config.Instructions == "" {
		config.Instructions = DefaultInstructions
	}

	return &Logic{
		logger:  logger,
		model:   model,
		fetcher: fetcher,
		config:  config,
	}
}

// Handle never fails, every error is mapped to a reply in the result
func (l *Logic) Handle(ctx context.Context, msg InboundMessage) Result {
	logger := l.logger.With(slog.String("from", msg.From))

	if msg.MediaCount > 0 {
		if !strings.Contains(msg.MediaContentType, "image") {
			return failure(KindUnsupportedMedia, nil)
		}

		return l.handleImage(ctx, logger, msg)
	}

	return l.handleText(ctx, logger, msg)
}

func (l *Logic) handleImage(ctx context.Context, logger *slog.Logger, msg InboundMessage) Result {
	logger.Debug("handling image", slog.String("contentType", msg.MediaContentType))

	b, err := l.fetcher.Fetch(ctx, msg.MediaURL)
	if err != nil {
		logger.Error("[IMAGE ERROR] failed to fetch media", slog.String("tag", "IMAGE ERROR"), slog.String("err", err.Error()))

		return failure(KindImageProcessing, err)
	}

	img := &domain.Image{MimeType: msg.MediaContentType, Data: b}
	encoded := img.Base64()
	if media.HasErrorMarker(encoded) {
		logger.Warn("fetched media looks like an error document", slog.Int("size", len(b)))

		return failure(KindImageUnreadable, nil)
	}
	if l.config.StrictImageCheck && !media.IsImage(b) {
		logger.Warn("fetched media is not an image", slog.Int("size", len(b)))

		return failure(KindImageUnreadable, nil)
	}

	prompt := l.config.Instructions + imageRequest + img.DataURI()
	res, err := l.model.Generate(ctx, domain.Request{Message: prompt, Image: img})
	if err != nil {
		logger.Error("[IMAGE ERROR] model call failed", slog.String("tag", "IMAGE ERROR"), slog.String("err", err.Error()))

		return failure(KindImageProcessing, err)
	}

	return success(res)
}

func (l *Logic) handleText(ctx context.Context, logger *slog.Logger, msg InboundMessage) Result {
	body := strings.TrimSpace(msg.Body)
	logger.Debug("handling text", slog.Int("length", len(body)))

	prompt := l.config.Instructions + l.knowledgeContext(ctx, logger, body) + body
	res, err := l.model.Generate(ctx, domain.Request{Message: prompt})
	if err != nil {
		logger.Error("[TEXT ERROR] model call failed", slog.String("tag", "TEXT ERROR"), slog.String("err", err.Error()))

		return failure(KindTextProcessing, err)
	}

	return success(res)
}

// knowledgeContext looks up related documents, a failed lookup only drops the context
func (l *Logic) knowledgeContext(ctx context.Context, logger *slog.Logger, query string) string {
	if l.config.Knowledge == nil || query == "" {
		return ""
	}

	docs, err := l.config.Knowledge.Query(ctx, query, knowledgeLimit)
	if err != nil {
		logger.Warn("knowledge lookup failed", slog.String("err", err.Error()))

		return ""
	}
	if len(docs) == 0 {
		return ""
	}

	return "Context from the knowledge base:\n" + strings.Join(docs, "\n") + "\n\n"
}

// FormatReply adapts markdown bold to the single asterisk emphasis of the chat platform
func FormatReply(text string) string {
	return strings.ReplaceAll(text, "**", "*")
}

func success(text string) Result {
	return Result{Reply: FormatReply(text), Kind: KindNone}
}

func failure(kind Kind, err error) Result {
	return Result{Reply: kind.Reply(), Kind: kind, Err: err}
}

// ReadInstructions loads custom assistant instructions from a text file
func ReadInstructions(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read instructions: %w", err)
	}

	s := strings.TrimSpace(string(b))
	if s == "" {
		return "", fmt.Errorf("instructions file %s is empty", path)
	}

	return s + "\n\n", nil
}
