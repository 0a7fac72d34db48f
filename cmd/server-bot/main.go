package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"google.golang.org/genai"

	"astra-kilimo/internal/ai/gemini"
	"astra-kilimo/internal/ai/geminiembedding"
	"astra-kilimo/internal/config"
	"astra-kilimo/internal/logic"
	"astra-kilimo/internal/media"
	"astra-kilimo/internal/rag"
	"astra-kilimo/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.String("err", err.Error()))

		os.Exit(1)
	}

	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	aiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Error("failed to create genai client", slog.String("err", err.Error()))

		os.Exit(1)
	}

	logicCfg := logic.Config{
		StrictImageCheck: cfg.Media.StrictImageCheck,
	}

	if cfg.PersonalityFile != "" {
		logicCfg.Instructions, err = logic.ReadInstructions(cfg.PersonalityFile)
		if err != nil {
			logger.Error("failed to load personality", slog.String("err", err.Error()))

			os.Exit(1)
		}
	}

	if cfg.RAGPath != "" {
		ragL, err := rag.New(logger, cfg.RAGPath,
			geminiembedding.EmbeddingFunc(aiClient, cfg.EmbeddingModel, geminiembedding.TaskDocument),
			geminiembedding.EmbeddingFunc(aiClient, cfg.EmbeddingModel, geminiembedding.TaskQuery))
		if err != nil {
			logger.Error("failed to create knowledge base", slog.String("err", err.Error()))

			os.Exit(1)
		}
		logicCfg.Knowledge = ragL
	}

	model := gemini.New(logger, aiClient, cfg.Gemini.Model, cfg.Gemini.Timeout)
	fetcher := media.New(logger, cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Media.Timeout, cfg.Media.MaxBytes)
	srv := server.New(logger, cfg.Addr, logic.New(logger, model, fetcher, logicCfg))

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt)
	go func() {
		<-stopCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Stop(ctx); err != nil {
			logger.Error("failed to stop server", slog.String("err", err.Error()))
		}
	}()

	logger.Info("starting server", slog.String("addr", cfg.Addr), slog.String("model", cfg.Gemini.Model))
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", slog.String("err", err.Error()))
	}
}
