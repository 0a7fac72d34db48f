// Package server is the HTTP server implementation for the webhook
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"astra-kilimo/internal/logic"
)

type assistant interface {
	Handle(ctx context.Context, msg logic.InboundMessage) logic.Result
}

// Server .
type Server struct {
	logger *slog.Logger
	h      *chi.Mux
	srv    *http.Server
	logic  assistant
}

// New .
func New(logger *slog.Logger, addr string, assistantLogic assistant) *Server {
	h := chi.NewMux()
	s := &Server{
		logger: logger,
		h:      h,
		srv:    &http.Server{Addr: addr, Handler: h},
		logic:  assistantLogic,
	}
	s.addRoutes()

	return s
}

func (s *Server) addRoutes() {
	s.h.Use(middleware.Recoverer)

	s.h.Get("/healthz", s.getHealth)
	s.h.Post("/whatsapp", s.postWhatsapp)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.h
}

// Start .
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Stop .
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
