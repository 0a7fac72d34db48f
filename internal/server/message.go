package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"astra-kilimo/internal/logic"
	"astra-kilimo/internal/twiml"
)

func (s *Server) getHealth(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) postWhatsapp(w http.ResponseWriter, r *http.Request) {
	// A body that can't be parsed is handled as an empty message
	if err := r.ParseForm(); err != nil {
		s.logger.Warn("failed to parse form", slog.String("err", err.Error()))
	}

	msg := logic.InboundMessage{
		From:             r.FormValue("From"),
		Body:             r.FormValue("Body"),
		MediaCount:       parseMediaCount(r.FormValue("NumMedia")),
		MediaURL:         r.FormValue("MediaUrl0"),
		MediaContentType: r.FormValue("MediaContentType0"),
	}

	res := s.logic.Handle(r.Context(), msg)
	s.logger.Info("message handled", slog.Int("numMedia", msg.MediaCount), slog.String("kind", res.Kind.String()))

	b, err := twiml.Reply(res.Reply)
	if err != nil {
		s.logger.Error("failed to render reply", slog.String("err", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", twiml.ContentType)
	_, _ = w.Write(b)
}

// parseMediaCount treats missing, invalid and negative values as zero
func parseMediaCount(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0
	}

	return n
}
