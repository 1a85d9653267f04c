// Package httpapi exposes a Pipework dispatcher over HTTP.
//
// This is a demonstration adapter: the engine's own boundary is purely
// in-process, and this server is one possible host around it.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aretw0/pipework/pkg/domain"
	"github.com/aretw0/pipework/pkg/ports"
	"github.com/go-chi/chi/v5"
)

// Server serves a dispatcher over two routes:
//
//	POST /process  submit an action, receive its outcome
//	GET  /ledger   read the recorded history
type Server struct {
	dispatcher ports.Dispatcher
	logger     *slog.Logger
}

// NewHandler creates a new HTTP handler around the dispatcher.
func NewHandler(dispatcher ports.Dispatcher, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	server := &Server{
		dispatcher: dispatcher,
		logger:     logger,
	}

	r := chi.NewRouter()
	r.Post("/process", server.Process)
	r.Get("/ledger", server.Ledger)
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ProcessRequest is the wire form of an action submission.
type ProcessRequest struct {
	Name    string         `json:"name"`
	Payload map[string]any `json:"payload,omitempty"`
	Actor   string         `json:"actor,omitempty"`
}

// ProcessResponse is the wire form of an outcome.
type ProcessResponse struct {
	Outcome domain.Outcome `json:"outcome"`
}

// LedgerResponse is the wire form of a ledger snapshot.
type LedgerResponse struct {
	Entries []domain.LedgerEntry `json:"entries"`
}

// Process handles POST /process.
func (s *Server) Process(w http.ResponseWriter, r *http.Request) {
	var body ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("process: invalid request body", "error", err)
		return
	}

	action := domain.BuildAction(body.Name,
		domain.WithActor(body.Actor),
		domain.WithPayload(body.Payload),
	)

	outcome, err := s.dispatcher.Process(r.Context(), action)
	if err != nil {
		// Only a ledger append failure reaches here; the outcome itself
		// is still well-formed but the recording guarantee is broken.
		http.Error(w, "Recording failed", http.StatusInternalServerError)
		s.logger.Error("process: recording failed", "action", action.Name, "error", err)
		return
	}

	writeJSON(w, s.logger, ProcessResponse{Outcome: outcome})
}

// Ledger handles GET /ledger.
func (s *Server) Ledger(w http.ResponseWriter, r *http.Request) {
	entries, err := s.dispatcher.Ledger(r.Context())
	if err != nil {
		http.Error(w, "Ledger read failed", http.StatusInternalServerError)
		s.logger.Error("ledger: snapshot failed", "error", err)
		return
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	writeJSON(w, s.logger, LedgerResponse{Entries: entries})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}
