// Package httpapi exposes the question-answering pipeline over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reparo-labs/partassist/internal/core/domain"
	"github.com/reparo-labs/partassist/internal/core/ports/driving"
	"github.com/reparo-labs/partassist/internal/logger"
)

// askRequest is the body of POST /ask.
type askRequest struct {
	Query string `json:"query"`
}

// askResponse is the success body of POST /ask.
type askResponse struct {
	Response string `json:"response"`
}

// errorResponse is the failure body for all endpoints.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Trace   string `json:"trace,omitempty"`
}

// Server wraps an AskService behind a small JSON API.
type Server struct {
	ask     driving.AskService
	timeout time.Duration
	http    *http.Server
}

// NewServer creates an HTTP server bound to addr. timeout bounds each
// /ask request end to end; zero means no bound beyond the outbound
// adapters' own timeouts.
func NewServer(addr string, ask driving.AskService, timeout time.Duration) *Server {
	s := &Server{ask: ask, timeout: timeout}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /ask", s.handleAsk)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.http = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe blocks serving requests until Shutdown is called or
// the listener fails.
func (s *Server) ListenAndServe() error {
	logger.Info("Listening on %s", s.http.Addr)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler returns the underlying HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "invalid request body",
			Details: err.Error(),
		})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "query must not be empty",
		})
		return
	}

	ctx := r.Context()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	answer, err := s.ask.Ask(ctx, req.Query)
	if err != nil {
		trace := uuid.NewString()[:8]
		logger.Error("Ask failed [%s]: %v", trace, err)
		status := http.StatusInternalServerError
		msg := "failed to answer query"
		if errors.Is(err, domain.ErrInvalidInput) {
			status = http.StatusBadRequest
			msg = "invalid query"
		}
		writeJSON(w, status, errorResponse{
			Error:   msg,
			Details: err.Error(),
			Trace:   trace,
		})
		return
	}

	writeJSON(w, http.StatusOK, askResponse{Response: answer})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Write response: %v", err)
	}
}
