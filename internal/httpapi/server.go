// Package httpapi exposes the generation and assessment pipeline over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kmin1231/2xai-sub000/internal/assessment"
	"github.com/kmin1231/2xai-sub000/internal/generation"
	"github.com/kmin1231/2xai-sub000/internal/moderation"
	"github.com/kmin1231/2xai-sub000/internal/telemetry"
)

// Config holds the server's dependencies. Cache and ReadyChecks are
// optional; everything else is required.
type Config struct {
	Moderator   *moderation.Moderator
	Generator   generation.Generator
	Adjuster    *assessment.Adjuster
	Recorder    telemetry.Recorder
	Cache       *generation.ContentCache
	ReadyChecks []func(context.Context) error
}

// Server handles the inbound generation and assessment requests.
type Server struct {
	moderator *moderation.Moderator
	generator generation.Generator
	adjuster  *assessment.Adjuster
	recorder  telemetry.Recorder
	cache     *generation.ContentCache
	ready     []func(context.Context) error
}

// New creates a Server from its dependencies.
func New(cfg Config) *Server {
	return &Server{
		moderator: cfg.Moderator,
		generator: cfg.Generator,
		adjuster:  cfg.Adjuster,
		recorder:  cfg.Recorder,
		cache:     cfg.Cache,
		ready:     cfg.ReadyChecks,
	}
}

// Routes creates the HTTP router.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handleHealthz)
	mux.HandleFunc("GET /readyz", s.handleReadyz)
	mux.HandleFunc("POST /api/text/contents/{level}", s.handleGenerate)
	mux.HandleFunc("POST /api/text/check-answer", s.handleCheckAnswer)
	return mux
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	for _, check := range s.ready {
		if err := check(r.Context()); err != nil {
			slog.Error("readiness check failed", "error", err)
			writeError(w, http.StatusServiceUnavailable, "not ready", "")
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}

// record runs one telemetry write and swallows its error: a failed write is
// logged but never fails the request that produced it. The write gets a
// context detached from the client so a disconnect cannot cancel it.
func (s *Server) record(ctx context.Context, what string, fn func(context.Context) error) {
	if err := fn(context.WithoutCancel(ctx)); err != nil {
		slog.Error("telemetry write failed", "record", what, "error", err)
	}
}

type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// writeError sends a classified error response. Detail carries the taxonomy
// kind only — raw diagnostic text stays in logs and telemetry.
func writeError(w http.ResponseWriter, status int, message, detail string) {
	writeJSON(w, status, errorBody{Status: status, Message: message, Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("write response failed", "error", err)
	}
}
