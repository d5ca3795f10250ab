// Package server provides the HTTP API for generating and serving brand styleguides.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/brand-styleguide/internal/db"
	"github.com/jonathan/brand-styleguide/internal/fetch"
	"github.com/jonathan/brand-styleguide/internal/llm"
	"github.com/jonathan/brand-styleguide/internal/observability"
	"github.com/jonathan/brand-styleguide/internal/pipeline"
	"github.com/jonathan/brand-styleguide/internal/server/middleware"
	"github.com/jonathan/brand-styleguide/internal/server/ratelimit"
)

// Store is the persistence the API needs. *db.DB implements it.
type Store interface {
	pipeline.Store
	GetStyleguide(ctx context.Context, id uuid.UUID) (*db.Styleguide, error)
	GetStyleguideDocument(ctx context.Context, id uuid.UUID) (string, error)
	ListStyleguides(ctx context.Context, filters db.StyleguideFilters) ([]db.StyleguideSummary, error)
	DeleteStyleguide(ctx context.Context, id uuid.UUID) error
	Ping(ctx context.Context) error
}

// Config holds server configuration
type Config struct {
	Port              int
	DatabaseURL       string
	RedisURL          string
	APIKey            string
	UseBrowser        bool
	MaxRepairAttempts int
	QualityThreshold  int
	Verbose           bool
}

// Deps are the collaborators a server runs with. Only Store is required.
type Deps struct {
	Store   Store
	Cache   fetch.Cache
	LLM     llm.Client
	Limiter *ratelimit.Limiter
	Metrics *observability.Metrics
}

// Server represents the HTTP server
type Server struct {
	cfg        Config
	deps       Deps
	httpServer *http.Server
	closers    []func()
}

// New connects to Postgres (required), Redis and Gemini (both optional)
// and builds a server around them.
func New(ctx context.Context, cfg Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	deps := Deps{
		Store:   database,
		Limiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		Metrics: observability.NewMetrics(),
	}
	closers := []func(){database.Close, deps.Limiter.Stop}

	if cfg.RedisURL != "" {
		cache, err := fetch.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("[SERVER] Redis unavailable, fetching without cache: %v", err)
		} else {
			deps.Cache = cache
			closers = append(closers, func() { _ = cache.Close() })
		}
	}

	if cfg.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.ConfigFromEnv(), cfg.APIKey)
		if err != nil {
			log.Printf("[SERVER] LLM client unavailable, AI sections disabled: %v", err)
		} else {
			deps.LLM = client
			closers = append(closers, func() { _ = client.Close() })
		}
	}

	s := NewWithDeps(cfg, deps)
	s.closers = closers
	return s, nil
}

// NewWithDeps builds a server from ready collaborators
func NewWithDeps(cfg Config, deps Deps) *Server {
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	s := &Server{cfg: cfg, deps: deps}
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // generation fetches a site and may call the LLM
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the routed API wrapped in the middleware chain
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /styleguides", s.handleCreateStyleguide)
	mux.HandleFunc("POST /styleguides/stream", s.handleCreateStyleguideStream)
	mux.HandleFunc("GET /styleguides", s.handleListStyleguides)
	mux.HandleFunc("GET /styleguides/{id}", s.handleGetStyleguide)
	mux.HandleFunc("GET /styleguides/{id}/document.html", s.handleGetDocument)
	mux.HandleFunc("GET /styleguides/{id}/tokens.css", s.handleGetTokensCSS)
	mux.HandleFunc("DELETE /styleguides/{id}", s.handleDeleteStyleguide)
	mux.HandleFunc("GET /health", s.handleHealth)
	if s.deps.Metrics != nil {
		mux.Handle("GET /metrics", s.deps.Metrics.Handler())
	}

	mws := []middleware.Middleware{middleware.Metrics(s.deps.Metrics)}
	if s.deps.Limiter != nil {
		mws = append(mws, middleware.RateLimit(s.deps.Limiter))
	}
	mws = append(mws, middleware.Logging, middleware.CORS)
	return middleware.Chain(mux, mws...)
}

// Start listens until SIGINT/SIGTERM, then shuts down gracefully
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.close()
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err := s.httpServer.Shutdown(ctx)
	s.close()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Println("Server stopped")
	return nil
}

func (s *Server) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// handleHealth reports liveness and whether the store answers
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok", "database": "ok"}
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.deps.Store.Ping(ctx); err != nil {
		status["status"] = "degraded"
		status["database"] = err.Error()
		s.jsonResponse(w, http.StatusServiceUnavailable, status)
		return
	}
	s.jsonResponse(w, http.StatusOK, status)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
