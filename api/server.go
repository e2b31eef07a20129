// Package api exposes evaluation over HTTP. The API layer only ingests
// input, orchestrates the engine and serializes output; it performs no
// scoring logic of its own.
package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"visia/core/reference"
	"visia/core/results"
	"visia/core/score"
	"visia/internal/errors"
	"visia/internal/logging"
)

// Server is the HTTP API server.
type Server struct {
	router  *chi.Mux
	server  *http.Server
	logger  *zap.Logger
	version string

	evaluator *score.Evaluator
	refStore  *reference.Store
	results   *results.Store

	shutdownTimeout time.Duration
}

// Config carries the server wiring.
type Config struct {
	Addr            string
	Version         string
	ShutdownTimeout time.Duration

	ReferenceStore *reference.Store
	ResultStore    *results.Store
}

// NewServer builds the router and binds all routes.
func NewServer(cfg Config) *Server {
	s := &Server{
		logger:          logging.With(zap.String("component", "api")),
		version:         cfg.Version,
		evaluator:       score.NewEvaluator(cfg.ReferenceStore),
		refStore:        cfg.ReferenceStore,
		results:         cfg.ResultStore,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = 10 * time.Second
	}

	router := chi.NewRouter()
	router.Use(requestLogger(s.logger))
	router.Use(chimiddleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/evaluate", s.handleEvaluate)
		r.Get("/projects", s.handleListProjects)
		r.Get("/projects/{hash}", s.handleGetProject)
		r.Get("/projects/{hash}/report", s.handleProjectReport)
		r.Get("/reference/versions", s.handleReferenceVersions)
		r.Get("/health", s.handleHealth)
		r.Get("/version", s.handleVersion)
	})

	// Unprefixed aliases for load balancer probes.
	router.Get("/health", s.handleHealth)
	router.Get("/version", s.handleVersion)

	s.router = router
	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until an error or a termination signal, then shuts down
// gracefully within the configured timeout.
func (s *Server) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("starting server", zap.String("addr", s.server.Addr))
		serverErrors <- s.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		s.logger.Info("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			s.logger.Error("graceful shutdown failed", zap.Error(err))
			return s.server.Close()
		}
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var resp ErrorResponse
	resp.Error.Type = string(errors.TypeInternal)
	resp.Error.Message = "internal error"

	var domainErr *errors.Error
	if stderrors.As(err, &domainErr) {
		resp.Error.Type = string(domainErr.Type)
		resp.Error.Message = domainErr.Message
	}

	s.writeJSON(w, statusForError(err), resp)
}

// statusForError maps the error taxonomy to HTTP status codes. Caller
// mistakes are 4xx; missing data is 404; everything else is a server fault.
func statusForError(err error) int {
	switch {
	case errors.IsType(err, errors.TypeValidation),
		errors.IsType(err, errors.TypeDivisionByZero),
		errors.IsType(err, errors.TypeIncompleteScore),
		errors.IsType(err, errors.TypeOutOfRange):
		return http.StatusBadRequest
	case errors.IsType(err, errors.TypeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
