package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"visia/core/report"
	"visia/core/results"
	"visia/internal/errors"
)

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Validation("invalid JSON payload: "+err.Error()))
		return
	}

	result, err := s.evaluator.Evaluate(r.Context(), &req.Input, req.ReferenceVersion)
	if err != nil {
		s.writeError(w, err)
		return
	}

	persisted := false
	if req.Persist && s.results != nil {
		rec := &results.Record{
			Result:   result,
			Input:    &req.Input,
			StoredAt: time.Now().UTC(),
		}
		if err := s.results.Put(r.Context(), rec); err != nil {
			s.writeError(w, err)
			return
		}
		persisted = true
	}

	s.writeJSON(w, http.StatusOK, EvaluateResponse{
		Result:     result,
		Persisted:  persisted,
		DurationMs: time.Since(start).Milliseconds(),
		APIVersion: s.version,
	})
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	if s.results == nil {
		s.writeError(w, errors.Storage("result storage is not configured", nil))
		return
	}
	list := s.results.List()
	s.writeJSON(w, http.StatusOK, ProjectListResponse{Projects: list, Count: len(list)})
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	if s.results == nil {
		s.writeError(w, errors.Storage("result storage is not configured", nil))
		return
	}
	rec, err := s.results.Get(r.Context(), chi.URLParam(r, "hash"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleProjectReport(w http.ResponseWriter, r *http.Request) {
	if s.results == nil {
		s.writeError(w, errors.Storage("result storage is not configured", nil))
		return
	}
	rec, err := s.results.Get(r.Context(), chi.URLParam(r, "hash"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	format := report.Format(r.URL.Query().Get("formato"))
	formatter, err := report.New(format)
	if err != nil {
		s.writeError(w, err)
		return
	}

	opts := report.Options{
		EmittedAt:      time.Now().UTC(),
		ShowComponents: r.URL.Query().Get("componentes") == "true",
	}

	contentType := "text/plain; charset=utf-8"
	switch formatter.Format() {
	case report.FormatJSON:
		contentType = "application/json"
	case report.FormatMarkdown:
		contentType = "text/markdown; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)

	if err := formatter.Render(w, rec, opts); err != nil {
		s.logger.Error("failed to render report",
			zap.String("hash", rec.Result.Hash), zap.Error(err))
	}
}

func (s *Server) handleReferenceVersions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, ReferenceVersionsResponse{
		Versions: s.refStore.Versions(),
		Latest:   s.refStore.Latest().Version(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Time: time.Now().UTC()})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, VersionResponse{
		Version:          s.version,
		ReferenceVersion: s.refStore.Latest().Version(),
	})
}
