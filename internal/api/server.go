// Package api is the thin HTTP collaborator over the analyzer; it owns
// upload/download mechanics and rendering, no sentiment logic.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/spacesedan/tweetsense/internal/analyzer"
)

type Server struct {
	router   *chi.Mux
	analyzer *analyzer.Analyzer

	// defaultColumn is used when a batch request names no text column.
	defaultColumn string
}

func NewServer(a *analyzer.Analyzer, defaultColumn string) *Server {
	s := &Server{
		router:        chi.NewRouter(),
		analyzer:      a,
		defaultColumn: defaultColumn,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	s.router.Get("/health", s.handleHealth)
	s.router.Post("/api/v1/text", s.handleAnalyzeText)
	s.router.Post("/api/v1/batch", s.handleAnalyzeBatch)
}

func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
