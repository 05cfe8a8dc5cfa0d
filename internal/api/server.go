// File path: internal/api/server.go
package api

import (
	"encoding/json"
	"expvar"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/penguinworks/tftcoach/internal/agent"
	"github.com/penguinworks/tftcoach/internal/common"
	"github.com/penguinworks/tftcoach/internal/llm"
	"github.com/penguinworks/tftcoach/internal/memory"
	"github.com/penguinworks/tftcoach/internal/retriever"
)

// Server wires the hybrid retriever, the chat runner, and the
// conversation store behind the HTTP API.
type Server struct {
	router    chi.Router
	retriever *retriever.Service
	provider  llm.Provider
	runner    *agent.Runner
	store     *memory.Store
}

// NewServer builds the router. The memory store is optional; without it
// chat sessions are stateless.
func NewServer(retr *retriever.Service, provider llm.Provider, store *memory.Store) *Server {
	s := &Server{
		retriever: retr,
		provider:  provider,
		runner:    agent.NewRunner(provider, retr),
		store:     store,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/search", s.handleSearch)
		r.Post("/chat", s.handleChat)
		r.Post("/rebuild", s.handleRebuild)
	})
	r.Method(http.MethodGet, "/debug/vars", expvar.Handler())
	s.router = r
	providerName := "none"
	if provider != nil {
		providerName = provider.Name()
	}
	common.Logger().Info(
		"api: server built",
		"indexed_documents", retr.IndexSize(),
		"provider", providerName,
		"memory", store != nil,
	)
	return s
}

// Router exposes the configured handler for http.Server.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		common.Logger().Error("api: response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]interface{}{"error": err.Error()})
}
