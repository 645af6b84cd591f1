// Package server provides the HTTP API for PromptCraft.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/promptcraft/backend/internal/agent"
	"github.com/promptcraft/backend/internal/cache"
	"github.com/promptcraft/backend/internal/config"
	"github.com/promptcraft/backend/internal/knowledge"
)

// Server is the HTTP server for the PromptCraft API.
type Server struct {
	archAgent *agent.ArchitectureAgent
	uiAgent   *agent.UIResearchAgent
	kb        *knowledge.Service
	cache     *cache.Cache // nil when caching is disabled
	config    *config.Config
	logger    *zap.Logger
	server    *http.Server
}

// NewServer creates a server with the given dependencies. cache may be nil.
func NewServer(
	archAgent *agent.ArchitectureAgent,
	uiAgent *agent.UIResearchAgent,
	kb *knowledge.Service,
	responseCache *cache.Cache,
	cfg *config.Config,
	logger *zap.Logger,
) *Server {
	return &Server{
		archAgent: archAgent,
		uiAgent:   uiAgent,
		kb:        kb,
		cache:     responseCache,
		config:    cfg,
		logger:    logger,
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Duration(s.config.Server.RequestTimeout) * time.Second))
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.config.CORS.Origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/chat/architecture", s.handleArchitectureChat)
		r.Post("/chat/database", s.handleDatabaseChat)
		r.Post("/chat/api", s.handleAPIDesignChat)
		r.Post("/chat/ui", s.handleUIResearchChat)
		r.Post("/chat/prompts", s.handlePromptsChat)
		r.Post("/knowledge/search", s.handleKnowledgeSearch)
		r.Get("/status", s.handleStatus)
	})
	r.Get("/health", s.handleHealth)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
