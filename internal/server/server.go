package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/forfeolab/forfeo-be/internal/assistant"
	"github.com/forfeolab/forfeo-be/internal/auth"
	"github.com/forfeolab/forfeo-be/internal/config"
	"github.com/forfeolab/forfeo-be/internal/http/handlers"
	"github.com/forfeolab/forfeo-be/internal/middleware"
	"github.com/forfeolab/forfeo-be/internal/session"
	"github.com/forfeolab/forfeo-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.AccountStore, generator assistant.Generator, logger *zap.Logger) *Server {
	router := mux.NewRouter()

	tokens := auth.NewTokenManager(cfg.SessionSecret, cfg.SessionIssuer, cfg.SessionTTL)
	resolver := session.NewResolver(store)
	gate := handlers.NewGate(store, tokens)
	builder := assistant.NewBuilder(generator, cfg.AssistantTimeout)

	handlers.NewHealthHandler(time.Now()).Register(router)
	handlers.NewAuthHandler(resolver, tokens, cfg.CookieSecure, logger).Register(router)
	handlers.NewDashboardHandler(gate, logger).Register(router)
	handlers.NewMissionsHandler(gate, store, logger).Register(router)
	handlers.NewChatHandler(builder, logger).Register(router)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(logger, router))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
