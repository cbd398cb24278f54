package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Project-Sylos/Fixture/internal/types"
	"github.com/Project-Sylos/Fixture/sdk"
	"github.com/go-chi/chi/v5"
)

// Server represents the HTTP API server
type Server struct {
	router     *chi.Mux
	fx         *sdk.Fixture
	config     *types.APIConfig
	httpServer *http.Server
}

// NewServer creates a new API server
func NewServer(fx *sdk.Fixture, config *types.APIConfig) *Server {
	router := NewRouter(fx).SetupRoutes()

	return &Server{
		router: router,
		fx:     fx,
		config: config,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Addr returns the address the server listens on
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start starts the HTTP server and blocks until it stops.
// A clean Shutdown returns nil.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// GetRouter returns the configured router
func (s *Server) GetRouter() *chi.Mux {
	return s.router
}

// Stop drains in-flight requests and closes the ledger
func (s *Server) Stop(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down HTTP server: %w", err)
	}
	return s.fx.Close()
}
