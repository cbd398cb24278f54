package api

import (
	"time"

	"github.com/Project-Sylos/Fixture/internal/api/handlers"
	apimiddleware "github.com/Project-Sylos/Fixture/internal/api/middleware"
	"github.com/Project-Sylos/Fixture/sdk"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router represents the HTTP API router
type Router struct {
	fx *sdk.Fixture
}

// NewRouter creates a new API router
func NewRouter(fx *sdk.Fixture) *Router {
	return &Router{fx: fx}
}

// SetupRoutes configures all API routes using modular handlers
func (r *Router) SetupRoutes() *chi.Mux {
	router := chi.NewRouter()

	// Standard middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// Custom middleware
	router.Use(apimiddleware.CORS(r.fx.GetConfig().API.AllowedOrigins))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	fixtureHandler := handlers.NewFixtureHandler(r.fx)
	systemHandler := handlers.NewSystemHandler(r.fx)

	// Health check
	router.Get("/health", healthHandler.HealthCheck)

	// API routes
	router.Route("/api/v1", func(api chi.Router) {
		api.Route("/fixtures", func(fixtures chi.Router) {
			fixtures.Post("/", fixtureHandler.GenerateFixture)
			fixtures.Get("/", fixtureHandler.ListFixtures)
			fixtures.Get("/count", systemHandler.GetRunCount)
			fixtures.Get("/{id}", fixtureHandler.GetFixture)
			fixtures.Get("/{id}/data", fixtureHandler.GetFixtureData)
			fixtures.Delete("/{id}", fixtureHandler.DeleteFixture)
		})

		// System operations
		api.Get("/config", systemHandler.GetConfig)
	})

	return router
}
