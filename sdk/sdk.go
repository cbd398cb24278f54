package sdk

import (
	"context"
	"fmt"
	"io"

	"github.com/Project-Sylos/Fixture/internal/config"
	"github.com/Project-Sylos/Fixture/internal/db"
	"github.com/Project-Sylos/Fixture/internal/fixture"
	"github.com/Project-Sylos/Fixture/internal/generator"
	"github.com/Project-Sylos/Fixture/internal/types"
)

// Fixture is the public SDK interface for the fixture generator
// This wraps the internal service to provide a clean public API
type Fixture struct {
	impl *fixture.Service
}

// New creates a new Fixture instance using the specified config file.
// An empty path uses the defaults. FIXTURE_* environment variables apply either way.
func New(configPath string) (*Fixture, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithDefaults creates a new Fixture instance using default configuration
func NewWithDefaults() (*Fixture, error) {
	return New("")
}

// NewWithConfig creates a new Fixture instance from an already built configuration
func NewWithConfig(cfg *Config) (*Fixture, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	impl, err := fixture.NewService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Fixture: %w", err)
	}

	return &Fixture{
		impl: impl,
	}, nil
}

// Generate writes a fixture file and records the run in the ledger
func (f *Fixture) Generate(ctx context.Context, req *GenerateRequest) (*Run, error) {
	return f.impl.Generate(ctx, req)
}

// GetRun retrieves a recorded run by ID
func (f *Fixture) GetRun(id string) (*Run, error) {
	return f.impl.GetRun(id)
}

// ListRuns returns recorded runs newest first; limit <= 0 returns all of them
func (f *Fixture) ListRuns(limit int) ([]*Run, error) {
	return f.impl.ListRuns(limit)
}

// CountRuns returns the number of recorded runs
func (f *Fixture) CountRuns() (int, error) {
	return f.impl.CountRuns()
}

// DeleteRun removes a run from the ledger without touching its file
func (f *Fixture) DeleteRun(id string) error {
	return f.impl.DeleteRun(id)
}

// OpenRunData opens the file a run wrote. The caller must close it.
func (f *Fixture) OpenRunData(id string) (io.ReadCloser, *Run, error) {
	return f.impl.OpenRunData(id)
}

// GetConfig returns the current configuration
func (f *Fixture) GetConfig() *Config {
	return f.impl.GetConfig()
}

// Close closes the ledger connection
func (f *Fixture) Close() error {
	return f.impl.Close()
}

// Re-export types for convenience
type (
	Config          = types.Config
	Run             = types.Run
	APIResponse     = types.APIResponse
	GenerateRequest = fixture.GenerateRequest
)

// Re-export errors
var (
	ErrIO           = generator.ErrIO
	ErrInvalidCount = generator.ErrInvalidCount
	ErrRunNotFound  = db.ErrRunNotFound
)
