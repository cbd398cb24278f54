package fixture

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/Project-Sylos/Fixture/internal/db"
	"github.com/Project-Sylos/Fixture/internal/generator"
	"github.com/Project-Sylos/Fixture/internal/types"
)

// GenerateRequest asks for one fixture. Nil/empty fields fall back to config.
type GenerateRequest struct {
	Count      *int   `json:"count,omitempty"`
	OutputPath string `json:"output_path,omitempty"`
}

// Service generates fixtures and records every completed run in the ledger
type Service struct {
	cfg *types.Config
	db  *db.DB

	mu        sync.Mutex
	pathLocks map[string]*pathLock // One writer per output file
}

// pathLock serialises writers of one output file. refs counts the holder
// plus any waiters so the entry can be dropped once it is idle.
type pathLock struct {
	mu   sync.Mutex
	refs int
}

// NewService opens the ledger named by cfg and returns a ready service
func NewService(cfg *types.Config) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	database, err := db.New(cfg.Ledger.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Service{
		cfg:       cfg,
		db:        database,
		pathLocks: make(map[string]*pathLock),
	}, nil
}

// Generate writes a fixture and records it. The run is only stored once the
// file has been written and closed successfully.
func (s *Service) Generate(ctx context.Context, req *GenerateRequest) (*types.Run, error) {
	count := s.cfg.Generator.Count
	outputPath := s.cfg.Generator.OutputPath
	if req != nil {
		if req.Count != nil {
			count = *req.Count
		}
		if req.OutputPath != "" {
			outputPath = req.OutputPath
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output path: %w", err)
	}

	lock := s.acquire(absPath)
	defer s.release(absPath, lock)

	res, err := generator.Generate(ctx, generator.Options{
		Count:      count,
		OutputPath: absPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate fixture: %w", err)
	}

	run := &types.Run{
		Count:      count,
		OutputPath: res.Path,
		LineCount:  res.LineCount,
		SizeBytes:  res.SizeBytes,
		Checksum:   res.Checksum,
	}
	if err := s.db.InsertRun(run); err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}

	return run, nil
}

// GetRun returns a recorded run by ID
func (s *Service) GetRun(id string) (*types.Run, error) {
	return s.db.GetRun(id)
}

// ListRuns returns recorded runs newest first; limit <= 0 means all
func (s *Service) ListRuns(limit int) ([]*types.Run, error) {
	return s.db.ListRuns(limit)
}

// CountRuns returns the number of recorded runs
func (s *Service) CountRuns() (int, error) {
	return s.db.CountRuns()
}

// DeleteRun forgets a run. The fixture file itself is not removed.
func (s *Service) DeleteRun(id string) error {
	return s.db.DeleteRun(id)
}

// OpenRunData opens the file written by a run. The caller must close it.
// A later run that targets the same path replaces the contents.
func (s *Service) OpenRunData(id string) (io.ReadCloser, *types.Run, error) {
	run, err := s.db.GetRun(id)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(run.OutputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to open %s: %w", generator.ErrIO, run.OutputPath, err)
	}
	return f, run, nil
}

// GetConfig returns the current configuration
func (s *Service) GetConfig() *types.Config {
	return s.cfg
}

// Close closes the ledger
func (s *Service) Close() error {
	return s.db.Close()
}

// acquire takes the lock for path, registering it first if nobody else uses it
func (s *Service) acquire(path string) *pathLock {
	s.mu.Lock()
	lock, ok := s.pathLocks[path]
	if !ok {
		lock = &pathLock{}
		s.pathLocks[path] = lock
	}
	lock.refs++
	s.mu.Unlock()

	lock.mu.Lock()
	return lock
}

// release unlocks path and forgets it when no one holds or waits on it
func (s *Service) release(path string, lock *pathLock) {
	lock.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	lock.refs--
	if lock.refs == 0 {
		delete(s.pathLocks, path)
	}
}
