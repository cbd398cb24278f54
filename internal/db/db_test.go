package db

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Project-Sylos/Fixture/internal/types"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestNewDB tests the New function
func TestNewDB(t *testing.T) {
	tests := []struct {
		name        string
		dbPath      string
		expectError bool
		setup       func() string
	}{
		{
			name:   "in-memory database",
			dbPath: ":memory:",
		},
		{
			name: "temporary file database",
			setup: func() string {
				return filepath.Join(t.TempDir(), "ledger.db")
			},
		},
		{
			name:        "missing parent directory",
			expectError: true,
			setup: func() string {
				return filepath.Join(t.TempDir(), "missing", "dir", "ledger.db")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbPath := tt.dbPath
			if tt.setup != nil {
				dbPath = tt.setup()
			}

			db, err := New(dbPath)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error but got none")
					db.Close()
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			defer db.Close()
			if db.conn == nil {
				t.Errorf("Expected database connection but got nil")
			}
		})
	}
}

// TestDBMethods tests the ledger round trip
func TestDBMethods(t *testing.T) {
	db := newTestDB(t)

	run := &types.Run{
		Count:      3,
		OutputPath: "/tmp/test.txt",
		LineCount:  7,
		SizeBytes:  49,
		Checksum:   "abc123",
	}

	t.Run("InsertRun", func(t *testing.T) {
		if err := db.InsertRun(run); err != nil {
			t.Fatalf("Unexpected error inserting run: %v", err)
		}
		if run.ID == "" {
			t.Errorf("Expected InsertRun to assign an ID")
		}
		if run.CreatedAt.IsZero() {
			t.Errorf("Expected InsertRun to assign a timestamp")
		}
	})

	t.Run("GetRun", func(t *testing.T) {
		got, err := db.GetRun(run.ID)
		if err != nil {
			t.Fatalf("Unexpected error getting run: %v", err)
		}
		if got.Count != run.Count || got.LineCount != run.LineCount || got.SizeBytes != run.SizeBytes {
			t.Errorf("Run mismatch: expected %+v, got %+v", run, got)
		}
		if got.OutputPath != run.OutputPath || got.Checksum != run.Checksum {
			t.Errorf("Run mismatch: expected %+v, got %+v", run, got)
		}
		if !got.CreatedAt.Equal(run.CreatedAt) {
			t.Errorf("CreatedAt mismatch: expected %v, got %v", run.CreatedAt, got.CreatedAt)
		}
	})

	t.Run("GetRunNotFound", func(t *testing.T) {
		_, err := db.GetRun("missing")
		if !errors.Is(err, ErrRunNotFound) {
			t.Errorf("Expected ErrRunNotFound, got %v", err)
		}
	})

	t.Run("DuplicateID", func(t *testing.T) {
		dup := *run
		if err := db.InsertRun(&dup); err == nil {
			t.Errorf("Expected error inserting duplicate run ID")
		}
	})

	t.Run("CountRuns", func(t *testing.T) {
		count, err := db.CountRuns()
		if err != nil {
			t.Fatalf("Unexpected error counting runs: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected 1 run, got %d", count)
		}
	})

	t.Run("DeleteRun", func(t *testing.T) {
		if err := db.DeleteRun(run.ID); err != nil {
			t.Fatalf("Unexpected error deleting run: %v", err)
		}
		if err := db.DeleteRun(run.ID); !errors.Is(err, ErrRunNotFound) {
			t.Errorf("Expected ErrRunNotFound deleting twice, got %v", err)
		}
	})

	t.Run("InsertNil", func(t *testing.T) {
		if err := db.InsertRun(nil); err == nil {
			t.Errorf("Expected error inserting nil run")
		}
	})
}

// TestListRuns tests ordering and limits
func TestListRuns(t *testing.T) {
	db := newTestDB(t)

	empty, err := db.ListRuns(0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected empty ledger, got %d runs", len(empty))
	}

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		run := &types.Run{
			Count:      i,
			OutputPath: "/tmp/test.txt",
			LineCount:  2*i + 1,
			Checksum:   "sum",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.InsertRun(run); err != nil {
			t.Fatalf("Failed to insert run %d: %v", i, err)
		}
	}

	runs, err := db.ListRuns(0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	for i, run := range runs {
		if expected := 2 - i; run.Count != expected {
			t.Errorf("Position %d: expected newest-first count %d, got %d", i, expected, run.Count)
		}
	}

	limited, err := db.ListRuns(2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}
}

// TestPersistence tests that a file ledger keeps runs across reopen
func TestPersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger.db")

	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	run := &types.Run{Count: 1, OutputPath: "/tmp/test.txt", LineCount: 3, Checksum: "sum"}
	if err := db.InsertRun(run); err != nil {
		t.Fatalf("Failed to insert run: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("Expected ledger file to exist: %v", err)
	}

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	defer reopened.Close()

	if _, err := reopened.GetRun(run.ID); err != nil {
		t.Errorf("Expected run to survive reopen: %v", err)
	}
}
