package db

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Project-Sylos/Fixture/internal/types"
	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb"
)

// ErrRunNotFound is returned when no run has the requested ID
var ErrRunNotFound = errors.New("run not found")

// DB wraps a DuckDB connection holding the run ledger
type DB struct {
	conn *sql.DB
	mu   sync.Mutex // Protects all database operations from concurrent access
}

// New opens the ledger at dbPath and makes sure the schema exists.
// ":memory:" or an empty path opens an in-memory ledger.
func New(dbPath string) (*DB, error) {
	dsn := dbPath
	if dsn == ":memory:" {
		dsn = ""
	}

	conn, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open DuckDB connection: %w", err)
	}

	// An in-memory DuckDB is private to one connection
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn}

	if err := db.InitializeSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// InitializeSchema creates the runs table and its index if missing
func (db *DB) InitializeSchema() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, err := db.conn.Exec(runsTableSQL); err != nil {
		return fmt.Errorf("failed to create %s table: %w", tableRuns, err)
	}
	if _, err := db.conn.Exec(runsIndexSQL); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// InsertRun stores a run. A missing ID or timestamp is filled in, and the
// stored values are written back into run.
func (db *DB) InsertRun(run *types.Run) error {
	if run == nil {
		return fmt.Errorf("run cannot be nil")
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	// DuckDB TIMESTAMP keeps microseconds
	run.CreatedAt = run.CreatedAt.UTC().Truncate(time.Microsecond)

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?, ?)", tableRuns, runColumns)
	_, err := db.conn.Exec(query,
		run.ID,
		run.Count,
		run.OutputPath,
		run.LineCount,
		run.SizeBytes,
		run.Checksum,
		run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run %s: %w", run.ID, err)
	}

	return nil
}

// GetRun retrieves a run by its ID
func (db *DB) GetRun(id string) (*types.Run, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", runColumns, tableRuns)
	run, err := scanRun(db.conn.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		return nil, fmt.Errorf("failed to get run %s: %w", id, err)
	}

	return run, nil
}

// ListRuns returns up to limit runs, newest first. A limit <= 0 returns all runs.
func (db *DB) ListRuns(limit int) ([]*types.Run, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY created_at DESC, id", runColumns, tableRuns)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	runs := []*types.Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}

// CountRuns returns the total number of recorded runs
func (db *DB) CountRuns() (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", tableRuns)
	if err := db.conn.QueryRow(query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return count, nil
}

// DeleteRun removes a run from the ledger. The fixture file is left alone.
func (db *DB) DeleteRun(id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", tableRuns)
	result, err := db.conn.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete run %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (*types.Run, error) {
	run := &types.Run{}
	err := row.Scan(
		&run.ID,
		&run.Count,
		&run.OutputPath,
		&run.LineCount,
		&run.SizeBytes,
		&run.Checksum,
		&run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return run, nil
}
