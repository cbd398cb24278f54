package db

// Table names for DuckDB storage
const (
	tableRuns = "runs"
)

// runsTableSQL creates the ledger table. Existing rows survive restarts.
const runsTableSQL = `
CREATE TABLE IF NOT EXISTS runs (
	id          VARCHAR PRIMARY KEY,
	count       BIGINT NOT NULL,
	output_path VARCHAR NOT NULL,
	line_count  BIGINT NOT NULL,
	size_bytes  BIGINT NOT NULL,
	checksum    VARCHAR NOT NULL,
	created_at  TIMESTAMP NOT NULL
)`

const runsIndexSQL = `CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`

const runColumns = "id, count, output_path, line_count, size_bytes, checksum, created_at"
