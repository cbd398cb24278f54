package types

import (
	"time"
)

// Config represents the complete configuration for Fixture
type Config struct {
	Generator GeneratorConfig `json:"generator"`
	Ledger    LedgerConfig    `json:"ledger"`
	API       APIConfig       `json:"api"`
}

// GeneratorConfig controls what the fixture file contains and where it goes
type GeneratorConfig struct {
	Count      int    `json:"count" env:"FIXTURE_COUNT"`
	OutputPath string `json:"output_path" env:"FIXTURE_OUTPUT"`
}

// LedgerConfig represents the run ledger storage configuration
type LedgerConfig struct {
	DBPath string `json:"db_path" env:"FIXTURE_DB_PATH"`
}

// APIConfig represents the HTTP API configuration
type APIConfig struct {
	Host string `json:"host" env:"FIXTURE_API_HOST"`
	Port int    `json:"port" env:"FIXTURE_API_PORT"`

	// OutputDir confines output_path values sent over HTTP
	OutputDir string `json:"output_dir" env:"FIXTURE_API_OUTPUT_DIR"`

	// AllowedOrigins lists browser origins granted CORS access. Empty means none.
	AllowedOrigins []string `json:"allowed_origins,omitempty" env:"FIXTURE_API_ALLOWED_ORIGINS" envSeparator:","`
}

// Run is a ledger record of one completed fixture generation
type Run struct {
	ID         string    `json:"id" db:"id"`
	Count      int       `json:"count" db:"count"`
	OutputPath string    `json:"output_path" db:"output_path"` // Absolute
	LineCount  int       `json:"line_count" db:"line_count"`   // Always 2*Count+1
	SizeBytes  int64     `json:"size_bytes" db:"size_bytes"`
	Checksum   string    `json:"checksum" db:"checksum"` // SHA256 hex of the file bytes
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// APIResponse represents a generic API response
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Defaults
const (
	DefaultCount      = 10000
	DefaultOutputPath = "test.txt"
	DefaultDBPath     = "./fixture.db"
	DefaultAPIHost    = "localhost"
	DefaultAPIPort    = 8087
	DefaultOutputDir  = "."
)

// LinePrefix is prepended to every value written to a fixture file
const LinePrefix = "data-"
