package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Project-Sylos/Fixture/internal/types"
	"github.com/caarlos0/env/v11"
)

// DefaultConfig returns the configuration that reproduces the stock fixture:
// 10000 doubled values plus the sentinel, written to ./test.txt
func DefaultConfig() types.Config {
	return types.Config{
		Generator: types.GeneratorConfig{
			Count:      types.DefaultCount,
			OutputPath: types.DefaultOutputPath,
		},
		Ledger: types.LedgerConfig{
			DBPath: types.DefaultDBPath,
		},
		API: types.APIConfig{
			Host:      types.DefaultAPIHost,
			Port:      types.DefaultAPIPort,
			OutputDir: types.DefaultOutputDir,
		},
	}
}

// Load builds the effective configuration. An empty configPath starts from
// DefaultConfig; otherwise the file is loaded. Environment overrides are
// applied last and the result is validated.
func Load(configPath string) (*types.Config, error) {
	var cfg *types.Config
	if configPath == "" {
		def := DefaultConfig()
		cfg = &def
	} else {
		loaded, err := LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := resolvePaths(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(configPath string) (*types.Config, error) {
	// Check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Count of 0 is meaningful, so only fields absent from the file keep
	// their defaults.
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if cfg.Generator.OutputPath == "" {
		cfg.Generator.OutputPath = types.DefaultOutputPath
	}
	if cfg.Ledger.DBPath == "" {
		cfg.Ledger.DBPath = types.DefaultDBPath
	}
	if cfg.API.Host == "" {
		cfg.API.Host = types.DefaultAPIHost
	}
	if cfg.API.Port == 0 {
		cfg.API.Port = types.DefaultAPIPort
	}
	if cfg.API.OutputDir == "" {
		cfg.API.OutputDir = types.DefaultOutputDir
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := resolvePaths(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyEnv overrides cfg with any FIXTURE_* environment variables that are set
func ApplyEnv(cfg *types.Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks that the configuration parameters are valid
func Validate(cfg *types.Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if cfg.Generator.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", cfg.Generator.Count)
	}

	if cfg.Generator.OutputPath == "" {
		return fmt.Errorf("output_path cannot be empty")
	}

	if cfg.Ledger.DBPath == "" {
		return fmt.Errorf("db_path cannot be empty")
	}

	if cfg.API.Port < 1 || cfg.API.Port > 65535 {
		return fmt.Errorf("API port must be between 1 and 65535, got %d", cfg.API.Port)
	}

	if cfg.API.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}

	for _, origin := range cfg.API.AllowedOrigins {
		if origin == "*" {
			return fmt.Errorf("allowed_origins cannot contain the wildcard \"*\"")
		}
	}

	return nil
}

// SaveToFile saves configuration to a JSON file
func SaveToFile(cfg *types.Config, configPath string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config to JSON: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func resolvePaths(cfg *types.Config) error {
	if cfg.Ledger.DBPath != ":memory:" && !filepath.IsAbs(cfg.Ledger.DBPath) {
		absPath, err := filepath.Abs(cfg.Ledger.DBPath)
		if err != nil {
			return fmt.Errorf("failed to resolve DB path: %w", err)
		}
		cfg.Ledger.DBPath = absPath
	}

	absDir, err := filepath.Abs(cfg.API.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output dir: %w", err)
	}
	cfg.API.OutputDir = absDir
	return nil
}
