package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Project-Sylos/Fixture/internal/db"
	"github.com/Project-Sylos/Fixture/internal/generator"
	"github.com/pterm/pterm"
)

func TestMain(m *testing.M) {
	pterm.DisableOutput()
	os.Exit(m.Run())
}

func execute(t *testing.T, args ...string) error {
	t.Helper()

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func lineCount(t *testing.T, path string) int {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return strings.Count(string(data), "\n")
}

// TestGenerateCommand tests flag handling for the generate subcommand
func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name          string
		args          []string
		output        string
		expectedLines int
	}{
		{name: "explicit count", args: []string{"generate", "-n", "3"}, output: "three.txt", expectedLines: 7},
		{name: "zero count", args: []string{"generate", "--count", "0"}, output: "zero.txt", expectedLines: 1},
		{name: "default count", args: []string{"generate"}, output: "default.txt", expectedLines: 20001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.output)
			args := append(tt.args, "--output", path)

			if err := execute(t, args...); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := lineCount(t, path); got != tt.expectedLines {
				t.Errorf("Expected %d lines, got %d", tt.expectedLines, got)
			}
		})
	}
}

// TestRootRunsGenerate tests that the bare command writes test.txt in the working directory
func TestRootRunsGenerate(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("FIXTURE_COUNT", "2")

	if err := execute(t); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := lineCount(t, filepath.Join(dir, "test.txt")); got != 5 {
		t.Errorf("Expected 5 lines, got %d", got)
	}
}

func TestGenerateCommandErrors(t *testing.T) {
	dir := t.TempDir()

	err := execute(t, "generate", "-n", "1", "-o", filepath.Join(dir, "missing", "out.txt"))
	if !errors.Is(err, generator.ErrIO) {
		t.Errorf("Expected ErrIO, got %v", err)
	}

	if err := execute(t, "generate", "-n", "-4", "-o", filepath.Join(dir, "neg.txt")); err == nil {
		t.Errorf("Expected error for negative count")
	}

	if err := execute(t, "generate", "unexpected-arg"); err == nil {
		t.Errorf("Expected error for positional argument")
	}

	if err := execute(t, "--config", filepath.Join(dir, "nope.json")); err == nil {
		t.Errorf("Expected error for missing config file")
	}
}

// TestRecordAndListRuns tests the ledger through the CLI
func TestRecordAndListRuns(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FIXTURE_DB_PATH", filepath.Join(dir, "ledger.db"))

	path := filepath.Join(dir, "recorded.txt")
	if err := execute(t, "generate", "-n", "4", "-o", path, "--record"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := lineCount(t, path); got != 9 {
		t.Errorf("Expected 9 lines, got %d", got)
	}

	if err := execute(t, "runs", "--limit", "5"); err != nil {
		t.Fatalf("Unexpected error listing runs: %v", err)
	}

	ledger, err := db.New(filepath.Join(dir, "ledger.db"))
	if err != nil {
		t.Fatalf("Failed to open ledger: %v", err)
	}
	defer ledger.Close()

	count, err := ledger.CountRuns()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 recorded run, got %d", count)
	}
}

func TestVersionCommand(t *testing.T) {
	if err := execute(t, "version"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
