package cli

import (
	"context"
	"fmt"

	"github.com/Project-Sylos/Fixture/internal/config"
	"github.com/Project-Sylos/Fixture/internal/generator"
	"github.com/Project-Sylos/Fixture/internal/types"
	"github.com/Project-Sylos/Fixture/sdk"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	root     *rootOptions
	count    int
	countSet bool
	output   string
	record   bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{root: root}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a shuffled fixture file",
		Long: `Write 2N+1 lines of the form "data-<value>": every value in 1..N twice
plus a single 0, shuffled uniformly. The output file is truncated first.

  fixture generate -n 3 -o small.txt
  fixture generate --record`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.countSet = cmd.Flags().Changed("count")
			return runGenerate(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", types.DefaultCount, "Largest value N; the file gets 2N+1 lines")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default from config, test.txt)")
	cmd.Flags().BoolVar(&opts.record, "record", false, "Record the run in the ledger")

	return cmd
}

func runGenerate(ctx context.Context, opts *generateOptions) error {
	cfg, err := config.Load(opts.root.configPath)
	if err != nil {
		return err
	}

	// Flags win over file and environment
	if opts.countSet {
		cfg.Generator.Count = opts.count
	}
	if opts.output != "" {
		cfg.Generator.OutputPath = opts.output
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	Debug.Printfln("count=%d output=%s record=%t", cfg.Generator.Count, cfg.Generator.OutputPath, opts.record)

	if !opts.record {
		res, err := generator.Generate(ctx, generator.Options{
			Count:      cfg.Generator.Count,
			OutputPath: cfg.Generator.OutputPath,
		})
		if err != nil {
			return err
		}
		Success.Printfln("Wrote %d lines (%d bytes) to %s", res.LineCount, res.SizeBytes, res.Path)
		return nil
	}

	fx, err := sdk.NewWithConfig(cfg)
	if err != nil {
		return err
	}
	defer fx.Close()

	run, err := fx.Generate(ctx, nil)
	if err != nil {
		return err
	}
	Success.Printfln("Wrote %d lines (%d bytes) to %s", run.LineCount, run.SizeBytes, run.OutputPath)
	Info.Printfln("Recorded run %s (sha256 %s)", run.ID, run.Checksum)
	return nil
}
