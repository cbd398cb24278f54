package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

type rootOptions struct {
	configPath string
	debug      bool
}

// NewRootCmd builds the fixture command tree. Running it without a
// subcommand generates the default fixture.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "fixture",
		Short: "Generate shuffled duplicate-line test fixtures",
		Long: `Fixture writes a text file with one "data-<value>" line per element of
1..N, 1..N and a single 0, in random order. Run without a subcommand to
write the default fixture (N=10000) to ./test.txt.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			InitLogger(opts.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), &generateOptions{root: opts})
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "JSON config file (defaults are used when empty)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug output")

	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newRunsCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI and exits non-zero on failure
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		Error.Println(err)
		stop()
		os.Exit(1)
	}
}
