package cli

import (
	"fmt"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tableData := pterm.TableData{
				{"Property", "Value"},
				{"Version", version},
				{"Go Version", runtime.Version()},
				{"OS/Arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
			}

			return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
		},
	}
}
