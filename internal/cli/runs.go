package cli

import (
	"fmt"
	"time"

	"github.com/Project-Sylos/Fixture/internal/config"
	"github.com/Project-Sylos/Fixture/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newRunsCmd(root *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded fixture runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}

			fx, err := sdk.NewWithConfig(cfg)
			if err != nil {
				return err
			}
			defer fx.Close()

			runs, err := fx.ListRuns(limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				Info.Println("No runs recorded")
				return nil
			}

			tableData := pterm.TableData{
				{"ID", "Created", "N", "Lines", "Bytes", "Output"},
			}
			for _, run := range runs {
				tableData = append(tableData, []string{
					run.ID,
					run.CreatedAt.Local().Format(time.DateTime),
					fmt.Sprint(run.Count),
					fmt.Sprint(run.LineCount),
					fmt.Sprint(run.SizeBytes),
					run.OutputPath,
				})
			}

			return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum runs to show (0 for all)")

	return cmd
}
