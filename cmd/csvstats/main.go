package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flatkit/internal/adapters/csvfile"
	"flatkit/internal/application/commands"
	"flatkit/internal/cli"
	"flatkit/internal/report"
)

func newRootCmd() *cobra.Command {
	var (
		g      cli.Globals
		format string
	)

	root := &cobra.Command{
		Use:   "csvstats <file>",
		Short: "Compute basic statistics for numeric CSV columns",
		Long: `csvstats prints count, mean, median, min and max for every column of a
CSV file that holds at least one numeric value. Cells that are empty or
not numbers are skipped.

Example:
  csvstats measurements.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			log := g.Log()
			log.Debug("computing stats", zap.String("path", args[0]))

			stats, err := commands.NewStatsCommand(csvfile.NewSource(), args[0]).Execute(cmd.Context())
			if err != nil {
				return err
			}
			log.Debug("stats complete", zap.Int("columns", len(stats)))

			if f == report.FormatJSON {
				return report.JSON(cmd.OutOrStdout(), stats)
			}
			return report.Stats(cmd.OutOrStdout(), stats)
		},
	}

	root.Flags().StringVar(&format, "format", string(report.FormatText), "output format: text or json")
	g.Bind(root)

	return root
}

func main() {
	cli.Execute(newRootCmd())
}
