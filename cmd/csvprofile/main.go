package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flatkit/internal/adapters/csvfile"
	"flatkit/internal/application/commands"
	"flatkit/internal/cli"
	"flatkit/internal/config"
	"flatkit/internal/report"
)

func newRootCmd() *cobra.Command {
	var (
		g      cli.Globals
		top    int
		format string
	)

	root := &cobra.Command{
		Use:   "csvprofile <file>",
		Short: "Profile the columns of a CSV file",
		Long: `csvprofile reports the row and column counts of a CSV file and, for
every column, the number of missing values and the most frequent values.

Ties between equally frequent values keep the order in which the values
first appear in the file.

Examples:
  csvprofile orders.csv
  csvprofile --top 3 orders.csv
  csvprofile --format json orders.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			n := cli.IntFlag(cmd, "top", top, g.Config.Profile.Top)

			log := g.Log()
			log.Debug("profiling CSV", zap.String("path", args[0]), zap.Int("top", n))

			profile, err := commands.NewProfileCommand(csvfile.NewSource(), args[0], n).Execute(cmd.Context())
			if err != nil {
				return err
			}
			log.Debug("profile complete", zap.Int("rows", profile.Rows), zap.Int("columns", len(profile.Columns)))

			if f == report.FormatJSON {
				return report.JSON(cmd.OutOrStdout(), profile)
			}
			return report.Profile(cmd.OutOrStdout(), profile)
		},
	}

	root.Flags().IntVar(&top, "top", config.DefaultTop, "top N most common values per column")
	root.Flags().StringVar(&format, "format", string(report.FormatText), "output format: text or json")
	g.Bind(root)

	return root
}

func main() {
	cli.Execute(newRootCmd())
}
