package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flatkit/internal/application/commands"
	"flatkit/internal/domain"
	"flatkit/internal/report"
)

func (a *app) newSearchCmd() *cobra.Command {
	var (
		root   string
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the notes cache by title and path",
		Long: `Search lists cached notes whose title or path matches the query,
best match first. Run notesindex with --cache (or --sqlite) beforehand to
fill the cache.

Examples:
  notesindex search --root ~/notes standup
  notesindex search --sqlite notes.db --limit 5 "project plan"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			idx, err := a.openCache(cmd, root)
			if err != nil {
				return err
			}
			defer idx.Close()

			query := strings.Join(args, " ")
			hits, err := commands.NewSearchNotesCommand(idx, query).Execute(cmd.Context())
			if err != nil {
				return err
			}
			a.g.Log().Debug("search complete", zap.String("query", query), zap.Int("hits", len(hits)))

			if limit > 0 && len(hits) > limit {
				hits = hits[:limit]
			}

			if f == report.FormatJSON {
				return report.JSON(cmd.OutOrStdout(), hits)
			}
			if len(hits) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No notes match %q\n", query)
				return nil
			}
			notes := make([]domain.NoteEntry, len(hits))
			for i, h := range hits {
				notes[i] = h.NoteEntry
			}
			return report.Notes(cmd.OutOrStdout(), notes)
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "notes root whose default cache to search")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most N results (0 for all)")
	cmd.Flags().StringVar(&format, "format", string(report.FormatText), "output format: text or json")

	return cmd
}
