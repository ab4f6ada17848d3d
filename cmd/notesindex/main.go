package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flatkit/internal/adapters/filesystem"
	"flatkit/internal/adapters/sqlite"
	"flatkit/internal/application"
	"flatkit/internal/application/commands"
	"flatkit/internal/cli"
	"flatkit/internal/config"
	"flatkit/internal/ports"
)

// app carries the state shared by the root command and its subcommands
type app struct {
	g      cli.Globals
	sqlite string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		output string
		cache  bool
	)

	root := &cobra.Command{
		Use:   "notesindex <root>",
		Short: "Index the markdown notes under a directory",
		Long: `notesindex walks a directory recursively, reads the title of every
markdown note (the first "# " heading, else the file name) and writes the
sorted list of notes as a JSON array.

With --cache or --sqlite the notes are also stored in a SQLite cache that
the search and open subcommands query.

A notes directory named "search" or "open" is read as a subcommand; pass
it with a path prefix such as ./search.

Examples:
  notesindex ~/notes
  notesindex --output index.json --cache ~/notes
  notesindex search --root ~/notes meeting
  notesindex open --root ~/notes meeting`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := filesystem.ExpandHome(args[0])
			out := cli.StringFlag(cmd, "output", output, a.g.Config.Notes.OutputPath)
			log := a.g.Log()

			var noteCache ports.NoteCache
			if path := a.cachePath(cmd, root, cache); path != "" {
				idx := sqlite.NewIndex()
				if err := idx.Open(path); err != nil {
					return err
				}
				defer idx.Close()
				noteCache = idx
				log.Debug("notes cache enabled", zap.String("sqlite", path))
			}

			notes := filesystem.NewNotes()
			result, err := commands.NewIndexNotesCommand(notes, notes, noteCache, root, out).Execute(cmd.Context())
			if err != nil {
				return err
			}
			if result.Cache != nil {
				log.Debug("notes cache rebuilt",
					zap.Int("added", result.Cache.NotesAdded),
					zap.Int("deleted", result.Cache.NotesDeleted),
					zap.Duration("took", result.Cache.Duration),
				)
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}

	root.Flags().StringVarP(&output, "output", "o", config.DefaultNotesOutput, "path of the JSON index to write")
	root.Flags().BoolVar(&cache, "cache", false, "also store the notes in the default SQLite cache for this root")
	root.PersistentFlags().StringVar(&a.sqlite, "sqlite", "", "path of the SQLite notes cache")
	a.g.Bind(root)

	root.AddCommand(a.newSearchCmd())
	root.AddCommand(a.newOpenCmd())

	return root
}

// cachePath resolves the SQLite cache location: --sqlite, then the
// config file, then the per-root default when byRoot is set. An empty
// result means no cache.
func (a *app) cachePath(cmd *cobra.Command, root string, byRoot bool) string {
	if p := cli.StringFlag(cmd, "sqlite", a.sqlite, a.g.Config.Notes.SQLitePath); p != "" {
		return filesystem.ExpandHome(p)
	}
	if byRoot && root != "" {
		return sqlite.DatabasePath(root)
	}
	return ""
}

// openCache opens an existing notes cache for querying
func (a *app) openCache(cmd *cobra.Command, root string) (*sqlite.Index, error) {
	path := a.cachePath(cmd, filesystem.ExpandHome(root), true)
	if path == "" {
		return nil, errors.New("no notes cache configured, pass --sqlite or --root")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("notes cache %s does not exist, run notesindex with --cache first: %w", path, application.ErrNotFound)
	}

	idx := sqlite.NewIndex()
	if err := idx.Open(path); err != nil {
		return nil, err
	}
	a.g.Log().Debug("notes cache opened", zap.String("sqlite", path))
	return idx, nil
}

func main() {
	cli.Execute(newRootCmd())
}
