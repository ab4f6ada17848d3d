package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flatkit/internal/adapters/editor"
	"flatkit/internal/adapters/obsidian"
	"flatkit/internal/application/commands"
	"flatkit/internal/ports"
)

// autoEditor is the --editor value used when the flag is given without
// a command; it defers to $EDITOR and $VISUAL.
const autoEditor = "auto"

func (a *app) newOpenCmd() *cobra.Command {
	var (
		root      string
		editorCmd string
	)

	cmd := &cobra.Command{
		Use:   "open <query>",
		Short: "Open the best matching note",
		Long: `Open searches the notes cache and opens the best match in Obsidian,
treating the indexed root as the vault. With --editor the note opens in a
terminal editor instead.

Examples:
  notesindex open --root ~/notes standup
  notesindex open --root ~/notes --editor standup
  notesindex open --root ~/notes --editor="code --wait" standup`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := a.openCache(cmd, root)
			if err != nil {
				return err
			}
			defer idx.Close()

			var opener ports.FileOpener
			if cmd.Flags().Changed("editor") {
				name := editorCmd
				if name == autoEditor {
					name = ""
				}
				opener = editor.NewOpener(name)
			} else {
				vault, err := idx.Root()
				if err != nil {
					return err
				}
				opener = obsidian.NewOpener(vault)
			}

			query := strings.Join(args, " ")
			result, err := commands.NewOpenNoteCommand(idx, opener, query).Execute(cmd.Context())
			if err != nil {
				return err
			}
			a.g.Log().Debug("note opened", zap.String("path", result.Path))

			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "notes root whose default cache to search")
	cmd.Flags().StringVar(&editorCmd, "editor", "", "open in this editor instead of Obsidian ($EDITOR when given without a value)")
	cmd.Flags().Lookup("editor").NoOptDefVal = autoEditor

	return cmd
}
