package cmd

import (
	"github.com/spf13/cobra"

	"flatkit/internal/adapters/editor"
	"flatkit/internal/adapters/tui"
)

func newBrowseCmd(s *state) *cobra.Command {
	var editorCmd string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the inventory interactively",
		Long: `Browse opens a terminal table of every customer, SKU and stock count.

Keys: / filter, y copy customer/sku, e edit the JSON file, r reload,
? help, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(s.store, editor.NewOpener(editorCmd))
		},
	}

	cmd.Flags().StringVar(&editorCmd, "editor", "", "editor for the e key (default $EDITOR)")

	return cmd
}
