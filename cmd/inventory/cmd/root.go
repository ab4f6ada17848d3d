package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flatkit/internal/adapters/filesystem"
	"flatkit/internal/adapters/jsonstore"
	"flatkit/internal/cli"
	"flatkit/internal/config"
	"flatkit/internal/ports"
)

// state is resolved once per invocation by the root command's pre-run hook
type state struct {
	g     cli.Globals
	db    string
	store ports.InventoryStore
}

// NewRootCmd builds the inventory command tree
func NewRootCmd() *cobra.Command {
	s := &state{}

	rootCmd := &cobra.Command{
		Use:   "inventory",
		Short: "Manage per-customer SKU stock in a JSON file",
		Long: `inventory keeps stock counts per customer and SKU in a single JSON file
shaped as {"customers": {name: {sku: count}}}.

Every change loads the whole file, applies one command and writes the file
back atomically. Listing commands never write.

Flags go before positional arguments, so a negative stock such as -1 is
read as a value and rejected with a clear message.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := cli.StringFlag(cmd, "db", s.db, s.g.Config.Inventory.DBPath)
			s.store = jsonstore.NewStore(filesystem.ExpandHome(path))
			s.g.Log().Debug("inventory store", zap.String("db", s.store.Location()))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&s.db, "db", config.DefaultInventoryDB, "path to the inventory JSON file")
	s.g.Bind(rootCmd)

	rootCmd.AddCommand(
		newListCustomersCmd(s),
		newListCmd(s),
		newAddSKUCmd(s),
		newRemoveSKUCmd(s),
		newSetStockCmd(s),
		newBrowseCmd(s),
	)

	return rootCmd
}
