package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flatkit/internal/application/commands"
)

func newAddSKUCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-sku <customer> <sku> <stock>",
		Short: "Add a SKU to a customer",
		Long: `Add a SKU with an initial stock count. The customer is created when it
does not exist yet. Fails when the SKU already exists or the stock is
negative.

Example:
  inventory add-sku acme WIDGET-1 12`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			stock, err := parseStock(args[2])
			if err != nil {
				return err
			}

			result, err := commands.NewAddSKUCommand(s.store, args[0], args[1], stock).Execute(cmd.Context())
			if err != nil {
				return err
			}
			s.g.Log().Debug("sku added", zap.String("customer", args[0]), zap.String("sku", args[1]))

			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newRemoveSKUCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-sku <customer> <sku>",
		Short: "Remove a SKU from a customer",
		Long: `Remove a SKU and its stock count. Fails when the SKU does not exist.

Example:
  inventory remove-sku acme WIDGET-1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.NewRemoveSKUCommand(s.store, args[0], args[1]).Execute(cmd.Context())
			if err != nil {
				return err
			}
			s.g.Log().Debug("sku removed", zap.String("customer", args[0]), zap.String("sku", args[1]))

			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}
}

func newSetStockCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-stock <customer> <sku> <stock>",
		Short: "Set the stock count of a SKU",
		Long: `Replace the stock count of an existing SKU. Fails when the SKU does not
exist or the stock is negative.

Example:
  inventory set-stock acme WIDGET-1 0`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			stock, err := parseStock(args[2])
			if err != nil {
				return err
			}

			result, err := commands.NewSetStockCommand(s.store, args[0], args[1], stock).Execute(cmd.Context())
			if err != nil {
				return err
			}
			s.g.Log().Debug("stock set", zap.String("customer", args[0]), zap.String("sku", args[1]), zap.Int("stock", stock))

			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// parseStock parses a stock argument. Range checks are left to the commands.
func parseStock(arg string) (int, error) {
	stock, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("stock must be a whole number, got %q", arg)
	}
	return stock, nil
}
