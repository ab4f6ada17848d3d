package cmd

import (
	"github.com/spf13/cobra"

	"flatkit/internal/application/commands"
	"flatkit/internal/report"
)

func newListCustomersCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "list-customers",
		Short: "List customer names",
		Long: `List every customer name, sorted, one per line.

Example:
  inventory list-customers`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := commands.NewListCustomersCommand(s.store).Execute(cmd.Context())
			if err != nil {
				return err
			}
			return report.Customers(cmd.OutOrStdout(), names)
		},
	}
}

func newListCmd(s *state) *cobra.Command {
	var customer string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List SKUs and stock per customer",
		Long: `List each customer followed by its SKUs and stock counts, sorted by
customer and then SKU.

Examples:
  inventory list
  inventory list --customer acme`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			customers, err := commands.NewListInventoryCommand(s.store, customer).Execute(cmd.Context())
			if err != nil {
				return err
			}
			return report.Inventory(cmd.OutOrStdout(), customers)
		},
	}

	cmd.Flags().StringVarP(&customer, "customer", "c", "", "only list this customer")

	return cmd
}
