package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wingscafe/tracker/internal/checkout"
	"github.com/wingscafe/tracker/internal/reporting/export"
	"github.com/wingscafe/tracker/internal/tracker"
)

func newSalesCommand(env Env) *cobra.Command {
	cmd := &cobra.Command{Use: "sales", Short: "Record and review sales"}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List sales, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(cmd, env, func(t *tracker.Tracker) error {
				w := newTable(cmd.OutOrStdout())
				fmt.Fprintln(w, "ID\tDATE\tPRODUCT\tQTY\tCUSTOMER\tTOTAL")
				for _, s := range t.Ledger.Recent(limit) {
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\tM%.2f\n", s.ID, s.Date, s.ProductName, s.Quantity, s.CustomerName, s.TotalPrice)
				}
				return w.Flush()
			})
		},
	}
	list.Flags().IntVar(&limit, "limit", 0, "show at most this many sales (0 for all)")
	cmd.AddCommand(list)

	var req checkout.SaleRequest
	record := &cobra.Command{
		Use:   "record",
		Short: "Record a cash sale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(cmd, env, func(t *tracker.Tracker) error {
				sale, err := t.RecordSale(cmd.Context(), req)
				if sale.ID != "" {
					fmt.Fprintln(cmd.OutOrStdout(), checkout.Receipt(sale))
				}
				return err
			})
		},
	}
	record.Flags().StringVar(&req.ProductID, "product", "", "product id")
	record.Flags().IntVar(&req.Quantity, "quantity", 0, "units sold")
	record.Flags().StringVar(&req.CustomerID, "customer", "", "customer id; empty for walk-in")
	cmd.AddCommand(record)

	cmd.AddCommand(&cobra.Command{
		Use:   "remove ID",
		Short: "Delete a sale record; stock and points are not restored",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(cmd, env, func(t *tracker.Tracker) error {
				return t.Ledger.Remove(cmd.Context(), args[0])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "export",
		Short: "Write the sales ledger as CSV to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(cmd, env, func(t *tracker.Tracker) error {
				return export.WriteSalesCSV(cmd.OutOrStdout(), t.Ledger.All())
			})
		},
	})
	return cmd
}
