package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wingscafe/tracker/internal/reporting"
	"github.com/wingscafe/tracker/internal/reporting/export"
	"github.com/wingscafe/tracker/internal/tracker"
)

func newReportCommand(env Env) *cobra.Command {
	cmd := &cobra.Command{Use: "report", Short: "Print reports"}

	var top int
	var asJSON bool
	summary := &cobra.Command{
		Use:   "summary",
		Short: "Print the reporting summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(cmd, env, func(t *tracker.Tracker) error {
				s, err := t.Summary(cmd.Context(), top)
				if err != nil {
					return err
				}
				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(s)
				}
				return renderSummary(cmd, s)
			})
		},
	}
	summary.Flags().IntVar(&top, "top", reporting.DefaultTopSellers, "number of top sellers")
	summary.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	cmd.AddCommand(summary)

	cmd.AddCommand(&cobra.Command{
		Use:   "low-stock",
		Short: "List products at or below the low-stock threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(cmd, env, func(t *tracker.Tracker) error {
				threshold, products, err := t.LowStock(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "threshold %d: %d products\n", threshold, len(products))
				w := newTable(cmd.OutOrStdout())
				for _, p := range products {
					fmt.Fprintf(w, "%s\t%s\t%d\n", p.ID, p.Name, p.Quantity)
				}
				return w.Flush()
			})
		},
	})

	var exportTop int
	exp := &cobra.Command{
		Use:   "export",
		Short: "Write the reporting summary as CSV to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(cmd, env, func(t *tracker.Tracker) error {
				s, err := t.Summary(cmd.Context(), exportTop)
				if err != nil {
					return err
				}
				return export.WriteSummaryCSV(cmd.OutOrStdout(), s)
			})
		},
	}
	exp.Flags().IntVar(&exportTop, "top", reporting.DefaultTopSellers, "number of top sellers")
	cmd.AddCommand(exp)
	return cmd
}

func renderSummary(cmd *cobra.Command, s reporting.Summary) error {
	w := newTable(cmd.OutOrStdout())
	fmt.Fprintf(w, "Date\t%s\n", s.Date)
	fmt.Fprintf(w, "Inventory value\tM%.2f\n", s.InventoryValue)
	fmt.Fprintf(w, "Sales today\tM%.2f\n", s.TodaysSales)
	fmt.Fprintf(w, "Sales all time\tM%.2f (%d)\n", s.TotalSales, s.SalesCount)
	fmt.Fprintf(w, "Tiers\tGold %d, Silver %d, Standard %d\n", s.Tiers.Gold, s.Tiers.Silver, s.Tiers.Standard)
	for _, c := range s.Categories {
		fmt.Fprintf(w, "Category %s\tM%.2f (%s%%)\n", c.Category, c.Value, strconv.FormatFloat(c.Percent, 'f', 1, 64))
	}
	for i, ts := range s.TopSellers {
		fmt.Fprintf(w, "Top %d\t%s: %d sold, M%.2f\n", i+1, ts.ProductName, ts.Quantity, ts.Revenue)
	}
	return w.Flush()
}
