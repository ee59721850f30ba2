package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wingscafe/tracker/internal/catalog"
	"github.com/wingscafe/tracker/internal/shared"
	"github.com/wingscafe/tracker/internal/tracker"
)

func newProductsCommand(env Env) *cobra.Command {
	cmd := &cobra.Command{Use: "products", Short: "List and edit catalog products"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List products with stock status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(cmd, env, func(t *tracker.Tracker) error {
				threshold := t.Settings.LowStockThreshold()
				w := newTable(cmd.OutOrStdout())
				fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tQTY\tSTATUS")
				for _, p := range t.Catalog.List() {
					fmt.Fprintf(w, "%s\t%s\t%s\tM%.2f\t%d\t%s\n", p.ID, p.Name, p.Category, p.Price, p.Quantity, catalog.StatusOf(p, threshold))
				}
				return w.Flush()
			})
		},
	})

	var draft catalog.ProductDraft
	var price, quantity string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft.Price = shared.FormValue(price)
			draft.Quantity = shared.FormValue(quantity)
			return withTracker(cmd, env, func(t *tracker.Tracker) error {
				p, err := t.Catalog.Add(cmd.Context(), draft)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added product %s (%s)\n", p.ID, p.Name)
				return nil
			})
		},
	}
	add.Flags().StringVar(&draft.Name, "name", "", "product name")
	add.Flags().StringVar(&draft.Description, "description", "", "product description")
	add.Flags().StringVar(&draft.Category, "category", "", "Food, Beverage, Dessert or Snack")
	add.Flags().StringVar(&price, "price", "", "unit price")
	add.Flags().StringVar(&quantity, "quantity", "", "units in stock")
	cmd.AddCommand(add)

	var delta int
	adjust := &cobra.Command{
		Use:     "adjust ID --delta N",
		Short:   "Add or remove stock; quantity never drops below zero",
		Example: "  trackerctl products adjust 1700000000000 --delta -1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(cmd, env, func(t *tracker.Tracker) error {
				p, err := t.Catalog.AdjustStock(cmd.Context(), args[0], delta)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s now has %d in stock\n", p.Name, p.Quantity)
				return nil
			})
		},
	}
	adjust.Flags().IntVar(&delta, "delta", 0, "units to add, negative to remove")
	_ = adjust.MarkFlagRequired("delta")
	cmd.AddCommand(adjust)

	cmd.AddCommand(&cobra.Command{
		Use:   "remove ID",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(cmd, env, func(t *tracker.Tracker) error {
				return t.Catalog.Remove(cmd.Context(), args[0])
			})
		},
	})
	return cmd
}
