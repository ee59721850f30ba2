package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wingscafe/tracker/internal/tracker"
)

func newSettingsCommand(env Env) *cobra.Command {
	cmd := &cobra.Command{Use: "settings", Short: "Show or change settings"}

	var value int
	threshold := &cobra.Command{
		Use:   "threshold [--value N]",
		Short: "Show or set the low-stock threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(cmd, env, func(t *tracker.Tracker) error {
				if cmd.Flags().Changed("value") {
					if err := t.Settings.SetLowStockThreshold(cmd.Context(), value); err != nil {
						return err
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "low stock threshold: %d\n", t.Settings.LowStockThreshold())
				return nil
			})
		},
	}
	threshold.Flags().IntVar(&value, "value", 0, "new threshold, zero or more")
	cmd.AddCommand(threshold)
	return cmd
}
