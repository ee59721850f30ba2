package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wingscafe/tracker/internal/roster"
	"github.com/wingscafe/tracker/internal/shared"
	"github.com/wingscafe/tracker/internal/tracker"
)

func newCustomersCommand(env Env) *cobra.Command {
	cmd := &cobra.Command{Use: "customers", Short: "List and edit loyalty customers"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List customers with loyalty tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(cmd, env, func(t *tracker.Tracker) error {
				w := newTable(cmd.OutOrStdout())
				fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tPOINTS\tTIER")
				for _, c := range t.Roster.List() {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", c.ID, c.Name, c.Email, c.Phone, c.LoyaltyPoints, roster.TierOf(c))
				}
				return w.Flush()
			})
		},
	})

	var draft roster.CustomerDraft
	var points string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft.LoyaltyPoints = shared.FormValue(points)
			return withTracker(cmd, env, func(t *tracker.Tracker) error {
				c, err := t.Roster.Add(cmd.Context(), draft)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added customer %s (%s)\n", c.ID, c.Name)
				return nil
			})
		},
	}
	add.Flags().StringVar(&draft.Name, "name", "", "customer name")
	add.Flags().StringVar(&draft.Email, "email", "", "email address")
	add.Flags().StringVar(&draft.Phone, "phone", "", "phone number")
	add.Flags().StringVar(&points, "points", "", "starting loyalty points")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "remove ID",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(cmd, env, func(t *tracker.Tracker) error {
				return t.Roster.Remove(cmd.Context(), args[0])
			})
		},
	})
	return cmd
}
