package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newJobsCommand(env Env) *cobra.Command {
	cmd := &cobra.Command{Use: "jobs", Short: "Trigger and inspect background jobs"}

	var date string
	trigger := &cobra.Command{
		Use:       "trigger low-stock-scan|daily-sales-summary",
		Short:     "Enqueue a job now",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"low-stock-scan", "daily-sales-summary"},
		RunE: func(cmd *cobra.Command, args []string) error {
			jc, err := openJobs(env)
			if err != nil {
				return err
			}
			defer jc.Close()
			info, err := jc.Trigger(cmd.Context(), args[0], date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "enqueued %s as %s on %s\n", info.Type, info.ID, info.Queue)
			return nil
		},
	}
	trigger.Flags().StringVar(&date, "date", "", "day to summarise (YYYY-MM-DD); defaults to today")
	cmd.AddCommand(trigger)

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show default queue counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jc, err := openJobs(env)
			if err != nil {
				return err
			}
			defer jc.Close()
			stats, err := jc.InspectQueue(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: pending=%d active=%d scheduled=%d retry=%d\n",
				stats.Queue, stats.Pending, stats.Active, stats.Scheduled, stats.Retry)
			return nil
		},
	})
	return cmd
}

func openJobs(env Env) (*JobsCLI, error) {
	if env.Jobs == nil {
		return nil, fmt.Errorf("trackerctl: job queue not configured")
	}
	return env.Jobs()
}
