// Package cli implements the trackerctl commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wingscafe/tracker/internal/tracker"
)

// Env supplies the command dependencies. Open is called once per command.
type Env struct {
	Open func(ctx context.Context) (*tracker.Tracker, error)
	Jobs func() (*JobsCLI, error)
}

// NewRootCommand assembles the trackerctl command tree.
func NewRootCommand(env Env) *cobra.Command {
	root := &cobra.Command{
		Use:           "trackerctl",
		Short:         "Manage the Wings Cafe tracker from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newProductsCommand(env),
		newCustomersCommand(env),
		newSalesCommand(env),
		newReportCommand(env),
		newSettingsCommand(env),
		newJobsCommand(env),
	)
	return root
}

// withTracker opens the tracker, runs fn and closes it. A command is the
// only caller, so components are used without the tracker lock.
func withTracker(cmd *cobra.Command, env Env, fn func(t *tracker.Tracker) error) error {
	if env.Open == nil {
		return fmt.Errorf("trackerctl: no store configured")
	}
	t, err := env.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer t.Close()
	return fn(t)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}
