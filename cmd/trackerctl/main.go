package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/wingscafe/tracker/cmd/trackerctl/cli"
	"github.com/wingscafe/tracker/internal/app"
	"github.com/wingscafe/tracker/internal/shared"
	"github.com/wingscafe/tracker/internal/storage"
	"github.com/wingscafe/tracker/internal/tracker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "trackerctl: load config:", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	env := cli.Env{
		Open: func(ctx context.Context) (*tracker.Tracker, error) {
			opts := cfg.StorageOptions()
			opts.Logger = logger
			store, err := storage.Open(ctx, opts)
			if err != nil {
				return nil, err
			}
			ids, err := shared.NewIDGenerator(cfg.IDScheme, shared.SystemClock{})
			if err != nil {
				_ = store.Close()
				return nil, err
			}
			t, err := tracker.Open(ctx, tracker.Options{
				Store:            store,
				IDs:              ids,
				DefaultThreshold: cfg.LowStockThreshold,
				Logger:           logger,
			})
			if err != nil {
				_ = store.Close()
				return nil, err
			}
			return t, nil
		},
		Jobs: func() (*cli.JobsCLI, error) {
			return cli.NewJobsCLI(cfg.RedisAddr)
		},
	}

	if err := cli.NewRootCommand(env).ExecuteContext(ctx); err != nil {
		logger.Debug("command failed", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, "trackerctl:", err)
		os.Exit(1)
	}
}
