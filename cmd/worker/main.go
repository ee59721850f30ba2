package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/wingscafe/tracker/internal/app"
	jobmetrics "github.com/wingscafe/tracker/internal/jobs"
	"github.com/wingscafe/tracker/internal/shared"
	"github.com/wingscafe/tracker/internal/storage"
	"github.com/wingscafe/tracker/internal/tracker"
	"github.com/wingscafe/tracker/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	if !cfg.SharedStore() {
		logger.Warn("store is not shared with the API process; jobs see only this process's data",
			slog.String("store", cfg.StoreDriver))
	}

	storeOpts := cfg.StorageOptions()
	storeOpts.Logger = logger
	store, err := storage.Open(ctx, storeOpts)
	if err != nil {
		logger.Error("open store", slog.Any("error", err))
		os.Exit(1)
	}

	ids, err := shared.NewIDGenerator(cfg.IDScheme, shared.SystemClock{})
	if err != nil {
		logger.Error("id generator", slog.Any("error", err))
		os.Exit(1)
	}
	snapshot, err := tracker.Open(ctx, tracker.Options{
		Store:            store,
		IDs:              ids,
		DefaultThreshold: cfg.LowStockThreshold,
		Logger:           logger,
	})
	if err != nil {
		logger.Error("open tracker", slog.Any("error", err))
		_ = store.Close()
		os.Exit(1)
	}
	defer func() {
		if err := snapshot.Close(); err != nil {
			logger.Warn("store close", slog.Any("error", err))
		}
	}()

	metrics := jobmetrics.NewMetrics(nil)
	notifier := jobs.LogNotifier{Logger: logger}
	lowStockJob := jobs.NewLowStockScanJob(snapshot, notifier, logger, metrics)
	summaryJob := jobs.NewDailySalesSummaryJob(snapshot, notifier, logger, metrics)

	lowStockTask, err := jobs.NewLowStockScanTask(shared.SystemClock{}.Now().UTC())
	if err != nil {
		logger.Error("build low stock task", slog.Any("error", err))
		os.Exit(1)
	}
	summaryTask, err := jobs.NewDailySalesSummaryTask("")
	if err != nil {
		logger.Error("build summary task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskLowStockScan, Handler: lowStockJob.Handle},
			{Type: jobs.TaskDailySalesSummary, Handler: summaryJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: cfg.LowStockScanCron, Task: lowStockTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
			{Spec: cfg.SalesSummaryCron, Task: summaryTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
