package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"github.com/wingscafe/tracker/internal/app"
	"github.com/wingscafe/tracker/internal/httpapi"
	"github.com/wingscafe/tracker/internal/observability"
	"github.com/wingscafe/tracker/internal/shared"
	"github.com/wingscafe/tracker/internal/storage"
	"github.com/wingscafe/tracker/internal/tracker"
	"github.com/wingscafe/tracker/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
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

	metrics := observability.NewMetrics()
	t, err := tracker.Open(ctx, tracker.Options{
		Store:            store,
		IDs:              ids,
		DefaultThreshold: cfg.LowStockThreshold,
		Logger:           logger,
		Hooks:            metrics,
		Refresh:          cfg.SharedStore(),
	})
	if err != nil {
		logger.Error("open tracker", slog.Any("error", err))
		_ = store.Close()
		os.Exit(1)
	}
	defer func() {
		if err := t.Close(); err != nil {
			logger.Warn("store close", slog.Any("error", err))
		}
	}()

	redisOpts := asynq.RedisClientOpt{Addr: cfg.RedisAddr}
	inspector := asynq.NewInspector(redisOpts)
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobClient, err := jobs.NewClient(redisOpts)
	if err != nil {
		logger.Error("job client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := jobClient.Close(); err != nil {
			logger.Warn("job client close", slog.Any("error", err))
		}
	}()

	router := app.NewRouter(app.RouterParams{
		Logger:     logger,
		Config:     cfg,
		API:        httpapi.NewHandler(t, logger),
		JobHandler: jobs.NewHandler(inspector, jobClient, logger),
		Metrics:    metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr), slog.String("store", cfg.StoreDriver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("http server", slog.Any("error", err))
		os.Exit(1)
	}
}
