package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/wingscafe/tracker/internal/catalog"
	jobmetrics "github.com/wingscafe/tracker/internal/jobs"
)

// Snapshot is the read side of the tracker that jobs work from. Reload pulls
// the latest persisted state written by the API process.
type Snapshot interface {
	Reload(ctx context.Context) error
	LowStock(ctx context.Context) (threshold int, products []catalog.Product, err error)
	SalesOn(ctx context.Context, date string) (count int, total float64, err error)
}

// LowStockScanJob reports products that need restocking.
type LowStockScanJob struct {
	Snapshot Snapshot
	Notifier Notifier
	Logger   *slog.Logger
	Metrics  *jobmetrics.Metrics
}

// NewLowStockScanJob initialises the low-stock scan handler.
func NewLowStockScanJob(snapshot Snapshot, notifier Notifier, logger *slog.Logger, metrics *jobmetrics.Metrics) *LowStockScanJob {
	return &LowStockScanJob{Snapshot: snapshot, Notifier: notifier, Logger: logger, Metrics: metrics}
}

// Handle executes the scan.
func (j *LowStockScanJob) Handle(ctx context.Context, t *asynq.Task) (err error) {
	if j == nil || j.Snapshot == nil {
		return errors.New("low stock scan: handler not configured")
	}
	var payload LowStockScanPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("low stock scan: %v: %w", err, asynq.SkipRetry)
		}
	}

	run := j.Metrics.Track(TaskLowStockScan)
	defer func() {
		err = run.End(err)
	}()
	start := time.Now()

	if err := j.Snapshot.Reload(ctx); err != nil {
		j.logger().Error("low stock scan reload", slog.Any("error", err))
		return err
	}
	threshold, products, err := j.Snapshot.LowStock(ctx)
	if err != nil {
		return err
	}
	j.Metrics.SetLowStock(len(products))

	j.logger().Info("completed low stock scan",
		slog.Int("threshold", threshold),
		slog.Int("products", len(products)),
		slog.Duration("duration", time.Since(start)),
	)
	if len(products) == 0 || j.Notifier == nil {
		return nil
	}
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("%s (%s): %d left", p.Name, p.Category, p.Quantity))
	}
	return j.Notifier.Notify(ctx, Notice{
		Subject: fmt.Sprintf("%d products at or below %d in stock", len(products), threshold),
		Lines:   lines,
	})
}

func (j *LowStockScanJob) logger() *slog.Logger {
	if j.Logger == nil {
		return slog.Default()
	}
	return j.Logger
}
