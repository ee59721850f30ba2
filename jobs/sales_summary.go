package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	jobmetrics "github.com/wingscafe/tracker/internal/jobs"
	"github.com/wingscafe/tracker/internal/shared"
)

// DailySalesSummaryJob totals one day of the ledger.
type DailySalesSummaryJob struct {
	Snapshot Snapshot
	Notifier Notifier
	Logger   *slog.Logger
	Metrics  *jobmetrics.Metrics
	Clock    shared.Clock
}

// NewDailySalesSummaryJob initialises the summary handler.
func NewDailySalesSummaryJob(snapshot Snapshot, notifier Notifier, logger *slog.Logger, metrics *jobmetrics.Metrics) *DailySalesSummaryJob {
	return &DailySalesSummaryJob{Snapshot: snapshot, Notifier: notifier, Logger: logger, Metrics: metrics, Clock: shared.SystemClock{}}
}

// Handle executes the summary.
func (j *DailySalesSummaryJob) Handle(ctx context.Context, t *asynq.Task) (err error) {
	if j == nil || j.Snapshot == nil {
		return errors.New("daily sales summary: handler not configured")
	}
	var payload DailySalesSummaryPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("daily sales summary: %v: %w", err, asynq.SkipRetry)
		}
	}
	date := payload.Date
	if date == "" {
		clock := j.Clock
		if clock == nil {
			clock = shared.SystemClock{}
		}
		date = shared.Today(clock)
	}

	run := j.Metrics.Track(TaskDailySalesSummary)
	defer func() {
		err = run.End(err)
	}()

	if err := j.Snapshot.Reload(ctx); err != nil {
		return err
	}
	count, total, err := j.Snapshot.SalesOn(ctx, date)
	if err != nil {
		return err
	}
	j.Metrics.SetDailySales(count, total)

	logger := j.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("completed daily sales summary", slog.String("date", date), slog.Int("sales", count), slog.Float64("total", total))
	if j.Notifier == nil {
		return nil
	}
	return j.Notifier.Notify(ctx, Notice{
		Subject: "Sales summary for " + date,
		Lines:   []string{fmt.Sprintf("%d sales totalling M%.2f", count, total)},
	})
}
