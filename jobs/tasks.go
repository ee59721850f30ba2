package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskLowStockScan reports products at or below the low-stock threshold.
	TaskLowStockScan = "inventory:low_stock_scan"
	// TaskDailySalesSummary totals one day's ledger.
	TaskDailySalesSummary = "sales:daily_summary"
)

// LowStockScanPayload carries scheduling metadata.
type LowStockScanPayload struct {
	ScheduledFor time.Time `json:"scheduled_for"`
}

// DailySalesSummaryPayload names the day to summarise. An empty Date means
// the day the task runs.
type DailySalesSummaryPayload struct {
	Date string `json:"date"`
}

// NewLowStockScanTask constructs an Asynq task for the low-stock scan.
func NewLowStockScanTask(at time.Time) (*asynq.Task, error) {
	body, err := json.Marshal(LowStockScanPayload{ScheduledFor: at})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLowStockScan, body, asynq.Queue(QueueDefault)), nil
}

// NewDailySalesSummaryTask constructs an Asynq task summarising date.
func NewDailySalesSummaryTask(date string) (*asynq.Task, error) {
	body, err := json.Marshal(DailySalesSummaryPayload{Date: date})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDailySalesSummary, body, asynq.Queue(QueueDefault)), nil
}
