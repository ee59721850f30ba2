package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/wingscafe/tracker/internal/catalog"
	jobmetrics "github.com/wingscafe/tracker/internal/jobs"
	"github.com/wingscafe/tracker/internal/shared"
)

type fakeSnapshot struct {
	reloads   int
	reloadErr error
	threshold int
	low       []catalog.Product
	dates     []string
}

func (s *fakeSnapshot) Reload(context.Context) error {
	s.reloads++
	return s.reloadErr
}

func (s *fakeSnapshot) LowStock(context.Context) (int, []catalog.Product, error) {
	return s.threshold, s.low, nil
}

func (s *fakeSnapshot) SalesOn(_ context.Context, date string) (int, float64, error) {
	s.dates = append(s.dates, date)
	return 2, 45.5, nil
}

type recordingNotifier struct{ notices []Notice }

func (n *recordingNotifier) Notify(_ context.Context, notice Notice) error {
	n.notices = append(n.notices, notice)
	return nil
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (e *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.tasks = append(e.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Queue: QueueDefault, Type: task.Type()}, nil
}

func (e *fakeEnqueuer) Close() error { return nil }

func TestLowStockScanNotifies(t *testing.T) {
	snap := &fakeSnapshot{threshold: 10, low: []catalog.Product{{Name: "Cake", Category: catalog.CategoryDessert, Quantity: 2}}}
	notifier := &recordingNotifier{}
	job := NewLowStockScanJob(snap, notifier, nil, jobmetrics.NewMetrics(prometheus.NewRegistry()))

	task, err := NewLowStockScanTask(time.Now())
	require.NoError(t, err)
	require.NoError(t, job.Handle(context.Background(), task))

	require.Equal(t, 1, snap.reloads)
	require.Len(t, notifier.notices, 1)
	require.Equal(t, "1 products at or below 10 in stock", notifier.notices[0].Subject)
	require.Equal(t, []string{"Cake (Dessert): 2 left"}, notifier.notices[0].Lines)
}

func TestLowStockScanQuietWhenStocked(t *testing.T) {
	notifier := &recordingNotifier{}
	job := NewLowStockScanJob(&fakeSnapshot{threshold: 10}, notifier, nil, nil)
	require.NoError(t, job.Handle(context.Background(), asynq.NewTask(TaskLowStockScan, nil)))
	require.Empty(t, notifier.notices)
}

func TestLowStockScanReloadFailure(t *testing.T) {
	boom := errors.New("store down")
	job := NewLowStockScanJob(&fakeSnapshot{reloadErr: boom}, nil, nil, nil)
	require.ErrorIs(t, job.Handle(context.Background(), asynq.NewTask(TaskLowStockScan, nil)), boom)
}

func TestBadPayloadSkipsRetry(t *testing.T) {
	job := NewLowStockScanJob(&fakeSnapshot{}, nil, nil, nil)
	err := job.Handle(context.Background(), asynq.NewTask(TaskLowStockScan, []byte("{")))
	require.ErrorIs(t, err, asynq.SkipRetry)
}

func TestDailySalesSummaryDefaultsToToday(t *testing.T) {
	snap := &fakeSnapshot{}
	notifier := &recordingNotifier{}
	job := NewDailySalesSummaryJob(snap, notifier, nil, nil)
	job.Clock = shared.FixedClock{At: time.Date(2026, 10, 17, 23, 55, 0, 0, time.UTC)}

	task, err := NewDailySalesSummaryTask("")
	require.NoError(t, err)
	require.NoError(t, job.Handle(context.Background(), task))
	require.Equal(t, []string{"2026-10-17"}, snap.dates)
	require.Equal(t, "Sales summary for 2026-10-17", notifier.notices[0].Subject)
	require.Equal(t, []string{"2 sales totalling M45.50"}, notifier.notices[0].Lines)

	task, err = NewDailySalesSummaryTask("2026-10-01")
	require.NoError(t, err)
	require.NoError(t, job.Handle(context.Background(), task))
	require.Equal(t, "2026-10-01", snap.dates[1])
}

func TestHandlerTriggersJobs(t *testing.T) {
	enq := &fakeEnqueuer{}
	r := chi.NewRouter()
	r.Route("/jobs", NewHandler(nil, NewClientWith(enq), nil).MountRoutes)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/low-stock-scan", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/daily-sales-summary?date=2026-10-16", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)

	require.Len(t, enq.tasks, 2)
	require.Equal(t, TaskLowStockScan, enq.tasks[0].Type())
	var payload DailySalesSummaryPayload
	require.NoError(t, json.Unmarshal(enq.tasks[1].Payload(), &payload))
	require.Equal(t, "2026-10-16", payload.Date)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"queue":"default","pending":0}`, rec.Body.String())
}

func TestHandlerWithoutQueue(t *testing.T) {
	r := chi.NewRouter()
	r.Route("/jobs", NewHandler(nil, nil, nil).MountRoutes)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/low-stock-scan", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlerEnqueueFailure(t *testing.T) {
	r := chi.NewRouter()
	r.Route("/jobs", NewHandler(nil, NewClientWith(&fakeEnqueuer{err: errors.New("redis down")}), nil).MountRoutes)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/low-stock-scan", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
