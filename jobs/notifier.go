package jobs

import (
	"context"
	"log/slog"
)

// Notice is a message produced by a job for the cafe staff.
type Notice struct {
	Subject string
	Lines   []string
}

// Notifier delivers notices.
type Notifier interface {
	Notify(ctx context.Context, notice Notice) error
}

// LogNotifier writes notices to a structured logger.
type LogNotifier struct {
	Logger *slog.Logger
}

// Notify logs the notice at info level.
func (n LogNotifier) Notify(ctx context.Context, notice Notice) error {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, notice.Subject, slog.Any("lines", notice.Lines))
	return nil
}
