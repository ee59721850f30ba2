package storage

import (
	"context"
	"fmt"
	"log/slog"
)

// Supported drivers.
const (
	DriverMemory   = "memory"
	DriverBadger   = "badger"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Options selects and configures a Store.
type Options struct {
	Driver     string
	Prefix     string
	BadgerPath string
	RedisAddr  string
	PGDSN      string
	Logger     *slog.Logger
}

// Open builds the configured store, namespaced by Options.Prefix.
func Open(ctx context.Context, opts Options) (Store, error) {
	var (
		store Store
		err   error
	)
	switch opts.Driver {
	case DriverMemory:
		store = NewMemory()
	case DriverBadger, "":
		store, err = OpenBadger(BadgerConfig{Path: opts.BadgerPath, SyncWrites: true, Logger: opts.Logger})
	case DriverRedis:
		store, err = OpenRedis(ctx, opts.RedisAddr)
	case DriverPostgres:
		store, err = OpenPostgres(ctx, opts.PGDSN)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}
	if opts.Logger != nil {
		opts.Logger.Info("storage opened", slog.String("driver", opts.Driver), slog.String("prefix", opts.Prefix))
	}
	return WithPrefix(store, opts.Prefix), nil
}
