// Package tracker composes the cafe's stores, sale processor and reports
// behind one lock.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/wingscafe/tracker/internal/catalog"
	"github.com/wingscafe/tracker/internal/checkout"
	"github.com/wingscafe/tracker/internal/ledger"
	"github.com/wingscafe/tracker/internal/reporting"
	"github.com/wingscafe/tracker/internal/roster"
	"github.com/wingscafe/tracker/internal/settings"
	"github.com/wingscafe/tracker/internal/shared"
	"github.com/wingscafe/tracker/internal/storage"
)

// Options wires a Tracker.
type Options struct {
	Store            storage.Store
	IDs              shared.IDGenerator
	Clock            shared.Clock
	DefaultThreshold int
	Logger           *slog.Logger
	Hooks            checkout.Hooks
	// Refresh reloads every collection from the store at the start of each
	// Exclusive or Shared call. Set it when other processes write the same
	// store, otherwise this process saves over their changes.
	Refresh bool
}

// Tracker is the application root. Callers run reads through Shared and
// mutations through Exclusive; the components themselves are not safe for
// concurrent use. Components are rebuilt on every load, so read the fields
// inside the callback rather than caching them.
type Tracker struct {
	mu sync.RWMutex

	Catalog  *catalog.Catalog
	Roster   *roster.Roster
	Ledger   *ledger.Ledger
	Checkout *checkout.Processor
	Reports  *reporting.Engine
	Settings *settings.Settings

	opts   Options
	logger *slog.Logger
}

// Open builds every component over opts.Store and loads persisted state. The
// sample customers are written when no customer list has ever been saved.
func Open(ctx context.Context, opts Options) (*Tracker, error) {
	if opts.Store == nil {
		return nil, errors.New("tracker: store required")
	}
	if opts.Clock == nil {
		opts.Clock = shared.SystemClock{}
	}
	if opts.IDs == nil {
		opts.IDs = shared.NewTimestampIDs(opts.Clock)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	t := &Tracker{opts: opts, logger: opts.Logger}
	if err := t.load(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload re-reads every collection from the store. On error the previously
// loaded state is kept intact.
func (t *Tracker) Reload(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.load(ctx)
}

// load reads into fresh components and swaps them in only when every
// collection loaded.
func (t *Tracker) load(ctx context.Context) error {
	o := t.opts
	products := catalog.New(o.Store, o.IDs)
	if err := products.Load(ctx); err != nil {
		return fmt.Errorf("tracker: load: %w", err)
	}
	customers := roster.New(o.Store, o.IDs)
	seeded, err := customers.Load(ctx)
	if err != nil {
		return fmt.Errorf("tracker: load: %w", err)
	}
	if seeded {
		t.logger.Info("sample customers seeded", slog.Int("count", len(customers.List())))
	}
	sales := ledger.New(o.Store, o.IDs, o.Clock)
	if err := sales.Load(ctx); err != nil {
		return fmt.Errorf("tracker: load: %w", err)
	}
	prefs := settings.New(o.Store, o.DefaultThreshold)
	if err := prefs.Load(ctx); err != nil {
		return fmt.Errorf("tracker: load: %w", err)
	}

	t.Catalog, t.Roster, t.Ledger, t.Settings = products, customers, sales, prefs
	t.Checkout = checkout.NewProcessor(products, customers, sales, o.Hooks)
	t.Reports = reporting.NewEngine(products, customers, sales, o.Clock)
	return nil
}

// Exclusive runs fn with sole access to the components.
func (t *Tracker) Exclusive(ctx context.Context, fn func() error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.opts.Refresh {
		if err := t.load(ctx); err != nil {
			return err
		}
	}
	return fn()
}

// Shared runs fn alongside other readers. With Refresh set it reloads first
// and so runs exclusively.
func (t *Tracker) Shared(ctx context.Context, fn func() error) error {
	if t.opts.Refresh {
		return t.Exclusive(ctx, fn)
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return fn()
}

// RecordSale runs the sale processor under the write lock and logs the outcome.
func (t *Tracker) RecordSale(ctx context.Context, req checkout.SaleRequest) (ledger.Sale, error) {
	var sale ledger.Sale
	err := t.Exclusive(ctx, func() error {
		var err error
		sale, err = t.Checkout.RecordSale(ctx, req)
		return err
	})
	switch {
	case err == nil:
		t.logger.Info("sale recorded", slog.String("sale_id", sale.ID), slog.String("product_id", sale.ProductID), slog.Int("quantity", sale.Quantity), slog.Float64("total", sale.TotalPrice))
	case sale.ID != "":
		t.logger.Error("sale recorded with stale stock or loyalty", slog.String("sale_id", sale.ID), slog.Any("error", err))
	default:
		t.logger.Warn("sale rejected", slog.String("product_id", req.ProductID), slog.Any("error", err))
	}
	return sale, err
}

// Dashboard computes the dashboard at the current threshold.
func (t *Tracker) Dashboard(ctx context.Context) (reporting.Dashboard, error) {
	var d reporting.Dashboard
	err := t.Shared(ctx, func() error {
		d = t.Reports.Dashboard(t.Settings.LowStockThreshold())
		return nil
	})
	return d, err
}

// Summary computes the reporting summary at the current threshold.
func (t *Tracker) Summary(ctx context.Context, topLimit int) (reporting.Summary, error) {
	var s reporting.Summary
	err := t.Shared(ctx, func() error {
		s = t.Reports.Summary(t.Settings.LowStockThreshold(), topLimit)
		return nil
	})
	return s, err
}

// LowStock lists products at or below the current threshold.
func (t *Tracker) LowStock(ctx context.Context) (threshold int, products []catalog.Product, err error) {
	err = t.Shared(ctx, func() error {
		threshold = t.Settings.LowStockThreshold()
		products = t.Reports.LowStockList(threshold)
		return nil
	})
	return threshold, products, err
}

// SalesOn counts and sums the sales dated date.
func (t *Tracker) SalesOn(ctx context.Context, date string) (count int, total float64, err error) {
	err = t.Shared(ctx, func() error {
		count, total = t.Reports.SalesOn(date)
		return nil
	})
	return count, total, err
}

// Close releases the store.
func (t *Tracker) Close() error {
	return t.opts.Store.Close()
}
