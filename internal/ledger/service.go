// Package ledger owns the append-only list of sale records.
package ledger

import (
	"context"
	"fmt"
	"slices"

	"github.com/wingscafe/tracker/internal/shared"
	"github.com/wingscafe/tracker/internal/storage"
)

// Ledger owns the Sale lifecycle: records are appended, read and deleted,
// never edited.
type Ledger struct {
	sales []Sale
	store *storage.Collection[[]Sale]
	ids   shared.IDGenerator
	clock shared.Clock
}

// New builds an empty Ledger persisted through store.
func New(store storage.Store, ids shared.IDGenerator, clock shared.Clock) *Ledger {
	if clock == nil {
		clock = shared.SystemClock{}
	}
	return &Ledger{
		store: storage.NewCollection[[]Sale](store, storage.KeySales),
		ids:   ids,
		clock: clock,
	}
}

// Load replaces the in-memory records with the persisted ones.
func (l *Ledger) Load(ctx context.Context) error {
	sales, _, err := l.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("ledger: %w", err)
	}
	l.sales = sales
	return nil
}

// Append stamps sale with a fresh id and today's date and stores it.
func (l *Ledger) Append(ctx context.Context, sale Sale) (Sale, error) {
	sale.ID = l.ids.NewID()
	sale.Date = shared.Today(l.clock)
	if err := l.commit(ctx, append(slices.Clone(l.sales), sale)); err != nil {
		return Sale{}, err
	}
	return sale, nil
}

// Remove deletes the record with matching id. A missing id is a no-op.
// Stock and loyalty effects of the sale are not reversed.
func (l *Ledger) Remove(ctx context.Context, id string) error {
	idx := slices.IndexFunc(l.sales, func(s Sale) bool { return s.ID == id })
	if id == "" || idx < 0 {
		return nil
	}
	return l.commit(ctx, slices.Delete(slices.Clone(l.sales), idx, idx+1))
}

// All returns every record in insertion order.
func (l *Ledger) All() []Sale {
	return slices.Clone(l.sales)
}

// Recent returns up to n records, most recent first. n <= 0 returns all.
func (l *Ledger) Recent(n int) []Sale {
	out := slices.Clone(l.sales)
	slices.Reverse(out)
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.sales)
}

func (l *Ledger) commit(ctx context.Context, next []Sale) error {
	if next == nil {
		next = []Sale{}
	}
	if err := l.store.Save(ctx, next); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}
	l.sales = next
	return nil
}
