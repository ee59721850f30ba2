package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wingscafe/tracker/internal/shared"
	"github.com/wingscafe/tracker/internal/storage"
)

func newTestLedger(t *testing.T) (*Ledger, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	clock := shared.FixedClock{At: time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)}
	return New(mem, shared.NewTimestampIDs(clock), clock), mem
}

func TestAppendStampsIDAndDate(t *testing.T) {
	l, mem := newTestLedger(t)
	ctx := context.Background()

	sale, err := l.Append(ctx, Sale{ID: "ignored", Date: "1999-01-01", ProductID: "p1", ProductName: "Wings", Quantity: 2, TotalPrice: 40, PaymentMethod: PaymentMethodCash})
	require.NoError(t, err)
	require.NotEqual(t, "ignored", sale.ID)
	require.Equal(t, "2026-10-17", sale.Date)
	require.Equal(t, 1, mem.Saves(storage.KeySales))

	reloaded := New(mem, shared.UUIDv7IDs{}, nil)
	require.NoError(t, reloaded.Load(ctx))
	require.Equal(t, []Sale{sale}, reloaded.All())
}

func TestAllAndRecentOrdering(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()
	var ids []string
	for i := 1; i <= 4; i++ {
		s, err := l.Append(ctx, Sale{ProductID: "p", Quantity: i})
		require.NoError(t, err)
		ids = append(ids, s.ID)
	}

	all := l.All()
	require.Len(t, all, 4)
	for i, s := range all {
		require.Equal(t, ids[i], s.ID)
	}

	recent := l.Recent(2)
	require.Len(t, recent, 2)
	require.Equal(t, ids[3], recent[0].ID)
	require.Equal(t, ids[2], recent[1].ID)
	require.Len(t, l.Recent(0), 4)
}

func TestRemoveIsIdempotent(t *testing.T) {
	l, mem := newTestLedger(t)
	ctx := context.Background()
	s, err := l.Append(ctx, Sale{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, l.Remove(ctx, s.ID))
	require.NoError(t, l.Remove(ctx, s.ID))
	require.NoError(t, l.Remove(ctx, ""))
	require.Equal(t, 0, l.Len())
	require.Equal(t, 2, mem.Saves(storage.KeySales))
}

func TestIsWalkIn(t *testing.T) {
	require.True(t, Sale{CustomerName: WalkInCustomerName}.IsWalkIn())
	require.False(t, Sale{CustomerID: "1"}.IsWalkIn())
}
