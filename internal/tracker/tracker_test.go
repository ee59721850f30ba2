package tracker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wingscafe/tracker/internal/catalog"
	"github.com/wingscafe/tracker/internal/checkout"
	"github.com/wingscafe/tracker/internal/shared"
	"github.com/wingscafe/tracker/internal/storage"
)

func openTracker(t *testing.T, store storage.Store) *Tracker {
	t.Helper()
	clock := shared.FixedClock{At: time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)}
	tr, err := Open(context.Background(), Options{Store: store, Clock: clock, DefaultThreshold: 10})
	require.NoError(t, err)
	return tr
}

func TestOpenSeedsCustomersOnce(t *testing.T) {
	mem := storage.NewMemory()
	tr := openTracker(t, mem)
	require.Len(t, tr.Roster.List(), 5)
	require.Equal(t, 10, tr.Settings.LowStockThreshold())

	again := openTracker(t, mem)
	require.Len(t, again.Roster.List(), 5)
	require.Equal(t, 1, mem.Saves(storage.KeyCustomers))
}

func TestRecordSaleEndToEnd(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	tr := openTracker(t, mem)

	var product catalog.Product
	require.NoError(t, tr.Exclusive(ctx, func() error {
		var err error
		product, err = tr.Catalog.Add(ctx, catalog.ProductDraft{Name: "Chicken Wings", Category: "Food", Price: "20", Quantity: "5"})
		return err
	}))

	sale, err := tr.RecordSale(ctx, checkout.SaleRequest{ProductID: product.ID, Quantity: 3, CustomerID: "1"})
	require.NoError(t, err)
	require.InDelta(t, 60.0, sale.TotalPrice, 1e-9)

	reopened := openTracker(t, mem)
	p, ok := reopened.Catalog.Get(product.ID)
	require.True(t, ok)
	require.Equal(t, 2, p.Quantity)
	c, ok := reopened.Roster.Get("1")
	require.True(t, ok)
	require.Equal(t, 126, c.LoyaltyPoints)
	require.Equal(t, 1, reopened.Ledger.Len())

	d, err := reopened.Dashboard(ctx)
	require.NoError(t, err)
	require.InDelta(t, 60.0, d.TodaysSales, 1e-9)
	require.Equal(t, 1, d.LowStockCount)
}

func TestRecordSaleRejectionLeavesStores(t *testing.T) {
	mem := storage.NewMemory()
	tr := openTracker(t, mem)
	_, err := tr.RecordSale(context.Background(), checkout.SaleRequest{ProductID: "missing", Quantity: 1})
	require.ErrorIs(t, err, checkout.ErrProductNotSelected)
	require.Zero(t, mem.Saves(storage.KeySales))
}

func TestConcurrentSalesSerialize(t *testing.T) {
	ctx := context.Background()
	tr := openTracker(t, storage.NewMemory())
	var product catalog.Product
	require.NoError(t, tr.Exclusive(ctx, func() error {
		var err error
		product, err = tr.Catalog.Add(ctx, catalog.ProductDraft{Name: "Soda", Category: "Beverage", Price: "5", Quantity: "20"})
		return err
	}))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = tr.RecordSale(ctx, checkout.SaleRequest{ProductID: product.ID, Quantity: 1})
			_, _ = tr.Dashboard(ctx)
		}()
	}
	wg.Wait()

	p, _ := tr.Catalog.Get(product.ID)
	require.Equal(t, 0, p.Quantity)
	require.Equal(t, 20, tr.Ledger.Len())
}

func TestOpenRequiresStore(t *testing.T) {
	_, err := Open(context.Background(), Options{})
	require.Error(t, err)
}

func TestLowStockAndSalesOn(t *testing.T) {
	ctx := context.Background()
	tr := openTracker(t, storage.NewMemory())
	var product catalog.Product
	require.NoError(t, tr.Exclusive(ctx, func() error {
		var err error
		product, err = tr.Catalog.Add(ctx, catalog.ProductDraft{Name: "Muffin", Category: "Dessert", Price: "8", Quantity: "12"})
		return err
	}))
	threshold, low, err := tr.LowStock(ctx)
	require.NoError(t, err)
	require.Equal(t, 10, threshold)
	require.Empty(t, low)

	_, err = tr.RecordSale(ctx, checkout.SaleRequest{ProductID: product.ID, Quantity: 4})
	require.NoError(t, err)
	_, low, err = tr.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)

	count, total, err := tr.SalesOn(ctx, "2026-10-17")
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.InDelta(t, 32.0, total, 1e-9)
}

func openShared(t *testing.T, store storage.Store) *Tracker {
	t.Helper()
	tr, err := Open(context.Background(), Options{Store: store, DefaultThreshold: 10, Refresh: true})
	require.NoError(t, err)
	return tr
}

func addProduct(t *testing.T, tr *Tracker, name string) catalog.Product {
	t.Helper()
	ctx := context.Background()
	var p catalog.Product
	require.NoError(t, tr.Exclusive(ctx, func() error {
		var err error
		p, err = tr.Catalog.Add(ctx, catalog.ProductDraft{Name: name, Category: "Beverage", Price: "5", Quantity: "10"})
		return err
	}))
	return p
}

func TestRefreshKeepsOtherWritersChanges(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	server := openShared(t, mem)
	cli := openShared(t, mem)

	wings := addProduct(t, server, "Wings")
	addProduct(t, cli, "Tea")

	require.NoError(t, server.Exclusive(ctx, func() error {
		_, err := server.Catalog.AdjustStock(ctx, wings.ID, 1)
		return err
	}))

	fresh := openTracker(t, mem)
	require.Len(t, fresh.Catalog.List(), 2)

	d, err := server.Dashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, d.TotalProducts)
}

func TestWithoutRefreshReadsLoadedState(t *testing.T) {
	mem := storage.NewMemory()
	local := openTracker(t, mem)
	addProduct(t, openTracker(t, mem), "Tea")
	require.Empty(t, local.Catalog.List())
}

type failingLoads struct {
	*storage.Memory
	fail string
}

func (f *failingLoads) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if key == f.fail {
		return nil, false, errors.New("read timeout")
	}
	return f.Memory.Load(ctx, key)
}

func TestReloadFailureKeepsPreviousState(t *testing.T) {
	ctx := context.Background()
	store := &failingLoads{Memory: storage.NewMemory()}
	tr := openTracker(t, store)
	addProduct(t, tr, "Wings")

	addProduct(t, openTracker(t, store.Memory), "Tea")

	store.fail = storage.KeySales
	require.Error(t, tr.Reload(ctx))
	require.Len(t, tr.Catalog.List(), 1)
	require.Len(t, tr.Reports.LowStockList(100), 1)

	store.fail = ""
	require.NoError(t, tr.Reload(ctx))
	require.Len(t, tr.Catalog.List(), 2)
}
