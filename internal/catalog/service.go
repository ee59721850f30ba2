// Package catalog owns the product list and its stock levels.
package catalog

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/wingscafe/tracker/internal/shared"
	"github.com/wingscafe/tracker/internal/storage"
)

// Catalog owns the Product lifecycle. Every mutation saves the whole product
// list before the in-memory copy is replaced, so a failed save leaves the
// catalog unchanged.
type Catalog struct {
	products []Product
	store    *storage.Collection[[]Product]
	ids      shared.IDGenerator
}

// New builds an empty Catalog persisted through store.
func New(store storage.Store, ids shared.IDGenerator) *Catalog {
	return &Catalog{
		store: storage.NewCollection[[]Product](store, storage.KeyProducts),
		ids:   ids,
	}
}

// Load replaces the in-memory list with the persisted one.
func (c *Catalog) Load(ctx context.Context) error {
	products, _, err := c.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	c.products = products
	return nil
}

// List returns a copy of all products in catalog order.
func (c *Catalog) List() []Product {
	return slices.Clone(c.products)
}

// Get looks a product up by id.
func (c *Catalog) Get(id string) (Product, bool) {
	idx := c.indexOf(id)
	if idx < 0 {
		return Product{}, false
	}
	return c.products[idx], true
}

// Add validates draft and appends a new product with a fresh id.
func (c *Catalog) Add(ctx context.Context, draft ProductDraft) (Product, error) {
	product, err := parseDraft(draft)
	if err != nil {
		return Product{}, fmt.Errorf("catalog: add: %w", err)
	}
	product.ID = c.ids.NewID()
	next := append(slices.Clone(c.products), product)
	if err := c.commit(ctx, next); err != nil {
		return Product{}, err
	}
	return product, nil
}

// Update replaces the product with matching id.
func (c *Catalog) Update(ctx context.Context, id string, draft ProductDraft) (Product, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		return Product{}, fmt.Errorf("catalog: product %s: %w", id, shared.ErrNotFound)
	}
	product, err := parseDraft(draft)
	if err != nil {
		return Product{}, fmt.Errorf("catalog: update: %w", err)
	}
	product.ID = id
	next := slices.Clone(c.products)
	next[idx] = product
	if err := c.commit(ctx, next); err != nil {
		return Product{}, err
	}
	return product, nil
}

// Remove deletes by id. A missing id is a no-op.
func (c *Catalog) Remove(ctx context.Context, id string) error {
	idx := c.indexOf(id)
	if idx < 0 {
		return nil
	}
	next := slices.Delete(slices.Clone(c.products), idx, idx+1)
	return c.commit(ctx, next)
}

// AdjustStock applies delta, clamping the result at zero.
func (c *Catalog) AdjustStock(ctx context.Context, id string, delta int) (Product, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		return Product{}, fmt.Errorf("catalog: product %s: %w", id, shared.ErrNotFound)
	}
	next := slices.Clone(c.products)
	next[idx].Quantity = clampAdd(next[idx].Quantity, delta)
	if err := c.commit(ctx, next); err != nil {
		return Product{}, err
	}
	return next[idx], nil
}

func (c *Catalog) commit(ctx context.Context, next []Product) error {
	if next == nil {
		next = []Product{}
	}
	if err := c.store.Save(ctx, next); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	c.products = next
	return nil
}

func (c *Catalog) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(c.products, func(p Product) bool { return p.ID == id })
}

// clampAdd returns max(0, qty+delta) without overflowing for extreme deltas.
func clampAdd(qty, delta int) int {
	if delta < 0 {
		if delta <= -qty {
			return 0
		}
		return qty + delta
	}
	if qty > math.MaxInt-delta {
		return math.MaxInt
	}
	return qty + delta
}
