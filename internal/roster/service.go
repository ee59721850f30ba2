// Package roster owns customers and their loyalty balances.
package roster

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/wingscafe/tracker/internal/shared"
	"github.com/wingscafe/tracker/internal/storage"
)

// Roster owns the Customer lifecycle.
type Roster struct {
	customers []Customer
	store     *storage.Collection[[]Customer]
	ids       shared.IDGenerator
}

// New builds an empty Roster persisted through store.
func New(store storage.Store, ids shared.IDGenerator) *Roster {
	return &Roster{
		store: storage.NewCollection[[]Customer](store, storage.KeyCustomers),
		ids:   ids,
	}
}

// Load reads the persisted customers. On first run, when the key has never
// been written, the sample customers are seeded and saved straight away.
// It reports whether seeding happened.
func (r *Roster) Load(ctx context.Context) (seeded bool, err error) {
	customers, found, err := r.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("roster: %w", err)
	}
	if found {
		r.customers = customers
		return false, nil
	}
	if err := r.commit(ctx, SampleCustomers()); err != nil {
		return false, err
	}
	return true, nil
}

// List returns a copy of all customers.
func (r *Roster) List() []Customer {
	return slices.Clone(r.customers)
}

// Get looks a customer up by id.
func (r *Roster) Get(id string) (Customer, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return Customer{}, false
	}
	return r.customers[idx], true
}

// Add validates draft and appends a customer with a fresh id.
func (r *Roster) Add(ctx context.Context, draft CustomerDraft) (Customer, error) {
	customer, err := parseDraft(draft)
	if err != nil {
		return Customer{}, fmt.Errorf("roster: add: %w", err)
	}
	customer.ID = r.ids.NewID()
	if err := r.commit(ctx, append(slices.Clone(r.customers), customer)); err != nil {
		return Customer{}, err
	}
	return customer, nil
}

// Update replaces the customer with matching id.
func (r *Roster) Update(ctx context.Context, id string, draft CustomerDraft) (Customer, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return Customer{}, fmt.Errorf("roster: customer %s: %w", id, shared.ErrNotFound)
	}
	customer, err := parseDraft(draft)
	if err != nil {
		return Customer{}, fmt.Errorf("roster: update: %w", err)
	}
	customer.ID = id
	next := slices.Clone(r.customers)
	next[idx] = customer
	if err := r.commit(ctx, next); err != nil {
		return Customer{}, err
	}
	return customer, nil
}

// Remove deletes by id. A missing id is a no-op.
func (r *Roster) Remove(ctx context.Context, id string) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return nil
	}
	return r.commit(ctx, slices.Delete(slices.Clone(r.customers), idx, idx+1))
}

// AwardPoints adds amount to the customer's balance. Unknown ids, including
// the empty walk-in id, are ignored.
func (r *Roster) AwardPoints(ctx context.Context, id string, amount int) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return nil
	}
	next := slices.Clone(r.customers)
	next[idx].LoyaltyPoints = max(0, next[idx].LoyaltyPoints+amount)
	return r.commit(ctx, next)
}

func (r *Roster) commit(ctx context.Context, next []Customer) error {
	if next == nil {
		next = []Customer{}
	}
	if err := r.store.Save(ctx, next); err != nil {
		return fmt.Errorf("roster: %w", err)
	}
	r.customers = next
	return nil
}

func (r *Roster) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(r.customers, func(c Customer) bool { return c.ID == id })
}

func parseDraft(d CustomerDraft) (Customer, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	if err := shared.ValidateStruct(d); err != nil {
		return Customer{}, err
	}
	points, err := d.LoyaltyPoints.Int()
	if err != nil || points < 0 {
		points = 0
	}
	return Customer{
		Name:          d.Name,
		Email:         d.Email,
		Phone:         strings.TrimSpace(d.Phone),
		LoyaltyPoints: points,
	}, nil
}
