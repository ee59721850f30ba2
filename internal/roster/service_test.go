package roster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wingscafe/tracker/internal/shared"
	"github.com/wingscafe/tracker/internal/storage"
)

func TestLoadSeedsOnlyOnFirstRun(t *testing.T) {
	mem := storage.NewMemory()
	ctx := context.Background()

	r := New(mem, shared.NewTimestampIDs(nil))
	seeded, err := r.Load(ctx)
	require.NoError(t, err)
	require.True(t, seeded)
	require.Len(t, r.List(), 5)
	require.Equal(t, 1, mem.Saves(storage.KeyCustomers))

	for _, c := range r.List() {
		require.NoError(t, r.Remove(ctx, c.ID))
	}
	require.Empty(t, r.List())

	again := New(mem, shared.NewTimestampIDs(nil))
	seeded, err = again.Load(ctx)
	require.NoError(t, err)
	require.False(t, seeded)
	require.Empty(t, again.List())
}

func TestSampleCustomers(t *testing.T) {
	samples := SampleCustomers()
	require.Len(t, samples, 5)
	require.Equal(t, "Hefa Jekola", samples[2].Name)
	require.Equal(t, 120, samples[2].LoyaltyPoints)
	require.Equal(t, TierGold, TierOf(samples[4]))
}

func TestAddDefaultsPoints(t *testing.T) {
	r := New(storage.NewMemory(), shared.NewTimestampIDs(nil))
	ctx := context.Background()

	cases := map[shared.FormValue]int{"": 0, "abc": 0, "-4": 0, "40": 40, " 7 ": 7}
	for input, want := range cases {
		c, err := r.Add(ctx, CustomerDraft{Name: "Palesa", LoyaltyPoints: input})
		require.NoError(t, err)
		require.Equal(t, want, c.LoyaltyPoints, "input %q", input)
	}

	_, err := r.Add(ctx, CustomerDraft{Name: ""})
	require.ErrorIs(t, err, shared.ErrValidation)
	_, err = r.Add(ctx, CustomerDraft{Name: "Palesa", Email: "not-an-email"})
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestUpdateAndRemove(t *testing.T) {
	r := New(storage.NewMemory(), shared.NewTimestampIDs(nil))
	ctx := context.Background()
	c, err := r.Add(ctx, CustomerDraft{Name: "Mpho", Email: "mpho@example.com", LoyaltyPoints: "10"})
	require.NoError(t, err)

	updated, err := r.Update(ctx, c.ID, CustomerDraft{Name: "Mpho M.", LoyaltyPoints: "60"})
	require.NoError(t, err)
	require.Equal(t, c.ID, updated.ID)
	require.Equal(t, TierSilver, TierOf(updated))

	_, err = r.Update(ctx, "missing", CustomerDraft{Name: "X"})
	require.ErrorIs(t, err, shared.ErrNotFound)

	require.NoError(t, r.Remove(ctx, c.ID))
	require.NoError(t, r.Remove(ctx, c.ID))
	_, ok := r.Get(c.ID)
	require.False(t, ok)
}

func TestAwardPoints(t *testing.T) {
	mem := storage.NewMemory()
	r := New(mem, shared.NewTimestampIDs(nil))
	ctx := context.Background()
	c, err := r.Add(ctx, CustomerDraft{Name: "Thabo", LoyaltyPoints: "95"})
	require.NoError(t, err)

	require.NoError(t, r.AwardPoints(ctx, c.ID, 5))
	got, _ := r.Get(c.ID)
	require.Equal(t, 100, got.LoyaltyPoints)
	require.Equal(t, TierGold, TierOf(got))

	saves := mem.Saves(storage.KeyCustomers)
	require.NoError(t, r.AwardPoints(ctx, "", 10))
	require.NoError(t, r.AwardPoints(ctx, "unknown", 10))
	require.Equal(t, saves, mem.Saves(storage.KeyCustomers))
}

func TestTierBoundaries(t *testing.T) {
	require.Equal(t, TierGold, TierFor(100))
	require.Equal(t, TierSilver, TierFor(99))
	require.Equal(t, TierSilver, TierFor(50))
	require.Equal(t, TierStandard, TierFor(49))
	require.Equal(t, TierStandard, TierFor(0))
}
