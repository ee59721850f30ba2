// Package settings holds the persisted tracker preferences.
package settings

import (
	"context"
	"fmt"

	"github.com/wingscafe/tracker/internal/shared"
	"github.com/wingscafe/tracker/internal/storage"
)

// DefaultLowStockThreshold applies until a threshold is saved.
const DefaultLowStockThreshold = 10

// Settings keeps the low-stock threshold in memory and in the store.
type Settings struct {
	threshold int
	fallback  int
	store     *storage.Collection[int]
}

// New builds Settings with fallback used when nothing is persisted. A
// negative fallback is replaced by DefaultLowStockThreshold.
func New(store storage.Store, fallback int) *Settings {
	if fallback < 0 {
		fallback = DefaultLowStockThreshold
	}
	return &Settings{
		threshold: fallback,
		fallback:  fallback,
		store:     storage.NewCollection[int](store, storage.KeyLowStockThreshold),
	}
}

// Load reads the persisted threshold, keeping the fallback when absent.
func (s *Settings) Load(ctx context.Context) error {
	v, found, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if !found || v < 0 {
		s.threshold = s.fallback
		return nil
	}
	s.threshold = v
	return nil
}

// LowStockThreshold is the current threshold.
func (s *Settings) LowStockThreshold() int {
	return s.threshold
}

// SetLowStockThreshold persists v. Negative values are rejected.
func (s *Settings) SetLowStockThreshold(ctx context.Context, v int) error {
	if v < 0 {
		return fmt.Errorf("settings: %w", shared.FieldError("threshold", "min"))
	}
	if err := s.store.Save(ctx, v); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	s.threshold = v
	return nil
}
