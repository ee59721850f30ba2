package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection binds one logical key to a JSON document of type T.
type Collection[T any] struct {
	store Store
	key   string
}

// NewCollection builds a Collection for key.
func NewCollection[T any](store Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Key returns the logical key.
func (c *Collection[T]) Key() string {
	return c.key
}

// Load decodes the stored document. found is false when the key was never saved.
func (c *Collection[T]) Load(ctx context.Context) (value T, found bool, err error) {
	raw, found, err := c.store.Load(ctx, c.key)
	if err != nil {
		return value, false, fmt.Errorf("storage: load %s: %w", c.key, err)
	}
	if !found {
		return value, false, nil
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return value, true, fmt.Errorf("storage: decode %s: %w", c.key, err)
	}
	return value, true, nil
}

// Save encodes value and overwrites the key.
func (c *Collection[T]) Save(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", c.key, err)
	}
	if err := c.store.Save(ctx, c.key, raw); err != nil {
		return fmt.Errorf("storage: save %s: %w", c.key, err)
	}
	return nil
}
