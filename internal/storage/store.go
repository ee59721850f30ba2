// Package storage provides the key-value persistence collaborator used by the
// catalog, roster, ledger and settings. Each logical key holds a whole
// collection serialised as JSON and is overwritten on every change.
package storage

import (
	"context"
	"errors"
	"strings"
	"unicode"
)

// Logical keys persisted by the tracker.
const (
	KeyProducts          = "products"
	KeyCustomers         = "customers"
	KeySales             = "sales"
	KeyLowStockThreshold = "lowStockThreshold"
)

// ErrClosed is returned by stores used after Close.
var ErrClosed = errors.New("storage: store closed")

// Store loads and saves opaque values by key.
type Store interface {
	// Load returns the stored value and whether the key exists.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	// Save overwrites the value for key.
	Save(ctx context.Context, key string, value []byte) error
	Close() error
}

type prefixed struct {
	Store
	prefix string
}

// WithPrefix namespaces logical keys, e.g. "products" becomes "wingsCafeProducts".
func WithPrefix(store Store, prefix string) Store {
	if prefix == "" {
		return store
	}
	return &prefixed{Store: store, prefix: prefix}
}

// PhysicalKey joins prefix and key in camel case. KeyLowStockThreshold is a
// global setting and is never prefixed.
func PhysicalKey(prefix, key string) string {
	if key == KeyLowStockThreshold {
		return key
	}
	if prefix == "" || key == "" {
		return prefix + key
	}
	runes := []rune(key)
	runes[0] = unicode.ToUpper(runes[0])
	return prefix + string(runes)
}

func (p *prefixed) Load(ctx context.Context, key string) ([]byte, bool, error) {
	return p.Store.Load(ctx, PhysicalKey(p.prefix, key))
}

func (p *prefixed) Save(ctx context.Context, key string, value []byte) error {
	return p.Store.Save(ctx, PhysicalKey(p.prefix, key), value)
}

func validKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("storage: key required")
	}
	return nil
}
