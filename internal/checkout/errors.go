package checkout

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotSelected indicates the sale names no known product.
	ErrProductNotSelected = errors.New("checkout: please select a product")
	// ErrInvalidQuantity indicates a sale quantity of zero or less.
	ErrInvalidQuantity = errors.New("checkout: please enter a valid quantity")
	// ErrInsufficientStock matches every *InsufficientStockError.
	ErrInsufficientStock = errors.New("checkout: not enough stock")
)

// InsufficientStockError carries the stock on hand when a sale was refused.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s. Only %d available.", ErrInsufficientStock.Error(), e.Available)
}

// Is lets errors.Is match ErrInsufficientStock.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// Rejection reasons reported to Hooks.
const (
	ReasonProductNotSelected = "product_not_selected"
	ReasonInvalidQuantity    = "invalid_quantity"
	ReasonInsufficientStock  = "insufficient_stock"
	ReasonStorage            = "storage"
)
