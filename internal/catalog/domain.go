package catalog

import (
	"github.com/wingscafe/tracker/internal/shared"
)

// Category enumerates the fixed product categories.
type Category string

const (
	CategoryFood     Category = "Food"
	CategoryBeverage Category = "Beverage"
	CategoryDessert  Category = "Dessert"
	CategorySnack    Category = "Snack"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CategoryFood, CategoryBeverage, CategoryDessert, CategorySnack}
}

// Product is a catalog entry.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
}

// ProductDraft is unparsed form input for create and update.
type ProductDraft struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	Category    string           `json:"category" validate:"required,oneof=Food Beverage Dessert Snack"`
	Price       shared.FormValue `json:"price" validate:"required"`
	Quantity    shared.FormValue `json:"quantity" validate:"required"`
}

// StockStatus classifies a product's quantity against the low-stock threshold.
type StockStatus string

const (
	StatusInStock    StockStatus = "In Stock"
	StatusLowStock   StockStatus = "Low Stock"
	StatusOutOfStock StockStatus = "Out of Stock"
)

// IsLowStock reports quantity <= threshold.
func IsLowStock(p Product, threshold int) bool {
	return p.Quantity <= threshold
}

// StatusOf classifies p. Zero is always out of stock, whatever the threshold.
func StatusOf(p Product, threshold int) StockStatus {
	switch {
	case p.Quantity <= 0:
		return StatusOutOfStock
	case p.Quantity <= threshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
