// Package reporting derives dashboard and analytics figures from the current
// catalog, roster and ledger. Nothing is cached: every call recomputes from
// the sources.
package reporting

import (
	"slices"

	"github.com/wingscafe/tracker/internal/catalog"
	"github.com/wingscafe/tracker/internal/ledger"
	"github.com/wingscafe/tracker/internal/roster"
	"github.com/wingscafe/tracker/internal/shared"
)

// DefaultTopSellers is the default ranking length.
const DefaultTopSellers = 5

// RecentSalesOnDashboard is how many recent sales the dashboard lists.
const RecentSalesOnDashboard = 5

// ProductSource lists catalog products in order.
type ProductSource interface {
	List() []catalog.Product
}

// CustomerSource lists roster customers.
type CustomerSource interface {
	List() []roster.Customer
}

// SaleSource lists ledger records in insertion order.
type SaleSource interface {
	All() []ledger.Sale
}

// Engine is a read-only aggregator.
type Engine struct {
	products  ProductSource
	customers CustomerSource
	sales     SaleSource
	clock     shared.Clock
}

// NewEngine wires the sources. clock drives "today".
func NewEngine(products ProductSource, customers CustomerSource, sales SaleSource, clock shared.Clock) *Engine {
	if clock == nil {
		clock = shared.SystemClock{}
	}
	return &Engine{products: products, customers: customers, sales: sales, clock: clock}
}

// LowStockList returns products with quantity <= threshold in catalog order.
func (e *Engine) LowStockList(threshold int) []catalog.Product {
	var out []catalog.Product
	for _, p := range e.products.List() {
		if catalog.IsLowStock(p, threshold) {
			out = append(out, p)
		}
	}
	return out
}

// TotalInventoryValue sums price*quantity over the catalog.
func (e *Engine) TotalInventoryValue() float64 {
	return inventoryValue(e.products.List())
}

// TodaysSalesTotal sums sales dated today.
func (e *Engine) TodaysSalesTotal() float64 {
	today := shared.Today(e.clock)
	var total float64
	for _, s := range e.sales.All() {
		if s.Date == today {
			total += s.TotalPrice
		}
	}
	return total
}

// SalesOn counts and sums the sales dated date (YYYY-MM-DD).
func (e *Engine) SalesOn(date string) (count int, total float64) {
	for _, s := range e.sales.All() {
		if s.Date == date {
			count++
			total += s.TotalPrice
		}
	}
	return count, total
}

// TotalSalesValue sums every sale.
func (e *Engine) TotalSalesValue() float64 {
	var total float64
	for _, s := range e.sales.All() {
		total += s.TotalPrice
	}
	return total
}

// CategoryShare is one category's slice of inventory value.
type CategoryShare struct {
	Category catalog.Category `json:"category"`
	Products int              `json:"products"`
	Value    float64          `json:"value"`
	Percent  float64          `json:"percent"`
}

// CategoryBreakdown groups inventory value by category in first-seen order.
// With zero total value every percentage is zero.
func (e *Engine) CategoryBreakdown() []CategoryShare {
	products := e.products.List()
	total := inventoryValue(products)
	if total == 0 {
		total = 1
	}
	var out []CategoryShare
	index := make(map[catalog.Category]int)
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(out)
			index[p.Category] = i
			out = append(out, CategoryShare{Category: p.Category})
		}
		out[i].Products++
		out[i].Value += p.Price * float64(p.Quantity)
	}
	for i := range out {
		out[i].Percent = out[i].Value / total * 100
	}
	return out
}

// TierCounts counts customers per loyalty tier.
type TierCounts struct {
	Gold     int `json:"gold"`
	Silver   int `json:"silver"`
	Standard int `json:"standard"`
}

// LoyaltyTierCounts buckets customers by tier.
func (e *Engine) LoyaltyTierCounts() TierCounts {
	var counts TierCounts
	for _, c := range e.customers.List() {
		switch roster.TierOf(c) {
		case roster.TierGold:
			counts.Gold++
		case roster.TierSilver:
			counts.Silver++
		default:
			counts.Standard++
		}
	}
	return counts
}

// TopSeller aggregates sales of one product.
type TopSeller struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

// TopSellingProducts ranks products by revenue, descending. Ties keep the
// order in which products first appear in the ledger. limit <= 0 uses
// DefaultTopSellers.
func (e *Engine) TopSellingProducts(limit int) []TopSeller {
	if limit <= 0 {
		limit = DefaultTopSellers
	}
	var out []TopSeller
	index := make(map[string]int)
	for _, s := range e.sales.All() {
		i, ok := index[s.ProductID]
		if !ok {
			i = len(out)
			index[s.ProductID] = i
			out = append(out, TopSeller{ProductID: s.ProductID, ProductName: s.ProductName})
		}
		out[i].Quantity += s.Quantity
		out[i].Revenue += s.TotalPrice
	}
	slices.SortStableFunc(out, func(a, b TopSeller) int {
		switch {
		case a.Revenue > b.Revenue:
			return -1
		case a.Revenue < b.Revenue:
			return 1
		default:
			return 0
		}
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func inventoryValue(products []catalog.Product) float64 {
	var total float64
	for _, p := range products {
		total += p.Price * float64(p.Quantity)
	}
	return total
}
