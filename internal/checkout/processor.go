// Package checkout records sales across the catalog, roster and ledger.
package checkout

import (
	"context"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wingscafe/tracker/internal/catalog"
	"github.com/wingscafe/tracker/internal/ledger"
	"github.com/wingscafe/tracker/internal/roster"
)

// CatalogPort is the catalog surface a sale needs.
type CatalogPort interface {
	Get(id string) (catalog.Product, bool)
	AdjustStock(ctx context.Context, id string, delta int) (catalog.Product, error)
}

// RosterPort is the roster surface a sale needs.
type RosterPort interface {
	Get(id string) (roster.Customer, bool)
	AwardPoints(ctx context.Context, id string, amount int) error
}

// LedgerPort is the ledger surface a sale needs.
type LedgerPort interface {
	Append(ctx context.Context, sale ledger.Sale) (ledger.Sale, error)
}

// Hooks observes sale outcomes. Implementations must not fail.
type Hooks interface {
	SaleRecorded(sale ledger.Sale)
	SaleRejected(reason string)
}

// SaleRequest is one sale as entered at the till.
type SaleRequest struct {
	ProductID  string `json:"productId"`
	Quantity   int    `json:"quantity"`
	CustomerID string `json:"customerId"`
}

// Processor coordinates a sale. It owns no entity.
type Processor struct {
	catalog CatalogPort
	roster  RosterPort
	ledger  LedgerPort
	hooks   Hooks
}

// NewProcessor builds a Processor. hooks may be nil.
func NewProcessor(catalog CatalogPort, roster RosterPort, ledger LedgerPort, hooks Hooks) *Processor {
	return &Processor{catalog: catalog, roster: roster, ledger: ledger, hooks: hooks}
}

// RecordSale validates req, appends the sale to the ledger, then decrements
// stock and awards loyalty points. Validation failures touch no store. The
// ledger write happens before the stock and loyalty writes, so an error after
// it leaves the ledger authoritative and the other stores merely stale; the
// recorded sale is returned alongside such an error.
func (p *Processor) RecordSale(ctx context.Context, req SaleRequest) (ledger.Sale, error) {
	product, ok := p.catalog.Get(strings.TrimSpace(req.ProductID))
	if !ok {
		return ledger.Sale{}, p.reject(ReasonProductNotSelected, ErrProductNotSelected)
	}
	if req.Quantity <= 0 {
		return ledger.Sale{}, p.reject(ReasonInvalidQuantity, ErrInvalidQuantity)
	}
	if product.Quantity < req.Quantity {
		return ledger.Sale{}, p.reject(ReasonInsufficientStock, &InsufficientStockError{Available: product.Quantity})
	}

	total := product.Price * float64(req.Quantity)

	customer, hasCustomer := roster.Customer{}, false
	if id := strings.TrimSpace(req.CustomerID); id != "" {
		customer, hasCustomer = p.roster.Get(id)
	}

	sale := ledger.Sale{
		ProductID:     product.ID,
		ProductName:   product.Name,
		Quantity:      req.Quantity,
		CustomerName:  ledger.WalkInCustomerName,
		TotalPrice:    total,
		PaymentMethod: ledger.PaymentMethodCash,
	}
	if hasCustomer {
		sale.CustomerID = customer.ID
		sale.CustomerName = customer.Name
	}

	sale, err := p.ledger.Append(ctx, sale)
	if err != nil {
		return ledger.Sale{}, p.reject(ReasonStorage, fmt.Errorf("checkout: append sale: %w", err))
	}

	if _, err := p.catalog.AdjustStock(ctx, product.ID, -req.Quantity); err != nil {
		return sale, fmt.Errorf("checkout: sale %s recorded, stock update failed: %w", sale.ID, err)
	}
	if hasCustomer {
		if err := p.roster.AwardPoints(ctx, customer.ID, LoyaltyPointsFor(total)); err != nil {
			return sale, fmt.Errorf("checkout: sale %s recorded, loyalty update failed: %w", sale.ID, err)
		}
	}

	if p.hooks != nil {
		p.hooks.SaleRecorded(sale)
	}
	return sale, nil
}

func (p *Processor) reject(reason string, err error) error {
	if p.hooks != nil {
		p.hooks.SaleRejected(reason)
	}
	return err
}

// LoyaltyPointsFor awards one point per 10 currency units, rounded down.
func LoyaltyPointsFor(total float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(total / 10))
}

var printer = message.NewPrinter(language.English)

// Receipt is the confirmation shown to the cashier.
func Receipt(sale ledger.Sale) string {
	return printer.Sprintf("Sale recorded: %d x %s for M%.2f", sale.Quantity, sale.ProductName, sale.TotalPrice)
}
