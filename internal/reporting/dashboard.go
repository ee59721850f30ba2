package reporting

import (
	"github.com/wingscafe/tracker/internal/catalog"
	"github.com/wingscafe/tracker/internal/ledger"
	"github.com/wingscafe/tracker/internal/shared"
)

// Dashboard is the landing-page card set.
type Dashboard struct {
	Date           string        `json:"date"`
	TotalProducts  int           `json:"totalProducts"`
	LowStockCount  int           `json:"lowStockCount"`
	TodaysSales    float64       `json:"todaysSales"`
	TotalCustomers int           `json:"totalCustomers"`
	InventoryValue float64       `json:"inventoryValue"`
	RecentSales    []ledger.Sale `json:"recentSales"`
}

// Dashboard assembles the dashboard cards for threshold.
func (e *Engine) Dashboard(threshold int) Dashboard {
	sales := e.sales.All()
	recent := make([]ledger.Sale, 0, RecentSalesOnDashboard)
	for i := len(sales) - 1; i >= 0 && len(recent) < RecentSalesOnDashboard; i-- {
		recent = append(recent, sales[i])
	}
	return Dashboard{
		Date:           shared.Today(e.clock),
		TotalProducts:  len(e.products.List()),
		LowStockCount:  len(e.LowStockList(threshold)),
		TodaysSales:    e.TodaysSalesTotal(),
		TotalCustomers: len(e.customers.List()),
		InventoryValue: e.TotalInventoryValue(),
		RecentSales:    recent,
	}
}

// Summary is the reporting-page bundle.
type Summary struct {
	Date           string            `json:"date"`
	InventoryValue float64           `json:"inventoryValue"`
	TotalSales     float64           `json:"totalSales"`
	TodaysSales    float64           `json:"todaysSales"`
	SalesCount     int               `json:"salesCount"`
	Categories     []CategoryShare   `json:"categories"`
	Tiers          TierCounts        `json:"tiers"`
	TopSellers     []TopSeller       `json:"topSellers"`
	LowStock       []catalog.Product `json:"lowStock"`
}

// Summary assembles every report for the reporting page.
func (e *Engine) Summary(threshold, topLimit int) Summary {
	return Summary{
		Date:           shared.Today(e.clock),
		InventoryValue: e.TotalInventoryValue(),
		TotalSales:     e.TotalSalesValue(),
		TodaysSales:    e.TodaysSalesTotal(),
		SalesCount:     len(e.sales.All()),
		Categories:     e.CategoryBreakdown(),
		Tiers:          e.LoyaltyTierCounts(),
		TopSellers:     e.TopSellingProducts(topLimit),
		LowStock:       e.LowStockList(threshold),
	}
}
