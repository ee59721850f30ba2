package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wingscafe/tracker/internal/catalog"
	"github.com/wingscafe/tracker/internal/ledger"
	"github.com/wingscafe/tracker/internal/reporting"
)

func TestWriteSalesCSV(t *testing.T) {
	buf := &bytes.Buffer{}
	sales := []ledger.Sale{
		{ID: "1", Date: "2026-10-17", ProductID: "p1", ProductName: "Wings, hot", Quantity: 3, CustomerName: ledger.WalkInCustomerName, TotalPrice: 60, PaymentMethod: ledger.PaymentMethodCash},
	}
	require.NoError(t, WriteSalesCSV(buf, sales))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "Wings, hot", records[1][3])
	require.Equal(t, "60.00", records[1][7])
}

func TestWriteSummaryCSV(t *testing.T) {
	buf := &bytes.Buffer{}
	summary := reporting.Summary{
		Date:           "2026-10-17",
		InventoryValue: 100,
		Categories:     []reporting.CategoryShare{{Category: catalog.CategoryFood, Value: 100, Percent: 100}},
		Tiers:          reporting.TierCounts{Gold: 1},
		TopSellers:     []reporting.TopSeller{{ProductName: "Wings", Revenue: 40, Quantity: 2}},
		LowStock:       []catalog.Product{{Name: "Cake", Quantity: 0, Category: catalog.CategoryDessert}},
	}
	require.NoError(t, WriteSummaryCSV(buf, summary))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 12)
	require.Equal(t, []string{"Category", "Food", "100.00", "100.00%"}, records[6])
	require.Equal(t, []string{"Low Stock", "Cake", "0", "Dessert"}, records[11])
}
