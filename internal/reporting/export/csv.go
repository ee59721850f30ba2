// Package export renders reports as CSV.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/wingscafe/tracker/internal/ledger"
	"github.com/wingscafe/tracker/internal/reporting"
)

// WriteSalesCSV emits the ledger, one row per sale, in the order given.
func WriteSalesCSV(w io.Writer, sales []ledger.Sale) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()
	if err := writer.Write([]string{"ID", "Date", "Product ID", "Product", "Quantity", "Customer ID", "Customer", "Total", "Payment"}); err != nil {
		return err
	}
	for _, s := range sales {
		if err := writer.Write([]string{
			s.ID,
			s.Date,
			s.ProductID,
			s.ProductName,
			strconv.Itoa(s.Quantity),
			s.CustomerID,
			s.CustomerName,
			formatFloat(s.TotalPrice),
			s.PaymentMethod,
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteSummaryCSV emits the reporting summary as sectioned metric rows.
func WriteSummaryCSV(w io.Writer, summary reporting.Summary) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	records := [][]string{
		{"Section", "Name", "Value", "Extra"},
		{"Totals", "Date", summary.Date, ""},
		{"Totals", "Inventory Value", formatFloat(summary.InventoryValue), ""},
		{"Totals", "Total Sales", formatFloat(summary.TotalSales), ""},
		{"Totals", "Today's Sales", formatFloat(summary.TodaysSales), ""},
		{"Totals", "Sales Count", strconv.Itoa(summary.SalesCount), ""},
	}
	for _, c := range summary.Categories {
		records = append(records, []string{"Category", string(c.Category), formatFloat(c.Value), formatFloat(c.Percent) + "%"})
	}
	records = append(records,
		[]string{"Tier", "Gold", strconv.Itoa(summary.Tiers.Gold), ""},
		[]string{"Tier", "Silver", strconv.Itoa(summary.Tiers.Silver), ""},
		[]string{"Tier", "Standard", strconv.Itoa(summary.Tiers.Standard), ""},
	)
	for _, t := range summary.TopSellers {
		records = append(records, []string{"Top Seller", t.ProductName, formatFloat(t.Revenue), strconv.Itoa(t.Quantity)})
	}
	for _, p := range summary.LowStock {
		records = append(records, []string{"Low Stock", p.Name, strconv.Itoa(p.Quantity), string(p.Category)})
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
