package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wingscafe/tracker/internal/checkout"
	"github.com/wingscafe/tracker/internal/ledger"
	"github.com/wingscafe/tracker/internal/platform/httpx"
	"github.com/wingscafe/tracker/internal/reporting/export"
	"github.com/wingscafe/tracker/internal/shared"
)

type saleRequest struct {
	ProductID  string           `json:"productId"`
	Quantity   shared.FormValue `json:"quantity"`
	CustomerID string           `json:"customerId"`
}

type saleResponse struct {
	Sale    ledger.Sale `json:"sale"`
	Receipt string      `json:"receipt"`
	Warning string      `json:"warning,omitempty"`
}

type salesPage struct {
	Sales      []ledger.Sale     `json:"sales"`
	Pagination shared.Pagination `json:"pagination"`
}

// listSales pages through the ledger, most recent first.
func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	perPage, err := queryInt(r, "perPage", shared.DefaultPerPage)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var sales []ledger.Sale
	if !h.read(w, r, func() {
		sales = h.tracker.Ledger.Recent(0)
	}) {
		return
	}
	p := shared.NewPagination(page, perPage, len(sales))
	start, end := p.Bounds()
	httpx.JSON(w, http.StatusOK, salesPage{Sales: sales[start:end], Pagination: p})
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, shared.FieldError(name, "min")
	}
	return n, nil
}

func (h *Handler) recordSale(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	// Unparsable quantities are rejected by the processor as non-positive.
	quantity, _ := req.Quantity.Int()
	sale, err := h.tracker.RecordSale(r.Context(), checkout.SaleRequest{
		ProductID:  req.ProductID,
		Quantity:   quantity,
		CustomerID: req.CustomerID,
	})
	if err != nil && sale.ID == "" {
		h.fail(w, r, err)
		return
	}
	resp := saleResponse{Sale: sale, Receipt: checkout.Receipt(sale)}
	if err != nil {
		resp.Warning = "sale recorded but stock or loyalty points were not updated"
		h.logger.Error("sale partially applied", slog.String("sale_id", sale.ID), slog.Any("error", err))
	}
	httpx.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) deleteSale(w http.ResponseWriter, r *http.Request) {
	err := h.tracker.Exclusive(r.Context(), func() error {
		return h.tracker.Ledger.Remove(r.Context(), chi.URLParam(r, "id"))
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) exportSales(w http.ResponseWriter, r *http.Request) {
	var sales []ledger.Sale
	if !h.read(w, r, func() {
		sales = h.tracker.Ledger.All()
	}) {
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sales.csv"`)
	if err := export.WriteSalesCSV(w, sales); err != nil {
		h.logger.Error("export sales", slog.Any("error", err))
	}
}
