package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wingscafe/tracker/internal/catalog"
	"github.com/wingscafe/tracker/internal/platform/httpx"
	"github.com/wingscafe/tracker/internal/shared"
)

type inventoryView struct {
	Threshold int           `json:"threshold"`
	Items     []productView `json:"items"`
	LowStock  int           `json:"lowStock"`
}

type adjustRequest struct {
	Delta shared.FormValue `json:"delta"`
}

type thresholdRequest struct {
	Threshold shared.FormValue `json:"threshold"`
}

func (h *Handler) inventoryView(ctx context.Context) (inventoryView, error) {
	var view inventoryView
	err := h.tracker.Shared(ctx, func() error {
		view.Threshold = h.tracker.Settings.LowStockThreshold()
		view.Items = productViews(h.tracker.Catalog.List(), view.Threshold)
		view.LowStock = len(h.tracker.Reports.LowStockList(view.Threshold))
		return nil
	})
	return view, err
}

func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	view, err := h.inventoryView(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

func (h *Handler) adjustStock(w http.ResponseWriter, r *http.Request) {
	var req adjustRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	delta, err := req.Delta.Int()
	if err != nil {
		h.fail(w, r, shared.FieldError("delta", "numeric"))
		return
	}
	var product catalog.Product
	err = h.tracker.Exclusive(r.Context(), func() error {
		var err error
		product, err = h.tracker.Catalog.AdjustStock(r.Context(), chi.URLParam(r, "id"), delta)
		return err
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) updateThreshold(w http.ResponseWriter, r *http.Request) {
	var req thresholdRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	threshold, err := req.Threshold.Int()
	if err != nil {
		h.fail(w, r, shared.FieldError("threshold", "numeric"))
		return
	}
	err = h.tracker.Exclusive(r.Context(), func() error {
		return h.tracker.Settings.SetLowStockThreshold(r.Context(), threshold)
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.listInventory(w, r)
}
