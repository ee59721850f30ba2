package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wingscafe/tracker/internal/catalog"
	"github.com/wingscafe/tracker/internal/platform/httpx"
	"github.com/wingscafe/tracker/internal/shared"
)

// productView is a product with its stock status at the current threshold.
type productView struct {
	catalog.Product
	Status catalog.StockStatus `json:"status"`
}

func productViews(products []catalog.Product, threshold int) []productView {
	out := make([]productView, 0, len(products))
	for _, p := range products {
		out = append(out, productView{Product: p, Status: catalog.StatusOf(p, threshold)})
	}
	return out
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	var views []productView
	if !h.read(w, r, func() {
		views = productViews(h.tracker.Catalog.List(), h.tracker.Settings.LowStockThreshold())
	}) {
		return
	}
	httpx.JSON(w, http.StatusOK, views)
}

func (h *Handler) showProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var (
		product   catalog.Product
		found     bool
		threshold int
	)
	if !h.read(w, r, func() {
		product, found = h.tracker.Catalog.Get(id)
		threshold = h.tracker.Settings.LowStockThreshold()
	}) {
		return
	}
	if !found {
		h.fail(w, r, fmt.Errorf("product %s: %w", id, shared.ErrNotFound))
		return
	}
	httpx.JSON(w, http.StatusOK, productView{Product: product, Status: catalog.StatusOf(product, threshold)})
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var draft catalog.ProductDraft
	if err := httpx.DecodeJSON(r, &draft); err != nil {
		h.fail(w, r, err)
		return
	}
	var product catalog.Product
	err := h.tracker.Exclusive(r.Context(), func() error {
		var err error
		product, err = h.tracker.Catalog.Add(r.Context(), draft)
		return err
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var draft catalog.ProductDraft
	if err := httpx.DecodeJSON(r, &draft); err != nil {
		h.fail(w, r, err)
		return
	}
	var product catalog.Product
	err := h.tracker.Exclusive(r.Context(), func() error {
		var err error
		product, err = h.tracker.Catalog.Update(r.Context(), chi.URLParam(r, "id"), draft)
		return err
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	err := h.tracker.Exclusive(r.Context(), func() error {
		return h.tracker.Catalog.Remove(r.Context(), chi.URLParam(r, "id"))
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
