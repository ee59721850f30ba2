// Package httpapi exposes the tracker screens as a JSON API.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wingscafe/tracker/internal/platform/httpx"
	"github.com/wingscafe/tracker/internal/tracker"
)

// Handler serves every screen of the tracker.
type Handler struct {
	tracker *tracker.Tracker
	logger  *slog.Logger
}

// NewHandler builds Handler instance.
func NewHandler(t *tracker.Tracker, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{tracker: t, logger: logger}
}

// MountRoutes registers the screen routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/dashboard", h.dashboard)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.createProduct)
		r.Get("/{id}", h.showProduct)
		r.Put("/{id}", h.updateProduct)
		r.Delete("/{id}", h.deleteProduct)
	})

	r.Route("/inventory", func(r chi.Router) {
		r.Get("/", h.listInventory)
		r.Put("/threshold", h.updateThreshold)
		r.Post("/{id}/adjust", h.adjustStock)
	})

	r.Route("/sales", func(r chi.Router) {
		r.Get("/", h.listSales)
		r.Post("/", h.recordSale)
		r.Get("/export.csv", h.exportSales)
		r.Delete("/{id}", h.deleteSale)
	})

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", h.listCustomers)
		r.Post("/", h.createCustomer)
		r.Get("/{id}", h.showCustomer)
		r.Put("/{id}", h.updateCustomer)
		r.Delete("/{id}", h.deleteCustomer)
	})

	r.Route("/reporting", func(r chi.Router) {
		r.Get("/", h.reporting)
		r.Get("/export.csv", h.exportSummary)
	})

	r.Get("/modules", h.listModules)
	r.Get("/modules/{module}", h.showModule)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Warn("request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
	httpx.RespondError(w, err)
}

// read runs fn under the tracker's read lock. It reports false after writing
// the error response when the tracker could not refresh its state.
func (h *Handler) read(w http.ResponseWriter, r *http.Request, fn func()) bool {
	err := h.tracker.Shared(r.Context(), func() error {
		fn()
		return nil
	})
	if err != nil {
		h.fail(w, r, err)
		return false
	}
	return true
}
