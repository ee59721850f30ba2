package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wingscafe/tracker/internal/ledger"
	"github.com/wingscafe/tracker/internal/nav"
	"github.com/wingscafe/tracker/internal/platform/httpx"
	"github.com/wingscafe/tracker/internal/reporting"
	"github.com/wingscafe/tracker/internal/shared"
)

type moduleLink struct {
	Module nav.Module `json:"module"`
	Title  string     `json:"title"`
	Path   string     `json:"path"`
}

// moduleView is the payload for one screen.
type moduleView struct {
	Module nav.Module `json:"module"`
	Title  string     `json:"title"`
	Data   any        `json:"data"`
}

type salesScreen struct {
	Products  []productView  `json:"products"`
	Customers []customerView `json:"customers"`
	Sales     []ledger.Sale  `json:"sales"`
}

func (h *Handler) listModules(w http.ResponseWriter, r *http.Request) {
	links := make([]moduleLink, 0, len(nav.Modules()))
	for _, m := range nav.Modules() {
		links = append(links, moduleLink{Module: m, Title: m.Title(), Path: "/modules/" + m.String()})
	}
	httpx.JSON(w, http.StatusOK, links)
}

func (h *Handler) showModule(w http.ResponseWriter, r *http.Request) {
	m, err := nav.ParseModule(chi.URLParam(r, "module"))
	if err != nil {
		h.fail(w, r, fmt.Errorf("%w: %v", shared.ErrNotFound, err))
		return
	}
	data, err := h.moduleData(r.Context(), m)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, moduleView{Module: m, Title: m.Title(), Data: data})
}

func (h *Handler) moduleData(ctx context.Context, m nav.Module) (any, error) {
	switch m {
	case nav.Dashboard:
		return h.tracker.Dashboard(ctx)
	case nav.Products:
		var views []productView
		err := h.tracker.Shared(ctx, func() error {
			views = productViews(h.tracker.Catalog.List(), h.tracker.Settings.LowStockThreshold())
			return nil
		})
		return views, err
	case nav.Inventory:
		return h.inventoryView(ctx)
	case nav.Sales:
		var screen salesScreen
		err := h.tracker.Shared(ctx, func() error {
			screen.Products = productViews(h.tracker.Catalog.List(), h.tracker.Settings.LowStockThreshold())
			screen.Customers = customerViews(h.tracker.Roster.List())
			screen.Sales = h.tracker.Ledger.Recent(0)
			return nil
		})
		return screen, err
	case nav.Customers:
		var views []customerView
		err := h.tracker.Shared(ctx, func() error {
			views = customerViews(h.tracker.Roster.List())
			return nil
		})
		return views, err
	case nav.Reporting:
		return h.tracker.Summary(ctx, reporting.DefaultTopSellers)
	default:
		return nil, fmt.Errorf("module %s: %w", m, shared.ErrNotFound)
	}
}
