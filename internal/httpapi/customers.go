package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wingscafe/tracker/internal/platform/httpx"
	"github.com/wingscafe/tracker/internal/roster"
	"github.com/wingscafe/tracker/internal/shared"
)

type customerView struct {
	roster.Customer
	Tier roster.Tier `json:"tier"`
}

func customerViews(customers []roster.Customer) []customerView {
	out := make([]customerView, 0, len(customers))
	for _, c := range customers {
		out = append(out, customerView{Customer: c, Tier: roster.TierOf(c)})
	}
	return out
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	var views []customerView
	if !h.read(w, r, func() {
		views = customerViews(h.tracker.Roster.List())
	}) {
		return
	}
	httpx.JSON(w, http.StatusOK, views)
}

func (h *Handler) showCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var (
		customer roster.Customer
		found    bool
	)
	if !h.read(w, r, func() {
		customer, found = h.tracker.Roster.Get(id)
	}) {
		return
	}
	if !found {
		h.fail(w, r, fmt.Errorf("customer %s: %w", id, shared.ErrNotFound))
		return
	}
	httpx.JSON(w, http.StatusOK, customerView{Customer: customer, Tier: roster.TierOf(customer)})
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var draft roster.CustomerDraft
	if err := httpx.DecodeJSON(r, &draft); err != nil {
		h.fail(w, r, err)
		return
	}
	var customer roster.Customer
	err := h.tracker.Exclusive(r.Context(), func() error {
		var err error
		customer, err = h.tracker.Roster.Add(r.Context(), draft)
		return err
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, customer)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var draft roster.CustomerDraft
	if err := httpx.DecodeJSON(r, &draft); err != nil {
		h.fail(w, r, err)
		return
	}
	var customer roster.Customer
	err := h.tracker.Exclusive(r.Context(), func() error {
		var err error
		customer, err = h.tracker.Roster.Update(r.Context(), chi.URLParam(r, "id"), draft)
		return err
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, customer)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	err := h.tracker.Exclusive(r.Context(), func() error {
		return h.tracker.Roster.Remove(r.Context(), chi.URLParam(r, "id"))
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
