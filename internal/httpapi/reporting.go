package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/wingscafe/tracker/internal/platform/httpx"
	"github.com/wingscafe/tracker/internal/reporting"
	"github.com/wingscafe/tracker/internal/reporting/export"
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.tracker.Dashboard(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, d)
}

func topLimit(r *http.Request) (int, error) {
	return queryInt(r, "top", reporting.DefaultTopSellers)
}

func (h *Handler) reporting(w http.ResponseWriter, r *http.Request) {
	limit, err := topLimit(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	summary, err := h.tracker.Summary(r.Context(), limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}

func (h *Handler) exportSummary(w http.ResponseWriter, r *http.Request) {
	limit, err := topLimit(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	summary, err := h.tracker.Summary(r.Context(), limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="report-`+summary.Date+`.csv"`)
	if err := export.WriteSummaryCSV(w, summary); err != nil {
		h.logger.Error("export summary", slog.Any("error", err))
	}
}
