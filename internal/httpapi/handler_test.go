package httpapi

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/wingscafe/tracker/internal/catalog"
	"github.com/wingscafe/tracker/internal/nav"
	"github.com/wingscafe/tracker/internal/shared"
	"github.com/wingscafe/tracker/internal/storage"
	"github.com/wingscafe/tracker/internal/tracker"
)

type apiFixture struct {
	t       *testing.T
	router  chi.Router
	tracker *tracker.Tracker
	mem     *storage.Memory
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	mem := storage.NewMemory()
	tr, err := tracker.Open(context.Background(), tracker.Options{
		Store:            mem,
		Clock:            shared.FixedClock{At: time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)},
		DefaultThreshold: 10,
	})
	require.NoError(t, err)
	r := chi.NewRouter()
	NewHandler(tr, nil).MountRoutes(r)
	return &apiFixture{t: t, router: r, tracker: tr, mem: mem}
}

func (f *apiFixture) do(method, path string, body any) *httptest.ResponseRecorder {
	f.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(f.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) createProduct(name string, price, qty string) catalog.Product {
	f.t.Helper()
	rec := f.do(http.MethodPost, "/products", map[string]string{
		"name": name, "category": "Food", "price": price, "quantity": qty,
	})
	require.Equal(f.t, http.StatusCreated, rec.Code, rec.Body.String())
	var p catalog.Product
	require.NoError(f.t, json.NewDecoder(rec.Body).Decode(&p))
	return p
}

func TestProductLifecycle(t *testing.T) {
	f := newAPIFixture(t)
	p := f.createProduct("Chicken Wings", "20", "5")
	require.NotEmpty(t, p.ID)

	rec := f.do(http.MethodGet, "/products/"+p.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"Low Stock"`)

	rec = f.do(http.MethodPut, "/products/"+p.ID, map[string]any{
		"name": "Hot Wings", "category": "Food", "price": 22.5, "quantity": 30,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(http.MethodPost, "/products", map[string]string{"name": "", "category": "Food", "price": "1", "quantity": "1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPut, "/products/missing", map[string]string{"name": "x", "category": "Food", "price": "1", "quantity": "1"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	require.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/products/"+p.ID, nil).Code)
	require.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/products/"+p.ID, nil).Code)
	require.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/products/"+p.ID, nil).Code)
}

func TestRecordSaleFlow(t *testing.T) {
	f := newAPIFixture(t)
	p := f.createProduct("Chicken Wings", "20", "5")

	rec := f.do(http.MethodPost, "/sales", map[string]any{"productId": p.ID, "quantity": "3", "customerId": "2"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp saleResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "Patipa Qati", resp.Sale.CustomerName)
	require.Equal(t, "Sale recorded: 3 x Chicken Wings for M60.00", resp.Receipt)
	require.Empty(t, resp.Warning)

	rec = f.do(http.MethodPost, "/sales", map[string]any{"productId": p.ID, "quantity": 5})
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "Only 2 available.")

	rec = f.do(http.MethodPost, "/sales", map[string]any{"productId": p.ID, "quantity": "abc"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	rec = f.do(http.MethodPost, "/sales", map[string]any{"productId": "", "quantity": 1})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = f.do(http.MethodGet, "/customers/2", nil)
	require.Contains(t, rec.Body.String(), `"loyaltyPoints":81`)
	require.Contains(t, rec.Body.String(), `"tier":"Silver"`)

	rec = f.do(http.MethodGet, "/sales?perPage=1&page=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page salesPage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	require.Len(t, page.Sales, 1)
	require.Equal(t, 1, page.Pagination.Total)
	require.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/sales?page=-1", nil).Code)

	rec = f.do(http.MethodGet, "/sales/export.csv", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/sales/"+resp.Sale.ID, nil).Code)
	rec = f.do(http.MethodGet, "/products/"+p.ID, nil)
	require.Contains(t, rec.Body.String(), `"quantity":2`)
}

func TestInventoryThresholdAndAdjust(t *testing.T) {
	f := newAPIFixture(t)
	p := f.createProduct("Cake", "30", "4")

	rec := f.do(http.MethodPost, "/inventory/"+p.ID+"/adjust", map[string]any{"delta": -10})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"quantity":0`)

	rec = f.do(http.MethodPut, "/inventory/threshold", map[string]any{"threshold": "-1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPut, "/inventory/threshold", map[string]any{"threshold": 3})
	require.Equal(t, http.StatusOK, rec.Code)
	var view inventoryView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	require.Equal(t, 3, view.Threshold)
	require.Equal(t, 1, view.LowStock)
	require.Equal(t, catalog.StatusOutOfStock, view.Items[0].Status)
	require.Equal(t, "3", string(f.mem.Raw(storage.KeyLowStockThreshold)))
}

func TestModulesCoverEveryScreen(t *testing.T) {
	f := newAPIFixture(t)
	for _, m := range nav.Modules() {
		rec := f.do(http.MethodGet, "/modules/"+m.String(), nil)
		require.Equal(t, http.StatusOK, rec.Code, m.String())
		var view struct {
			Module string `json:"module"`
			Title  string `json:"title"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
		require.Equal(t, m.String(), view.Module)
		require.Equal(t, m.Title(), view.Title)
	}
	require.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/modules/payroll", nil).Code)
}

func TestReportingEndpoints(t *testing.T) {
	f := newAPIFixture(t)
	f.createProduct("Wings", "20", "5")

	rec := f.do(http.MethodGet, "/reporting?top=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"gold":2`)

	require.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/reporting?top=zero", nil).Code)

	rec = f.do(http.MethodGet, "/reporting/export.csv", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Disposition"), "report-2026-10-17.csv")

	rec = f.do(http.MethodGet, "/dashboard", nil)
	require.Contains(t, rec.Body.String(), `"totalCustomers":5`)
}
