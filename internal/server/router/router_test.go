package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/memory"
	"github.com/nirbani/dairy/internal/server/handlers"
	"github.com/nirbani/dairy/internal/service/billing"
	"github.com/nirbani/dairy/internal/service/collections"
	"github.com/nirbani/dairy/internal/service/dispatch"
	"github.com/nirbani/dairy/internal/service/farmers"
	"github.com/nirbani/dairy/internal/service/notify"
	"github.com/nirbani/dairy/internal/service/payments"
	"github.com/nirbani/dairy/internal/service/reporting"
	"github.com/nirbani/dairy/internal/service/sales"
)

func newTestRouter(t *testing.T) (http.Handler, *memory.Store) {
	t.Helper()
	store := memory.NewStore()

	farmerSvc := farmers.NewService(store.Farmers(), store.Collections(), store.Payments(), nil)
	collectionSvc := collections.NewService(store.Farmers(), store.Collections(), store.RateCharts(), notify.Nop{}, nil)
	paymentSvc := payments.NewService(store.Farmers(), store.Payments(), store.Plants(), store.DairyPayments(), notify.Nop{}, nil)
	dispatchSvc := dispatch.NewService(store.Plants(), store.Dispatches(), nil)
	saleSvc := sales.NewService(store.Customers(), store.WalkInCustomers(), store.Sales(), store.UdharPayments(), store.Products(), nil)
	reportingSvc := reporting.NewService(store.Farmers(), store.Collections(), store.Payments(), store.Dispatches(), store.Sales(), store.Expenses(), nil)
	billingSvc := billing.NewService(store.Farmers(), store.Collections(), store.Payments(), store.Customers(), store.Sales(), billing.DairyInfo{Name: "Test Dairy"}, nil)

	engine := New(Handlers{
		Farmers:     handlers.NewFarmerHandler(farmerSvc, nil),
		Collections: handlers.NewCollectionHandler(collectionSvc, nil),
		Payments:    handlers.NewPaymentHandler(paymentSvc, nil),
		Dispatch:    handlers.NewDispatchHandler(dispatchSvc, nil),
		Sales:       handlers.NewSaleHandler(saleSvc, nil),
		Reports:     handlers.NewReportHandler(reportingSvc, billingSvc, nil),
	}, nil)
	return engine, store
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthRoute(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := get(t, h, "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWalkInCustomerGetRoute(t *testing.T) {
	h, store := newTestRouter(t)
	ctx := context.Background()

	require.NoError(t, store.WalkInCustomers().Insert(ctx, models.WalkInCustomer{ID: "w1", Name: "Gopal", PendingAmount: 180}))

	rec := get(t, h, "/api/walk-in-customers/w1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Gopal")

	rec = get(t, h, "/api/walk-in-customers/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDefaultRateChartRoute(t *testing.T) {
	h, store := newTestRouter(t)
	ctx := context.Background()

	rec := get(t, h, "/api/rate-charts/default")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	require.NoError(t, store.RateCharts().Insert(ctx, models.RateChart{
		ID: "chart-1", Name: "Season 2026", IsDefault: true,
		Entries: []models.RateChartEntry{{Fat: 4.0, SNF: 9.5, Rate: 41}},
	}))

	rec = get(t, h, "/api/rate-charts/default")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Season 2026")
}
