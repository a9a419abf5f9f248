package billing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/memory"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	svc := NewService(store.Farmers(), store.Collections(), store.Payments(), store.Customers(), store.Sales(), DairyInfo{
		Name:  "Test Dairy",
		Phone: "9876543210",
	}, nil)
	svc.now = func() time.Time { return time.Date(2026, 8, 29, 18, 30, 0, 0, time.UTC) }
	return svc, store
}

func TestFarmerBillTotals(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Farmers().Insert(ctx, models.Farmer{ID: "f1", Name: "Ramesh Kumar", Village: "Nirbani", IsActive: true}))
	require.NoError(t, store.Collections().Insert(ctx, models.MilkCollection{
		ID: "c1", FarmerID: "f1", Date: "2026-08-10", Shift: models.ShiftMorning, Quantity: 10, Fat: 4.2, SNF: 9.55, Rate: 44.3, Amount: 443,
	}))
	require.NoError(t, store.Collections().Insert(ctx, models.MilkCollection{
		ID: "c2", FarmerID: "f1", Date: "2026-08-11", Shift: models.ShiftMorning, Quantity: 5, Fat: 4.0, SNF: 9.5, Rate: 41, Amount: 205,
	}))
	require.NoError(t, store.Payments().Insert(ctx, models.Payment{
		ID: "p1", FarmerID: "f1", Date: "2026-08-12", Amount: 400, PaymentType: models.PaymentTypePayment,
	}))
	// Outside the billing period, must not appear.
	require.NoError(t, store.Collections().Insert(ctx, models.MilkCollection{
		ID: "c3", FarmerID: "f1", Date: "2026-09-01", Shift: models.ShiftMorning, Quantity: 99, Amount: 9900,
	}))

	html, err := svc.FarmerBill(ctx, "f1", "2026-08-01", "2026-08-31")
	require.NoError(t, err)

	assert.Contains(t, html, "Test Dairy")
	assert.Contains(t, html, "9876543210")
	assert.Contains(t, html, "Ramesh Kumar")
	assert.Contains(t, html, "2026-08-10")
	assert.Contains(t, html, "443.00")
	assert.Contains(t, html, "15.0 L")
	assert.Contains(t, html, "648.00")
	assert.Contains(t, html, "400.00")
	assert.Contains(t, html, "248.00")
	assert.NotContains(t, html, "9900.00")
}

func TestFarmerBillEmptyPeriod(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Farmers().Insert(ctx, models.Farmer{ID: "f1", Name: "Ramesh Kumar", IsActive: true}))

	html, err := svc.FarmerBill(ctx, "f1", "2026-08-01", "2026-08-31")
	require.NoError(t, err)

	assert.Contains(t, html, "Ramesh Kumar")
	assert.Contains(t, html, "0.00")
}

func TestFarmerBillUnknownFarmer(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.FarmerBill(context.Background(), "missing", "", "")
	assert.ErrorIs(t, err, models.ErrFarmerNotFound)
}

func TestFarmerBillBalanceIgnoresLiveLedger(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	// Live ledger carries an older balance that must not bleed into the bill.
	require.NoError(t, store.Farmers().Insert(ctx, models.Farmer{ID: "f1", Name: "Ramesh Kumar", IsActive: true, Balance: 5000}))
	require.NoError(t, store.Collections().Insert(ctx, models.MilkCollection{
		ID: "c1", FarmerID: "f1", Date: "2026-08-10", Shift: models.ShiftMorning, Quantity: 10, Amount: 400,
	}))

	html, err := svc.FarmerBill(ctx, "f1", "2026-08-01", "2026-08-31")
	require.NoError(t, err)

	assert.Contains(t, html, "400.00")
	assert.NotContains(t, html, "5000.00")
}

func TestCustomerStatement(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Customers().Insert(ctx, models.Customer{
		ID: "cust-1", Name: "Sharma General Store", Phone: "9000000001",
		TotalPurchase: 1500, TotalPaid: 900, Balance: 600,
	}))
	require.NoError(t, store.Sales().Insert(ctx, models.Sale{
		ID: "s1", CustomerID: "cust-1", Product: "ghee", Quantity: 2, Rate: 500, Amount: 1000, Date: "2026-08-10",
	}))
	require.NoError(t, store.Sales().Insert(ctx, models.Sale{
		ID: "s2", CustomerID: "cust-1", Product: "paneer", Quantity: 1, Rate: 320, Amount: 320, Date: "2026-08-20",
	}))
	// Another customer's sale must not appear.
	require.NoError(t, store.Sales().Insert(ctx, models.Sale{
		ID: "s3", CustomerID: "cust-2", Product: "ghee", Quantity: 1, Rate: 500, Amount: 500, Date: "2026-08-15",
	}))

	html, err := svc.CustomerStatement(ctx, "cust-1", "2026-08-01", "2026-08-31")
	require.NoError(t, err)

	assert.Contains(t, html, "Sharma General Store")
	assert.Contains(t, html, "ghee")
	assert.Contains(t, html, "1320.00")
	assert.Contains(t, html, "900.00")
	// 1320 also proves the other customer's sale was filtered out.
	assert.Contains(t, html, "600.00")

	_, err = svc.CustomerStatement(ctx, "missing", "", "")
	assert.ErrorIs(t, err, models.ErrCustomerNotFound)
}

func TestDailyReportHTML(t *testing.T) {
	svc, _ := newTestService(t)

	report := &models.DailyReport{
		Date: "2026-08-29",
		Collections: []models.MilkCollection{
			{ID: "c1", FarmerName: "Ramesh Kumar", Shift: models.ShiftMorning, Quantity: 10, Fat: 4.2, SNF: 9.55, Rate: 44.3, Amount: 443},
		},
		Summary: models.DailySummary{
			TotalQuantity:   10,
			TotalAmount:     443,
			MorningQuantity: 10,
			CollectionCount: 1,
		},
	}

	html, err := svc.DailyReportHTML(context.Background(), report)
	require.NoError(t, err)

	assert.Contains(t, html, "Test Dairy")
	assert.Contains(t, html, "2026-08-29")
	assert.Contains(t, html, "Ramesh Kumar")
	assert.Contains(t, html, "443.00")
}

func TestDailyReportHTMLEmptyDay(t *testing.T) {
	svc, _ := newTestService(t)

	html, err := svc.DailyReportHTML(context.Background(), &models.DailyReport{Date: "2026-08-29"})
	require.NoError(t, err)

	assert.Contains(t, html, "2026-08-29")
}
