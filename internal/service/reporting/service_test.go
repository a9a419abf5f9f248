package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/memory"
	"github.com/nirbani/dairy/internal/repository/mongodb"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	svc := NewService(store.Farmers(), store.Collections(), store.Payments(), store.Dispatches(), store.Sales(), store.Expenses(), nil)
	svc.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }
	return svc, store
}

func TestDashboardStats(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Farmers().Insert(ctx, models.Farmer{ID: "f1", Name: "Ramesh", IsActive: true, Balance: 500}))
	require.NoError(t, store.Farmers().Insert(ctx, models.Farmer{ID: "f2", Name: "Suresh", IsActive: false, Balance: 250}))

	require.NoError(t, store.Collections().Insert(ctx, models.MilkCollection{
		ID: "c1", FarmerID: "f1", Date: "2026-08-29", Shift: models.ShiftMorning, Quantity: 10, Fat: 4.0, SNF: 9.5, Amount: 400,
	}))
	require.NoError(t, store.Collections().Insert(ctx, models.MilkCollection{
		ID: "c2", FarmerID: "f1", Date: "2026-08-29", Shift: models.ShiftEvening, Quantity: 8, Fat: 4.4, SNF: 9.6, Amount: 360,
	}))
	// Yesterday's intake must not leak into today's stats.
	require.NoError(t, store.Collections().Insert(ctx, models.MilkCollection{
		ID: "c3", FarmerID: "f1", Date: "2026-08-28", Shift: models.ShiftMorning, Quantity: 50, Fat: 4.0, SNF: 9.5, Amount: 2000,
	}))

	stats, err := svc.DashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalFarmers)
	assert.Equal(t, int64(1), stats.ActiveFarmers)
	assert.Equal(t, 18.0, stats.TodayMilkQuantity)
	assert.Equal(t, 760.0, stats.TodayMilkAmount)
	assert.Equal(t, 10.0, stats.TodayMorningQuantity)
	assert.Equal(t, 8.0, stats.TodayEveningQuantity)
	assert.Equal(t, 4.2, stats.AvgFat)
	assert.Equal(t, 9.55, stats.AvgSNF)
	assert.Equal(t, 750.0, stats.TotalPendingPayments)
	assert.Equal(t, 2, stats.CollectionsCount)
}

func TestWeeklyStatsCoversSevenDays(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Collections().Insert(ctx, models.MilkCollection{
		ID: "c1", FarmerID: "f1", Date: "2026-08-29", Shift: models.ShiftMorning, Quantity: 10, Amount: 400,
	}))
	require.NoError(t, store.Collections().Insert(ctx, models.MilkCollection{
		ID: "c2", FarmerID: "f1", Date: "2026-08-25", Shift: models.ShiftMorning, Quantity: 6, Amount: 240,
	}))

	stats, err := svc.WeeklyStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 7)

	assert.Equal(t, "2026-08-23", stats[0].Date)
	assert.Equal(t, "2026-08-29", stats[6].Date)
	assert.Equal(t, 10.0, stats[6].Quantity)
	assert.Equal(t, 6.0, stats[2].Quantity)
	assert.Equal(t, 0.0, stats[1].Quantity)
}

func TestDailyReportTotals(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Collections().Insert(ctx, models.MilkCollection{
		ID: "c1", FarmerID: "f1", Date: "2026-08-29", Shift: models.ShiftMorning, Quantity: 10, Amount: 400,
	}))
	require.NoError(t, store.Payments().Insert(ctx, models.Payment{
		ID: "p1", FarmerID: "f1", Date: "2026-08-29", Amount: 150, PaymentType: models.PaymentTypePayment,
	}))

	report, err := svc.DailyReport(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, "2026-08-29", report.Date)
	assert.Equal(t, 10.0, report.Summary.TotalQuantity)
	assert.Equal(t, 400.0, report.Summary.TotalAmount)
	assert.Equal(t, 150.0, report.Summary.TotalPaid)
	assert.Equal(t, 1, report.Summary.CollectionCount)
	assert.Equal(t, 1, report.Summary.PaymentCount)
}

func TestFarmerReportBalance(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Farmers().Insert(ctx, models.Farmer{ID: "f1", Name: "Ramesh", IsActive: true}))
	require.NoError(t, store.Collections().Insert(ctx, models.MilkCollection{
		ID: "c1", FarmerID: "f1", Date: "2026-08-10", Shift: models.ShiftMorning, Quantity: 10, Amount: 400,
	}))
	require.NoError(t, store.Payments().Insert(ctx, models.Payment{
		ID: "p1", FarmerID: "f1", Date: "2026-08-15", Amount: 150,
	}))

	report, err := svc.FarmerReport(ctx, "f1", "2026-08-01", "2026-08-31")
	require.NoError(t, err)

	assert.Equal(t, 10.0, report.Summary.TotalMilk)
	assert.Equal(t, 400.0, report.Summary.TotalAmount)
	assert.Equal(t, 150.0, report.Summary.TotalPaid)
	assert.Equal(t, 250.0, report.Summary.Balance)

	_, err = svc.FarmerReport(ctx, "missing", "", "")
	assert.ErrorIs(t, err, models.ErrFarmerNotFound)
}

func TestProfitReportMath(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	// 1000L collected for 40000; 1030kg equivalent.
	require.NoError(t, store.Collections().Insert(ctx, models.MilkCollection{
		ID: "c1", FarmerID: "f1", Date: "2026-08-15", Shift: models.ShiftMorning, Quantity: 1000, Amount: 40000,
	}))
	// 1020kg dispatched for 50000 net.
	require.NoError(t, store.Dispatches().Insert(ctx, models.Dispatch{
		ID: "d1", DairyPlantID: "plant-1", Date: "2026-08-15", QuantityKg: 1020, AvgFat: 6.5, NetReceivable: 50000,
	}))
	require.NoError(t, store.Sales().Insert(ctx, models.Sale{
		ID: "s1", Date: "2026-08-15", Amount: 1200,
	}))
	require.NoError(t, store.Expenses().Insert(ctx, models.Expense{
		ID: "e1", Category: "transport", Amount: 800, Date: "2026-08-15",
	}))
	require.NoError(t, store.Expenses().Insert(ctx, models.Expense{
		ID: "e2", Category: "electricity", Amount: 200, Date: "2026-08-15",
	}))

	report, err := svc.ProfitReport(ctx, "2026-08-01", "2026-08-31")
	require.NoError(t, err)

	assert.Equal(t, 1000.0, report.CollectedLiters)
	assert.Equal(t, 1030.0, report.CollectedKg)
	assert.Equal(t, 1020.0, report.DispatchedKg)
	assert.Equal(t, 10.0, report.MilkDifferenceKg)
	// 10/1030 = 0.97%: within tolerance, no alert.
	assert.Equal(t, 0.97, report.LossPercent)
	assert.False(t, report.LossAlert)

	assert.Equal(t, 50000.0, report.DispatchAmount)
	assert.Equal(t, 40000.0, report.FarmerPayoutAmount)
	assert.Equal(t, 1200.0, report.RetailSalesAmount)
	assert.Equal(t, 1000.0, report.TotalExpenses)
	assert.Equal(t, 800.0, report.ExpensesByCategory["transport"])

	// gross = 50000 + 1200 - 40000, net = gross - 1000.
	assert.Equal(t, 11200.0, report.GrossProfit)
	assert.Equal(t, 10200.0, report.NetProfit)
}

func TestProfitReportLossAlert(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Collections().Insert(ctx, models.MilkCollection{
		ID: "c1", FarmerID: "f1", Date: "2026-08-15", Shift: models.ShiftMorning, Quantity: 1000, Amount: 40000,
	}))
	// 980kg dispatched against 1030kg collected: 4.85% loss.
	require.NoError(t, store.Dispatches().Insert(ctx, models.Dispatch{
		ID: "d1", DairyPlantID: "plant-1", Date: "2026-08-15", QuantityKg: 980, NetReceivable: 48000,
	}))

	report, err := svc.ProfitReport(ctx, "2026-08-01", "2026-08-31")
	require.NoError(t, err)

	assert.Equal(t, 50.0, report.MilkDifferenceKg)
	assert.Equal(t, 4.85, report.LossPercent)
	assert.True(t, report.LossAlert)
}

func TestExpenseLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	expense, err := svc.CreateExpense(ctx, models.CreateExpenseRequest{Category: "transport", Amount: 500})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29", expense.Date)

	_, err = svc.CreateExpense(ctx, models.CreateExpenseRequest{Category: "transport", Amount: 0})
	assert.ErrorIs(t, err, models.ErrValidation)

	list, err := svc.ListExpenses(ctx, mongodb.ExpenseFilter{Category: "transport"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.DeleteExpense(ctx, expense.ID))
	err = svc.DeleteExpense(ctx, expense.ID)
	assert.ErrorIs(t, err, models.ErrExpenseNotFound)
}

func TestFormatDailySummary(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	digest, err := svc.FormatDailySummary(ctx, "2026-08-29")
	require.NoError(t, err)
	assert.Contains(t, digest, "no collections or payments")

	require.NoError(t, store.Collections().Insert(ctx, models.MilkCollection{
		ID: "c1", FarmerID: "f1", Date: "2026-08-29", Shift: models.ShiftMorning, Quantity: 10, Amount: 400,
	}))

	digest, err = svc.FormatDailySummary(ctx, "2026-08-29")
	require.NoError(t, err)
	assert.Contains(t, digest, "2026-08-29")
	assert.Contains(t, digest, "10.00L")
}
