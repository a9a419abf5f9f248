// Package reporting exposes read-only aggregations over collections,
// payments, dispatches, sales and expenses. Nothing here mutates a ledger.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/mongodb"
	"github.com/nirbani/dairy/internal/service/rates"
)

// literDensityKg converts collected liters to kilograms for comparison with
// dispatched weight.
const literDensityKg = 1.03

// lossAlertPercent is the |loss| threshold that flags the profit report.
const lossAlertPercent = 1.0

// Service aggregates the operational record into reports.
type Service struct {
	farmers     mongodb.FarmerRepository
	collections mongodb.CollectionRepository
	payments    mongodb.PaymentRepository
	dispatches  mongodb.DispatchRepository
	sales       mongodb.SaleRepository
	expenses    mongodb.ExpenseRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewService wires a reporting service instance.
func NewService(farmers mongodb.FarmerRepository, collections mongodb.CollectionRepository, payments mongodb.PaymentRepository, dispatches mongodb.DispatchRepository, sales mongodb.SaleRepository, expenses mongodb.ExpenseRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		farmers:     farmers,
		collections: collections,
		payments:    payments,
		dispatches:  dispatches,
		sales:       sales,
		expenses:    expenses,
		logger:      logger,
		now:         time.Now,
	}
}

// DashboardStats summarizes today's intake and outstanding dues.
func (s *Service) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	today := s.now().UTC().Format(models.DateLayout)

	totalFarmers, err := s.farmers.Count(ctx, false)
	if err != nil {
		return nil, err
	}
	activeFarmers, err := s.farmers.Count(ctx, true)
	if err != nil {
		return nil, err
	}

	collections, err := s.collections.List(ctx, mongodb.CollectionFilter{Date: today})
	if err != nil {
		return nil, err
	}

	stats := models.DashboardStats{
		TotalFarmers:     totalFarmers,
		ActiveFarmers:    activeFarmers,
		CollectionsCount: len(collections),
	}

	var fatSum, snfSum float64
	for _, c := range collections {
		stats.TodayMilkQuantity += c.Quantity
		stats.TodayMilkAmount += c.Amount
		if c.Shift == models.ShiftMorning {
			stats.TodayMorningQuantity += c.Quantity
		} else {
			stats.TodayEveningQuantity += c.Quantity
		}
		fatSum += c.Fat
		snfSum += c.SNF
	}
	if len(collections) > 0 {
		stats.AvgFat = rates.Round2(fatSum / float64(len(collections)))
		stats.AvgSNF = rates.Round2(snfSum / float64(len(collections)))
	}

	pending, err := s.farmers.TotalBalance(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalPendingPayments = rates.Round2(pending)
	stats.TodayMilkQuantity = rates.Round2(stats.TodayMilkQuantity)
	stats.TodayMilkAmount = rates.Round2(stats.TodayMilkAmount)
	stats.TodayMorningQuantity = rates.Round2(stats.TodayMorningQuantity)
	stats.TodayEveningQuantity = rates.Round2(stats.TodayEveningQuantity)

	return &stats, nil
}

// WeeklyStats returns one intake total per day for the trailing seven days.
func (s *Service) WeeklyStats(ctx context.Context) ([]models.DayStat, error) {
	today := s.now().UTC()

	stats := make([]models.DayStat, 0, 7)
	for i := 6; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(models.DateLayout)
		collections, err := s.collections.List(ctx, mongodb.CollectionFilter{Date: date})
		if err != nil {
			return nil, err
		}

		var quantity, amount float64
		for _, c := range collections {
			quantity += c.Quantity
			amount += c.Amount
		}
		stats = append(stats, models.DayStat{
			Date:     date,
			Quantity: rates.Round2(quantity),
			Amount:   rates.Round2(amount),
			Count:    len(collections),
		})
	}

	return stats, nil
}

// DailyReport aggregates one calendar day's collections and payments.
func (s *Service) DailyReport(ctx context.Context, date string) (*models.DailyReport, error) {
	if date == "" {
		date = s.now().UTC().Format(models.DateLayout)
	}

	collections, err := s.collections.List(ctx, mongodb.CollectionFilter{Date: date})
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.List(ctx, mongodb.PaymentFilter{Date: date})
	if err != nil {
		return nil, err
	}

	summary := models.DailySummary{
		CollectionCount: len(collections),
		PaymentCount:    len(payments),
	}
	for _, c := range collections {
		summary.TotalQuantity += c.Quantity
		summary.TotalAmount += c.Amount
		if c.Shift == models.ShiftMorning {
			summary.MorningQuantity += c.Quantity
		} else {
			summary.EveningQuantity += c.Quantity
		}
	}
	for _, p := range payments {
		summary.TotalPaid += p.Amount
	}
	summary.TotalQuantity = rates.Round2(summary.TotalQuantity)
	summary.TotalAmount = rates.Round2(summary.TotalAmount)
	summary.MorningQuantity = rates.Round2(summary.MorningQuantity)
	summary.EveningQuantity = rates.Round2(summary.EveningQuantity)
	summary.TotalPaid = rates.Round2(summary.TotalPaid)

	return &models.DailyReport{
		Date:        date,
		Collections: collections,
		Payments:    payments,
		Summary:     summary,
	}, nil
}

// FarmerReport bundles one farmer's period activity with their live ledger.
func (s *Service) FarmerReport(ctx context.Context, farmerID, startDate, endDate string) (*models.FarmerReport, error) {
	farmer, err := s.farmers.FindByID(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	collections, err := s.collections.List(ctx, mongodb.CollectionFilter{FarmerID: farmerID, StartDate: startDate, EndDate: endDate})
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.List(ctx, mongodb.PaymentFilter{FarmerID: farmerID, StartDate: startDate, EndDate: endDate})
	if err != nil {
		return nil, err
	}

	summary := models.FarmerReportSummary{
		CollectionCount: len(collections),
		PaymentCount:    len(payments),
	}
	for _, c := range collections {
		summary.TotalMilk += c.Quantity
		summary.TotalAmount += c.Amount
	}
	for _, p := range payments {
		summary.TotalPaid += p.Amount
	}
	summary.TotalMilk = rates.Round2(summary.TotalMilk)
	summary.TotalAmount = rates.Round2(summary.TotalAmount)
	summary.TotalPaid = rates.Round2(summary.TotalPaid)
	summary.Balance = rates.Round2(summary.TotalAmount - summary.TotalPaid)

	return &models.FarmerReport{
		Farmer:      *farmer,
		StartDate:   startDate,
		EndDate:     endDate,
		Collections: collections,
		Payments:    payments,
		Summary:     summary,
	}, nil
}

// ProfitReport derives period profitability. Collected liters are converted
// to kilograms at the standard milk density so intake can be compared with
// dispatched weight; a loss beyond one percent raises the alert flag.
func (s *Service) ProfitReport(ctx context.Context, startDate, endDate string) (*models.ProfitReport, error) {
	report := models.ProfitReport{
		StartDate:          startDate,
		EndDate:            endDate,
		ExpensesByCategory: map[string]float64{},
	}

	dispatches, err := s.dispatches.List(ctx, mongodb.DispatchFilter{StartDate: startDate, EndDate: endDate})
	if err != nil {
		return nil, err
	}
	var fatWeighted float64
	for _, d := range dispatches {
		report.DispatchedKg += d.QuantityKg
		report.DispatchAmount += d.NetReceivable
		fatWeighted += d.AvgFat * d.QuantityKg
	}
	if report.DispatchedKg > 0 {
		report.AvgDispatchRate = rates.Round2(report.DispatchAmount / report.DispatchedKg)
		report.AvgDispatchFat = rates.Round2(fatWeighted / report.DispatchedKg)
	}

	collections, err := s.collections.List(ctx, mongodb.CollectionFilter{StartDate: startDate, EndDate: endDate})
	if err != nil {
		return nil, err
	}
	for _, c := range collections {
		report.CollectedLiters += c.Quantity
		report.FarmerPayoutAmount += c.Amount
	}
	report.CollectedKg = rates.Round2(report.CollectedLiters * literDensityKg)

	report.MilkDifferenceKg = rates.Round2(report.CollectedKg - report.DispatchedKg)
	if report.CollectedKg > 0 {
		report.LossPercent = rates.Round2(report.MilkDifferenceKg / report.CollectedKg * 100)
	}
	if report.LossPercent > lossAlertPercent || report.LossPercent < -lossAlertPercent {
		report.LossAlert = true
	}

	sales, err := s.sales.List(ctx, mongodb.SaleFilter{StartDate: startDate, EndDate: endDate})
	if err != nil {
		return nil, err
	}
	for _, sale := range sales {
		report.RetailSalesAmount += sale.Amount
	}

	expenses, err := s.expenses.List(ctx, mongodb.ExpenseFilter{StartDate: startDate, EndDate: endDate})
	if err != nil {
		return nil, err
	}
	for _, e := range expenses {
		report.ExpensesByCategory[e.Category] += e.Amount
		report.TotalExpenses += e.Amount
	}

	report.DispatchedKg = rates.Round2(report.DispatchedKg)
	report.DispatchAmount = rates.Round2(report.DispatchAmount)
	report.CollectedLiters = rates.Round2(report.CollectedLiters)
	report.FarmerPayoutAmount = rates.Round2(report.FarmerPayoutAmount)
	report.RetailSalesAmount = rates.Round2(report.RetailSalesAmount)
	report.TotalExpenses = rates.Round2(report.TotalExpenses)
	report.GrossProfit = rates.Round2(report.DispatchAmount + report.RetailSalesAmount - report.FarmerPayoutAmount)
	report.NetProfit = rates.Round2(report.GrossProfit - report.TotalExpenses)

	return &report, nil
}

// FormatDailySummary renders the daily report as a short text message for
// the scheduler's WhatsApp digest.
func (s *Service) FormatDailySummary(ctx context.Context, date string) (string, error) {
	report, err := s.DailyReport(ctx, date)
	if err != nil {
		return "", fmt.Errorf("build daily report: %w", err)
	}

	if report.Summary.CollectionCount == 0 && report.Summary.PaymentCount == 0 {
		return fmt.Sprintf("Daily summary %s: no collections or payments recorded.", report.Date), nil
	}

	return fmt.Sprintf(
		"Daily summary %s\nMilk: %.2fL (%d entries, morning %.2fL / evening %.2fL)\nPayable: Rs %.2f\nPaid out: Rs %.2f (%d payments)",
		report.Date,
		report.Summary.TotalQuantity,
		report.Summary.CollectionCount,
		report.Summary.MorningQuantity,
		report.Summary.EveningQuantity,
		report.Summary.TotalAmount,
		report.Summary.TotalPaid,
		report.Summary.PaymentCount,
	), nil
}

// CreateExpense records an operating expense.
func (s *Service) CreateExpense(ctx context.Context, req models.CreateExpenseRequest) (*models.Expense, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", models.ErrValidation)
	}

	date := req.Date
	if date == "" {
		date = s.now().UTC().Format(models.DateLayout)
	}

	expense := models.Expense{
		ID:        uuid.NewString(),
		Category:  req.Category,
		Amount:    req.Amount,
		Notes:     req.Notes,
		Date:      date,
		CreatedAt: s.now().UTC(),
	}

	if err := s.expenses.Insert(ctx, expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

// ListExpenses returns expenses matching the filter.
func (s *Service) ListExpenses(ctx context.Context, filter mongodb.ExpenseFilter) ([]models.Expense, error) {
	return s.expenses.List(ctx, filter)
}

// DeleteExpense removes an expense line.
func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	return s.expenses.Delete(ctx, id)
}
