// Package billing renders printable farmer bills and daily report documents.
package billing

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"go.uber.org/zap"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/mongodb"
	"github.com/nirbani/dairy/internal/service/rates"
)

// DairyInfo is the letterhead printed on every document.
type DairyInfo struct {
	Name    string
	Phone   string
	Address string
}

// Service renders bills from the stored ledgers.
type Service struct {
	farmers     mongodb.FarmerRepository
	collections mongodb.CollectionRepository
	payments    mongodb.PaymentRepository
	customers   mongodb.CustomerRepository
	sales       mongodb.SaleRepository
	dairy       DairyInfo
	billTmpl    *template.Template
	stmtTmpl    *template.Template
	reportTmpl  *template.Template
	logger      *zap.Logger
	now         func() time.Time
}

// NewService parses the bill templates once and returns the service.
func NewService(farmers mongodb.FarmerRepository, collections mongodb.CollectionRepository, payments mongodb.PaymentRepository, customers mongodb.CustomerRepository, sales mongodb.SaleRepository, dairy DairyInfo, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dairy.Name == "" {
		dairy.Name = "Nirbani Dairy"
	}
	return &Service{
		farmers:     farmers,
		collections: collections,
		payments:    payments,
		customers:   customers,
		sales:       sales,
		dairy:       dairy,
		billTmpl:    template.Must(template.New("farmer_bill").Parse(farmerBillTemplate)),
		stmtTmpl:    template.Must(template.New("customer_statement").Parse(customerStatementTemplate)),
		reportTmpl:  template.Must(template.New("daily_report").Parse(dailyReportTemplate)),
		logger:      logger,
		now:         time.Now,
	}
}

type farmerBillData struct {
	DairyName    string
	DairyPhone   string
	DairyAddress string

	Farmer      models.Farmer
	PeriodStart string
	PeriodEnd   string

	Collections []models.MilkCollection
	Payments    []models.Payment

	TotalMilk   float64
	TotalAmount float64
	TotalPaid   float64
	Balance     float64

	GeneratedDate string
	GeneratedAt   string
}

// FarmerBill renders a farmer's period statement as a printable HTML page.
// The period balance is computed from the listed rows, not the live ledger,
// so an old bill stays reproducible.
func (s *Service) FarmerBill(ctx context.Context, farmerID, startDate, endDate string) (string, error) {
	farmer, err := s.farmers.FindByID(ctx, farmerID)
	if err != nil {
		return "", err
	}

	collections, err := s.collections.List(ctx, mongodb.CollectionFilter{FarmerID: farmerID, StartDate: startDate, EndDate: endDate})
	if err != nil {
		return "", err
	}
	payments, err := s.payments.List(ctx, mongodb.PaymentFilter{FarmerID: farmerID, StartDate: startDate, EndDate: endDate})
	if err != nil {
		return "", err
	}

	data := farmerBillData{
		DairyName:     s.dairy.Name,
		DairyPhone:    s.dairy.Phone,
		DairyAddress:  s.dairy.Address,
		Farmer:        *farmer,
		PeriodStart:   startDate,
		PeriodEnd:     endDate,
		Collections:   collections,
		Payments:      payments,
		GeneratedDate: s.now().Format("02-01-2006"),
		GeneratedAt:   s.now().Format("02-01-2006 15:04"),
	}
	for _, c := range collections {
		data.TotalMilk += c.Quantity
		data.TotalAmount += c.Amount
	}
	for _, p := range payments {
		data.TotalPaid += p.Amount
	}
	data.TotalMilk = rates.Round2(data.TotalMilk)
	data.TotalAmount = rates.Round2(data.TotalAmount)
	data.TotalPaid = rates.Round2(data.TotalPaid)
	data.Balance = rates.Round2(data.TotalAmount - data.TotalPaid)

	var buf bytes.Buffer
	if err := s.billTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render farmer bill: %w", err)
	}

	s.logger.Info("rendered farmer bill",
		zap.String("farmer_id", farmerID),
		zap.String("start_date", startDate),
		zap.String("end_date", endDate),
	)
	return buf.String(), nil
}

type customerStatementData struct {
	DairyName    string
	DairyPhone   string
	DairyAddress string

	Customer    models.Customer
	PeriodStart string
	PeriodEnd   string

	Sales           []models.Sale
	PeriodPurchases float64

	GeneratedDate string
	GeneratedAt   string
}

// CustomerStatement renders a registered customer's purchase statement. The
// period purchases total comes from the listed sales, while the paid and
// outstanding figures come from the live customer ledger.
func (s *Service) CustomerStatement(ctx context.Context, customerID, startDate, endDate string) (string, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return "", err
	}

	sales, err := s.sales.List(ctx, mongodb.SaleFilter{CustomerID: customerID, StartDate: startDate, EndDate: endDate})
	if err != nil {
		return "", err
	}

	data := customerStatementData{
		DairyName:     s.dairy.Name,
		DairyPhone:    s.dairy.Phone,
		DairyAddress:  s.dairy.Address,
		Customer:      *customer,
		PeriodStart:   startDate,
		PeriodEnd:     endDate,
		Sales:         sales,
		GeneratedDate: s.now().Format("02-01-2006"),
		GeneratedAt:   s.now().Format("02-01-2006 15:04"),
	}
	for _, sale := range sales {
		data.PeriodPurchases += sale.Amount
	}
	data.PeriodPurchases = rates.Round2(data.PeriodPurchases)

	var buf bytes.Buffer
	if err := s.stmtTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render customer statement: %w", err)
	}
	return buf.String(), nil
}

type dailyReportData struct {
	DairyName   string
	Date        string
	Collections []models.MilkCollection
	Summary     models.DailySummary
	GeneratedAt string
}

// DailyReportHTML renders the printable daily report for a date.
func (s *Service) DailyReportHTML(ctx context.Context, report *models.DailyReport) (string, error) {
	data := dailyReportData{
		DairyName:   s.dairy.Name,
		Date:        report.Date,
		Collections: report.Collections,
		Summary:     report.Summary,
		GeneratedAt: s.now().Format("02-01-2006 15:04"),
	}

	var buf bytes.Buffer
	if err := s.reportTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render daily report: %w", err)
	}
	return buf.String(), nil
}
