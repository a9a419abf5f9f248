// Package sheets mirrors daily totals into a Google spreadsheet that the
// dairy owner shares with their accountant.
package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/nirbani/dairy/internal/config"
	"github.com/nirbani/dairy/internal/domain/models"
)

// Exporter appends report rows to the configured spreadsheet.
type Exporter interface {
	AppendDailySummary(ctx context.Context, report *models.DailyReport) error
	AppendProfitSnapshot(ctx context.Context, report *models.ProfitReport) error
}

// NopExporter discards every row. Used when no spreadsheet is configured.
type NopExporter struct{}

func (NopExporter) AppendDailySummary(context.Context, *models.DailyReport) error { return nil }
func (NopExporter) AppendProfitSnapshot(context.Context, *models.ProfitReport) error { return nil }

// GoogleSheetExporter implements Exporter on the official Sheets API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	summaryRange  string
	profitRange   string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Sheets-backed exporter from service-account
// credentials.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetExporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		summaryRange:  cfg.SummarySheet,
		profitRange:   cfg.ProfitSheet,
		logger:        logger,
	}, nil
}

// AppendDailySummary writes one row of the day's totals.
func (e *GoogleSheetExporter) AppendDailySummary(ctx context.Context, report *models.DailyReport) error {
	row := []interface{}{
		report.Date,
		report.Summary.TotalQuantity,
		report.Summary.MorningQuantity,
		report.Summary.EveningQuantity,
		report.Summary.TotalAmount,
		report.Summary.TotalPaid,
		report.Summary.CollectionCount,
		report.Summary.PaymentCount,
	}
	if err := e.appendRow(ctx, e.summaryRange, row); err != nil {
		return err
	}

	e.logger.Debug("daily summary exported", zap.String("date", report.Date))
	return nil
}

// AppendProfitSnapshot writes one row of a period's profitability numbers.
func (e *GoogleSheetExporter) AppendProfitSnapshot(ctx context.Context, report *models.ProfitReport) error {
	row := []interface{}{
		report.StartDate,
		report.EndDate,
		report.CollectedLiters,
		report.DispatchedKg,
		report.DispatchAmount,
		report.FarmerPayoutAmount,
		report.RetailSalesAmount,
		report.TotalExpenses,
		report.NetProfit,
		report.LossPercent,
	}
	if err := e.appendRow(ctx, e.profitRange, row); err != nil {
		return err
	}

	e.logger.Debug("profit snapshot exported",
		zap.String("start_date", report.StartDate),
		zap.String("end_date", report.EndDate),
	)
	return nil
}

func (e *GoogleSheetExporter) appendRow(ctx context.Context, sheetRange string, values []interface{}) error {
	if sheetRange == "" {
		return fmt.Errorf("sheet range must not be empty")
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, sheetRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append row into range %s: %w", sheetRange, err)
	}
	return nil
}
