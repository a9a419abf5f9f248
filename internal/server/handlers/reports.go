package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/mongodb"
	"github.com/nirbani/dairy/internal/service/billing"
	"github.com/nirbani/dairy/internal/service/reporting"
)

// ReportHandler exposes dashboards, reports, expenses and printable bills.
type ReportHandler struct {
	reports *reporting.Service
	bills   *billing.Service
	logger  *zap.Logger
}

// NewReportHandler constructs the HTTP handler adapter.
func NewReportHandler(reports *reporting.Service, bills *billing.Service, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{reports: reports, bills: bills, logger: logger}
}

// Dashboard returns today's headline numbers.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.reports.DashboardStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// WeeklyStats returns the trailing seven-day intake trend.
func (h *ReportHandler) WeeklyStats(c *gin.Context) {
	stats, err := h.reports.WeeklyStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// DailyReport returns one day's collections and payments with totals.
func (h *ReportHandler) DailyReport(c *gin.Context) {
	report, err := h.reports.DailyReport(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// FarmerReport returns one farmer's period summary.
func (h *ReportHandler) FarmerReport(c *gin.Context) {
	report, err := h.reports.FarmerReport(c.Request.Context(), c.Param("id"), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ProfitReport returns period profitability with the milk loss check.
func (h *ReportHandler) ProfitReport(c *gin.Context) {
	report, err := h.reports.ProfitReport(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// FarmerBill renders a printable HTML bill for a farmer's period.
func (h *ReportHandler) FarmerBill(c *gin.Context) {
	html, err := h.bills.FarmerBill(c.Request.Context(), c.Param("id"), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// CustomerStatement renders a printable HTML statement for a customer.
func (h *ReportHandler) CustomerStatement(c *gin.Context) {
	html, err := h.bills.CustomerStatement(c.Request.Context(), c.Param("id"), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// DailyReportBill renders the printable daily report.
func (h *ReportHandler) DailyReportBill(c *gin.Context) {
	report, err := h.reports.DailyReport(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeError(c, err)
		return
	}

	html, err := h.bills.DailyReportHTML(c.Request.Context(), report)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// CreateExpense records an operating expense.
func (h *ReportHandler) CreateExpense(c *gin.Context) {
	var req models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	expense, err := h.reports.CreateExpense(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// ListExpenses returns expenses filtered by category or date range.
func (h *ReportHandler) ListExpenses(c *gin.Context) {
	filter := mongodb.ExpenseFilter{
		Category:  c.Query("category"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	list, err := h.reports.ListExpenses(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// DeleteExpense removes an expense line.
func (h *ReportHandler) DeleteExpense(c *gin.Context) {
	if err := h.reports.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "expense deleted"})
}
