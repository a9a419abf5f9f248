package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/mongodb"
	"github.com/nirbani/dairy/internal/service/collections"
)

// CollectionHandler exposes milk collection recording and rate charts.
type CollectionHandler struct {
	svc    *collections.Service
	logger *zap.Logger
}

// NewCollectionHandler constructs the HTTP handler adapter.
func NewCollectionHandler(svc *collections.Service, logger *zap.Logger) *CollectionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollectionHandler{svc: svc, logger: logger}
}

// Create records a milk collection and updates the farmer's ledger.
func (h *CollectionHandler) Create(c *gin.Context) {
	var req models.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	col, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, col)
}

// List returns collections filtered by farmer, date or range.
func (h *CollectionHandler) List(c *gin.Context) {
	filter := mongodb.CollectionFilter{
		FarmerID:  c.Query("farmer_id"),
		Date:      c.Query("date"),
		Shift:     models.Shift(c.Query("shift")),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	list, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Today returns the current day's collections, the board shown at the
// collection counter.
func (h *CollectionHandler) Today(c *gin.Context) {
	today := time.Now().UTC().Format(models.DateLayout)

	list, err := h.svc.List(c.Request.Context(), mongodb.CollectionFilter{Date: today})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": today, "collections": list})
}

// Update corrects a collection's quantity or rate and reconciles the ledger.
func (h *CollectionHandler) Update(c *gin.Context) {
	var req models.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	col, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, col)
}

// Delete removes a collection and reverses its ledger effect.
func (h *CollectionHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "collection deleted"})
}

// CalculateRate is a what-if probe: it prices fat and snf against the
// default chart without writing anything.
func (h *CollectionHandler) CalculateRate(c *gin.Context) {
	fat, err := strconv.ParseFloat(c.Query("fat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fat must be a number"})
		return
	}
	var snf float64
	if raw := c.Query("snf"); raw != "" {
		snf, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "snf must be a number"})
			return
		}
	}

	resolvedSNF, rate, err := h.svc.CalculateRate(c.Request.Context(), fat, snf)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fat": fat, "snf": resolvedSNF, "rate": rate})
}

// CreateRateChart stores a quality table.
func (h *CollectionHandler) CreateRateChart(c *gin.Context) {
	var req models.CreateRateChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	chart, err := h.svc.CreateRateChart(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, chart)
}

// ListRateCharts returns all stored charts.
func (h *CollectionHandler) ListRateCharts(c *gin.Context) {
	list, err := h.svc.ListRateCharts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// DefaultRateChart returns the chart currently driving rate resolution.
func (h *CollectionHandler) DefaultRateChart(c *gin.Context) {
	chart, err := h.svc.DefaultRateChart(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

// UpdateRateChart replaces a chart's entries.
func (h *CollectionHandler) UpdateRateChart(c *gin.Context) {
	var req models.CreateRateChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	chart, err := h.svc.UpdateRateChart(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

// DeleteRateChart removes a chart.
func (h *CollectionHandler) DeleteRateChart(c *gin.Context) {
	if err := h.svc.DeleteRateChart(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rate chart deleted"})
}
