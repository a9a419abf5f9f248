package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/mongodb"
	"github.com/nirbani/dairy/internal/service/dispatch"
)

// DispatchHandler exposes plants, bulk dispatches and slip matching.
type DispatchHandler struct {
	svc    *dispatch.Service
	logger *zap.Logger
}

// NewDispatchHandler constructs the HTTP handler adapter.
func NewDispatchHandler(svc *dispatch.Service, logger *zap.Logger) *DispatchHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DispatchHandler{svc: svc, logger: logger}
}

// CreatePlant registers a dairy plant.
func (h *DispatchHandler) CreatePlant(c *gin.Context) {
	var req models.CreatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	plant, err := h.svc.CreatePlant(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plant)
}

// ListPlants returns all plants with their receivable ledgers.
func (h *DispatchHandler) ListPlants(c *gin.Context) {
	list, err := h.svc.ListPlants(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetPlant returns one plant by id.
func (h *DispatchHandler) GetPlant(c *gin.Context) {
	plant, err := h.svc.GetPlant(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plant)
}

// Create records a bulk dispatch to a plant.
func (h *DispatchHandler) Create(c *gin.Context) {
	var req models.CreateDispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	d, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// List returns dispatches, optionally filtered by plant or date range.
func (h *DispatchHandler) List(c *gin.Context) {
	filter := mongodb.DispatchFilter{
		PlantID:   c.Query("plant_id"),
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

// MatchSlip reconciles a dispatch against the plant's slip figures.
func (h *DispatchHandler) MatchSlip(c *gin.Context) {
	var req models.SlipMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	d, err := h.svc.MatchSlip(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// Delete removes a dispatch and reverses its ledger effect.
func (h *DispatchHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "dispatch deleted"})
}
