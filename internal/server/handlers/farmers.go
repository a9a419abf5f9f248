package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/mongodb"
	"github.com/nirbani/dairy/internal/service/farmers"
)

// FarmerHandler exposes farmer CRUD and the farmer ledger.
type FarmerHandler struct {
	svc    *farmers.Service
	logger *zap.Logger
}

// NewFarmerHandler constructs the HTTP handler adapter.
func NewFarmerHandler(svc *farmers.Service, logger *zap.Logger) *FarmerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FarmerHandler{svc: svc, logger: logger}
}

// Create registers a new farmer.
func (h *FarmerHandler) Create(c *gin.Context) {
	var req models.CreateFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	farmer, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, farmer)
}

// List returns farmers, optionally filtered by search text or active flag.
func (h *FarmerHandler) List(c *gin.Context) {
	filter := mongodb.FarmerFilter{Search: c.Query("search")}
	switch c.Query("is_active") {
	case "true":
		active := true
		filter.IsActive = &active
	case "false":
		active := false
		filter.IsActive = &active
	}

	list, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get returns a single farmer by id.
func (h *FarmerHandler) Get(c *gin.Context) {
	farmer, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, farmer)
}

// Update patches farmer profile fields.
func (h *FarmerHandler) Update(c *gin.Context) {
	var req models.UpdateFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	farmer, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, farmer)
}

// Delete removes a farmer without history.
func (h *FarmerHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "farmer deleted"})
}

// Ledger returns the farmer's transactions with their live totals.
func (h *FarmerHandler) Ledger(c *gin.Context) {
	ledger, err := h.svc.Ledger(c.Request.Context(), c.Param("id"), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ledger)
}
