package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/mongodb"
	"github.com/nirbani/dairy/internal/service/payments"
)

// PaymentHandler exposes farmer payments and plant payment receipts.
type PaymentHandler struct {
	svc    *payments.Service
	logger *zap.Logger
}

// NewPaymentHandler constructs the HTTP handler adapter.
func NewPaymentHandler(svc *payments.Service, logger *zap.Logger) *PaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandler{svc: svc, logger: logger}
}

// Create records a farmer payment, advance or deduction.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	payment, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// List returns payments filtered by farmer or date range.
func (h *PaymentHandler) List(c *gin.Context) {
	filter := mongodb.PaymentFilter{
		FarmerID:  c.Query("farmer_id"),
		Date:      c.Query("date"),
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

// Delete removes a payment and reverses its ledger effect.
func (h *PaymentHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment deleted"})
}

// CreateDairyPayment records money received from a plant.
func (h *PaymentHandler) CreateDairyPayment(c *gin.Context) {
	var req models.CreateDairyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	payment, err := h.svc.CreateDairyPayment(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// ListDairyPayments returns plant payments, optionally for one plant.
func (h *PaymentHandler) ListDairyPayments(c *gin.Context) {
	list, err := h.svc.ListDairyPayments(c.Request.Context(), c.Query("plant_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// DeleteDairyPayment removes a plant payment and reverses its ledger effect.
func (h *PaymentHandler) DeleteDairyPayment(c *gin.Context) {
	if err := h.svc.DeleteDairyPayment(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "dairy payment deleted"})
}
