package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/mongodb"
	"github.com/nirbani/dairy/internal/service/sales"
)

// SaleHandler exposes retail sales, customers and udhar settlements.
type SaleHandler struct {
	svc    *sales.Service
	logger *zap.Logger
}

// NewSaleHandler constructs the HTTP handler adapter.
func NewSaleHandler(svc *sales.Service, logger *zap.Logger) *SaleHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SaleHandler{svc: svc, logger: logger}
}

// Create records a retail sale.
func (h *SaleHandler) Create(c *gin.Context) {
	var req models.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	sale, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// List returns sales, optionally filtered.
func (h *SaleHandler) List(c *gin.Context) {
	filter := mongodb.SaleFilter{
		CustomerID:       c.Query("customer_id"),
		WalkInCustomerID: c.Query("walk_in_customer_id"),
		Date:             c.Query("date"),
		StartDate:        c.Query("start_date"),
		EndDate:          c.Query("end_date"),
		UdharOnly:        c.Query("udhar_only") == "true",
	}

	list, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Delete removes a sale and reverses its ledger effect.
func (h *SaleHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sale deleted"})
}

// CreateCustomer registers a retail customer.
func (h *SaleHandler) CreateCustomer(c *gin.Context) {
	var req models.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	customer, err := h.svc.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// ListCustomers returns registered customers.
func (h *SaleHandler) ListCustomers(c *gin.Context) {
	list, err := h.svc.ListCustomers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetCustomer returns one customer.
func (h *SaleHandler) GetCustomer(c *gin.Context) {
	customer, err := h.svc.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// CreateWalkInCustomer registers an udhar customer.
func (h *SaleHandler) CreateWalkInCustomer(c *gin.Context) {
	var req models.CreateWalkInCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	customer, err := h.svc.CreateWalkInCustomer(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// GetWalkInCustomer returns one walk-in customer.
func (h *SaleHandler) GetWalkInCustomer(c *gin.Context) {
	customer, err := h.svc.GetWalkInCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// ListWalkInCustomers returns udhar customers with pending amounts.
func (h *SaleHandler) ListWalkInCustomers(c *gin.Context) {
	list, err := h.svc.ListWalkInCustomers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// RecordUdharPayment settles part of a walk-in customer's pending amount.
func (h *SaleHandler) RecordUdharPayment(c *gin.Context) {
	var req models.CreateUdharPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	payment, err := h.svc.RecordUdharPayment(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// ListUdharPayments returns settlements, optionally for one customer.
func (h *SaleHandler) ListUdharPayments(c *gin.Context) {
	list, err := h.svc.ListUdharPayments(c.Request.Context(), c.Query("walk_in_customer_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateProduct registers a shop product.
func (h *SaleHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	product, err := h.svc.CreateProduct(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// ListProducts returns the shop catalogue.
func (h *SaleHandler) ListProducts(c *gin.Context) {
	list, err := h.svc.ListProducts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
