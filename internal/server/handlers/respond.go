// Package handlers adapts the ledger services to Gin HTTP endpoints.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nirbani/dairy/internal/domain/models"
)

// writeError maps domain errors onto HTTP statuses. Unknown errors become a
// 500 without leaking their message.
func writeError(c *gin.Context, err error) {
	var dup *models.DuplicateCollectionError
	if errors.As(err, &dup) {
		c.JSON(http.StatusConflict, gin.H{"error": dup.Error()})
		return
	}

	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrFarmerHasRecords):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrFarmerNotFound),
		errors.Is(err, models.ErrCollectionNotFound),
		errors.Is(err, models.ErrPaymentNotFound),
		errors.Is(err, models.ErrRateChartNotFound),
		errors.Is(err, models.ErrPlantNotFound),
		errors.Is(err, models.ErrDispatchNotFound),
		errors.Is(err, models.ErrDairyPaymentNotFound),
		errors.Is(err, models.ErrCustomerNotFound),
		errors.Is(err, models.ErrWalkInCustomerNotFound),
		errors.Is(err, models.ErrSaleNotFound),
		errors.Is(err, models.ErrExpenseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
