package models

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the ledger services. Handlers translate them to
// HTTP statuses with errors.Is / errors.As.
var (
	ErrFarmerNotFound         = errors.New("farmer not found")
	ErrCollectionNotFound     = errors.New("collection not found")
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrRateChartNotFound      = errors.New("rate chart not found")
	ErrPlantNotFound          = errors.New("dairy plant not found")
	ErrDispatchNotFound       = errors.New("dispatch not found")
	ErrDairyPaymentNotFound   = errors.New("dairy payment not found")
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrWalkInCustomerNotFound = errors.New("walk-in customer not found")
	ErrSaleNotFound           = errors.New("sale not found")
	ErrExpenseNotFound        = errors.New("expense not found")

	ErrValidation = errors.New("validation failed")

	// ErrFarmerHasRecords rejects deleting a farmer who still has live
	// collections or payments.
	ErrFarmerHasRecords = errors.New("farmer has linked collections or payments")
)

// DuplicateCollectionError rejects a second collection for the same farmer,
// date and shift. The message names the slot so the operator can decide to
// delete and re-enter.
type DuplicateCollectionError struct {
	FarmerID string
	Date     string
	Shift    Shift
}

func (e *DuplicateCollectionError) Error() string {
	return fmt.Sprintf("collection already recorded for %s shift on %s", e.Shift, e.Date)
}
