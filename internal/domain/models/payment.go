package models

import "time"

// PaymentMode is how money moved.
type PaymentMode string

const (
	PaymentModeCash PaymentMode = "cash"
	PaymentModeUPI  PaymentMode = "upi"
	PaymentModeBank PaymentMode = "bank"
)

// PaymentType controls how a farmer payment hits the ledger.
//
//	payment:   total_paid += amount, balance -= amount
//	advance:   total_paid += amount, balance += amount
//	deduction: total_due  -= amount, balance -= amount
type PaymentType string

const (
	PaymentTypePayment   PaymentType = "payment"
	PaymentTypeAdvance   PaymentType = "advance"
	PaymentTypeDeduction PaymentType = "deduction"
)

// Valid reports whether the payment type is known.
func (t PaymentType) Valid() bool {
	switch t {
	case PaymentTypePayment, PaymentTypeAdvance, PaymentTypeDeduction:
		return true
	}
	return false
}

// Payment is a farmer-directed cash movement (or a bookkeeping deduction).
type Payment struct {
	ID          string      `bson:"id" json:"id"`
	FarmerID    string      `bson:"farmer_id" json:"farmer_id"`
	FarmerName  string      `bson:"farmer_name" json:"farmer_name"`
	Amount      float64     `bson:"amount" json:"amount"`
	PaymentMode PaymentMode `bson:"payment_mode" json:"payment_mode"`
	PaymentType PaymentType `bson:"payment_type" json:"payment_type"`
	Notes       string      `bson:"notes" json:"notes"`
	Date        string      `bson:"date" json:"date"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
}
