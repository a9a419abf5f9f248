package models

import "time"

// Customer is a registered retail buyer with a purchase ledger.
type Customer struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Phone   string `bson:"phone" json:"phone"`
	Address string `bson:"address" json:"address"`

	TotalPurchase float64 `bson:"total_purchase" json:"total_purchase"`
	TotalPaid     float64 `bson:"total_paid" json:"total_paid"`
	Balance       float64 `bson:"balance" json:"balance"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// CustomerLedgerDelta adjusts a registered customer's running totals.
type CustomerLedgerDelta struct {
	Purchase float64
	Paid     float64
	Balance  float64
}

// WalkInCustomer is a shop buyer known only for credit ("udhar") tracking.
// PendingAmount is what they still owe the dairy.
type WalkInCustomer struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Phone         string    `bson:"phone" json:"phone"`
	PendingAmount float64   `bson:"pending_amount" json:"pending_amount"`
	TotalPaid     float64   `bson:"total_paid" json:"total_paid"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// Sale is a retail transaction. When DirectAmount is positive it overrides
// quantity*rate as the charged amount; quantity and rate are still stored as
// supplied for the receipt.
type Sale struct {
	ID               string  `bson:"id" json:"id"`
	CustomerID       string  `bson:"customer_id" json:"customer_id"`
	WalkInCustomerID string  `bson:"walk_in_customer_id" json:"walk_in_customer_id"`
	CustomerName     string  `bson:"customer_name" json:"customer_name"`
	Product          string  `bson:"product" json:"product"`
	Quantity         float64 `bson:"quantity" json:"quantity"`
	Rate             float64 `bson:"rate" json:"rate"`
	DirectAmount     float64 `bson:"direct_amount" json:"direct_amount"`
	Amount           float64 `bson:"amount" json:"amount"`
	IsUdhar          bool    `bson:"is_udhar" json:"is_udhar"`

	Date      string    `bson:"date" json:"date"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// UdharPayment settles part of a walk-in customer's pending amount.
type UdharPayment struct {
	ID               string    `bson:"id" json:"id"`
	WalkInCustomerID string    `bson:"walk_in_customer_id" json:"walk_in_customer_id"`
	CustomerName     string    `bson:"customer_name" json:"customer_name"`
	Amount           float64   `bson:"amount" json:"amount"`
	Notes            string    `bson:"notes" json:"notes"`
	Date             string    `bson:"date" json:"date"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

// Product is a shop item whose stock is decremented best-effort on sales.
type Product struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Unit      string    `bson:"unit" json:"unit"`
	Rate      float64   `bson:"rate" json:"rate"`
	Stock     float64   `bson:"stock" json:"stock"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Expense is an operating cost line used by the profit report.
type Expense struct {
	ID        string    `bson:"id" json:"id"`
	Category  string    `bson:"category" json:"category"`
	Amount    float64   `bson:"amount" json:"amount"`
	Notes     string    `bson:"notes" json:"notes"`
	Date      string    `bson:"date" json:"date"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
