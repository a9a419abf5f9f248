package models

import "time"

// DateLayout is the calendar-day format used on every transaction document.
const DateLayout = "2006-01-02"

// MilkType classifies what a farmer delivers; it selects the fixed-rate field
// considered during rate resolution.
type MilkType string

const (
	MilkTypeCow     MilkType = "cow"
	MilkTypeBuffalo MilkType = "buffalo"
	MilkTypeMix     MilkType = "mix"
)

// Farmer is a registered milk supplier together with their running ledger.
// TotalMilk/TotalDue/TotalPaid/Balance are denormalized running totals
// maintained by atomic increments, never recomputed from history.
type Farmer struct {
	ID           string   `bson:"id" json:"id"`
	Name         string   `bson:"name" json:"name"`
	Phone        string   `bson:"phone" json:"phone"`
	Address      string   `bson:"address" json:"address"`
	Village      string   `bson:"village" json:"village"`
	BankAccount  string   `bson:"bank_account" json:"bank_account"`
	IFSCCode     string   `bson:"ifsc_code" json:"ifsc_code"`
	AadharNumber string   `bson:"aadhar_number" json:"aadhar_number"`
	MilkType     MilkType `bson:"milk_type" json:"milk_type"`

	// Per-farmer fixed pricing. Zero means "not set"; rate resolution falls
	// through to the chart or the formula.
	FixedRate   float64 `bson:"fixed_rate" json:"fixed_rate"`
	CowRate     float64 `bson:"cow_rate" json:"cow_rate"`
	BuffaloRate float64 `bson:"buffalo_rate" json:"buffalo_rate"`

	TotalMilk float64 `bson:"total_milk" json:"total_milk"`
	TotalDue  float64 `bson:"total_due" json:"total_due"`
	TotalPaid float64 `bson:"total_paid" json:"total_paid"`
	Balance   float64 `bson:"balance" json:"balance"`

	IsActive  bool      `bson:"is_active" json:"is_active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// FarmerLedgerDelta is a single atomic adjustment to a farmer's running
// totals. Fields may be negative to revert an earlier transaction.
type FarmerLedgerDelta struct {
	Milk    float64
	Due     float64
	Paid    float64
	Balance float64
}
