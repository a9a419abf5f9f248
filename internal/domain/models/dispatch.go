package models

import "time"

// DairyPlant is a processing plant the dairy dispatches bulk milk to,
// together with its running receivable ledger.
type DairyPlant struct {
	ID            string `bson:"id" json:"id"`
	Name          string `bson:"name" json:"name"`
	Phone         string `bson:"phone" json:"phone"`
	Address       string `bson:"address" json:"address"`
	ContactPerson string `bson:"contact_person" json:"contact_person"`

	TotalMilkSupplied float64 `bson:"total_milk_supplied" json:"total_milk_supplied"`
	TotalAmount       float64 `bson:"total_amount" json:"total_amount"`
	TotalPaid         float64 `bson:"total_paid" json:"total_paid"`
	Balance           float64 `bson:"balance" json:"balance"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// PlantLedgerDelta is a single atomic adjustment to a plant's running totals.
type PlantLedgerDelta struct {
	MilkKg  float64
	Amount  float64
	Paid    float64
	Balance float64
}

// Deduction is one line subtracted from a dispatch's gross amount
// (commission, transport, quality cut and so on).
type Deduction struct {
	Type   string  `bson:"type" json:"type"`
	Amount float64 `bson:"amount" json:"amount"`
	Notes  string  `bson:"notes" json:"notes"`
}

// Dispatch is a bulk delivery to a plant. Slip fields stay zero until a
// slip-match reconciles the record against the plant's paperwork.
type Dispatch struct {
	ID             string      `bson:"id" json:"id"`
	DairyPlantID   string      `bson:"dairy_plant_id" json:"dairy_plant_id"`
	DairyPlantName string      `bson:"dairy_plant_name" json:"dairy_plant_name"`
	Date           string      `bson:"date" json:"date"`
	QuantityKg     float64     `bson:"quantity_kg" json:"quantity_kg"`
	AvgFat         float64     `bson:"avg_fat" json:"avg_fat"`
	AvgSNF         float64     `bson:"avg_snf" json:"avg_snf"`
	RatePerKg      float64     `bson:"rate_per_kg" json:"rate_per_kg"`
	GrossAmount    float64     `bson:"gross_amount" json:"gross_amount"`
	Deductions     []Deduction `bson:"deductions" json:"deductions"`
	TotalDeduction float64     `bson:"total_deduction" json:"total_deduction"`
	NetReceivable  float64     `bson:"net_receivable" json:"net_receivable"`
	TankerNumber   string      `bson:"tanker_number" json:"tanker_number"`
	Notes          string      `bson:"notes" json:"notes"`

	SlipFat          float64 `bson:"slip_fat" json:"slip_fat"`
	SlipSNF          float64 `bson:"slip_snf" json:"slip_snf"`
	SlipAmount       float64 `bson:"slip_amount" json:"slip_amount"`
	SlipDeductions   float64 `bson:"slip_deductions" json:"slip_deductions"`
	FatDifference    float64 `bson:"fat_difference" json:"fat_difference"`
	AmountDifference float64 `bson:"amount_difference" json:"amount_difference"`
	SlipMatched      bool    `bson:"slip_matched" json:"slip_matched"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// DairyPayment is money received from a plant against its balance.
type DairyPayment struct {
	ID             string      `bson:"id" json:"id"`
	DairyPlantID   string      `bson:"dairy_plant_id" json:"dairy_plant_id"`
	DairyPlantName string      `bson:"dairy_plant_name" json:"dairy_plant_name"`
	Amount         float64     `bson:"amount" json:"amount"`
	PaymentMode    PaymentMode `bson:"payment_mode" json:"payment_mode"`
	Notes          string      `bson:"notes" json:"notes"`
	Date           string      `bson:"date" json:"date"`
	CreatedAt      time.Time   `bson:"created_at" json:"created_at"`
}
