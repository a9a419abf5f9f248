package models

import "time"

// Shift identifies the milking session. Together with farmer and date it
// forms the uniqueness key of a collection.
type Shift string

const (
	ShiftMorning Shift = "morning"
	ShiftEvening Shift = "evening"
)

// Valid reports whether the shift is one of the two known sessions.
func (s Shift) Valid() bool {
	return s == ShiftMorning || s == ShiftEvening
}

// MilkCollection is a single intake event. Rate and amount are resolved at
// creation time and frozen; reads never re-derive them.
type MilkCollection struct {
	ID         string   `bson:"id" json:"id"`
	FarmerID   string   `bson:"farmer_id" json:"farmer_id"`
	FarmerName string   `bson:"farmer_name" json:"farmer_name"`
	Shift      Shift    `bson:"shift" json:"shift"`
	MilkType   MilkType `bson:"milk_type" json:"milk_type"`
	Quantity   float64  `bson:"quantity" json:"quantity"`
	Fat        float64  `bson:"fat" json:"fat"`
	SNF        float64  `bson:"snf" json:"snf"`
	Rate       float64  `bson:"rate" json:"rate"`
	Amount     float64  `bson:"amount" json:"amount"`

	Date      string    `bson:"date" json:"date"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// RateChartEntry maps a fat/SNF pair to a price per liter.
type RateChartEntry struct {
	Fat  float64 `bson:"fat" json:"fat"`
	SNF  float64 `bson:"snf" json:"snf"`
	Rate float64 `bson:"rate" json:"rate"`
}

// RateChart is a named quality table. At most one chart is marked default;
// the default chart drives nearest-match rate lookup.
type RateChart struct {
	ID        string           `bson:"id" json:"id"`
	Name      string           `bson:"name" json:"name"`
	Entries   []RateChartEntry `bson:"entries" json:"entries"`
	IsDefault bool             `bson:"is_default" json:"is_default"`
	CreatedAt time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time        `bson:"updated_at" json:"updated_at"`
}
