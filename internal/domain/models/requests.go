package models

// Request payloads accepted by the HTTP layer. Validation beyond shape
// (binding tags) lives in the services so every caller gets the same rules.

// CreateFarmerRequest registers a new farmer with a zeroed ledger.
type CreateFarmerRequest struct {
	Name         string   `json:"name" binding:"required"`
	Phone        string   `json:"phone" binding:"required"`
	Address      string   `json:"address"`
	Village      string   `json:"village"`
	BankAccount  string   `json:"bank_account"`
	IFSCCode     string   `json:"ifsc_code"`
	AadharNumber string   `json:"aadhar_number"`
	MilkType     MilkType `json:"milk_type"`
	FixedRate    float64  `json:"fixed_rate"`
	CowRate      float64  `json:"cow_rate"`
	BuffaloRate  float64  `json:"buffalo_rate"`
}

// UpdateFarmerRequest patches farmer identity or pricing fields. Nil means
// "leave unchanged".
type UpdateFarmerRequest struct {
	Name         *string   `json:"name"`
	Phone        *string   `json:"phone"`
	Address      *string   `json:"address"`
	Village      *string   `json:"village"`
	BankAccount  *string   `json:"bank_account"`
	IFSCCode     *string   `json:"ifsc_code"`
	AadharNumber *string   `json:"aadhar_number"`
	MilkType     *MilkType `json:"milk_type"`
	FixedRate    *float64  `json:"fixed_rate"`
	CowRate      *float64  `json:"cow_rate"`
	BuffaloRate  *float64  `json:"buffalo_rate"`
	IsActive     *bool     `json:"is_active"`
}

// CreateCollectionRequest records a milk intake.
type CreateCollectionRequest struct {
	FarmerID string   `json:"farmer_id" binding:"required"`
	Shift    Shift    `json:"shift" binding:"required"`
	Quantity float64  `json:"quantity" binding:"required"`
	Fat      float64  `json:"fat" binding:"required"`
	SNF      float64  `json:"snf"`
	MilkType MilkType `json:"milk_type"`
	// Date defaults to today when empty; backdating is allowed.
	Date string `json:"date"`
	// RateOverride, when positive, bypasses rate resolution entirely.
	RateOverride float64 `json:"rate_override"`
}

// UpdateCollectionRequest edits quantity and/or rate of an existing
// collection; the amount is re-derived and the farmer ledger adjusted by the
// delta.
type UpdateCollectionRequest struct {
	Quantity *float64 `json:"quantity"`
	Rate     *float64 `json:"rate"`
}

// CreatePaymentRequest records a farmer payment, advance or deduction.
type CreatePaymentRequest struct {
	FarmerID    string      `json:"farmer_id" binding:"required"`
	Amount      float64     `json:"amount" binding:"required"`
	PaymentMode PaymentMode `json:"payment_mode" binding:"required"`
	PaymentType PaymentType `json:"payment_type"`
	Notes       string      `json:"notes"`
	Date        string      `json:"date"`
}

// CreateRateChartRequest creates or replaces a quality table.
type CreateRateChartRequest struct {
	Name      string           `json:"name" binding:"required"`
	Entries   []RateChartEntry `json:"entries" binding:"required"`
	IsDefault bool             `json:"is_default"`
}

// CreatePlantRequest registers a processing plant.
type CreatePlantRequest struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ContactPerson string `json:"contact_person"`
}

// CreateDispatchRequest records a bulk delivery to a plant.
type CreateDispatchRequest struct {
	DairyPlantID string      `json:"dairy_plant_id" binding:"required"`
	QuantityKg   float64     `json:"quantity_kg" binding:"required"`
	AvgFat       float64     `json:"avg_fat" binding:"required"`
	AvgSNF       float64     `json:"avg_snf"`
	RatePerKg    float64     `json:"rate_per_kg" binding:"required"`
	Deductions   []Deduction `json:"deductions"`
	Date         string      `json:"date"`
	TankerNumber string      `json:"tanker_number"`
	Notes        string      `json:"notes"`
}

// SlipMatchRequest reconciles a dispatch against the plant's slip.
type SlipMatchRequest struct {
	SlipFat        float64 `json:"slip_fat"`
	SlipSNF        float64 `json:"slip_snf"`
	SlipAmount     float64 `json:"slip_amount" binding:"required"`
	SlipDeductions float64 `json:"slip_deductions"`
}

// CreateDairyPaymentRequest records money received from a plant.
type CreateDairyPaymentRequest struct {
	DairyPlantID string      `json:"dairy_plant_id" binding:"required"`
	Amount       float64     `json:"amount" binding:"required"`
	PaymentMode  PaymentMode `json:"payment_mode"`
	Notes        string      `json:"notes"`
	Date         string      `json:"date"`
}

// CreateCustomerRequest registers a retail customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CreateWalkInCustomerRequest registers an udhar customer.
type CreateWalkInCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// CreateSaleRequest records a retail sale. Exactly one of CustomerID /
// WalkInCustomerID may be set; with neither it is an anonymous shop sale.
type CreateSaleRequest struct {
	CustomerID       string  `json:"customer_id"`
	WalkInCustomerID string  `json:"walk_in_customer_id"`
	CustomerName     string  `json:"customer_name"`
	Product          string  `json:"product" binding:"required"`
	Quantity         float64 `json:"quantity"`
	Rate             float64 `json:"rate"`
	// DirectAmount, when positive, overrides quantity*rate.
	DirectAmount float64 `json:"direct_amount"`
	IsUdhar      bool    `json:"is_udhar"`
	Date         string  `json:"date"`
}

// CreateUdharPaymentRequest settles walk-in credit.
type CreateUdharPaymentRequest struct {
	WalkInCustomerID string  `json:"walk_in_customer_id" binding:"required"`
	Amount           float64 `json:"amount" binding:"required"`
	Notes            string  `json:"notes"`
	Date             string  `json:"date"`
}

// CreateExpenseRequest records an operating expense.
type CreateExpenseRequest struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Notes    string  `json:"notes"`
	Date     string  `json:"date"`
}

// CreateProductRequest registers a shop product.
type CreateProductRequest struct {
	Name  string  `json:"name" binding:"required"`
	Unit  string  `json:"unit"`
	Rate  float64 `json:"rate"`
	Stock float64 `json:"stock"`
}
