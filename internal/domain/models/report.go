package models

// DashboardStats summarizes today's intake and outstanding dues.
type DashboardStats struct {
	TotalFarmers         int64   `json:"total_farmers"`
	ActiveFarmers        int64   `json:"active_farmers"`
	TodayMilkQuantity    float64 `json:"today_milk_quantity"`
	TodayMilkAmount      float64 `json:"today_milk_amount"`
	TodayMorningQuantity float64 `json:"today_morning_quantity"`
	TodayEveningQuantity float64 `json:"today_evening_quantity"`
	AvgFat               float64 `json:"avg_fat"`
	AvgSNF               float64 `json:"avg_snf"`
	TotalPendingPayments float64 `json:"total_pending_payments"`
	CollectionsCount     int     `json:"collections_count"`
}

// DayStat is one day's intake totals, used by the weekly trend endpoint.
type DayStat struct {
	Date     string  `json:"date"`
	Quantity float64 `json:"quantity"`
	Amount   float64 `json:"amount"`
	Count    int     `json:"count"`
}

// DailySummary aggregates one calendar day's collections and payments.
type DailySummary struct {
	TotalQuantity   float64 `json:"total_quantity"`
	TotalAmount     float64 `json:"total_amount"`
	MorningQuantity float64 `json:"morning_quantity"`
	EveningQuantity float64 `json:"evening_quantity"`
	CollectionCount int     `json:"collection_count"`
	TotalPaid       float64 `json:"total_paid"`
	PaymentCount    int     `json:"payment_count"`
}

// DailyReport is the full daily report payload.
type DailyReport struct {
	Date        string           `json:"date"`
	Collections []MilkCollection `json:"collections"`
	Payments    []Payment        `json:"payments"`
	Summary     DailySummary     `json:"summary"`
}

// FarmerReportSummary totals a farmer's activity inside a period.
type FarmerReportSummary struct {
	TotalMilk       float64 `json:"total_milk"`
	TotalAmount     float64 `json:"total_amount"`
	TotalPaid       float64 `json:"total_paid"`
	Balance         float64 `json:"balance"`
	CollectionCount int     `json:"collection_count"`
	PaymentCount    int     `json:"payment_count"`
}

// FarmerReport bundles a farmer's period activity with their live ledger.
type FarmerReport struct {
	Farmer      Farmer              `json:"farmer"`
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`
	Collections []MilkCollection    `json:"collections"`
	Payments    []Payment           `json:"payments"`
	Summary     FarmerReportSummary `json:"summary"`
}

// ProfitReport is the read-only period profitability view. It never mutates
// any ledger.
type ProfitReport struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	DispatchedKg       float64 `json:"dispatched_kg"`
	DispatchAmount     float64 `json:"dispatch_amount"`
	AvgDispatchRate    float64 `json:"avg_dispatch_rate"`
	AvgDispatchFat     float64 `json:"avg_dispatch_fat"`
	CollectedLiters    float64 `json:"collected_liters"`
	CollectedKg        float64 `json:"collected_kg"`
	FarmerPayoutAmount float64 `json:"farmer_payout_amount"`

	MilkDifferenceKg float64 `json:"milk_difference_kg"`
	LossPercent      float64 `json:"loss_percent"`
	LossAlert        bool    `json:"loss_alert"`

	RetailSalesAmount  float64            `json:"retail_sales_amount"`
	ExpensesByCategory map[string]float64 `json:"expenses_by_category"`
	TotalExpenses      float64            `json:"total_expenses"`

	GrossProfit float64 `json:"gross_profit"`
	NetProfit   float64 `json:"net_profit"`
}

// FarmerLedger is the farmer ledger view: transactions plus the live totals.
type FarmerLedger struct {
	Farmer      Farmer           `json:"farmer"`
	Collections []MilkCollection `json:"collections"`
	Payments    []Payment        `json:"payments"`
}
