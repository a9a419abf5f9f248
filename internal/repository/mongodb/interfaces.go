package mongodb

import (
	"context"

	"github.com/nirbani/dairy/internal/domain/models"
)

// The interfaces below are what the ledger services program against; the
// Mongo-backed repos in this package implement them, and tests substitute
// in-memory fakes.

// FarmerFilter narrows farmer listings.
type FarmerFilter struct {
	Search   string
	IsActive *bool
}

// FarmerRepository is the farmer record plus its running ledger.
type FarmerRepository interface {
	Insert(ctx context.Context, farmer models.Farmer) error
	FindByID(ctx context.Context, id string) (*models.Farmer, error)
	List(ctx context.Context, filter FarmerFilter) ([]models.Farmer, error)
	Update(ctx context.Context, id string, set map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	// ApplyLedgerDelta atomically increments the farmer's running totals.
	ApplyLedgerDelta(ctx context.Context, id string, delta models.FarmerLedgerDelta) error
	Count(ctx context.Context, onlyActive bool) (int64, error)
	TotalBalance(ctx context.Context) (float64, error)
}

// CollectionFilter narrows collection listings.
type CollectionFilter struct {
	FarmerID  string
	Date      string
	Shift     models.Shift
	StartDate string
	EndDate   string
}

// CollectionRepository stores milk intake events.
type CollectionRepository interface {
	// Insert persists the collection. A storage-level uniqueness violation on
	// (farmer_id, date, shift) comes back as *models.DuplicateCollectionError.
	Insert(ctx context.Context, col models.MilkCollection) error
	FindByID(ctx context.Context, id string) (*models.MilkCollection, error)
	ExistsForSlot(ctx context.Context, farmerID, date string, shift models.Shift) (bool, error)
	List(ctx context.Context, filter CollectionFilter) ([]models.MilkCollection, error)
	Replace(ctx context.Context, col models.MilkCollection) error
	Delete(ctx context.Context, id string) error
	CountByFarmer(ctx context.Context, farmerID string) (int64, error)
}

// PaymentFilter narrows payment listings.
type PaymentFilter struct {
	FarmerID  string
	Date      string
	StartDate string
	EndDate   string
}

// PaymentRepository stores farmer payments.
type PaymentRepository interface {
	Insert(ctx context.Context, payment models.Payment) error
	FindByID(ctx context.Context, id string) (*models.Payment, error)
	List(ctx context.Context, filter PaymentFilter) ([]models.Payment, error)
	Delete(ctx context.Context, id string) error
	CountByFarmer(ctx context.Context, farmerID string) (int64, error)
}

// RateChartRepository stores quality tables.
type RateChartRepository interface {
	Insert(ctx context.Context, chart models.RateChart) error
	FindByID(ctx context.Context, id string) (*models.RateChart, error)
	// FindDefault returns models.ErrRateChartNotFound when no default exists;
	// callers fall back to the formula.
	FindDefault(ctx context.Context) (*models.RateChart, error)
	List(ctx context.Context) ([]models.RateChart, error)
	Replace(ctx context.Context, chart models.RateChart) error
	Delete(ctx context.Context, id string) error
	ClearDefault(ctx context.Context) error
}

// PlantRepository stores dairy plants and their receivable ledger.
type PlantRepository interface {
	Insert(ctx context.Context, plant models.DairyPlant) error
	FindByID(ctx context.Context, id string) (*models.DairyPlant, error)
	List(ctx context.Context) ([]models.DairyPlant, error)
	ApplyLedgerDelta(ctx context.Context, id string, delta models.PlantLedgerDelta) error
}

// DispatchFilter narrows dispatch listings.
type DispatchFilter struct {
	PlantID   string
	StartDate string
	EndDate   string
}

// DispatchRepository stores bulk deliveries to plants.
type DispatchRepository interface {
	Insert(ctx context.Context, dispatch models.Dispatch) error
	FindByID(ctx context.Context, id string) (*models.Dispatch, error)
	List(ctx context.Context, filter DispatchFilter) ([]models.Dispatch, error)
	Replace(ctx context.Context, dispatch models.Dispatch) error
	Delete(ctx context.Context, id string) error
}

// DairyPaymentRepository stores payments received from plants.
type DairyPaymentRepository interface {
	Insert(ctx context.Context, payment models.DairyPayment) error
	FindByID(ctx context.Context, id string) (*models.DairyPayment, error)
	List(ctx context.Context, plantID string) ([]models.DairyPayment, error)
	Delete(ctx context.Context, id string) error
}

// CustomerRepository stores registered retail customers.
type CustomerRepository interface {
	Insert(ctx context.Context, customer models.Customer) error
	FindByID(ctx context.Context, id string) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	ApplyLedgerDelta(ctx context.Context, id string, delta models.CustomerLedgerDelta) error
}

// WalkInCustomerRepository stores udhar customers.
type WalkInCustomerRepository interface {
	Insert(ctx context.Context, customer models.WalkInCustomer) error
	FindByID(ctx context.Context, id string) (*models.WalkInCustomer, error)
	List(ctx context.Context) ([]models.WalkInCustomer, error)
	// ApplyDelta increments pending_amount and total_paid.
	ApplyDelta(ctx context.Context, id string, pending, paid float64) error
}

// SaleFilter narrows sale listings.
type SaleFilter struct {
	CustomerID       string
	WalkInCustomerID string
	Date             string
	StartDate        string
	EndDate          string
	UdharOnly        bool
}

// SaleRepository stores retail sales.
type SaleRepository interface {
	Insert(ctx context.Context, sale models.Sale) error
	FindByID(ctx context.Context, id string) (*models.Sale, error)
	List(ctx context.Context, filter SaleFilter) ([]models.Sale, error)
	Delete(ctx context.Context, id string) error
}

// UdharPaymentRepository stores walk-in credit settlements.
type UdharPaymentRepository interface {
	Insert(ctx context.Context, payment models.UdharPayment) error
	List(ctx context.Context, walkInCustomerID string) ([]models.UdharPayment, error)
}

// ProductRepository stores shop products.
type ProductRepository interface {
	Insert(ctx context.Context, product models.Product) error
	List(ctx context.Context) ([]models.Product, error)
	// DecrementStock lowers stock for the named product if it exists. Missing
	// products are not an error; stock tracking is best-effort.
	DecrementStock(ctx context.Context, name string, quantity float64) error
}

// ExpenseFilter narrows expense listings.
type ExpenseFilter struct {
	Category  string
	StartDate string
	EndDate   string
}

// ExpenseRepository stores operating expenses.
type ExpenseRepository interface {
	Insert(ctx context.Context, expense models.Expense) error
	FindByID(ctx context.Context, id string) (*models.Expense, error)
	List(ctx context.Context, filter ExpenseFilter) ([]models.Expense, error)
	Delete(ctx context.Context, id string) error
}
