// Package memory provides map-backed implementations of the repository
// interfaces. The service tests run against these instead of a live MongoDB;
// they mirror the Mongo repos' semantics including duplicate detection and
// not-found sentinels.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/mongodb"
)

// Store owns every in-memory repo, sharing one lock.
type Store struct {
	mu sync.Mutex

	farmers       map[string]models.Farmer
	collections   map[string]models.MilkCollection
	payments      map[string]models.Payment
	charts        map[string]models.RateChart
	plants        map[string]models.DairyPlant
	dispatches    map[string]models.Dispatch
	dairyPayments map[string]models.DairyPayment
	customers     map[string]models.Customer
	walkIns       map[string]models.WalkInCustomer
	sales         map[string]models.Sale
	udhar         map[string]models.UdharPayment
	products      map[string]models.Product
	expenses      map[string]models.Expense
}

// NewStore returns an empty in-memory store.
func NewStore() *Store {
	return &Store{
		farmers:       map[string]models.Farmer{},
		collections:   map[string]models.MilkCollection{},
		payments:      map[string]models.Payment{},
		charts:        map[string]models.RateChart{},
		plants:        map[string]models.DairyPlant{},
		dispatches:    map[string]models.Dispatch{},
		dairyPayments: map[string]models.DairyPayment{},
		customers:     map[string]models.Customer{},
		walkIns:       map[string]models.WalkInCustomer{},
		sales:         map[string]models.Sale{},
		udhar:         map[string]models.UdharPayment{},
		products:      map[string]models.Product{},
		expenses:      map[string]models.Expense{},
	}
}

func (s *Store) Farmers() *FarmerRepo                 { return &FarmerRepo{s} }
func (s *Store) Collections() *CollectionRepo         { return &CollectionRepo{s} }
func (s *Store) Payments() *PaymentRepo               { return &PaymentRepo{s} }
func (s *Store) RateCharts() *RateChartRepo           { return &RateChartRepo{s} }
func (s *Store) Plants() *PlantRepo                   { return &PlantRepo{s} }
func (s *Store) Dispatches() *DispatchRepo            { return &DispatchRepo{s} }
func (s *Store) DairyPayments() *DairyPaymentRepo     { return &DairyPaymentRepo{s} }
func (s *Store) Customers() *CustomerRepo             { return &CustomerRepo{s} }
func (s *Store) WalkInCustomers() *WalkInCustomerRepo { return &WalkInCustomerRepo{s} }
func (s *Store) Sales() *SaleRepo                     { return &SaleRepo{s} }
func (s *Store) UdharPayments() *UdharPaymentRepo     { return &UdharPaymentRepo{s} }
func (s *Store) Products() *ProductRepo               { return &ProductRepo{s} }
func (s *Store) Expenses() *ExpenseRepo               { return &ExpenseRepo{s} }

func inDateRange(date, start, end string) bool {
	if start != "" && date < start {
		return false
	}
	if end != "" && date > end {
		return false
	}
	return true
}

// matchesAny reports whether the search term appears in any of the fields,
// case-insensitively, like the Mongo $or regex filter.
func matchesAny(search string, fields ...string) bool {
	search = strings.ToLower(search)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// FarmerRepo implements mongodb.FarmerRepository.
type FarmerRepo struct{ s *Store }

func (r *FarmerRepo) Insert(_ context.Context, farmer models.Farmer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.farmers[farmer.ID] = farmer
	return nil
}

func (r *FarmerRepo) FindByID(_ context.Context, id string) (*models.Farmer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	farmer, ok := r.s.farmers[id]
	if !ok {
		return nil, models.ErrFarmerNotFound
	}
	return &farmer, nil
}

func (r *FarmerRepo) List(_ context.Context, filter mongodb.FarmerFilter) ([]models.Farmer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Farmer
	for _, f := range r.s.farmers {
		if filter.Search != "" && !matchesAny(filter.Search, f.Name, f.Phone, f.Village) {
			continue
		}
		if filter.IsActive != nil && f.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *FarmerRepo) Update(_ context.Context, id string, set map[string]interface{}) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	farmer, ok := r.s.farmers[id]
	if !ok {
		return models.ErrFarmerNotFound
	}
	for key, value := range set {
		switch key {
		case "name":
			farmer.Name = value.(string)
		case "phone":
			farmer.Phone = value.(string)
		case "address":
			farmer.Address = value.(string)
		case "village":
			farmer.Village = value.(string)
		case "bank_account":
			farmer.BankAccount = value.(string)
		case "ifsc_code":
			farmer.IFSCCode = value.(string)
		case "aadhar_number":
			farmer.AadharNumber = value.(string)
		case "milk_type":
			farmer.MilkType = value.(models.MilkType)
		case "fixed_rate":
			farmer.FixedRate = value.(float64)
		case "cow_rate":
			farmer.CowRate = value.(float64)
		case "buffalo_rate":
			farmer.BuffaloRate = value.(float64)
		case "is_active":
			farmer.IsActive = value.(bool)
		}
	}
	r.s.farmers[id] = farmer
	return nil
}

func (r *FarmerRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.farmers[id]; !ok {
		return models.ErrFarmerNotFound
	}
	delete(r.s.farmers, id)
	return nil
}

func (r *FarmerRepo) ApplyLedgerDelta(_ context.Context, id string, delta models.FarmerLedgerDelta) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	farmer, ok := r.s.farmers[id]
	if !ok {
		return models.ErrFarmerNotFound
	}
	farmer.TotalMilk += delta.Milk
	farmer.TotalDue += delta.Due
	farmer.TotalPaid += delta.Paid
	farmer.Balance += delta.Balance
	r.s.farmers[id] = farmer
	return nil
}

func (r *FarmerRepo) Count(_ context.Context, onlyActive bool) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, f := range r.s.farmers {
		if onlyActive && !f.IsActive {
			continue
		}
		n++
	}
	return n, nil
}

func (r *FarmerRepo) TotalBalance(_ context.Context) (float64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var total float64
	for _, f := range r.s.farmers {
		total += f.Balance
	}
	return total, nil
}

// CollectionRepo implements mongodb.CollectionRepository.
type CollectionRepo struct{ s *Store }

func (r *CollectionRepo) Insert(_ context.Context, col models.MilkCollection) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.collections {
		if existing.FarmerID == col.FarmerID && existing.Date == col.Date && existing.Shift == col.Shift {
			return &models.DuplicateCollectionError{FarmerID: col.FarmerID, Date: col.Date, Shift: col.Shift}
		}
	}
	r.s.collections[col.ID] = col
	return nil
}

func (r *CollectionRepo) FindByID(_ context.Context, id string) (*models.MilkCollection, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	col, ok := r.s.collections[id]
	if !ok {
		return nil, models.ErrCollectionNotFound
	}
	return &col, nil
}

func (r *CollectionRepo) ExistsForSlot(_ context.Context, farmerID, date string, shift models.Shift) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.collections {
		if c.FarmerID == farmerID && c.Date == date && c.Shift == shift {
			return true, nil
		}
	}
	return false, nil
}

func (r *CollectionRepo) List(_ context.Context, filter mongodb.CollectionFilter) ([]models.MilkCollection, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.MilkCollection
	for _, c := range r.s.collections {
		if filter.FarmerID != "" && c.FarmerID != filter.FarmerID {
			continue
		}
		if filter.Date != "" && c.Date != filter.Date {
			continue
		}
		if filter.Shift != "" && c.Shift != filter.Shift {
			continue
		}
		if !inDateRange(c.Date, filter.StartDate, filter.EndDate) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *CollectionRepo) Replace(_ context.Context, col models.MilkCollection) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.collections[col.ID]; !ok {
		return models.ErrCollectionNotFound
	}
	r.s.collections[col.ID] = col
	return nil
}

func (r *CollectionRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.collections[id]; !ok {
		return models.ErrCollectionNotFound
	}
	delete(r.s.collections, id)
	return nil
}

func (r *CollectionRepo) CountByFarmer(_ context.Context, farmerID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, c := range r.s.collections {
		if c.FarmerID == farmerID {
			n++
		}
	}
	return n, nil
}

// PaymentRepo implements mongodb.PaymentRepository.
type PaymentRepo struct{ s *Store }

func (r *PaymentRepo) Insert(_ context.Context, payment models.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.payments[payment.ID] = payment
	return nil
}

func (r *PaymentRepo) FindByID(_ context.Context, id string) (*models.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	payment, ok := r.s.payments[id]
	if !ok {
		return nil, models.ErrPaymentNotFound
	}
	return &payment, nil
}

func (r *PaymentRepo) List(_ context.Context, filter mongodb.PaymentFilter) ([]models.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Payment
	for _, p := range r.s.payments {
		if filter.FarmerID != "" && p.FarmerID != filter.FarmerID {
			continue
		}
		if filter.Date != "" && p.Date != filter.Date {
			continue
		}
		if !inDateRange(p.Date, filter.StartDate, filter.EndDate) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *PaymentRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.payments[id]; !ok {
		return models.ErrPaymentNotFound
	}
	delete(r.s.payments, id)
	return nil
}

func (r *PaymentRepo) CountByFarmer(_ context.Context, farmerID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, p := range r.s.payments {
		if p.FarmerID == farmerID {
			n++
		}
	}
	return n, nil
}

// RateChartRepo implements mongodb.RateChartRepository.
type RateChartRepo struct{ s *Store }

func (r *RateChartRepo) Insert(_ context.Context, chart models.RateChart) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.charts[chart.ID] = chart
	return nil
}

func (r *RateChartRepo) FindByID(_ context.Context, id string) (*models.RateChart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	chart, ok := r.s.charts[id]
	if !ok {
		return nil, models.ErrRateChartNotFound
	}
	return &chart, nil
}

func (r *RateChartRepo) FindDefault(_ context.Context) (*models.RateChart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, chart := range r.s.charts {
		if chart.IsDefault {
			c := chart
			return &c, nil
		}
	}
	return nil, models.ErrRateChartNotFound
}

func (r *RateChartRepo) List(_ context.Context) ([]models.RateChart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.RateChart
	for _, chart := range r.s.charts {
		out = append(out, chart)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *RateChartRepo) Replace(_ context.Context, chart models.RateChart) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.charts[chart.ID]; !ok {
		return models.ErrRateChartNotFound
	}
	r.s.charts[chart.ID] = chart
	return nil
}

func (r *RateChartRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.charts[id]; !ok {
		return models.ErrRateChartNotFound
	}
	delete(r.s.charts, id)
	return nil
}

func (r *RateChartRepo) ClearDefault(_ context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, chart := range r.s.charts {
		if chart.IsDefault {
			chart.IsDefault = false
			r.s.charts[id] = chart
		}
	}
	return nil
}

// PlantRepo implements mongodb.PlantRepository.
type PlantRepo struct{ s *Store }

func (r *PlantRepo) Insert(_ context.Context, plant models.DairyPlant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.plants[plant.ID] = plant
	return nil
}

func (r *PlantRepo) FindByID(_ context.Context, id string) (*models.DairyPlant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	plant, ok := r.s.plants[id]
	if !ok {
		return nil, models.ErrPlantNotFound
	}
	return &plant, nil
}

func (r *PlantRepo) List(_ context.Context) ([]models.DairyPlant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.DairyPlant
	for _, plant := range r.s.plants {
		out = append(out, plant)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *PlantRepo) ApplyLedgerDelta(_ context.Context, id string, delta models.PlantLedgerDelta) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	plant, ok := r.s.plants[id]
	if !ok {
		return models.ErrPlantNotFound
	}
	plant.TotalMilkSupplied += delta.MilkKg
	plant.TotalAmount += delta.Amount
	plant.TotalPaid += delta.Paid
	plant.Balance += delta.Balance
	r.s.plants[id] = plant
	return nil
}

// DispatchRepo implements mongodb.DispatchRepository.
type DispatchRepo struct{ s *Store }

func (r *DispatchRepo) Insert(_ context.Context, dispatch models.Dispatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.dispatches[dispatch.ID] = dispatch
	return nil
}

func (r *DispatchRepo) FindByID(_ context.Context, id string) (*models.Dispatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	dispatch, ok := r.s.dispatches[id]
	if !ok {
		return nil, models.ErrDispatchNotFound
	}
	return &dispatch, nil
}

func (r *DispatchRepo) List(_ context.Context, filter mongodb.DispatchFilter) ([]models.Dispatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Dispatch
	for _, d := range r.s.dispatches {
		if filter.PlantID != "" && d.DairyPlantID != filter.PlantID {
			continue
		}
		if !inDateRange(d.Date, filter.StartDate, filter.EndDate) {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *DispatchRepo) Replace(_ context.Context, dispatch models.Dispatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.dispatches[dispatch.ID]; !ok {
		return models.ErrDispatchNotFound
	}
	r.s.dispatches[dispatch.ID] = dispatch
	return nil
}

func (r *DispatchRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.dispatches[id]; !ok {
		return models.ErrDispatchNotFound
	}
	delete(r.s.dispatches, id)
	return nil
}

// DairyPaymentRepo implements mongodb.DairyPaymentRepository.
type DairyPaymentRepo struct{ s *Store }

func (r *DairyPaymentRepo) Insert(_ context.Context, payment models.DairyPayment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.dairyPayments[payment.ID] = payment
	return nil
}

func (r *DairyPaymentRepo) FindByID(_ context.Context, id string) (*models.DairyPayment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	payment, ok := r.s.dairyPayments[id]
	if !ok {
		return nil, models.ErrDairyPaymentNotFound
	}
	return &payment, nil
}

func (r *DairyPaymentRepo) List(_ context.Context, plantID string) ([]models.DairyPayment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.DairyPayment
	for _, p := range r.s.dairyPayments {
		if plantID != "" && p.DairyPlantID != plantID {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *DairyPaymentRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.dairyPayments[id]; !ok {
		return models.ErrDairyPaymentNotFound
	}
	delete(r.s.dairyPayments, id)
	return nil
}

// CustomerRepo implements mongodb.CustomerRepository.
type CustomerRepo struct{ s *Store }

func (r *CustomerRepo) Insert(_ context.Context, customer models.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.customers[customer.ID] = customer
	return nil
}

func (r *CustomerRepo) FindByID(_ context.Context, id string) (*models.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	customer, ok := r.s.customers[id]
	if !ok {
		return nil, models.ErrCustomerNotFound
	}
	return &customer, nil
}

func (r *CustomerRepo) List(_ context.Context) ([]models.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Customer
	for _, customer := range r.s.customers {
		out = append(out, customer)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CustomerRepo) ApplyLedgerDelta(_ context.Context, id string, delta models.CustomerLedgerDelta) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	customer, ok := r.s.customers[id]
	if !ok {
		return models.ErrCustomerNotFound
	}
	customer.TotalPurchase += delta.Purchase
	customer.TotalPaid += delta.Paid
	customer.Balance += delta.Balance
	r.s.customers[id] = customer
	return nil
}

// WalkInCustomerRepo implements mongodb.WalkInCustomerRepository.
type WalkInCustomerRepo struct{ s *Store }

func (r *WalkInCustomerRepo) Insert(_ context.Context, customer models.WalkInCustomer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.walkIns[customer.ID] = customer
	return nil
}

func (r *WalkInCustomerRepo) FindByID(_ context.Context, id string) (*models.WalkInCustomer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	customer, ok := r.s.walkIns[id]
	if !ok {
		return nil, models.ErrWalkInCustomerNotFound
	}
	return &customer, nil
}

func (r *WalkInCustomerRepo) List(_ context.Context) ([]models.WalkInCustomer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.WalkInCustomer
	for _, customer := range r.s.walkIns {
		out = append(out, customer)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *WalkInCustomerRepo) ApplyDelta(_ context.Context, id string, pending, paid float64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	customer, ok := r.s.walkIns[id]
	if !ok {
		return models.ErrWalkInCustomerNotFound
	}
	customer.PendingAmount += pending
	customer.TotalPaid += paid
	r.s.walkIns[id] = customer
	return nil
}

// SaleRepo implements mongodb.SaleRepository.
type SaleRepo struct{ s *Store }

func (r *SaleRepo) Insert(_ context.Context, sale models.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sales[sale.ID] = sale
	return nil
}

func (r *SaleRepo) FindByID(_ context.Context, id string) (*models.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, models.ErrSaleNotFound
	}
	return &sale, nil
}

func (r *SaleRepo) List(_ context.Context, filter mongodb.SaleFilter) ([]models.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Sale
	for _, sale := range r.s.sales {
		if filter.CustomerID != "" && sale.CustomerID != filter.CustomerID {
			continue
		}
		if filter.WalkInCustomerID != "" && sale.WalkInCustomerID != filter.WalkInCustomerID {
			continue
		}
		if filter.Date != "" && sale.Date != filter.Date {
			continue
		}
		if filter.UdharOnly && !sale.IsUdhar {
			continue
		}
		if !inDateRange(sale.Date, filter.StartDate, filter.EndDate) {
			continue
		}
		out = append(out, sale)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *SaleRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sales[id]; !ok {
		return models.ErrSaleNotFound
	}
	delete(r.s.sales, id)
	return nil
}

// UdharPaymentRepo implements mongodb.UdharPaymentRepository.
type UdharPaymentRepo struct{ s *Store }

func (r *UdharPaymentRepo) Insert(_ context.Context, payment models.UdharPayment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.udhar[payment.ID] = payment
	return nil
}

func (r *UdharPaymentRepo) List(_ context.Context, walkInCustomerID string) ([]models.UdharPayment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.UdharPayment
	for _, p := range r.s.udhar {
		if walkInCustomerID != "" && p.WalkInCustomerID != walkInCustomerID {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// ProductRepo implements mongodb.ProductRepository.
type ProductRepo struct{ s *Store }

func (r *ProductRepo) Insert(_ context.Context, product models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[product.ID] = product
	return nil
}

func (r *ProductRepo) List(_ context.Context) ([]models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Product
	for _, product := range r.s.products {
		out = append(out, product)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ProductRepo) DecrementStock(_ context.Context, name string, quantity float64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, product := range r.s.products {
		if product.Name == name {
			product.Stock -= quantity
			r.s.products[id] = product
			return nil
		}
	}
	return nil
}

// ExpenseRepo implements mongodb.ExpenseRepository.
type ExpenseRepo struct{ s *Store }

func (r *ExpenseRepo) Insert(_ context.Context, expense models.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.expenses[expense.ID] = expense
	return nil
}

func (r *ExpenseRepo) FindByID(_ context.Context, id string) (*models.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	expense, ok := r.s.expenses[id]
	if !ok {
		return nil, models.ErrExpenseNotFound
	}
	return &expense, nil
}

func (r *ExpenseRepo) List(_ context.Context, filter mongodb.ExpenseFilter) ([]models.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Expense
	for _, e := range r.s.expenses {
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if !inDateRange(e.Date, filter.StartDate, filter.EndDate) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *ExpenseRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.expenses[id]; !ok {
		return models.ErrExpenseNotFound
	}
	delete(r.s.expenses, id)
	return nil
}
