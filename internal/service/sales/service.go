// Package sales orchestrates retail sales, udhar credit and customer ledgers.
package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/mongodb"
	"github.com/nirbani/dairy/internal/service/rates"
)

// Service records and reverts retail sales.
type Service struct {
	customers mongodb.CustomerRepository
	walkIns   mongodb.WalkInCustomerRepository
	sales     mongodb.SaleRepository
	udhar     mongodb.UdharPaymentRepository
	products  mongodb.ProductRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires a sale service instance.
func NewService(customers mongodb.CustomerRepository, walkIns mongodb.WalkInCustomerRepository, sales mongodb.SaleRepository, udhar mongodb.UdharPaymentRepository, products mongodb.ProductRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		customers: customers,
		walkIns:   walkIns,
		sales:     sales,
		udhar:     udhar,
		products:  products,
		logger:    logger,
		now:       time.Now,
	}
}

// saleAmount applies the direct-amount override rule.
func saleAmount(req models.CreateSaleRequest) float64 {
	if req.DirectAmount > 0 {
		return rates.Round2(req.DirectAmount)
	}
	return rates.ComputeAmount(req.Quantity, req.Rate)
}

// Create records a sale. A registered customer's purchase ledger is credited;
// a walk-in udhar sale raises that customer's pending amount; an anonymous
// shop sale touches no ledger. Product stock is decremented best-effort.
func (s *Service) Create(ctx context.Context, req models.CreateSaleRequest) (*models.Sale, error) {
	if req.CustomerID != "" && req.WalkInCustomerID != "" {
		return nil, fmt.Errorf("%w: a sale cannot reference both a customer and a walk-in customer", models.ErrValidation)
	}

	amount := saleAmount(req)
	if amount <= 0 {
		return nil, fmt.Errorf("%w: sale amount must be positive", models.ErrValidation)
	}

	date := req.Date
	if date == "" {
		date = s.now().UTC().Format(models.DateLayout)
	}

	sale := models.Sale{
		ID:               uuid.NewString(),
		CustomerID:       req.CustomerID,
		WalkInCustomerID: req.WalkInCustomerID,
		CustomerName:     req.CustomerName,
		Product:          req.Product,
		Quantity:         req.Quantity,
		Rate:             req.Rate,
		DirectAmount:     req.DirectAmount,
		Amount:           amount,
		IsUdhar:          req.IsUdhar,
		Date:             date,
		CreatedAt:        s.now().UTC(),
	}

	switch {
	case req.CustomerID != "":
		customer, err := s.customers.FindByID(ctx, req.CustomerID)
		if err != nil {
			return nil, err
		}
		sale.CustomerName = customer.Name

		if err := s.sales.Insert(ctx, sale); err != nil {
			return nil, err
		}
		err = s.customers.ApplyLedgerDelta(ctx, customer.ID, models.CustomerLedgerDelta{Purchase: amount, Balance: amount})
		if err != nil {
			return nil, err
		}

	case req.IsUdhar && req.WalkInCustomerID != "":
		walkIn, err := s.walkIns.FindByID(ctx, req.WalkInCustomerID)
		if err != nil {
			return nil, err
		}
		sale.CustomerName = walkIn.Name

		if err := s.sales.Insert(ctx, sale); err != nil {
			return nil, err
		}
		if err := s.walkIns.ApplyDelta(ctx, walkIn.ID, amount, 0); err != nil {
			return nil, err
		}

	default:
		// Cash-and-carry: the sale record is the only trace.
		if err := s.sales.Insert(ctx, sale); err != nil {
			return nil, err
		}
	}

	if err := s.products.DecrementStock(ctx, req.Product, req.Quantity); err != nil {
		s.logger.Warn("stock decrement failed", zap.String("product", req.Product), zap.Error(err))
	}

	s.logger.Info("sale recorded",
		zap.String("sale_id", sale.ID),
		zap.String("product", sale.Product),
		zap.Float64("amount", sale.Amount),
		zap.Bool("is_udhar", sale.IsUdhar))

	return &sale, nil
}

// Delete reverts a sale's ledger effect and removes the record.
func (s *Service) Delete(ctx context.Context, id string) error {
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return err
	}

	switch {
	case sale.CustomerID != "":
		err = s.customers.ApplyLedgerDelta(ctx, sale.CustomerID, models.CustomerLedgerDelta{Purchase: -sale.Amount, Balance: -sale.Amount})
		if err != nil {
			return err
		}
	case sale.IsUdhar && sale.WalkInCustomerID != "":
		if err := s.walkIns.ApplyDelta(ctx, sale.WalkInCustomerID, -sale.Amount, 0); err != nil {
			return err
		}
	}

	if err := s.sales.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("sale deleted", zap.String("sale_id", id))
	return nil
}

// List returns sales matching the filter.
func (s *Service) List(ctx context.Context, filter mongodb.SaleFilter) ([]models.Sale, error) {
	return s.sales.List(ctx, filter)
}

// RecordUdharPayment settles part of a walk-in customer's credit.
func (s *Service) RecordUdharPayment(ctx context.Context, req models.CreateUdharPaymentRequest) (*models.UdharPayment, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", models.ErrValidation)
	}

	walkIn, err := s.walkIns.FindByID(ctx, req.WalkInCustomerID)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date == "" {
		date = s.now().UTC().Format(models.DateLayout)
	}

	payment := models.UdharPayment{
		ID:               uuid.NewString(),
		WalkInCustomerID: walkIn.ID,
		CustomerName:     walkIn.Name,
		Amount:           req.Amount,
		Notes:            req.Notes,
		Date:             date,
		CreatedAt:        s.now().UTC(),
	}

	if err := s.udhar.Insert(ctx, payment); err != nil {
		return nil, err
	}

	if err := s.walkIns.ApplyDelta(ctx, walkIn.ID, -req.Amount, req.Amount); err != nil {
		return nil, err
	}

	s.logger.Info("udhar payment recorded",
		zap.String("payment_id", payment.ID),
		zap.String("walk_in_customer_id", walkIn.ID),
		zap.Float64("amount", payment.Amount))

	return &payment, nil
}

// ListUdharPayments returns settlements, optionally for one walk-in customer.
func (s *Service) ListUdharPayments(ctx context.Context, walkInCustomerID string) ([]models.UdharPayment, error) {
	return s.udhar.List(ctx, walkInCustomerID)
}

// CreateCustomer registers a retail customer.
func (s *Service) CreateCustomer(ctx context.Context, req models.CreateCustomerRequest) (*models.Customer, error) {
	customer := models.Customer{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Phone:     req.Phone,
		Address:   req.Address,
		CreatedAt: s.now().UTC(),
	}
	if err := s.customers.Insert(ctx, customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetCustomer looks a customer up by id.
func (s *Service) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	return s.customers.FindByID(ctx, id)
}

// ListCustomers returns all registered customers.
func (s *Service) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.customers.List(ctx)
}

// CreateWalkInCustomer registers an udhar customer.
func (s *Service) CreateWalkInCustomer(ctx context.Context, req models.CreateWalkInCustomerRequest) (*models.WalkInCustomer, error) {
	walkIn := models.WalkInCustomer{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Phone:     req.Phone,
		CreatedAt: s.now().UTC(),
	}
	if err := s.walkIns.Insert(ctx, walkIn); err != nil {
		return nil, err
	}
	return &walkIn, nil
}

// GetWalkInCustomer looks a walk-in customer up by id.
func (s *Service) GetWalkInCustomer(ctx context.Context, id string) (*models.WalkInCustomer, error) {
	return s.walkIns.FindByID(ctx, id)
}

// ListWalkInCustomers returns all walk-in customers.
func (s *Service) ListWalkInCustomers(ctx context.Context) ([]models.WalkInCustomer, error) {
	return s.walkIns.List(ctx)
}

// CreateProduct registers a shop product.
func (s *Service) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	product := models.Product{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Unit:      req.Unit,
		Rate:      req.Rate,
		Stock:     req.Stock,
		CreatedAt: s.now().UTC(),
	}
	if err := s.products.Insert(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts returns all products.
func (s *Service) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products.List(ctx)
}
