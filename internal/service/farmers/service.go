// Package farmers manages farmer registration and the farmer ledger view.
package farmers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/mongodb"
)

// Service exposes farmer CRUD plus the ledger view.
type Service struct {
	farmers     mongodb.FarmerRepository
	collections mongodb.CollectionRepository
	payments    mongodb.PaymentRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewService wires a farmer service instance.
func NewService(farmers mongodb.FarmerRepository, collections mongodb.CollectionRepository, payments mongodb.PaymentRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		farmers:     farmers,
		collections: collections,
		payments:    payments,
		logger:      logger,
		now:         time.Now,
	}
}

// Create registers a farmer with a zeroed ledger.
func (s *Service) Create(ctx context.Context, req models.CreateFarmerRequest) (*models.Farmer, error) {
	if req.MilkType != "" && req.MilkType != models.MilkTypeCow && req.MilkType != models.MilkTypeBuffalo && req.MilkType != models.MilkTypeMix {
		return nil, fmt.Errorf("%w: unknown milk type %q", models.ErrValidation, req.MilkType)
	}

	farmer := models.Farmer{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		Village:      req.Village,
		BankAccount:  req.BankAccount,
		IFSCCode:     req.IFSCCode,
		AadharNumber: req.AadharNumber,
		MilkType:     req.MilkType,
		FixedRate:    req.FixedRate,
		CowRate:      req.CowRate,
		BuffaloRate:  req.BuffaloRate,
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.farmers.Insert(ctx, farmer); err != nil {
		return nil, err
	}

	s.logger.Info("farmer registered", zap.String("farmer_id", farmer.ID), zap.String("name", farmer.Name))
	return &farmer, nil
}

// Get looks a farmer up by id.
func (s *Service) Get(ctx context.Context, id string) (*models.Farmer, error) {
	return s.farmers.FindByID(ctx, id)
}

// List returns farmers matching the filter, sorted by name.
func (s *Service) List(ctx context.Context, filter mongodb.FarmerFilter) ([]models.Farmer, error) {
	return s.farmers.List(ctx, filter)
}

// Update patches identity and pricing fields. Ledger totals are never
// writable through this path.
func (s *Service) Update(ctx context.Context, id string, req models.UpdateFarmerRequest) (*models.Farmer, error) {
	set := map[string]interface{}{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.Address != nil {
		set["address"] = *req.Address
	}
	if req.Village != nil {
		set["village"] = *req.Village
	}
	if req.BankAccount != nil {
		set["bank_account"] = *req.BankAccount
	}
	if req.IFSCCode != nil {
		set["ifsc_code"] = *req.IFSCCode
	}
	if req.AadharNumber != nil {
		set["aadhar_number"] = *req.AadharNumber
	}
	if req.MilkType != nil {
		set["milk_type"] = *req.MilkType
	}
	if req.FixedRate != nil {
		set["fixed_rate"] = *req.FixedRate
	}
	if req.CowRate != nil {
		set["cow_rate"] = *req.CowRate
	}
	if req.BuffaloRate != nil {
		set["buffalo_rate"] = *req.BuffaloRate
	}
	if req.IsActive != nil {
		set["is_active"] = *req.IsActive
	}

	if len(set) > 0 {
		if err := s.farmers.Update(ctx, id, set); err != nil {
			return nil, err
		}
	}

	return s.farmers.FindByID(ctx, id)
}

// Delete removes a farmer. It is refused while live collections or payments
// still reference them; deleting those first keeps every ledger reconcilable.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.farmers.FindByID(ctx, id); err != nil {
		return err
	}

	collections, err := s.collections.CountByFarmer(ctx, id)
	if err != nil {
		return err
	}
	payments, err := s.payments.CountByFarmer(ctx, id)
	if err != nil {
		return err
	}
	if collections > 0 || payments > 0 {
		return fmt.Errorf("%w: %d collections, %d payments", models.ErrFarmerHasRecords, collections, payments)
	}

	if err := s.farmers.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("farmer deleted", zap.String("farmer_id", id))
	return nil
}

// Ledger returns the farmer's transactions for a period together with the
// live running totals.
func (s *Service) Ledger(ctx context.Context, id, startDate, endDate string) (*models.FarmerLedger, error) {
	farmer, err := s.farmers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	collections, err := s.collections.List(ctx, mongodb.CollectionFilter{FarmerID: id, StartDate: startDate, EndDate: endDate})
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.List(ctx, mongodb.PaymentFilter{FarmerID: id, StartDate: startDate, EndDate: endDate})
	if err != nil {
		return nil, err
	}

	return &models.FarmerLedger{
		Farmer:      *farmer,
		Collections: collections,
		Payments:    payments,
	}, nil
}
