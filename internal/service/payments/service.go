// Package payments orchestrates farmer payouts and plant receipts against
// their ledgers.
package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/mongodb"
	"github.com/nirbani/dairy/internal/service/notify"
)

// Service records and reverts payments.
type Service struct {
	farmers       mongodb.FarmerRepository
	payments      mongodb.PaymentRepository
	plants        mongodb.PlantRepository
	dairyPayments mongodb.DairyPaymentRepository
	notifier      notify.Notifier
	logger        *zap.Logger
	now           func() time.Time
}

// NewService wires a payment service instance.
func NewService(farmers mongodb.FarmerRepository, payments mongodb.PaymentRepository, plants mongodb.PlantRepository, dairyPayments mongodb.DairyPaymentRepository, notifier notify.Notifier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Service{
		farmers:       farmers,
		payments:      payments,
		plants:        plants,
		dairyPayments: dairyPayments,
		notifier:      notifier,
		logger:        logger,
		now:           time.Now,
	}
}

// ledgerDelta is the per-type arithmetic shared by create and delete. A
// normal payment settles dues, an advance is cash ahead of milk (balance
// moves the other way), a deduction reduces recorded dues without cash.
func ledgerDelta(paymentType models.PaymentType, amount float64) models.FarmerLedgerDelta {
	switch paymentType {
	case models.PaymentTypeAdvance:
		return models.FarmerLedgerDelta{Paid: amount, Balance: amount}
	case models.PaymentTypeDeduction:
		return models.FarmerLedgerDelta{Due: -amount, Balance: -amount}
	default:
		return models.FarmerLedgerDelta{Paid: amount, Balance: -amount}
	}
}

// Create records a farmer payment and applies its ledger effect.
func (s *Service) Create(ctx context.Context, req models.CreatePaymentRequest) (*models.Payment, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", models.ErrValidation)
	}
	paymentType := req.PaymentType
	if paymentType == "" {
		paymentType = models.PaymentTypePayment
	}
	if !paymentType.Valid() {
		return nil, fmt.Errorf("%w: unknown payment type %q", models.ErrValidation, paymentType)
	}

	farmer, err := s.farmers.FindByID(ctx, req.FarmerID)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date == "" {
		date = s.now().UTC().Format(models.DateLayout)
	}

	payment := models.Payment{
		ID:          uuid.NewString(),
		FarmerID:    farmer.ID,
		FarmerName:  farmer.Name,
		Amount:      req.Amount,
		PaymentMode: req.PaymentMode,
		PaymentType: paymentType,
		Notes:       req.Notes,
		Date:        date,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.payments.Insert(ctx, payment); err != nil {
		return nil, err
	}

	if err := s.farmers.ApplyLedgerDelta(ctx, farmer.ID, ledgerDelta(paymentType, req.Amount)); err != nil {
		return nil, err
	}

	s.logger.Info("payment recorded",
		zap.String("payment_id", payment.ID),
		zap.String("farmer_id", farmer.ID),
		zap.String("payment_type", string(paymentType)),
		zap.Float64("amount", payment.Amount))

	// The SMS carries the true post-update balance, so advances and
	// deductions report correctly too.
	if updated, err := s.farmers.FindByID(ctx, farmer.ID); err == nil {
		s.notifier.PaymentRecorded(*updated, payment, updated.Balance)
	} else {
		s.logger.Warn("post-payment balance lookup failed", zap.String("farmer_id", farmer.ID), zap.Error(err))
	}

	return &payment, nil
}

// Delete reverts a payment. The inverse branches on the stored paymentType,
// mirroring Create, so reverting an advance or deduction restores the exact
// totals it changed.
func (s *Service) Delete(ctx context.Context, id string) error {
	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return err
	}

	paymentType := payment.PaymentType
	if paymentType == "" {
		paymentType = models.PaymentTypePayment
	}

	inverse := ledgerDelta(paymentType, payment.Amount)
	inverse.Milk, inverse.Due, inverse.Paid, inverse.Balance = -inverse.Milk, -inverse.Due, -inverse.Paid, -inverse.Balance

	if err := s.farmers.ApplyLedgerDelta(ctx, payment.FarmerID, inverse); err != nil {
		return err
	}

	if err := s.payments.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("payment deleted", zap.String("payment_id", id), zap.String("farmer_id", payment.FarmerID))
	return nil
}

// List returns payments matching the filter.
func (s *Service) List(ctx context.Context, filter mongodb.PaymentFilter) ([]models.Payment, error) {
	return s.payments.List(ctx, filter)
}

// CreateDairyPayment records money received from a plant. Single semantic:
// total_paid up, balance down.
func (s *Service) CreateDairyPayment(ctx context.Context, req models.CreateDairyPaymentRequest) (*models.DairyPayment, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", models.ErrValidation)
	}

	plant, err := s.plants.FindByID(ctx, req.DairyPlantID)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date == "" {
		date = s.now().UTC().Format(models.DateLayout)
	}

	payment := models.DairyPayment{
		ID:             uuid.NewString(),
		DairyPlantID:   plant.ID,
		DairyPlantName: plant.Name,
		Amount:         req.Amount,
		PaymentMode:    req.PaymentMode,
		Notes:          req.Notes,
		Date:           date,
		CreatedAt:      s.now().UTC(),
	}

	if err := s.dairyPayments.Insert(ctx, payment); err != nil {
		return nil, err
	}

	err = s.plants.ApplyLedgerDelta(ctx, plant.ID, models.PlantLedgerDelta{Paid: req.Amount, Balance: -req.Amount})
	if err != nil {
		return nil, err
	}

	s.logger.Info("dairy payment recorded", zap.String("payment_id", payment.ID), zap.String("plant_id", plant.ID), zap.Float64("amount", payment.Amount))
	return &payment, nil
}

// DeleteDairyPayment reverts a plant payment.
func (s *Service) DeleteDairyPayment(ctx context.Context, id string) error {
	payment, err := s.dairyPayments.FindByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.plants.ApplyLedgerDelta(ctx, payment.DairyPlantID, models.PlantLedgerDelta{Paid: -payment.Amount, Balance: payment.Amount})
	if err != nil {
		return err
	}

	return s.dairyPayments.Delete(ctx, id)
}

// ListDairyPayments returns plant payments, optionally for one plant.
func (s *Service) ListDairyPayments(ctx context.Context, plantID string) ([]models.DairyPayment, error) {
	return s.dairyPayments.List(ctx, plantID)
}
