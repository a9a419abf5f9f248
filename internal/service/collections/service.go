// Package collections orchestrates milk intake records against the farmer
// ledger, and owns the quality tables that drive rate resolution.
package collections

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/mongodb"
	"github.com/nirbani/dairy/internal/service/notify"
	"github.com/nirbani/dairy/internal/service/rates"
)

// Service records, edits and reverts milk collections.
type Service struct {
	farmers     mongodb.FarmerRepository
	collections mongodb.CollectionRepository
	charts      mongodb.RateChartRepository
	notifier    notify.Notifier
	logger      *zap.Logger
	now         func() time.Time
}

// NewService wires a collection service instance.
func NewService(farmers mongodb.FarmerRepository, collections mongodb.CollectionRepository, charts mongodb.RateChartRepository, notifier notify.Notifier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Service{
		farmers:     farmers,
		collections: collections,
		charts:      charts,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// Create records one intake. The rate is resolved once here and frozen on the
// document; the farmer ledger is credited atomically.
func (s *Service) Create(ctx context.Context, req models.CreateCollectionRequest) (*models.MilkCollection, error) {
	if !req.Shift.Valid() {
		return nil, fmt.Errorf("%w: unknown shift %q", models.ErrValidation, req.Shift)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", models.ErrValidation)
	}
	if req.Fat <= 0 {
		return nil, fmt.Errorf("%w: fat must be positive", models.ErrValidation)
	}

	farmer, err := s.farmers.FindByID(ctx, req.FarmerID)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date == "" {
		date = s.now().UTC().Format(models.DateLayout)
	}

	// One collection per farmer, date and shift. The unique index catches the
	// race this lookup cannot.
	exists, err := s.collections.ExistsForSlot(ctx, req.FarmerID, date, req.Shift)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &models.DuplicateCollectionError{FarmerID: req.FarmerID, Date: date, Shift: req.Shift}
	}

	snf := req.SNF
	if snf <= 0 {
		snf = rates.DeriveSNF(req.Fat)
	}

	rate := rates.Resolve(rates.Quote{
		Fat:      req.Fat,
		SNF:      snf,
		MilkType: req.MilkType,
		Override: req.RateOverride,
	}, farmer, s.defaultChart(ctx))
	amount := rates.ComputeAmount(req.Quantity, rate)

	col := models.MilkCollection{
		ID:         uuid.NewString(),
		FarmerID:   farmer.ID,
		FarmerName: farmer.Name,
		Shift:      req.Shift,
		MilkType:   req.MilkType,
		Quantity:   req.Quantity,
		Fat:        req.Fat,
		SNF:        snf,
		Rate:       rate,
		Amount:     amount,
		Date:       date,
		CreatedAt:  s.now().UTC(),
	}

	if err := s.collections.Insert(ctx, col); err != nil {
		return nil, err
	}

	err = s.farmers.ApplyLedgerDelta(ctx, farmer.ID, models.FarmerLedgerDelta{
		Milk:    col.Quantity,
		Due:     col.Amount,
		Balance: col.Amount,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("collection recorded",
		zap.String("collection_id", col.ID),
		zap.String("farmer_id", farmer.ID),
		zap.String("date", col.Date),
		zap.String("shift", string(col.Shift)),
		zap.Float64("amount", col.Amount))

	s.notifier.CollectionRecorded(*farmer, col)

	return &col, nil
}

// Update edits quantity and/or rate; the amount is re-derived and the farmer
// ledger adjusted by the delta between old and new values, never by
// re-adding the full amount.
func (s *Service) Update(ctx context.Context, id string, req models.UpdateCollectionRequest) (*models.MilkCollection, error) {
	col, err := s.collections.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newQuantity := col.Quantity
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", models.ErrValidation)
		}
		newQuantity = *req.Quantity
	}
	newRate := col.Rate
	if req.Rate != nil {
		if *req.Rate <= 0 {
			return nil, fmt.Errorf("%w: rate must be positive", models.ErrValidation)
		}
		newRate = *req.Rate
	}

	newAmount := rates.ComputeAmount(newQuantity, newRate)
	quantityDelta := newQuantity - col.Quantity
	amountDelta := rates.Round2(newAmount - col.Amount)

	updated := *col
	updated.Quantity = newQuantity
	updated.Rate = newRate
	updated.Amount = newAmount

	if err := s.collections.Replace(ctx, updated); err != nil {
		return nil, err
	}

	err = s.farmers.ApplyLedgerDelta(ctx, col.FarmerID, models.FarmerLedgerDelta{
		Milk:    quantityDelta,
		Due:     amountDelta,
		Balance: amountDelta,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("collection updated",
		zap.String("collection_id", id),
		zap.Float64("quantity_delta", quantityDelta),
		zap.Float64("amount_delta", amountDelta))

	return &updated, nil
}

// Delete reverts the collection's ledger effect and removes the record.
func (s *Service) Delete(ctx context.Context, id string) error {
	col, err := s.collections.FindByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.farmers.ApplyLedgerDelta(ctx, col.FarmerID, models.FarmerLedgerDelta{
		Milk:    -col.Quantity,
		Due:     -col.Amount,
		Balance: -col.Amount,
	})
	if err != nil {
		return err
	}

	if err := s.collections.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("collection deleted", zap.String("collection_id", id), zap.String("farmer_id", col.FarmerID))
	return nil
}

// List returns collections matching the filter.
func (s *Service) List(ctx context.Context, filter mongodb.CollectionFilter) ([]models.MilkCollection, error) {
	return s.collections.List(ctx, filter)
}

// CalculateRate answers the "what would this reading pay" probe without
// recording anything.
func (s *Service) CalculateRate(ctx context.Context, fat, snf float64) (float64, float64, error) {
	if fat <= 0 {
		return 0, 0, fmt.Errorf("%w: fat must be positive", models.ErrValidation)
	}
	if snf <= 0 {
		snf = rates.DeriveSNF(fat)
	}
	rate := rates.Resolve(rates.Quote{Fat: fat, SNF: snf}, nil, s.defaultChart(ctx))
	return snf, rate, nil
}

// defaultChart loads the default quality table; absence is normal and means
// formula pricing.
func (s *Service) defaultChart(ctx context.Context) *models.RateChart {
	chart, err := s.charts.FindDefault(ctx)
	if err != nil {
		if !errors.Is(err, models.ErrRateChartNotFound) {
			s.logger.Warn("default rate chart lookup failed", zap.Error(err))
		}
		return nil
	}
	return chart
}
