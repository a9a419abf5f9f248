// Package dispatch orchestrates bulk deliveries to processing plants against
// the plant receivable ledger, including slip reconciliation.
package dispatch

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

// Service records dispatches and reconciles them against plant slips.
type Service struct {
	plants     mongodb.PlantRepository
	dispatches mongodb.DispatchRepository
	logger     *zap.Logger
	now        func() time.Time
}

// NewService wires a dispatch service instance.
func NewService(plants mongodb.PlantRepository, dispatches mongodb.DispatchRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		plants:     plants,
		dispatches: dispatches,
		logger:     logger,
		now:        time.Now,
	}
}

// CreatePlant registers a processing plant with a zeroed ledger.
func (s *Service) CreatePlant(ctx context.Context, req models.CreatePlantRequest) (*models.DairyPlant, error) {
	plant := models.DairyPlant{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.plants.Insert(ctx, plant); err != nil {
		return nil, err
	}
	s.logger.Info("dairy plant registered", zap.String("plant_id", plant.ID), zap.String("name", plant.Name))
	return &plant, nil
}

// GetPlant looks a plant up by id.
func (s *Service) GetPlant(ctx context.Context, id string) (*models.DairyPlant, error) {
	return s.plants.FindByID(ctx, id)
}

// ListPlants returns all plants.
func (s *Service) ListPlants(ctx context.Context) ([]models.DairyPlant, error) {
	return s.plants.List(ctx)
}

// Create records a dispatch. Net receivable is gross minus the sum of
// deduction lines, all rounded to paise; the plant ledger is credited with
// the net.
func (s *Service) Create(ctx context.Context, req models.CreateDispatchRequest) (*models.Dispatch, error) {
	if req.QuantityKg <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", models.ErrValidation)
	}
	if req.RatePerKg <= 0 {
		return nil, fmt.Errorf("%w: rate must be positive", models.ErrValidation)
	}

	plant, err := s.plants.FindByID(ctx, req.DairyPlantID)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date == "" {
		date = s.now().UTC().Format(models.DateLayout)
	}

	gross := rates.ComputeAmount(req.QuantityKg, req.RatePerKg)
	var totalDeduction float64
	for _, d := range req.Deductions {
		totalDeduction += d.Amount
	}
	totalDeduction = rates.Round2(totalDeduction)
	net := rates.Round2(gross - totalDeduction)

	dispatch := models.Dispatch{
		ID:             uuid.NewString(),
		DairyPlantID:   plant.ID,
		DairyPlantName: plant.Name,
		Date:           date,
		QuantityKg:     req.QuantityKg,
		AvgFat:         req.AvgFat,
		AvgSNF:         req.AvgSNF,
		RatePerKg:      req.RatePerKg,
		GrossAmount:    gross,
		Deductions:     req.Deductions,
		TotalDeduction: totalDeduction,
		NetReceivable:  net,
		TankerNumber:   req.TankerNumber,
		Notes:          req.Notes,
		CreatedAt:      s.now().UTC(),
	}

	if err := s.dispatches.Insert(ctx, dispatch); err != nil {
		return nil, err
	}

	err = s.plants.ApplyLedgerDelta(ctx, plant.ID, models.PlantLedgerDelta{
		MilkKg:  dispatch.QuantityKg,
		Amount:  dispatch.NetReceivable,
		Balance: dispatch.NetReceivable,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("dispatch recorded",
		zap.String("dispatch_id", dispatch.ID),
		zap.String("plant_id", plant.ID),
		zap.Float64("quantity_kg", dispatch.QuantityKg),
		zap.Float64("net_receivable", dispatch.NetReceivable))

	return &dispatch, nil
}

// Delete reverts a dispatch using the stored quantity and net receivable,
// never recomputed values.
func (s *Service) Delete(ctx context.Context, id string) error {
	dispatch, err := s.dispatches.FindByID(ctx, id)
	if err != nil {
		return err
	}

	delta := models.PlantLedgerDelta{
		MilkKg:  -dispatch.QuantityKg,
		Amount:  -dispatch.NetReceivable,
		Balance: -dispatch.NetReceivable,
	}
	// A matched dispatch has already shifted the ledger from net receivable
	// to the slip amount; revert what was actually applied.
	if dispatch.SlipMatched {
		correction := rates.Round2(dispatch.NetReceivable - dispatch.SlipAmount)
		delta.Amount += correction
		delta.Balance += correction
	}

	if err := s.plants.ApplyLedgerDelta(ctx, dispatch.DairyPlantID, delta); err != nil {
		return err
	}

	if err := s.dispatches.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("dispatch deleted", zap.String("dispatch_id", id), zap.String("plant_id", dispatch.DairyPlantID))
	return nil
}

// MatchSlip reconciles the dispatch against the plant's paperwork. If an
// earlier match already corrected the plant ledger, that correction is undone
// before the new one is applied, so calling this any number of times with the
// same slip leaves the balance where a single call would.
func (s *Service) MatchSlip(ctx context.Context, id string, req models.SlipMatchRequest) (*models.Dispatch, error) {
	dispatch, err := s.dispatches.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newCorrection := rates.Round2(dispatch.NetReceivable - req.SlipAmount)

	// Undo-then-reapply collapsed into one increment.
	adjust := -newCorrection
	if dispatch.SlipMatched {
		adjust += rates.Round2(dispatch.NetReceivable - dispatch.SlipAmount)
	}

	if adjust != 0 {
		err = s.plants.ApplyLedgerDelta(ctx, dispatch.DairyPlantID, models.PlantLedgerDelta{
			Amount:  adjust,
			Balance: adjust,
		})
		if err != nil {
			return nil, err
		}
	}

	dispatch.SlipFat = req.SlipFat
	dispatch.SlipSNF = req.SlipSNF
	dispatch.SlipAmount = req.SlipAmount
	dispatch.SlipDeductions = req.SlipDeductions
	dispatch.FatDifference = rates.Round2(dispatch.AvgFat - req.SlipFat)
	dispatch.AmountDifference = newCorrection
	dispatch.SlipMatched = true

	if err := s.dispatches.Replace(ctx, *dispatch); err != nil {
		return nil, err
	}

	s.logger.Info("slip matched",
		zap.String("dispatch_id", id),
		zap.Float64("slip_amount", req.SlipAmount),
		zap.Float64("amount_difference", dispatch.AmountDifference))

	return dispatch, nil
}

// List returns dispatches matching the filter.
func (s *Service) List(ctx context.Context, filter mongodb.DispatchFilter) ([]models.Dispatch, error) {
	return s.dispatches.List(ctx, filter)
}
