package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/memory"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewService(store.Plants(), store.Dispatches(), nil), store
}

func seedPlant(t *testing.T, svc *Service) *models.DairyPlant {
	t.Helper()
	plant, err := svc.CreatePlant(context.Background(), models.CreatePlantRequest{
		Name:          "Amul Chilling Center",
		ContactPerson: "Suresh",
	})
	require.NoError(t, err)
	return plant
}

func TestCreateDispatchCreditsPlantLedger(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	plant := seedPlant(t, svc)

	// 1000kg at 52/kg, deductions 1000 + 150.
	d, err := svc.Create(ctx, models.CreateDispatchRequest{
		DairyPlantID: plant.ID,
		QuantityKg:   1000,
		AvgFat:       6.5,
		AvgSNF:       9.1,
		RatePerKg:    52,
		Deductions: []models.Deduction{
			{Type: "commission", Amount: 1000},
			{Type: "transport", Amount: 150},
		},
		Date: "2026-08-29",
	})
	require.NoError(t, err)

	assert.Equal(t, 52000.0, d.GrossAmount)
	assert.Equal(t, 1150.0, d.TotalDeduction)
	assert.Equal(t, 50850.0, d.NetReceivable)
	assert.False(t, d.SlipMatched)

	p, err := store.Plants().FindByID(ctx, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, p.TotalMilkSupplied)
	assert.Equal(t, 50850.0, p.TotalAmount)
	assert.Equal(t, 50850.0, p.Balance)
}

func TestCreateDispatchValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	plant := seedPlant(t, svc)

	_, err := svc.Create(ctx, models.CreateDispatchRequest{DairyPlantID: plant.ID, QuantityKg: 0, RatePerKg: 52})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Create(ctx, models.CreateDispatchRequest{DairyPlantID: plant.ID, QuantityKg: 100, RatePerKg: 0})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Create(ctx, models.CreateDispatchRequest{DairyPlantID: "missing", QuantityKg: 100, RatePerKg: 52})
	assert.ErrorIs(t, err, models.ErrPlantNotFound)
}

func TestMatchSlipShiftsLedgerToSlipAmount(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	plant := seedPlant(t, svc)

	d, err := svc.Create(ctx, models.CreateDispatchRequest{
		DairyPlantID: plant.ID,
		QuantityKg:   1000,
		AvgFat:       6.5,
		RatePerKg:    52,
		Deductions:   []models.Deduction{{Type: "commission", Amount: 1150}},
		Date:         "2026-08-29",
	})
	require.NoError(t, err)
	require.Equal(t, 50850.0, d.NetReceivable)

	// Plant's slip says 50500: the ledger drops by the 350 difference.
	matched, err := svc.MatchSlip(ctx, d.ID, models.SlipMatchRequest{
		SlipFat:    6.3,
		SlipAmount: 50500,
	})
	require.NoError(t, err)
	assert.True(t, matched.SlipMatched)
	assert.Equal(t, 350.0, matched.AmountDifference)
	assert.Equal(t, 0.2, matched.FatDifference)

	p, err := store.Plants().FindByID(ctx, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, 50500.0, p.TotalAmount)
	assert.Equal(t, 50500.0, p.Balance)
}

func TestMatchSlipIsIdempotent(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	plant := seedPlant(t, svc)

	d, err := svc.Create(ctx, models.CreateDispatchRequest{
		DairyPlantID: plant.ID,
		QuantityKg:   500,
		AvgFat:       6.0,
		RatePerKg:    50,
		Date:         "2026-08-29",
	})
	require.NoError(t, err)
	require.Equal(t, 25000.0, d.NetReceivable)

	req := models.SlipMatchRequest{SlipFat: 5.9, SlipAmount: 24800}
	for i := 0; i < 3; i++ {
		_, err := svc.MatchSlip(ctx, d.ID, req)
		require.NoError(t, err)
	}

	p, err := store.Plants().FindByID(ctx, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, 24800.0, p.TotalAmount)
	assert.Equal(t, 24800.0, p.Balance)

	// A corrected slip replaces the old correction, it does not stack.
	_, err = svc.MatchSlip(ctx, d.ID, models.SlipMatchRequest{SlipFat: 5.9, SlipAmount: 24900})
	require.NoError(t, err)

	p, err = store.Plants().FindByID(ctx, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, 24900.0, p.Balance)
}

func TestDeleteDispatchRevertsAppliedAmount(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	plant := seedPlant(t, svc)

	d, err := svc.Create(ctx, models.CreateDispatchRequest{
		DairyPlantID: plant.ID,
		QuantityKg:   500,
		AvgFat:       6.0,
		RatePerKg:    50,
		Date:         "2026-08-29",
	})
	require.NoError(t, err)

	_, err = svc.MatchSlip(ctx, d.ID, models.SlipMatchRequest{SlipAmount: 24800})
	require.NoError(t, err)

	// Deleting the matched dispatch reverts the slip amount, not the
	// original net receivable.
	require.NoError(t, svc.Delete(ctx, d.ID))

	p, err := store.Plants().FindByID(ctx, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.TotalMilkSupplied)
	assert.Equal(t, 0.0, p.TotalAmount)
	assert.Equal(t, 0.0, p.Balance)

	err = svc.Delete(ctx, d.ID)
	assert.ErrorIs(t, err, models.ErrDispatchNotFound)
}
