package payments

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/memory"
)

type notifierSpy struct {
	mu       sync.Mutex
	balances []float64
}

func (n *notifierSpy) CollectionRecorded(models.Farmer, models.MilkCollection) {}

func (n *notifierSpy) PaymentRecorded(_ models.Farmer, _ models.Payment, newBalance float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.balances = append(n.balances, newBalance)
}

func newTestService(t *testing.T) (*Service, *memory.Store, *notifierSpy) {
	t.Helper()
	store := memory.NewStore()
	spy := &notifierSpy{}
	svc := NewService(store.Farmers(), store.Payments(), store.Plants(), store.DairyPayments(), spy, nil)
	return svc, store, spy
}

func seedFarmer(t *testing.T, store *memory.Store) models.Farmer {
	t.Helper()
	farmer := models.Farmer{
		ID:       "farmer-1",
		Name:     "Ramesh",
		IsActive: true,
		// 1000 due, nothing paid yet.
		TotalDue: 1000,
		Balance:  1000,
	}
	require.NoError(t, store.Farmers().Insert(context.Background(), farmer))
	return farmer
}

func TestCreatePaymentSettlesDues(t *testing.T) {
	svc, store, spy := newTestService(t)
	ctx := context.Background()
	farmer := seedFarmer(t, store)

	payment, err := svc.Create(ctx, models.CreatePaymentRequest{
		FarmerID:    farmer.ID,
		Amount:      400,
		PaymentMode: models.PaymentModeCash,
	})
	require.NoError(t, err)
	// Empty type defaults to "payment".
	assert.Equal(t, models.PaymentTypePayment, payment.PaymentType)

	f, err := store.Farmers().FindByID(ctx, farmer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, f.TotalDue)
	assert.Equal(t, 400.0, f.TotalPaid)
	assert.Equal(t, 600.0, f.Balance)

	// The SMS carries the post-update balance.
	require.Len(t, spy.balances, 1)
	assert.Equal(t, 600.0, spy.balances[0])
}

func TestCreateAdvanceRaisesBalance(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	farmer := seedFarmer(t, store)

	_, err := svc.Create(ctx, models.CreatePaymentRequest{
		FarmerID:    farmer.ID,
		Amount:      300,
		PaymentMode: models.PaymentModeUPI,
		PaymentType: models.PaymentTypeAdvance,
	})
	require.NoError(t, err)

	f, err := store.Farmers().FindByID(ctx, farmer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, f.TotalDue)
	assert.Equal(t, 300.0, f.TotalPaid)
	assert.Equal(t, 1300.0, f.Balance)
}

func TestCreateDeductionReducesDues(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	farmer := seedFarmer(t, store)

	_, err := svc.Create(ctx, models.CreatePaymentRequest{
		FarmerID:    farmer.ID,
		Amount:      150,
		PaymentMode: models.PaymentModeCash,
		PaymentType: models.PaymentTypeDeduction,
	})
	require.NoError(t, err)

	f, err := store.Farmers().FindByID(ctx, farmer.ID)
	require.NoError(t, err)
	assert.Equal(t, 850.0, f.TotalDue)
	assert.Equal(t, 0.0, f.TotalPaid)
	assert.Equal(t, 850.0, f.Balance)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	farmer := seedFarmer(t, store)

	_, err := svc.Create(ctx, models.CreatePaymentRequest{FarmerID: farmer.ID, Amount: 0, PaymentMode: models.PaymentModeCash})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Create(ctx, models.CreatePaymentRequest{FarmerID: farmer.ID, Amount: 100, PaymentMode: models.PaymentModeCash, PaymentType: "refund"})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Create(ctx, models.CreatePaymentRequest{FarmerID: "missing", Amount: 100, PaymentMode: models.PaymentModeCash})
	assert.ErrorIs(t, err, models.ErrFarmerNotFound)
}

func TestDeleteRevertsByStoredType(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	farmer := seedFarmer(t, store)

	// One of each type, then delete them all; the ledger must return to its
	// starting point exactly.
	var ids []string
	for _, req := range []models.CreatePaymentRequest{
		{FarmerID: farmer.ID, Amount: 400, PaymentMode: models.PaymentModeCash},
		{FarmerID: farmer.ID, Amount: 300, PaymentMode: models.PaymentModeUPI, PaymentType: models.PaymentTypeAdvance},
		{FarmerID: farmer.ID, Amount: 150, PaymentMode: models.PaymentModeCash, PaymentType: models.PaymentTypeDeduction},
	} {
		payment, err := svc.Create(ctx, req)
		require.NoError(t, err)
		ids = append(ids, payment.ID)
	}

	for _, id := range ids {
		require.NoError(t, svc.Delete(ctx, id))
	}

	f, err := store.Farmers().FindByID(ctx, farmer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, f.TotalDue)
	assert.Equal(t, 0.0, f.TotalPaid)
	assert.Equal(t, 1000.0, f.Balance)

	err = svc.Delete(ctx, ids[0])
	assert.ErrorIs(t, err, models.ErrPaymentNotFound)
}

func TestDairyPaymentLifecycle(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	plant := models.DairyPlant{ID: "plant-1", Name: "Amul Chilling Center", TotalAmount: 50850, Balance: 50850}
	require.NoError(t, store.Plants().Insert(ctx, plant))

	payment, err := svc.CreateDairyPayment(ctx, models.CreateDairyPaymentRequest{
		DairyPlantID: plant.ID,
		Amount:       20000,
		PaymentMode:  models.PaymentModeBank,
	})
	require.NoError(t, err)

	p, err := store.Plants().FindByID(ctx, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, 20000.0, p.TotalPaid)
	assert.Equal(t, 30850.0, p.Balance)

	require.NoError(t, svc.DeleteDairyPayment(ctx, payment.ID))

	p, err = store.Plants().FindByID(ctx, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.TotalPaid)
	assert.Equal(t, 50850.0, p.Balance)
}
