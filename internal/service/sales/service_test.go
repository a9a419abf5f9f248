package sales

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/memory"
	"github.com/nirbani/dairy/internal/repository/mongodb"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	svc := NewService(store.Customers(), store.WalkInCustomers(), store.Sales(), store.UdharPayments(), store.Products(), nil)
	return svc, store
}

func TestCreateCashSaleTouchesNoLedger(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sale, err := svc.Create(ctx, models.CreateSaleRequest{
		Product:  "milk",
		Quantity: 2,
		Rate:     60,
		Date:     "2026-08-29",
	})
	require.NoError(t, err)
	assert.Equal(t, 120.0, sale.Amount)
	assert.Empty(t, sale.CustomerID)
	assert.False(t, sale.IsUdhar)
}

func TestDirectAmountOverridesQuantityTimesRate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sale, err := svc.Create(ctx, models.CreateSaleRequest{
		Product:      "paneer",
		Quantity:     0.5,
		Rate:         400,
		DirectAmount: 190,
		Date:         "2026-08-29",
	})
	require.NoError(t, err)
	assert.Equal(t, 190.0, sale.Amount)
	// The supplied quantity and rate survive on the receipt.
	assert.Equal(t, 0.5, sale.Quantity)
	assert.Equal(t, 400.0, sale.Rate)
}

func TestCustomerSaleCreditsLedger(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	customer, err := svc.CreateCustomer(ctx, models.CreateCustomerRequest{Name: "Sharma General Store"})
	require.NoError(t, err)

	sale, err := svc.Create(ctx, models.CreateSaleRequest{
		CustomerID: customer.ID,
		Product:    "milk",
		Quantity:   10,
		Rate:       55,
		Date:       "2026-08-29",
	})
	require.NoError(t, err)
	assert.Equal(t, customer.Name, sale.CustomerName)

	c, err := store.Customers().FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 550.0, c.TotalPurchase)
	assert.Equal(t, 550.0, c.Balance)

	require.NoError(t, svc.Delete(ctx, sale.ID))

	c, err = store.Customers().FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.TotalPurchase)
	assert.Equal(t, 0.0, c.Balance)
}

func TestUdharSaleRaisesPendingAmount(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	walkIn, err := svc.CreateWalkInCustomer(ctx, models.CreateWalkInCustomerRequest{Name: "Gopal"})
	require.NoError(t, err)

	sale, err := svc.Create(ctx, models.CreateSaleRequest{
		WalkInCustomerID: walkIn.ID,
		IsUdhar:          true,
		Product:          "milk",
		Quantity:         3,
		Rate:             60,
		Date:             "2026-08-29",
	})
	require.NoError(t, err)
	assert.Equal(t, 180.0, sale.Amount)

	w, err := store.WalkInCustomers().FindByID(ctx, walkIn.ID)
	require.NoError(t, err)
	assert.Equal(t, 180.0, w.PendingAmount)

	// Partial settlement.
	_, err = svc.RecordUdharPayment(ctx, models.CreateUdharPaymentRequest{
		WalkInCustomerID: walkIn.ID,
		Amount:           100,
	})
	require.NoError(t, err)

	w, err = store.WalkInCustomers().FindByID(ctx, walkIn.ID)
	require.NoError(t, err)
	assert.Equal(t, 80.0, w.PendingAmount)
	assert.Equal(t, 100.0, w.TotalPaid)

	// Deleting the udhar sale reverts only the pending amount.
	require.NoError(t, svc.Delete(ctx, sale.ID))

	w, err = store.WalkInCustomers().FindByID(ctx, walkIn.ID)
	require.NoError(t, err)
	assert.Equal(t, -100.0, w.PendingAmount)
	assert.Equal(t, 100.0, w.TotalPaid)
}

func TestCreateSaleValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateSaleRequest{
		CustomerID:       "c1",
		WalkInCustomerID: "w1",
		Product:          "milk",
		Quantity:         1,
		Rate:             60,
	})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Create(ctx, models.CreateSaleRequest{Product: "milk"})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Create(ctx, models.CreateSaleRequest{CustomerID: "missing", Product: "milk", Quantity: 1, Rate: 60})
	assert.ErrorIs(t, err, models.ErrCustomerNotFound)

	_, err = svc.RecordUdharPayment(ctx, models.CreateUdharPaymentRequest{WalkInCustomerID: "missing", Amount: 50})
	assert.ErrorIs(t, err, models.ErrWalkInCustomerNotFound)
}

func TestSaleDecrementsProductStock(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, models.CreateProductRequest{Name: "milk", Unit: "liter", Rate: 60, Stock: 20})
	require.NoError(t, err)

	_, err = svc.Create(ctx, models.CreateSaleRequest{Product: "milk", Quantity: 3, Rate: 60, Date: "2026-08-29"})
	require.NoError(t, err)

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 17.0, products[0].Stock)

	// Unknown products are not an error; stock is best-effort.
	_, err = svc.Create(ctx, models.CreateSaleRequest{Product: "ghee", Quantity: 1, Rate: 500, Date: "2026-08-29"})
	assert.NoError(t, err)
}

func TestGetWalkInCustomer(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	walkIn, err := svc.CreateWalkInCustomer(ctx, models.CreateWalkInCustomerRequest{Name: "Gopal", Phone: "9000000003"})
	require.NoError(t, err)

	got, err := svc.GetWalkInCustomer(ctx, walkIn.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gopal", got.Name)

	_, err = svc.GetWalkInCustomer(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrWalkInCustomerNotFound)
}

func TestListUdharOnly(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	walkIn, err := svc.CreateWalkInCustomer(ctx, models.CreateWalkInCustomerRequest{Name: "Gopal"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, models.CreateSaleRequest{Product: "milk", Quantity: 1, Rate: 60, Date: "2026-08-29"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.CreateSaleRequest{WalkInCustomerID: walkIn.ID, IsUdhar: true, Product: "milk", Quantity: 2, Rate: 60, Date: "2026-08-29"})
	require.NoError(t, err)

	udharSales, err := svc.List(ctx, mongodb.SaleFilter{UdharOnly: true})
	require.NoError(t, err)
	require.Len(t, udharSales, 1)
	assert.True(t, udharSales[0].IsUdhar)
}
