package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaanhq/dukaan/internal/domain"
	"github.com/dukaanhq/dukaan/internal/usecase"
	"github.com/dukaanhq/dukaan/internal/usecase/mocks"
)

type orderFixture struct {
	uc          *usecase.OrderUseCase
	orderRepo   *mocks.MockOrderRepository
	productRepo *mocks.MockProductRepository
	events      *mocks.MockEventPublisher
	customer    *domain.Customer
	product     *domain.Product
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	f := &orderFixture{
		orderRepo:   mocks.NewMockOrderRepository(),
		productRepo: mocks.NewMockProductRepository(),
		events:      mocks.NewMockEventPublisher(),
	}

	customerRepo := mocks.NewMockCustomerRepository()
	f.customer = &domain.Customer{ID: "cust-1", Name: "Ali", ContactNumber: "+923001111111"}
	require.NoError(t, customerRepo.Create(context.Background(), f.customer))

	f.product = &domain.Product{
		ID:        "prod-1",
		Name:      "Sugar 1kg",
		SKU:       "SUG-1",
		SalePrice: decimal.RequireFromString("120"),
		StockQty:  10,
	}
	require.NoError(t, f.productRepo.Create(context.Background(), f.product))

	f.uc = usecase.NewOrderUseCase(
		mocks.NewMockTxManager(),
		f.orderRepo,
		f.productRepo,
		customerRepo,
		mocks.NewMockIDGenerator(),
		f.events,
		mocks.PassthroughRetrier{},
	)
	return f
}

func TestOrderUseCase_PlaceOrder(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.uc.PlaceOrder(ctx, usecase.PlaceOrderInput{
		CustomerID: "cust-1",
		Items: []usecase.OrderItemInput{
			{ProductID: "prod-1", Quantity: 3},
		},
		CreatedBy: "user-1",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("360")))
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.RequireFromString("120")))

	product, err := f.productRepo.GetByID(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), product.StockQty)

	require.Len(t, f.events.Events, 1)
	assert.Equal(t, domain.EventTypeOrderPlaced, f.events.Events[0].EventType)
}

func TestOrderUseCase_PlaceOrder_Validation(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   usecase.PlaceOrderInput
		wantErr error
	}{
		{
			name:    "no items",
			input:   usecase.PlaceOrderInput{CustomerID: "cust-1"},
			wantErr: domain.ErrEmptyItems,
		},
		{
			name: "zero quantity",
			input: usecase.PlaceOrderInput{
				CustomerID: "cust-1",
				Items:      []usecase.OrderItemInput{{ProductID: "prod-1", Quantity: 0}},
			},
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name: "insufficient stock",
			input: usecase.PlaceOrderInput{
				CustomerID: "cust-1",
				Items:      []usecase.OrderItemInput{{ProductID: "prod-1", Quantity: 11}},
			},
			wantErr: domain.ErrInsufficientStock,
		},
		{
			name: "unknown product",
			input: usecase.PlaceOrderInput{
				CustomerID: "cust-1",
				Items:      []usecase.OrderItemInput{{ProductID: "no-such-product", Quantity: 1}},
			},
			wantErr: domain.ErrProductNotFound,
		},
		{
			name: "unknown customer",
			input: usecase.PlaceOrderInput{
				CustomerID: "no-such-customer",
				Items:      []usecase.OrderItemInput{{ProductID: "prod-1", Quantity: 1}},
			},
			wantErr: domain.ErrCustomerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.PlaceOrder(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// stock untouched after failed orders
	product, err := f.productRepo.GetByID(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), product.StockQty)
}

func TestOrderUseCase_PlaceOrder_WalkInCustomer(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: "prod-1", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Empty(t, order.CustomerID)
}

func TestOrderUseCase_CancelOrder(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.uc.PlaceOrder(ctx, usecase.PlaceOrderInput{
		CustomerID: "cust-1",
		Items:      []usecase.OrderItemInput{{ProductID: "prod-1", Quantity: 4}},
	})
	require.NoError(t, err)

	cancelled, err := f.uc.CancelOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, cancelled.Status)

	product, err := f.productRepo.GetByID(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), product.StockQty, "stock restored on cancel")

	t.Run("cannot cancel twice", func(t *testing.T) {
		_, err := f.uc.CancelOrder(ctx, order.ID)
		assert.ErrorIs(t, err, domain.ErrOrderNotCancellable)
	})

	t.Run("missing order", func(t *testing.T) {
		_, err := f.uc.CancelOrder(ctx, "no-such-order")
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestOrderUseCase_CancelOrder_ConcurrentCancel(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.uc.PlaceOrder(ctx, usecase.PlaceOrderInput{
		CustomerID: "cust-1",
		Items:      []usecase.OrderItemInput{{ProductID: "prod-1", Quantity: 4}},
	})
	require.NoError(t, err)

	// Another cancel commits between this one's read and its status update:
	// the guarded update finds zero matching rows.
	f.orderRepo.UpdateStatusFunc = func(ctx context.Context, tx usecase.Transaction, id string, from, to domain.OrderStatus, updatedAt time.Time) error {
		return domain.ErrOrderNotCancellable
	}

	_, err = f.uc.CancelOrder(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrOrderNotCancellable)

	product, err := f.productRepo.GetByID(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, int64(6), product.StockQty, "losing cancel must not restore stock")

	require.Len(t, f.events.Events, 1, "no cancellation event for the losing cancel")
}

func TestPurchaseUseCase_RecordPurchase(t *testing.T) {
	productRepo := mocks.NewMockProductRepository()
	supplierRepo := mocks.NewMockSupplierRepository()
	purchaseRepo := mocks.NewMockPurchaseRepository()
	events := mocks.NewMockEventPublisher()
	ctx := context.Background()

	require.NoError(t, supplierRepo.Create(ctx, &domain.Supplier{
		ID: "sup-1", Name: "Wholesale Depot", ContactNumber: "+923002222222",
	}))
	require.NoError(t, productRepo.Create(ctx, &domain.Product{
		ID: "prod-1", Name: "Sugar 1kg", SKU: "SUG-1", StockQty: 2,
		SalePrice: decimal.RequireFromString("120"),
	}))

	uc := usecase.NewPurchaseUseCase(
		mocks.NewMockTxManager(),
		purchaseRepo,
		productRepo,
		supplierRepo,
		mocks.NewMockIDGenerator(),
		events,
		mocks.PassthroughRetrier{},
	)

	purchase, err := uc.RecordPurchase(ctx, usecase.RecordPurchaseInput{
		SupplierID: "sup-1",
		Reference:  "GRN-42",
		Items: []usecase.PurchaseItemInput{
			{ProductID: "prod-1", Quantity: 50, UnitCost: decimal.RequireFromString("95")},
		},
		CreatedBy: "user-1",
	})
	require.NoError(t, err)
	assert.True(t, purchase.TotalAmount.Equal(decimal.RequireFromString("4750")))

	product, err := productRepo.GetByID(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, int64(52), product.StockQty, "stock incremented on purchase")

	require.Len(t, events.Events, 1)
	assert.Equal(t, domain.EventTypePurchaseReceived, events.Events[0].EventType)

	t.Run("unknown supplier", func(t *testing.T) {
		_, err := uc.RecordPurchase(ctx, usecase.RecordPurchaseInput{
			SupplierID: "no-such-supplier",
			Items: []usecase.PurchaseItemInput{
				{ProductID: "prod-1", Quantity: 1, UnitCost: decimal.RequireFromString("95")},
			},
		})
		assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
	})

	t.Run("zero unit cost", func(t *testing.T) {
		_, err := uc.RecordPurchase(ctx, usecase.RecordPurchaseInput{
			SupplierID: "sup-1",
			Items: []usecase.PurchaseItemInput{
				{ProductID: "prod-1", Quantity: 1, UnitCost: decimal.Zero},
			},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestProductUseCase_ExpiryAlertsAndLowStock(t *testing.T) {
	productRepo := mocks.NewMockProductRepository()
	uc := usecase.NewProductUseCase(productRepo, mocks.NewMockIDGenerator())
	ctx := context.Background()

	soon := time.Now().UTC().AddDate(0, 0, 5)
	later := time.Now().UTC().AddDate(0, 0, 90)

	_, err := uc.CreateProduct(ctx, usecase.CreateProductInput{
		Name:          "Milk 1L",
		SKU:           "MLK-1",
		PurchasePrice: decimal.RequireFromString("150"),
		SalePrice:     decimal.RequireFromString("180"),
		StockQty:      3, LowStockThreshold: 5,
		ExpiryDate: &soon,
	})
	require.NoError(t, err)

	_, err = uc.CreateProduct(ctx, usecase.CreateProductInput{
		Name:          "Rice 5kg",
		SKU:           "RCE-5",
		PurchasePrice: decimal.RequireFromString("900"),
		SalePrice:     decimal.RequireFromString("1100"),
		StockQty:      40, LowStockThreshold: 10,
		ExpiryDate: &later,
	})
	require.NoError(t, err)

	expiring, err := uc.ExpiryAlerts(ctx, 30)
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, "Milk 1L", expiring[0].Name)

	low, err := uc.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Milk 1L", low[0].Name)

	t.Run("duplicate sku", func(t *testing.T) {
		_, err := uc.CreateProduct(ctx, usecase.CreateProductInput{
			Name:          "Milk copy",
			SKU:           "MLK-1",
			PurchasePrice: decimal.RequireFromString("1"),
			SalePrice:     decimal.RequireFromString("2"),
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		_, err := uc.CreateProduct(ctx, usecase.CreateProductInput{
			Name:          "Bad Stock",
			SKU:           "BAD-1",
			PurchasePrice: decimal.RequireFromString("1"),
			SalePrice:     decimal.RequireFromString("2"),
			StockQty:      -1,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})
}
