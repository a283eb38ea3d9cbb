package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dukaanhq/dukaan/internal/domain"
)

// OrderUseCase handles customer sales. Placing an order deducts stock;
// cancelling restores it. Both run in one database transaction with the
// affected product rows locked.
type OrderUseCase struct {
	txManager    TransactionManager
	orderRepo    OrderRepository
	productRepo  ProductRepository
	customerRepo CustomerRepository
	idGen        IDGenerator
	events       EventPublisher
	retrier      Retrier
}

// NewOrderUseCase creates a new OrderUseCase.
func NewOrderUseCase(
	txManager TransactionManager,
	orderRepo OrderRepository,
	productRepo ProductRepository,
	customerRepo CustomerRepository,
	idGen IDGenerator,
	events EventPublisher,
	retrier Retrier,
) *OrderUseCase {
	return &OrderUseCase{
		txManager:    txManager,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		idGen:        idGen,
		events:       events,
		retrier:      retrier,
	}
}

// OrderItemInput is one product line in a new order.
type OrderItemInput struct {
	ProductID string
	Quantity  int64
}

// PlaceOrderInput represents input for placing an order.
type PlaceOrderInput struct {
	CustomerID string
	Items      []OrderItemInput
	CreatedBy  string
}

// PlaceOrder records a sale at current sale prices and deducts stock for
// every line. Any line with insufficient stock fails the whole order.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyItems
	}

	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	if input.CustomerID != "" {
		if _, err := uc.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
			return nil, err
		}
	}

	var order *domain.Order

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		now := time.Now().UTC()
		orderID := uc.idGen.Generate()
		total := decimal.Zero
		items := make([]*domain.OrderItem, 0, len(input.Items))

		for _, line := range input.Items {
			product, err := uc.productRepo.GetByIDForUpdate(ctx, tx, line.ProductID)
			if err != nil {
				return err
			}

			if product.StockQty < line.Quantity {
				return domain.ErrInsufficientStock
			}

			lineTotal := product.SalePrice.Mul(decimal.NewFromInt(line.Quantity))
			total = total.Add(lineTotal)

			items = append(items, &domain.OrderItem{
				ID:        uc.idGen.Generate(),
				OrderID:   orderID,
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitPrice: product.SalePrice,
				LineTotal: lineTotal,
			})

			if err := uc.productRepo.AdjustStock(ctx, tx, product.ID, -line.Quantity, now); err != nil {
				return err
			}
		}

		o := &domain.Order{
			ID:          orderID,
			CustomerID:  input.CustomerID,
			Status:      domain.OrderStatusCompleted,
			TotalAmount: total,
			CreatedBy:   input.CreatedBy,
			Items:       items,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := uc.orderRepo.Create(ctx, tx, o); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		order = o

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publishOrderEvent(ctx, domain.EventTypeOrderPlaced, order)

	return order, nil
}

// GetOrder retrieves an order with its items.
func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return uc.orderRepo.GetByID(ctx, id)
}

// ListOrdersInput represents input for listing orders.
type ListOrdersInput struct {
	Page  int
	Limit int
}

// ListOrders lists orders, newest first.
func (uc *OrderUseCase) ListOrders(ctx context.Context, input ListOrdersInput) ([]*domain.Order, int64, error) {
	_, limit, offset := domain.NormalizePagination(input.Page, input.Limit)

	orders, err := uc.orderRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.orderRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// CancelOrder voids a completed order and restores stock for every line.
func (uc *OrderUseCase) CancelOrder(ctx context.Context, id string) (*domain.Order, error) {
	var cancelled *domain.Order

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		order, err := uc.orderRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if !order.CanCancel() {
			return domain.ErrOrderNotCancellable
		}

		now := time.Now().UTC()

		// The status flip goes first. Its predicate carries the status read
		// above, so a cancel racing against another one finds zero rows and
		// bails before any stock is restored.
		if err := uc.orderRepo.UpdateStatus(ctx, tx, order.ID, order.Status, domain.OrderStatusCancelled, now); err != nil {
			return err
		}

		for _, item := range order.Items {
			if _, err := uc.productRepo.GetByIDForUpdate(ctx, tx, item.ProductID); err != nil {
				return err
			}

			if err := uc.productRepo.AdjustStock(ctx, tx, item.ProductID, item.Quantity, now); err != nil {
				return err
			}
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		order.Status = domain.OrderStatusCancelled
		order.UpdatedAt = now
		cancelled = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publishOrderEvent(ctx, domain.EventTypeOrderCancelled, cancelled)

	return cancelled, nil
}

func (uc *OrderUseCase) publishOrderEvent(ctx context.Context, eventType string, order *domain.Order) {
	_ = uc.events.Publish(ctx, eventType, domain.OrderEvent{
		EventType:   eventType,
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		TotalAmount: order.TotalAmount.String(),
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	})
}
