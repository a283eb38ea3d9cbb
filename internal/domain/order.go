package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a customer order.
type OrderStatus string

const (
	// OrderStatusCompleted means stock has been deducted and the sale stands.
	OrderStatusCompleted OrderStatus = "completed"

	// OrderStatusCancelled means the order was voided and stock restored.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order represents a customer sale.
type Order struct {
	ID          string
	CustomerID  string
	Status      OrderStatus
	TotalAmount decimal.Decimal
	CreatedBy   string
	Items       []*OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem is one product line on an order.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// CanCancel reports whether the order may still be cancelled.
func (o *Order) CanCancel() bool {
	return o.Status == OrderStatusCompleted
}
