package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase represents stock received from a supplier.
type Purchase struct {
	ID          string
	SupplierID  string
	TotalAmount decimal.Decimal
	Reference   string
	CreatedBy   string
	Items       []*PurchaseItem
	CreatedAt   time.Time
}

// PurchaseItem is one product line on a purchase.
type PurchaseItem struct {
	ID         string
	PurchaseID string
	ProductID  string
	Quantity   int64
	UnitCost   decimal.Decimal
	LineTotal  decimal.Decimal
}
