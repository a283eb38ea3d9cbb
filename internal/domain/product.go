package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item with stock and optional expiry tracking.
type Product struct {
	ID                string
	Name              string
	SKU               string
	Category          string
	PurchasePrice     decimal.Decimal
	SalePrice         decimal.Decimal
	StockQty          int64
	LowStockThreshold int64
	ExpiryDate        *time.Time
	SupplierID        string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLowStock reports whether stock is at or under the threshold.
func (p *Product) IsLowStock() bool {
	return p.StockQty <= p.LowStockThreshold
}

// ExpiresWithin reports whether the product expires within days of now.
// Products without an expiry date never expire.
func (p *Product) ExpiresWithin(days int, now time.Time) bool {
	if p.ExpiryDate == nil {
		return false
	}

	return !p.ExpiryDate.After(now.AddDate(0, 0, days))
}
