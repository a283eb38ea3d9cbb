package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dukaanhq/dukaan/internal/domain"
)

// SuccessResponse is the envelope for successful responses.
type SuccessResponse struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Message    string      `json:"message,omitempty"`
}

// ErrorResponse is the envelope for failed responses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// NewPagination computes the page count from the total row count.
func NewPagination(page, limit int, total int64) *Pagination {
	var pages int64
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}

	return &Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// LedgerResponse represents a ledger in API responses.
type LedgerResponse struct {
	ID                string               `json:"id"`
	Name              string               `json:"name"`
	ContactNumber     string               `json:"contact_number"`
	Email             string               `json:"email,omitempty"`
	Address           string               `json:"address,omitempty"`
	TotalBalance      decimal.Decimal      `json:"total_balance"`
	LatestTransaction *TransactionResponse `json:"latest_transaction,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// LedgerFromDomain converts a domain ledger to a response.
func LedgerFromDomain(l *domain.Ledger) *LedgerResponse {
	return &LedgerResponse{
		ID:            l.ID,
		Name:          l.Name,
		ContactNumber: l.ContactNumber,
		Email:         l.Email,
		Address:       l.Address,
		TotalBalance:  l.TotalBalance,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

// LedgersFromDomain converts ledger list rows, attaching each ledger's
// latest transaction when present.
func LedgersFromDomain(rows []*domain.LedgerWithLatest) []*LedgerResponse {
	result := make([]*LedgerResponse, len(rows))
	for i, row := range rows {
		resp := LedgerFromDomain(row.Ledger)
		if row.Latest != nil {
			resp.LatestTransaction = TransactionFromDomain(row.Latest)
		}
		result[i] = resp
	}
	return result
}

// TransactionResponse represents a ledger transaction in API responses.
type TransactionResponse struct {
	ID              string          `json:"id"`
	LedgerID        string          `json:"ledger_id"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	NewBalance      decimal.Decimal `json:"new_balance"`
	TransactionDate time.Time       `json:"transaction_date"`
	CreatedBy       string          `json:"created_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.LedgerTransaction) *TransactionResponse {
	return &TransactionResponse{
		ID:              t.ID,
		LedgerID:        t.LedgerID,
		Type:            string(t.Type),
		Amount:          t.Amount,
		Description:     t.Description,
		ReferenceNumber: t.ReferenceNumber,
		PreviousBalance: t.PreviousBalance,
		NewBalance:      t.NewBalance,
		TransactionDate: t.TransactionDate,
		CreatedBy:       t.CreatedBy,
		CreatedAt:       t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.LedgerTransaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// StatsResponse aggregates balances across all ledgers. Key casing is part
// of the API contract.
type StatsResponse struct {
	TotalLedgers int64           `json:"totalLedgers"`
	TotalDebit   decimal.Decimal `json:"totalDebit"`
	TotalCredit  decimal.Decimal `json:"totalCredit"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
}

// StatsFromDomain converts domain stats to a response.
func StatsFromDomain(s *domain.LedgerStats) *StatsResponse {
	return &StatsResponse{
		TotalLedgers: s.TotalLedgers,
		TotalDebit:   s.TotalDebit,
		TotalCredit:  s.TotalCredit,
		TotalBalance: s.TotalBalance,
	}
}

// AuditEntryResponse represents an audit trail entry in API responses.
type AuditEntryResponse struct {
	ID            string    `json:"id"`
	LedgerID      string    `json:"ledger_id"`
	TransactionID string    `json:"transaction_id"`
	Action        string    `json:"action"`
	Actor         string    `json:"actor,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// AuditEntriesFromDomain converts domain audit entries to responses.
func AuditEntriesFromDomain(entries []*domain.AuditEntry) []*AuditEntryResponse {
	result := make([]*AuditEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = &AuditEntryResponse{
			ID:            e.ID,
			LedgerID:      e.LedgerID,
			TransactionID: e.TransactionID,
			Action:        e.Action,
			Actor:         e.Actor,
			CreatedAt:     e.CreatedAt,
		}
	}
	return result
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Category          string          `json:"category,omitempty"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	StockQty          int64           `json:"stock_qty"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	ExpiryDate        *time.Time      `json:"expiry_date,omitempty"`
	SupplierID        string          `json:"supplier_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductFromDomain converts a domain product to a response.
func ProductFromDomain(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		SKU:               p.SKU,
		Category:          p.Category,
		PurchasePrice:     p.PurchasePrice,
		SalePrice:         p.SalePrice,
		StockQty:          p.StockQty,
		LowStockThreshold: p.LowStockThreshold,
		ExpiryDate:        p.ExpiryDate,
		SupplierID:        p.SupplierID,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// ProductsFromDomain converts domain products to responses.
func ProductsFromDomain(products []*domain.Product) []*ProductResponse {
	result := make([]*ProductResponse, len(products))
	for i, p := range products {
		result[i] = ProductFromDomain(p)
	}
	return result
}

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CustomerFromDomain converts a domain customer to a response.
func CustomerFromDomain(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		ContactNumber: c.ContactNumber,
		Email:         c.Email,
		Address:       c.Address,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// CustomersFromDomain converts domain customers to responses.
func CustomersFromDomain(customers []*domain.Customer) []*CustomerResponse {
	result := make([]*CustomerResponse, len(customers))
	for i, c := range customers {
		result[i] = CustomerFromDomain(c)
	}
	return result
}

// SupplierResponse represents a supplier in API responses.
type SupplierResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SupplierFromDomain converts a domain supplier to a response.
func SupplierFromDomain(s *domain.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactNumber: s.ContactNumber,
		Email:         s.Email,
		Address:       s.Address,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// SuppliersFromDomain converts domain suppliers to responses.
func SuppliersFromDomain(suppliers []*domain.Supplier) []*SupplierResponse {
	result := make([]*SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		result[i] = SupplierFromDomain(s)
	}
	return result
}

// OrderItemResponse represents one product line on an order.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID          string               `json:"id"`
	CustomerID  string               `json:"customer_id,omitempty"`
	Status      string               `json:"status"`
	TotalAmount decimal.Decimal      `json:"total_amount"`
	CreatedBy   string               `json:"created_by,omitempty"`
	Items       []*OrderItemResponse `json:"items,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// OrderFromDomain converts a domain order to a response.
func OrderFromDomain(o *domain.Order) *OrderResponse {
	items := make([]*OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = &OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		}
	}

	return &OrderResponse{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount,
		CreatedBy:   o.CreatedBy,
		Items:       items,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// OrdersFromDomain converts domain orders to responses.
func OrdersFromDomain(orders []*domain.Order) []*OrderResponse {
	result := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		result[i] = OrderFromDomain(o)
	}
	return result
}

// InvoiceResponse is the printable view of an order: the order with its
// lines plus the customer it was sold to, if any.
type InvoiceResponse struct {
	Order    *OrderResponse    `json:"order"`
	Customer *CustomerResponse `json:"customer,omitempty"`
}

// PurchaseItemResponse represents one product line on a purchase.
type PurchaseItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// PurchaseResponse represents a purchase in API responses.
type PurchaseResponse struct {
	ID          string                  `json:"id"`
	SupplierID  string                  `json:"supplier_id"`
	TotalAmount decimal.Decimal         `json:"total_amount"`
	Reference   string                  `json:"reference,omitempty"`
	CreatedBy   string                  `json:"created_by,omitempty"`
	Items       []*PurchaseItemResponse `json:"items,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
}

// PurchaseFromDomain converts a domain purchase to a response.
func PurchaseFromDomain(p *domain.Purchase) *PurchaseResponse {
	items := make([]*PurchaseItemResponse, len(p.Items))
	for i, item := range p.Items {
		items[i] = &PurchaseItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
			LineTotal: item.LineTotal,
		}
	}

	return &PurchaseResponse{
		ID:          p.ID,
		SupplierID:  p.SupplierID,
		TotalAmount: p.TotalAmount,
		Reference:   p.Reference,
		CreatedBy:   p.CreatedBy,
		Items:       items,
		CreatedAt:   p.CreatedAt,
	}
}

// PurchasesFromDomain converts domain purchases to responses.
func PurchasesFromDomain(purchases []*domain.Purchase) []*PurchaseResponse {
	result := make([]*PurchaseResponse, len(purchases))
	for i, p := range purchases {
		result[i] = PurchaseFromDomain(p)
	}
	return result
}

// UserResponse represents a user in API responses. The password hash is
// never serialized.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UsersFromDomain converts domain users to responses.
func UsersFromDomain(users []*domain.User) []*UserResponse {
	result := make([]*UserResponse, len(users))
	for i, u := range users {
		result[i] = UserFromDomain(u)
	}
	return result
}

// LoginResponse carries the authenticated user and a bearer token for
// non-browser clients. The session itself travels as a cookie.
type LoginResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}
