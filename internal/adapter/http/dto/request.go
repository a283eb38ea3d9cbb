package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dukaanhq/dukaan/internal/domain"
	"github.com/dukaanhq/dukaan/internal/usecase"
)

// CreateLedgerRequest represents a request to create a ledger.
type CreateLedgerRequest struct {
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateLedgerRequest) ToUseCaseInput() usecase.CreateLedgerInput {
	return usecase.CreateLedgerInput{
		Name:          r.Name,
		ContactNumber: r.ContactNumber,
		Email:         r.Email,
		Address:       r.Address,
	}
}

// UpdateLedgerRequest represents a request to update a ledger. Absent fields
// are left unchanged.
type UpdateLedgerRequest struct {
	Name          *string `json:"name"`
	ContactNumber *string `json:"contact_number"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateLedgerRequest) ToUseCaseInput(id string) usecase.UpdateLedgerInput {
	return usecase.UpdateLedgerInput{
		ID:            id,
		Name:          r.Name,
		ContactNumber: r.ContactNumber,
		Email:         r.Email,
		Address:       r.Address,
	}
}

// AddTransactionRequest represents a request to record a ledger transaction.
type AddTransactionRequest struct {
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	ReferenceNumber string          `json:"reference_number"`
	TransactionDate *time.Time      `json:"transaction_date"`
}

// ToUseCaseInput converts to use case input.
func (r *AddTransactionRequest) ToUseCaseInput(ledgerID, actor string) usecase.AddTransactionInput {
	return usecase.AddTransactionInput{
		LedgerID:        ledgerID,
		Type:            domain.TransactionType(r.Type),
		Amount:          r.Amount,
		Description:     r.Description,
		ReferenceNumber: r.ReferenceNumber,
		TransactionDate: r.TransactionDate,
		CreatedBy:       actor,
	}
}

// UpdateTransactionRequest represents a request to edit a ledger transaction.
type UpdateTransactionRequest struct {
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     *string         `json:"description"`
	ReferenceNumber *string         `json:"reference_number"`
	TransactionDate *time.Time      `json:"transaction_date"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateTransactionRequest) ToUseCaseInput(ledgerID, transactionID, actor string) usecase.UpdateTransactionInput {
	return usecase.UpdateTransactionInput{
		LedgerID:        ledgerID,
		TransactionID:   transactionID,
		Type:            domain.TransactionType(r.Type),
		Amount:          r.Amount,
		Description:     r.Description,
		ReferenceNumber: r.ReferenceNumber,
		TransactionDate: r.TransactionDate,
		Actor:           actor,
	}
}

// CreateProductRequest represents a request to create a product.
type CreateProductRequest struct {
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Category          string          `json:"category"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	StockQty          int64           `json:"stock_qty"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	ExpiryDate        *time.Time      `json:"expiry_date"`
	SupplierID        string          `json:"supplier_id"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateProductRequest) ToUseCaseInput() usecase.CreateProductInput {
	return usecase.CreateProductInput{
		Name:              r.Name,
		SKU:               r.SKU,
		Category:          r.Category,
		PurchasePrice:     r.PurchasePrice,
		SalePrice:         r.SalePrice,
		StockQty:          r.StockQty,
		LowStockThreshold: r.LowStockThreshold,
		ExpiryDate:        r.ExpiryDate,
		SupplierID:        r.SupplierID,
	}
}

// UpdateProductRequest represents a request to update a product's catalog
// fields. Stock is not updatable here.
type UpdateProductRequest struct {
	Name              *string          `json:"name"`
	Category          *string          `json:"category"`
	PurchasePrice     *decimal.Decimal `json:"purchase_price"`
	SalePrice         *decimal.Decimal `json:"sale_price"`
	LowStockThreshold *int64           `json:"low_stock_threshold"`
	ExpiryDate        *time.Time       `json:"expiry_date"`
	SupplierID        *string          `json:"supplier_id"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateProductRequest) ToUseCaseInput(id string) usecase.UpdateProductInput {
	return usecase.UpdateProductInput{
		ID:                id,
		Name:              r.Name,
		Category:          r.Category,
		PurchasePrice:     r.PurchasePrice,
		SalePrice:         r.SalePrice,
		LowStockThreshold: r.LowStockThreshold,
		ExpiryDate:        r.ExpiryDate,
		SupplierID:        r.SupplierID,
	}
}

// CreateCustomerRequest represents a request to create a customer.
type CreateCustomerRequest struct {
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCustomerRequest) ToUseCaseInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		Name:          r.Name,
		ContactNumber: r.ContactNumber,
		Email:         r.Email,
		Address:       r.Address,
	}
}

// UpdateCustomerRequest represents a request to update a customer.
type UpdateCustomerRequest struct {
	Name          *string `json:"name"`
	ContactNumber *string `json:"contact_number"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateCustomerRequest) ToUseCaseInput(id string) usecase.UpdateCustomerInput {
	return usecase.UpdateCustomerInput{
		ID:            id,
		Name:          r.Name,
		ContactNumber: r.ContactNumber,
		Email:         r.Email,
		Address:       r.Address,
	}
}

// CreateSupplierRequest represents a request to create a supplier.
type CreateSupplierRequest struct {
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateSupplierRequest) ToUseCaseInput() usecase.CreateSupplierInput {
	return usecase.CreateSupplierInput{
		Name:          r.Name,
		ContactNumber: r.ContactNumber,
		Email:         r.Email,
		Address:       r.Address,
	}
}

// UpdateSupplierRequest represents a request to update a supplier.
type UpdateSupplierRequest struct {
	Name          *string `json:"name"`
	ContactNumber *string `json:"contact_number"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateSupplierRequest) ToUseCaseInput(id string) usecase.UpdateSupplierInput {
	return usecase.UpdateSupplierInput{
		ID:            id,
		Name:          r.Name,
		ContactNumber: r.ContactNumber,
		Email:         r.Email,
		Address:       r.Address,
	}
}

// OrderItemRequest is a single product line in an order request.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// PlaceOrderRequest represents a request to place an order. CustomerID may
// be empty for walk-in sales.
type PlaceOrderRequest struct {
	CustomerID string             `json:"customer_id"`
	Items      []OrderItemRequest `json:"items"`
}

// ToUseCaseInput converts to use case input.
func (r *PlaceOrderRequest) ToUseCaseInput(actor string) usecase.PlaceOrderInput {
	items := make([]usecase.OrderItemInput, len(r.Items))
	for i, item := range r.Items {
		items[i] = usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	return usecase.PlaceOrderInput{
		CustomerID: r.CustomerID,
		Items:      items,
		CreatedBy:  actor,
	}
}

// PurchaseItemRequest is a single product line in a purchase request.
type PurchaseItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// RecordPurchaseRequest represents a request to record stock received from
// a supplier.
type RecordPurchaseRequest struct {
	SupplierID string                `json:"supplier_id"`
	Reference  string                `json:"reference"`
	Items      []PurchaseItemRequest `json:"items"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordPurchaseRequest) ToUseCaseInput(actor string) usecase.RecordPurchaseInput {
	items := make([]usecase.PurchaseItemInput, len(r.Items))
	for i, item := range r.Items {
		items[i] = usecase.PurchaseItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		}
	}

	return usecase.RecordPurchaseInput{
		SupplierID: r.SupplierID,
		Reference:  r.Reference,
		Items:      items,
		CreatedBy:  actor,
	}
}

// CreateUserRequest represents a request to create a user.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateUserRequest) ToUseCaseInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
		Role:     domain.Role(r.Role),
	}
}

// UpdateUserRequest represents a request to update a user.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Active   *bool   `json:"active"`
	Password *string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateUserRequest) ToUseCaseInput(id string) usecase.UpdateUserInput {
	input := usecase.UpdateUserInput{
		ID:       id,
		Name:     r.Name,
		Active:   r.Active,
		Password: r.Password,
	}
	if r.Role != nil {
		role := domain.Role(*r.Role)
		input.Role = &role
	}

	return input
}

// LoginRequest represents a login attempt.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
