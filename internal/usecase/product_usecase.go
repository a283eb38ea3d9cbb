package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dukaanhq/dukaan/internal/domain"
)

// ProductUseCase handles catalog business logic.
type ProductUseCase struct {
	productRepo ProductRepository
	idGen       IDGenerator
}

// NewProductUseCase creates a new ProductUseCase.
func NewProductUseCase(productRepo ProductRepository, idGen IDGenerator) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		idGen:       idGen,
	}
}

// CreateProductInput represents input for creating a product.
type CreateProductInput struct {
	Name              string
	SKU               string
	Category          string
	PurchasePrice     decimal.Decimal
	SalePrice         decimal.Decimal
	StockQty          int64
	LowStockThreshold int64
	ExpiryDate        *time.Time
	SupplierID        string
}

// CreateProduct adds a product to the catalog.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	if err := domain.ValidateAmount(input.SalePrice); err != nil {
		return nil, err
	}

	if err := domain.ValidateAmount(input.PurchasePrice); err != nil {
		return nil, err
	}

	if input.StockQty < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	now := time.Now().UTC()

	product := &domain.Product{
		ID:                uc.idGen.Generate(),
		Name:              input.Name,
		SKU:               input.SKU,
		Category:          input.Category,
		PurchasePrice:     input.PurchasePrice,
		SalePrice:         input.SalePrice,
		StockQty:          input.StockQty,
		LowStockThreshold: input.LowStockThreshold,
		ExpiryDate:        input.ExpiryDate,
		SupplierID:        input.SupplierID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID.
func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// ListProductsInput represents input for listing products.
type ListProductsInput struct {
	Search string
	Page   int
	Limit  int
}

// ListProducts lists products filtered by name, SKU or category.
func (uc *ProductUseCase) ListProducts(ctx context.Context, input ListProductsInput) ([]*domain.Product, int64, error) {
	_, limit, offset := domain.NormalizePagination(input.Page, input.Limit)

	products, err := uc.productRepo.List(ctx, input.Search, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.productRepo.Count(ctx, input.Search)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// UpdateProductInput represents input for updating a product.
type UpdateProductInput struct {
	ID                string
	Name              *string
	Category          *string
	PurchasePrice     *decimal.Decimal
	SalePrice         *decimal.Decimal
	LowStockThreshold *int64
	ExpiryDate        *time.Time
	SupplierID        *string
}

// UpdateProduct updates a product's catalog fields. Stock moves only through
// orders, purchases and explicit adjustments.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, input UpdateProductInput) (*domain.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateName(*input.Name); err != nil {
			return nil, err
		}
		product.Name = *input.Name
	}

	if input.Category != nil {
		product.Category = *input.Category
	}

	if input.PurchasePrice != nil {
		if err := domain.ValidateAmount(*input.PurchasePrice); err != nil {
			return nil, err
		}
		product.PurchasePrice = *input.PurchasePrice
	}

	if input.SalePrice != nil {
		if err := domain.ValidateAmount(*input.SalePrice); err != nil {
			return nil, err
		}
		product.SalePrice = *input.SalePrice
	}

	if input.LowStockThreshold != nil {
		product.LowStockThreshold = *input.LowStockThreshold
	}

	if input.ExpiryDate != nil {
		product.ExpiryDate = input.ExpiryDate
	}

	if input.SupplierID != nil {
		product.SupplierID = *input.SupplierID
	}

	product.UpdatedAt = time.Now().UTC()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product from the catalog.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uc.productRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.productRepo.Delete(ctx, id)
}

// ExpiryAlerts lists products expiring within the given number of days.
// Days defaults to 30 when zero or negative.
func (uc *ProductUseCase) ExpiryAlerts(ctx context.Context, days int) ([]*domain.Product, error) {
	if days <= 0 {
		days = 30
	}

	cutoff := time.Now().UTC().AddDate(0, 0, days)

	return uc.productRepo.ExpiringBefore(ctx, cutoff)
}

// LowStock lists products at or under their low stock threshold.
func (uc *ProductUseCase) LowStock(ctx context.Context) ([]*domain.Product, error) {
	return uc.productRepo.LowStock(ctx)
}
