package usecase

import (
	"context"
	"time"

	"github.com/dukaanhq/dukaan/internal/domain"
)

// SupplierUseCase handles supplier bookkeeping.
type SupplierUseCase struct {
	supplierRepo SupplierRepository
	idGen        IDGenerator
}

// NewSupplierUseCase creates a new SupplierUseCase.
func NewSupplierUseCase(supplierRepo SupplierRepository, idGen IDGenerator) *SupplierUseCase {
	return &SupplierUseCase{
		supplierRepo: supplierRepo,
		idGen:        idGen,
	}
}

// CreateSupplierInput represents input for creating a supplier.
type CreateSupplierInput struct {
	Name          string
	ContactNumber string
	Email         string
	Address       string
}

// CreateSupplier registers a new supplier.
func (uc *SupplierUseCase) CreateSupplier(ctx context.Context, input CreateSupplierInput) (*domain.Supplier, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	if err := domain.ValidateContactNumber(input.ContactNumber); err != nil {
		return nil, err
	}

	if input.Email != "" {
		if err := domain.ValidateEmail(input.Email); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()

	supplier := &domain.Supplier{
		ID:            uc.idGen.Generate(),
		Name:          input.Name,
		ContactNumber: input.ContactNumber,
		Email:         input.Email,
		Address:       input.Address,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// GetSupplier retrieves a supplier by ID.
func (uc *SupplierUseCase) GetSupplier(ctx context.Context, id string) (*domain.Supplier, error) {
	return uc.supplierRepo.GetByID(ctx, id)
}

// ListSuppliersInput represents input for listing suppliers.
type ListSuppliersInput struct {
	Search string
	Page   int
	Limit  int
}

// ListSuppliers lists suppliers filtered by name or contact number.
func (uc *SupplierUseCase) ListSuppliers(ctx context.Context, input ListSuppliersInput) ([]*domain.Supplier, int64, error) {
	_, limit, offset := domain.NormalizePagination(input.Page, input.Limit)

	suppliers, err := uc.supplierRepo.List(ctx, input.Search, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.supplierRepo.Count(ctx, input.Search)
	if err != nil {
		return nil, 0, err
	}

	return suppliers, total, nil
}

// UpdateSupplierInput represents input for updating a supplier.
type UpdateSupplierInput struct {
	ID            string
	Name          *string
	ContactNumber *string
	Email         *string
	Address       *string
}

// UpdateSupplier updates a supplier's contact fields.
func (uc *SupplierUseCase) UpdateSupplier(ctx context.Context, input UpdateSupplierInput) (*domain.Supplier, error) {
	supplier, err := uc.supplierRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateName(*input.Name); err != nil {
			return nil, err
		}
		supplier.Name = *input.Name
	}

	if input.ContactNumber != nil {
		if err := domain.ValidateContactNumber(*input.ContactNumber); err != nil {
			return nil, err
		}
		supplier.ContactNumber = *input.ContactNumber
	}

	if input.Email != nil {
		if *input.Email != "" {
			if err := domain.ValidateEmail(*input.Email); err != nil {
				return nil, err
			}
		}
		supplier.Email = *input.Email
	}

	if input.Address != nil {
		supplier.Address = *input.Address
	}

	supplier.UpdatedAt = time.Now().UTC()

	if err := uc.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// DeleteSupplier removes a supplier.
func (uc *SupplierUseCase) DeleteSupplier(ctx context.Context, id string) error {
	if _, err := uc.supplierRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.supplierRepo.Delete(ctx, id)
}
