package usecase

import (
	"context"
	"time"

	"github.com/dukaanhq/dukaan/internal/domain"
)

// CustomerUseCase handles customer bookkeeping.
type CustomerUseCase struct {
	customerRepo CustomerRepository
	idGen        IDGenerator
}

// NewCustomerUseCase creates a new CustomerUseCase.
func NewCustomerUseCase(customerRepo CustomerRepository, idGen IDGenerator) *CustomerUseCase {
	return &CustomerUseCase{
		customerRepo: customerRepo,
		idGen:        idGen,
	}
}

// CreateCustomerInput represents input for creating a customer.
type CreateCustomerInput struct {
	Name          string
	ContactNumber string
	Email         string
	Address       string
}

// CreateCustomer registers a new customer.
func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
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

	customer := &domain.Customer{
		ID:            uc.idGen.Generate(),
		Name:          input.Name,
		ContactNumber: input.ContactNumber,
		Email:         input.Email,
		Address:       input.Address,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID.
func (uc *CustomerUseCase) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return uc.customerRepo.GetByID(ctx, id)
}

// ListCustomersInput represents input for listing customers.
type ListCustomersInput struct {
	Search string
	Page   int
	Limit  int
}

// ListCustomers lists customers filtered by name or contact number.
func (uc *CustomerUseCase) ListCustomers(ctx context.Context, input ListCustomersInput) ([]*domain.Customer, int64, error) {
	_, limit, offset := domain.NormalizePagination(input.Page, input.Limit)

	customers, err := uc.customerRepo.List(ctx, input.Search, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.customerRepo.Count(ctx, input.Search)
	if err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

// UpdateCustomerInput represents input for updating a customer.
type UpdateCustomerInput struct {
	ID            string
	Name          *string
	ContactNumber *string
	Email         *string
	Address       *string
}

// UpdateCustomer updates a customer's contact fields.
func (uc *CustomerUseCase) UpdateCustomer(ctx context.Context, input UpdateCustomerInput) (*domain.Customer, error) {
	customer, err := uc.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateName(*input.Name); err != nil {
			return nil, err
		}
		customer.Name = *input.Name
	}

	if input.ContactNumber != nil {
		if err := domain.ValidateContactNumber(*input.ContactNumber); err != nil {
			return nil, err
		}
		customer.ContactNumber = *input.ContactNumber
	}

	if input.Email != nil {
		if *input.Email != "" {
			if err := domain.ValidateEmail(*input.Email); err != nil {
				return nil, err
			}
		}
		customer.Email = *input.Email
	}

	if input.Address != nil {
		customer.Address = *input.Address
	}

	customer.UpdatedAt = time.Now().UTC()

	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer removes a customer.
func (uc *CustomerUseCase) DeleteCustomer(ctx context.Context, id string) error {
	if _, err := uc.customerRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.customerRepo.Delete(ctx, id)
}
