package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dukaanhq/dukaan/internal/domain"
)

// CustomerRepository implements usecase.CustomerRepository.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// Create inserts a new customer.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query := `
		INSERT INTO customers (id, name, contact_number, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.ContactNumber,
		customer.Email,
		customer.Address,
		customer.CreatedAt,
		customer.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return domain.ErrDuplicateContactNumber
	}

	return err
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `
		SELECT id, name, contact_number, email, address, created_at, updated_at
		FROM customers
		WHERE id = $1
	`

	var customer domain.Customer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.ContactNumber,
		&customer.Email,
		&customer.Address,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}

	if err != nil {
		return nil, err
	}

	return &customer, nil
}

// List retrieves a page of customers filtered by name or contact number.
func (r *CustomerRepository) List(ctx context.Context, search string, limit, offset int) ([]*domain.Customer, error) {
	query := `
		SELECT id, name, contact_number, email, address, created_at, updated_at
		FROM customers
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR contact_number ILIKE '%' || $1 || '%'
		ORDER BY name ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*domain.Customer

	for rows.Next() {
		var customer domain.Customer

		if err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.ContactNumber,
			&customer.Email,
			&customer.Address,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		); err != nil {
			return nil, err
		}

		customers = append(customers, &customer)
	}

	return customers, rows.Err()
}

// Count returns the number of customers matching the search filter.
func (r *CustomerRepository) Count(ctx context.Context, search string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM customers
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR contact_number ILIKE '%' || $1 || '%'
	`

	var count int64
	err := r.pool.QueryRow(ctx, query, search).Scan(&count)

	return count, err
}

// Update updates a customer's contact fields.
func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, contact_number = $3, email = $4, address = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.ContactNumber,
		customer.Email,
		customer.Address,
		customer.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return domain.ErrDuplicateContactNumber
	}

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}

	return nil
}

// Delete removes a customer.
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}

	return nil
}
