package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dukaanhq/dukaan/internal/domain"
)

// SupplierRepository implements usecase.SupplierRepository.
type SupplierRepository struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository creates a new SupplierRepository.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepository {
	return &SupplierRepository{pool: pool}
}

// Create inserts a new supplier.
func (r *SupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, contact_number, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		supplier.ID,
		supplier.Name,
		supplier.ContactNumber,
		supplier.Email,
		supplier.Address,
		supplier.CreatedAt,
		supplier.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return domain.ErrDuplicateContactNumber
	}

	return err
}

// GetByID retrieves a supplier by ID.
func (r *SupplierRepository) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	query := `
		SELECT id, name, contact_number, email, address, created_at, updated_at
		FROM suppliers
		WHERE id = $1
	`

	var supplier domain.Supplier
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&supplier.ID,
		&supplier.Name,
		&supplier.ContactNumber,
		&supplier.Email,
		&supplier.Address,
		&supplier.CreatedAt,
		&supplier.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSupplierNotFound
	}

	if err != nil {
		return nil, err
	}

	return &supplier, nil
}

// List retrieves a page of suppliers filtered by name or contact number.
func (r *SupplierRepository) List(ctx context.Context, search string, limit, offset int) ([]*domain.Supplier, error) {
	query := `
		SELECT id, name, contact_number, email, address, created_at, updated_at
		FROM suppliers
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR contact_number ILIKE '%' || $1 || '%'
		ORDER BY name ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*domain.Supplier

	for rows.Next() {
		var supplier domain.Supplier

		if err := rows.Scan(
			&supplier.ID,
			&supplier.Name,
			&supplier.ContactNumber,
			&supplier.Email,
			&supplier.Address,
			&supplier.CreatedAt,
			&supplier.UpdatedAt,
		); err != nil {
			return nil, err
		}

		suppliers = append(suppliers, &supplier)
	}

	return suppliers, rows.Err()
}

// Count returns the number of suppliers matching the search filter.
func (r *SupplierRepository) Count(ctx context.Context, search string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM suppliers
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR contact_number ILIKE '%' || $1 || '%'
	`

	var count int64
	err := r.pool.QueryRow(ctx, query, search).Scan(&count)

	return count, err
}

// Update updates a supplier's contact fields.
func (r *SupplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, contact_number = $3, email = $4, address = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		supplier.ID,
		supplier.Name,
		supplier.ContactNumber,
		supplier.Email,
		supplier.Address,
		supplier.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return domain.ErrDuplicateContactNumber
	}

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrSupplierNotFound
	}

	return nil
}

// Delete removes a supplier.
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrSupplierNotFound
	}

	return nil
}
