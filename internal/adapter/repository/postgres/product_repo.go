package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dukaanhq/dukaan/internal/domain"
	"github.com/dukaanhq/dukaan/internal/usecase"
)

// ProductRepository implements usecase.ProductRepository.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, name, sku, category, purchase_price, sale_price,
	stock_qty, low_stock_threshold, expiry_date, supplier_id, created_at, updated_at`

// Create inserts a new product.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.SKU,
		product.Category,
		decimalToNumeric(product.PurchasePrice),
		decimalToNumeric(product.SalePrice),
		product.StockQty,
		product.LowStockThreshold,
		product.ExpiryDate,
		nullableText(product.SupplierID),
		product.CreatedAt,
		product.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return domain.ErrDuplicateSKU
	}

	return err
}

// GetByID retrieves a product by ID.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	return scanProductRow(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate retrieves a product by ID with a FOR UPDATE lock.
func (r *ProductRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Product, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`

	return scanProductRow(pgxTx.QueryRow(ctx, query, id))
}

// List retrieves a page of products filtered by name, SKU or category.
func (r *ProductRepository) List(ctx context.Context, search string, limit, offset int) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR sku ILIKE '%' || $1 || '%' OR category ILIKE '%' || $1 || '%'
		ORDER BY name ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// Count returns the number of products matching the search filter.
func (r *ProductRepository) Count(ctx context.Context, search string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM products
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR sku ILIKE '%' || $1 || '%' OR category ILIKE '%' || $1 || '%'
	`

	var count int64
	err := r.pool.QueryRow(ctx, query, search).Scan(&count)

	return count, err
}

// Update updates a product's catalog fields.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $2, category = $3, purchase_price = $4, sale_price = $5,
		    low_stock_threshold = $6, expiry_date = $7, supplier_id = $8, updated_at = $9
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Category,
		decimalToNumeric(product.PurchasePrice),
		decimalToNumeric(product.SalePrice),
		product.LowStockThreshold,
		product.ExpiryDate,
		nullableText(product.SupplierID),
		product.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

// Delete removes a product.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

// AdjustStock moves stock by delta inside a database transaction. Caller
// must hold the row lock and have verified stock for negative deltas.
func (r *ProductRepository) AdjustStock(ctx context.Context, tx usecase.Transaction, id string, delta int64, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `UPDATE products SET stock_qty = stock_qty + $2, updated_at = $3 WHERE id = $1`

	tag, err := pgxTx.Exec(ctx, query, id, delta, updatedAt)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

// ExpiringBefore lists products whose expiry date falls on or before cutoff.
func (r *ProductRepository) ExpiringBefore(ctx context.Context, cutoff time.Time) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE expiry_date IS NOT NULL AND expiry_date <= $1
		ORDER BY expiry_date ASC
	`

	rows, err := r.pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// LowStock lists products at or under their low stock threshold.
func (r *ProductRepository) LowStock(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE stock_qty <= low_stock_threshold
		ORDER BY stock_qty ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProductRows(rows)
}

func nullableText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func scanProductRow(row pgx.Row) (*domain.Product, error) {
	var (
		p             domain.Product
		purchasePrice pgtype.Numeric
		salePrice     pgtype.Numeric
		expiry        pgtype.Timestamptz
		supplierID    pgtype.Text
	)

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.SKU,
		&p.Category,
		&purchasePrice,
		&salePrice,
		&p.StockQty,
		&p.LowStockThreshold,
		&expiry,
		&supplierID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}

	if err != nil {
		return nil, err
	}

	p.PurchasePrice = numericToDecimal(purchasePrice)
	p.SalePrice = numericToDecimal(salePrice)
	p.SupplierID = supplierID.String

	if expiry.Valid {
		t := expiry.Time
		p.ExpiryDate = &t
	}

	return &p, nil
}

func scanProductRows(rows pgx.Rows) ([]*domain.Product, error) {
	var products []*domain.Product

	for rows.Next() {
		var (
			p             domain.Product
			purchasePrice pgtype.Numeric
			salePrice     pgtype.Numeric
			expiry        pgtype.Timestamptz
			supplierID    pgtype.Text
		)

		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.SKU,
			&p.Category,
			&purchasePrice,
			&salePrice,
			&p.StockQty,
			&p.LowStockThreshold,
			&expiry,
			&supplierID,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}

		p.PurchasePrice = numericToDecimal(purchasePrice)
		p.SalePrice = numericToDecimal(salePrice)
		p.SupplierID = supplierID.String

		if expiry.Valid {
			t := expiry.Time
			p.ExpiryDate = &t
		}

		products = append(products, &p)
	}

	return products, rows.Err()
}
