package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dukaanhq/dukaan/internal/domain"
	"github.com/dukaanhq/dukaan/internal/usecase"
)

// PurchaseRepository implements usecase.PurchaseRepository.
type PurchaseRepository struct {
	pool *pgxpool.Pool
}

// NewPurchaseRepository creates a new PurchaseRepository.
func NewPurchaseRepository(pool *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{pool: pool}
}

// Create inserts a purchase and its items inside a database transaction.
func (r *PurchaseRepository) Create(ctx context.Context, tx usecase.Transaction, purchase *domain.Purchase) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO purchases (id, supplier_id, total_amount, reference, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := pgxTx.Exec(ctx, query,
		purchase.ID,
		purchase.SupplierID,
		decimalToNumeric(purchase.TotalAmount),
		purchase.Reference,
		purchase.CreatedBy,
		purchase.CreatedAt,
	)
	if err != nil {
		return err
	}

	itemQuery := `
		INSERT INTO purchase_items (id, purchase_id, product_id, quantity, unit_cost, line_total)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, item := range purchase.Items {
		if _, err := pgxTx.Exec(ctx, itemQuery,
			item.ID,
			item.PurchaseID,
			item.ProductID,
			item.Quantity,
			decimalToNumeric(item.UnitCost),
			decimalToNumeric(item.LineTotal),
		); err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves a purchase with its items.
func (r *PurchaseRepository) GetByID(ctx context.Context, id string) (*domain.Purchase, error) {
	query := `
		SELECT id, supplier_id, total_amount, reference, created_by, created_at
		FROM purchases
		WHERE id = $1
	`

	var (
		purchase domain.Purchase
		total    pgtype.Numeric
	)

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&purchase.ID,
		&purchase.SupplierID,
		&total,
		&purchase.Reference,
		&purchase.CreatedBy,
		&purchase.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPurchaseNotFound
	}

	if err != nil {
		return nil, err
	}

	purchase.TotalAmount = numericToDecimal(total)

	items, err := r.itemsByPurchase(ctx, purchase.ID)
	if err != nil {
		return nil, err
	}
	purchase.Items = items

	return &purchase, nil
}

// List retrieves a page of purchases, newest first, without items.
func (r *PurchaseRepository) List(ctx context.Context, limit, offset int) ([]*domain.Purchase, error) {
	query := `
		SELECT id, supplier_id, total_amount, reference, created_by, created_at
		FROM purchases
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []*domain.Purchase

	for rows.Next() {
		var (
			purchase domain.Purchase
			total    pgtype.Numeric
		)

		if err := rows.Scan(
			&purchase.ID,
			&purchase.SupplierID,
			&total,
			&purchase.Reference,
			&purchase.CreatedBy,
			&purchase.CreatedAt,
		); err != nil {
			return nil, err
		}

		purchase.TotalAmount = numericToDecimal(total)

		purchases = append(purchases, &purchase)
	}

	return purchases, rows.Err()
}

// Count returns the number of purchases.
func (r *PurchaseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM purchases`).Scan(&count)

	return count, err
}

func (r *PurchaseRepository) itemsByPurchase(ctx context.Context, purchaseID string) ([]*domain.PurchaseItem, error) {
	query := `
		SELECT id, purchase_id, product_id, quantity, unit_cost, line_total
		FROM purchase_items
		WHERE purchase_id = $1
		ORDER BY id ASC
	`

	rows, err := r.pool.Query(ctx, query, purchaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.PurchaseItem

	for rows.Next() {
		var (
			item      domain.PurchaseItem
			unitCost  pgtype.Numeric
			lineTotal pgtype.Numeric
		)

		if err := rows.Scan(
			&item.ID,
			&item.PurchaseID,
			&item.ProductID,
			&item.Quantity,
			&unitCost,
			&lineTotal,
		); err != nil {
			return nil, err
		}

		item.UnitCost = numericToDecimal(unitCost)
		item.LineTotal = numericToDecimal(lineTotal)

		items = append(items, &item)
	}

	return items, rows.Err()
}
