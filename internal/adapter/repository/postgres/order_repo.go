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

// OrderRepository implements usecase.OrderRepository.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create inserts an order and its items inside a database transaction.
func (r *OrderRepository) Create(ctx context.Context, tx usecase.Transaction, order *domain.Order) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO orders (id, customer_id, status, total_amount, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := pgxTx.Exec(ctx, query,
		order.ID,
		nullableText(order.CustomerID),
		order.Status,
		decimalToNumeric(order.TotalAmount),
		order.CreatedBy,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return err
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, item := range order.Items {
		if _, err := pgxTx.Exec(ctx, itemQuery,
			item.ID,
			item.OrderID,
			item.ProductID,
			item.Quantity,
			decimalToNumeric(item.UnitPrice),
			decimalToNumeric(item.LineTotal),
		); err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves an order with its items.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
		SELECT id, customer_id, status, total_amount, created_by, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var (
		order      domain.Order
		customerID pgtype.Text
		total      pgtype.Numeric
	)

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&customerID,
		&order.Status,
		&total,
		&order.CreatedBy,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}

	if err != nil {
		return nil, err
	}

	order.CustomerID = customerID.String
	order.TotalAmount = numericToDecimal(total)

	items, err := r.itemsByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

// List retrieves a page of orders, newest first, without items.
func (r *OrderRepository) List(ctx context.Context, limit, offset int) ([]*domain.Order, error) {
	query := `
		SELECT id, customer_id, status, total_amount, created_by, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*domain.Order

	for rows.Next() {
		var (
			order      domain.Order
			customerID pgtype.Text
			total      pgtype.Numeric
		)

		if err := rows.Scan(
			&order.ID,
			&customerID,
			&order.Status,
			&total,
			&order.CreatedBy,
			&order.CreatedAt,
			&order.UpdatedAt,
		); err != nil {
			return nil, err
		}

		order.CustomerID = customerID.String
		order.TotalAmount = numericToDecimal(total)

		orders = append(orders, &order)
	}

	return orders, rows.Err()
}

// Count returns the number of orders.
func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)

	return count, err
}

// UpdateStatus transitions an order's status inside a database transaction.
// The expected current status is part of the predicate, so two transitions
// racing on the same order cannot both apply; the loser affects zero rows.
func (r *OrderRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, from, to domain.OrderStatus, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `UPDATE orders SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2`

	tag, err := pgxTx.Exec(ctx, query, id, from, to, updatedAt)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotCancellable
	}

	return nil
}

func (r *OrderRepository) itemsByOrder(ctx context.Context, orderID string) ([]*domain.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price, line_total
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.OrderItem

	for rows.Next() {
		var (
			item      domain.OrderItem
			unitPrice pgtype.Numeric
			lineTotal pgtype.Numeric
		)

		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&unitPrice,
			&lineTotal,
		); err != nil {
			return nil, err
		}

		item.UnitPrice = numericToDecimal(unitPrice)
		item.LineTotal = numericToDecimal(lineTotal)

		items = append(items, &item)
	}

	return items, rows.Err()
}
