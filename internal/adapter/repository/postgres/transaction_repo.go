package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/dukaanhq/dukaan/internal/domain"
	"github.com/dukaanhq/dukaan/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = `id, ledger_id, type, amount, description, reference_number,
	previous_balance, new_balance, transaction_date, created_by, created_at`

// Create inserts a transaction inside a database transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, t *domain.LedgerTransaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO ledger_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := pgxTx.Exec(ctx, query,
		t.ID,
		t.LedgerID,
		t.Type,
		decimalToNumeric(t.Amount),
		t.Description,
		t.ReferenceNumber,
		decimalToNumeric(t.PreviousBalance),
		decimalToNumeric(t.NewBalance),
		t.TransactionDate,
		t.CreatedBy,
		t.CreatedAt,
	)

	return err
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.LedgerTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM ledger_transactions WHERE id = $1`

	return scanTransactionRow(r.pool.QueryRow(ctx, query, id))
}

// ListByLedger retrieves a page of a ledger's transactions, newest first.
func (r *TransactionRepository) ListByLedger(ctx context.Context, ledgerID string, limit, offset int) ([]*domain.LedgerTransaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM ledger_transactions
		WHERE ledger_id = $1
		ORDER BY transaction_date DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, ledgerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactionRows(rows)
}

// CountByLedger returns the number of transactions in a ledger.
func (r *TransactionRepository) CountByLedger(ctx context.Context, ledgerID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM ledger_transactions WHERE ledger_id = $1`, ledgerID,
	).Scan(&count)

	return count, err
}

// ListAllByLedger retrieves every transaction for a ledger in replay order:
// transaction_date ascending, id ascending.
func (r *TransactionRepository) ListAllByLedger(ctx context.Context, tx usecase.Transaction, ledgerID string) ([]*domain.LedgerTransaction, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		SELECT ` + transactionColumns + `
		FROM ledger_transactions
		WHERE ledger_id = $1
		ORDER BY transaction_date ASC, id ASC
	`

	rows, err := pgxTx.Query(ctx, query, ledgerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactionRows(rows)
}

// UpdateFields overwrites a transaction's editable fields. Snapshots are
// rewritten separately by the replay.
func (r *TransactionRepository) UpdateFields(ctx context.Context, tx usecase.Transaction, t *domain.LedgerTransaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		UPDATE ledger_transactions
		SET type = $2, amount = $3, description = $4, reference_number = $5, transaction_date = $6
		WHERE id = $1
	`

	tag, err := pgxTx.Exec(ctx, query,
		t.ID,
		t.Type,
		decimalToNumeric(t.Amount),
		t.Description,
		t.ReferenceNumber,
		t.TransactionDate,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

// UpdateSnapshot rewrites a transaction's balance snapshot pair.
func (r *TransactionRepository) UpdateSnapshot(ctx context.Context, tx usecase.Transaction, id string, previous, current decimal.Decimal) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `UPDATE ledger_transactions SET previous_balance = $2, new_balance = $3 WHERE id = $1`

	tag, err := pgxTx.Exec(ctx, query, id, decimalToNumeric(previous), decimalToNumeric(current))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

// Delete removes a transaction inside a database transaction.
func (r *TransactionRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `DELETE FROM ledger_transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

func scanTransactionRow(row pgx.Row) (*domain.LedgerTransaction, error) {
	var (
		t        domain.LedgerTransaction
		amount   pgtype.Numeric
		previous pgtype.Numeric
		current  pgtype.Numeric
	)

	err := row.Scan(
		&t.ID,
		&t.LedgerID,
		&t.Type,
		&amount,
		&t.Description,
		&t.ReferenceNumber,
		&previous,
		&current,
		&t.TransactionDate,
		&t.CreatedBy,
		&t.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTransactionNotFound
	}

	if err != nil {
		return nil, err
	}

	t.Amount = numericToDecimal(amount)
	t.PreviousBalance = numericToDecimal(previous)
	t.NewBalance = numericToDecimal(current)

	return &t, nil
}

func scanTransactionRows(rows pgx.Rows) ([]*domain.LedgerTransaction, error) {
	var transactions []*domain.LedgerTransaction

	for rows.Next() {
		var (
			t        domain.LedgerTransaction
			amount   pgtype.Numeric
			previous pgtype.Numeric
			current  pgtype.Numeric
		)

		if err := rows.Scan(
			&t.ID,
			&t.LedgerID,
			&t.Type,
			&amount,
			&t.Description,
			&t.ReferenceNumber,
			&previous,
			&current,
			&t.TransactionDate,
			&t.CreatedBy,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}

		t.Amount = numericToDecimal(amount)
		t.PreviousBalance = numericToDecimal(previous)
		t.NewBalance = numericToDecimal(current)

		transactions = append(transactions, &t)
	}

	return transactions, rows.Err()
}
