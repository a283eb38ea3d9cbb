package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/dukaanhq/dukaan/internal/domain"
	"github.com/dukaanhq/dukaan/internal/usecase"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

const ledgerColumns = `id, name, contact_number, email, address, total_balance, created_at, updated_at`

// Create inserts a new ledger.
func (r *LedgerRepository) Create(ctx context.Context, ledger *domain.Ledger) error {
	query := `
		INSERT INTO ledgers (id, name, contact_number, email, address, total_balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		ledger.ID,
		ledger.Name,
		ledger.ContactNumber,
		ledger.Email,
		ledger.Address,
		decimalToNumeric(ledger.TotalBalance),
		ledger.CreatedAt,
		ledger.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return domain.ErrDuplicateContactNumber
	}

	return err
}

// GetByID retrieves a ledger by ID.
func (r *LedgerRepository) GetByID(ctx context.Context, id string) (*domain.Ledger, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledgers WHERE id = $1`

	return scanLedgerRow(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate retrieves a ledger by ID with a FOR UPDATE lock.
func (r *LedgerRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Ledger, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `SELECT ` + ledgerColumns + ` FROM ledgers WHERE id = $1 FOR UPDATE`

	return scanLedgerRow(pgxTx.QueryRow(ctx, query, id))
}

// List retrieves a page of ledgers filtered by name or contact number, each
// joined with its latest transaction by date.
func (r *LedgerRepository) List(ctx context.Context, search string, limit, offset int) ([]*domain.LedgerWithLatest, error) {
	query := `
		SELECT l.id, l.name, l.contact_number, l.email, l.address, l.total_balance, l.created_at, l.updated_at,
		       t.id, t.type, t.amount, t.description, t.reference_number,
		       t.previous_balance, t.new_balance, t.transaction_date, t.created_by, t.created_at
		FROM ledgers l
		LEFT JOIN LATERAL (
			SELECT *
			FROM ledger_transactions
			WHERE ledger_id = l.id
			ORDER BY transaction_date DESC, id DESC
			LIMIT 1
		) t ON TRUE
		WHERE $1 = '' OR l.name ILIKE '%' || $1 || '%' OR l.contact_number ILIKE '%' || $1 || '%'
		ORDER BY l.updated_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.LedgerWithLatest

	for rows.Next() {
		var (
			ledger  domain.Ledger
			balance pgtype.Numeric

			txID        pgtype.Text
			txType      pgtype.Text
			txAmount    pgtype.Numeric
			txDesc      pgtype.Text
			txRef       pgtype.Text
			txPrev      pgtype.Numeric
			txNew       pgtype.Numeric
			txDate      pgtype.Timestamptz
			txCreatedBy pgtype.Text
			txCreatedAt pgtype.Timestamptz
		)

		if err := rows.Scan(
			&ledger.ID,
			&ledger.Name,
			&ledger.ContactNumber,
			&ledger.Email,
			&ledger.Address,
			&balance,
			&ledger.CreatedAt,
			&ledger.UpdatedAt,
			&txID,
			&txType,
			&txAmount,
			&txDesc,
			&txRef,
			&txPrev,
			&txNew,
			&txDate,
			&txCreatedBy,
			&txCreatedAt,
		); err != nil {
			return nil, err
		}

		ledger.TotalBalance = numericToDecimal(balance)

		item := &domain.LedgerWithLatest{Ledger: &ledger}

		if txID.Valid {
			item.Latest = &domain.LedgerTransaction{
				ID:              txID.String,
				LedgerID:        ledger.ID,
				Type:            domain.TransactionType(txType.String),
				Amount:          numericToDecimal(txAmount),
				Description:     txDesc.String,
				ReferenceNumber: txRef.String,
				PreviousBalance: numericToDecimal(txPrev),
				NewBalance:      numericToDecimal(txNew),
				TransactionDate: txDate.Time,
				CreatedBy:       txCreatedBy.String,
				CreatedAt:       txCreatedAt.Time,
			}
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

// Count returns the number of ledgers matching the search filter.
func (r *LedgerRepository) Count(ctx context.Context, search string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM ledgers
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR contact_number ILIKE '%' || $1 || '%'
	`

	var count int64
	err := r.pool.QueryRow(ctx, query, search).Scan(&count)

	return count, err
}

// Update updates a ledger's contact fields.
func (r *LedgerRepository) Update(ctx context.Context, ledger *domain.Ledger) error {
	query := `
		UPDATE ledgers
		SET name = $2, contact_number = $3, email = $4, address = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		ledger.ID,
		ledger.Name,
		ledger.ContactNumber,
		ledger.Email,
		ledger.Address,
		ledger.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return domain.ErrDuplicateContactNumber
	}

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrLedgerNotFound
	}

	return nil
}

// Delete deletes a ledger; its transactions cascade.
func (r *LedgerRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ledgers WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrLedgerNotFound
	}

	return nil
}

// UpdateTotalBalance writes the cached running total inside a transaction.
func (r *LedgerRepository) UpdateTotalBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `UPDATE ledgers SET total_balance = $2, updated_at = $3 WHERE id = $1`

	tag, err := pgxTx.Exec(ctx, query, id, decimalToNumeric(balance), updatedAt)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrLedgerNotFound
	}

	return nil
}

// Stats aggregates balances across all ledgers.
func (r *LedgerRepository) Stats(ctx context.Context) (*domain.LedgerStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(total_balance) FILTER (WHERE total_balance > 0), 0),
		       COALESCE(SUM(-total_balance) FILTER (WHERE total_balance < 0), 0),
		       COALESCE(SUM(total_balance), 0)
		FROM ledgers
	`

	var (
		stats  domain.LedgerStats
		debit  pgtype.Numeric
		credit pgtype.Numeric
		total  pgtype.Numeric
	)

	if err := r.pool.QueryRow(ctx, query).Scan(&stats.TotalLedgers, &debit, &credit, &total); err != nil {
		return nil, err
	}

	stats.TotalDebit = numericToDecimal(debit)
	stats.TotalCredit = numericToDecimal(credit)
	stats.TotalBalance = numericToDecimal(total)

	return &stats, nil
}

func scanLedgerRow(row pgx.Row) (*domain.Ledger, error) {
	var (
		ledger  domain.Ledger
		balance pgtype.Numeric
	)

	err := row.Scan(
		&ledger.ID,
		&ledger.Name,
		&ledger.ContactNumber,
		&ledger.Email,
		&ledger.Address,
		&balance,
		&ledger.CreatedAt,
		&ledger.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrLedgerNotFound
	}

	if err != nil {
		return nil, err
	}

	ledger.TotalBalance = numericToDecimal(balance)

	return &ledger, nil
}
