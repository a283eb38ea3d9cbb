package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dukaanhq/dukaan/internal/domain"
	"github.com/dukaanhq/dukaan/internal/usecase"
)

// AuditRepository implements usecase.AuditRepository.
type AuditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

// Create inserts an audit entry in the same transaction as the mutation it
// records.
func (r *AuditRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.AuditEntry) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO ledger_audit (id, ledger_id, transaction_id, action, actor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := pgxTx.Exec(ctx, query,
		entry.ID,
		entry.LedgerID,
		entry.TransactionID,
		entry.Action,
		entry.Actor,
		entry.CreatedAt,
	)

	return err
}

// ListByLedger retrieves a page of audit entries for a ledger, newest first.
func (r *AuditRepository) ListByLedger(ctx context.Context, ledgerID string, limit, offset int) ([]*domain.AuditEntry, error) {
	query := `
		SELECT id, ledger_id, transaction_id, action, actor, created_at
		FROM ledger_audit
		WHERE ledger_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, ledgerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.AuditEntry

	for rows.Next() {
		var entry domain.AuditEntry

		if err := rows.Scan(
			&entry.ID,
			&entry.LedgerID,
			&entry.TransactionID,
			&entry.Action,
			&entry.Actor,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
