package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dukaanhq/dukaan/internal/domain"
)

const (
	statsCacheKey = "ledger:stats"
	statsCacheTTL = 30 * time.Second
)

// LedgerUseCase handles ledger business logic, including the balance
// recalculation engine that rebuilds every snapshot after an edit or delete.
type LedgerUseCase struct {
	txManager  TransactionManager
	ledgerRepo LedgerRepository
	txRepo     TransactionRepository
	auditRepo  AuditRepository
	idGen      IDGenerator
	cache      Cache
	events     EventPublisher
	retrier    Retrier
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	txManager TransactionManager,
	ledgerRepo LedgerRepository,
	txRepo TransactionRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
	cache Cache,
	events EventPublisher,
	retrier Retrier,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:  txManager,
		ledgerRepo: ledgerRepo,
		txRepo:     txRepo,
		auditRepo:  auditRepo,
		idGen:      idGen,
		cache:      cache,
		events:     events,
		retrier:    retrier,
	}
}

// CreateLedgerInput represents input for creating a ledger.
type CreateLedgerInput struct {
	Name          string
	ContactNumber string
	Email         string
	Address       string
}

// CreateLedger creates a new ledger with a zero balance.
func (uc *LedgerUseCase) CreateLedger(ctx context.Context, input CreateLedgerInput) (*domain.Ledger, error) {
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

	ledger := &domain.Ledger{
		ID:            uc.idGen.Generate(),
		Name:          input.Name,
		ContactNumber: input.ContactNumber,
		Email:         input.Email,
		Address:       input.Address,
		TotalBalance:  decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.ledgerRepo.Create(ctx, ledger); err != nil {
		return nil, err
	}

	uc.invalidateStats(ctx)

	return ledger, nil
}

// GetLedger retrieves a ledger by ID.
func (uc *LedgerUseCase) GetLedger(ctx context.Context, id string) (*domain.Ledger, error) {
	return uc.ledgerRepo.GetByID(ctx, id)
}

// ListLedgersInput represents input for listing ledgers.
type ListLedgersInput struct {
	Search string
	Page   int
	Limit  int
}

// ListLedgers lists ledgers filtered by name or contact number, each with
// its latest transaction. Returns the page items and the total match count.
func (uc *LedgerUseCase) ListLedgers(ctx context.Context, input ListLedgersInput) ([]*domain.LedgerWithLatest, int64, error) {
	_, limit, offset := domain.NormalizePagination(input.Page, input.Limit)

	items, err := uc.ledgerRepo.List(ctx, input.Search, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.ledgerRepo.Count(ctx, input.Search)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// UpdateLedgerInput represents input for updating a ledger.
type UpdateLedgerInput struct {
	ID            string
	Name          *string
	ContactNumber *string
	Email         *string
	Address       *string
}

// UpdateLedger updates a ledger's contact fields.
func (uc *LedgerUseCase) UpdateLedger(ctx context.Context, input UpdateLedgerInput) (*domain.Ledger, error) {
	ledger, err := uc.ledgerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateName(*input.Name); err != nil {
			return nil, err
		}
		ledger.Name = *input.Name
	}

	if input.ContactNumber != nil {
		if err := domain.ValidateContactNumber(*input.ContactNumber); err != nil {
			return nil, err
		}
		ledger.ContactNumber = *input.ContactNumber
	}

	if input.Email != nil {
		if *input.Email != "" {
			if err := domain.ValidateEmail(*input.Email); err != nil {
				return nil, err
			}
		}
		ledger.Email = *input.Email
	}

	if input.Address != nil {
		ledger.Address = *input.Address
	}

	ledger.UpdatedAt = time.Now().UTC()

	if err := uc.ledgerRepo.Update(ctx, ledger); err != nil {
		return nil, err
	}

	return ledger, nil
}

// DeleteLedger deletes a ledger; its transactions cascade.
func (uc *LedgerUseCase) DeleteLedger(ctx context.Context, id string) error {
	if _, err := uc.ledgerRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := uc.ledgerRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateStats(ctx)

	return nil
}

// ListTransactionsInput represents input for listing a ledger's transactions.
type ListTransactionsInput struct {
	LedgerID string
	Page     int
	Limit    int
}

// ListTransactions lists a ledger's transactions, newest first.
func (uc *LedgerUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]*domain.LedgerTransaction, int64, error) {
	if _, err := uc.ledgerRepo.GetByID(ctx, input.LedgerID); err != nil {
		return nil, 0, err
	}

	_, limit, offset := domain.NormalizePagination(input.Page, input.Limit)

	transactions, err := uc.txRepo.ListByLedger(ctx, input.LedgerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.txRepo.CountByLedger(ctx, input.LedgerID)
	if err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

// GetTransaction retrieves one transaction, scoped to its ledger.
func (uc *LedgerUseCase) GetTransaction(ctx context.Context, ledgerID, transactionID string) (*domain.LedgerTransaction, error) {
	t, err := uc.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if t.LedgerID != ledgerID {
		return nil, domain.ErrTransactionNotFound
	}

	return t, nil
}

// AddTransactionInput represents input for recording a transaction.
type AddTransactionInput struct {
	LedgerID        string
	Type            domain.TransactionType
	Amount          decimal.Decimal
	Description     string
	ReferenceNumber string
	TransactionDate *time.Time
	CreatedBy       string
}

// AddTransaction records a new transaction, computing its balance snapshot
// from the ledger's cached total. The insert and the cache update happen in
// one database transaction with the ledger row locked.
//
// The cheap-append snapshot is only exact while transactions arrive in
// non-decreasing date order; a backdated entry desynchronizes later
// snapshots until the next edit or delete triggers a full replay.
func (uc *LedgerUseCase) AddTransaction(ctx context.Context, input AddTransactionInput) (*domain.LedgerTransaction, error) {
	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidTransactionType
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	var created *domain.LedgerTransaction

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		ledger, err := uc.ledgerRepo.GetByIDForUpdate(ctx, tx, input.LedgerID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()

		txDate := now
		if input.TransactionDate != nil {
			txDate = input.TransactionDate.UTC()
		}

		newBalance := input.Type.Apply(ledger.TotalBalance, input.Amount)

		t := &domain.LedgerTransaction{
			ID:              uc.idGen.Generate(),
			LedgerID:        ledger.ID,
			Type:            input.Type,
			Amount:          input.Amount,
			Description:     input.Description,
			ReferenceNumber: input.ReferenceNumber,
			PreviousBalance: ledger.TotalBalance,
			NewBalance:      newBalance,
			TransactionDate: txDate,
			CreatedBy:       input.CreatedBy,
			CreatedAt:       now,
		}

		if err := uc.txRepo.Create(ctx, tx, t); err != nil {
			return err
		}

		if err := uc.ledgerRepo.UpdateTotalBalance(ctx, tx, ledger.ID, newBalance, now); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		created = t

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateStats(ctx)
	uc.publishTransactionEvent(ctx, domain.EventTypeTransactionRecorded, created, created.NewBalance)

	return created, nil
}

// UpdateTransactionInput represents input for editing a transaction.
type UpdateTransactionInput struct {
	LedgerID        string
	TransactionID   string
	Type            domain.TransactionType
	Amount          decimal.Decimal
	Description     *string
	ReferenceNumber *string
	TransactionDate *time.Time
	Actor           string
}

// UpdateTransaction overwrites a transaction's fields and replays the whole
// chain, because an edit to an earlier transaction changes every later
// snapshot. Update, audit entry and recalculation commit together.
func (uc *LedgerUseCase) UpdateTransaction(ctx context.Context, input UpdateTransactionInput) (decimal.Decimal, error) {
	if !input.Type.IsValid() {
		return decimal.Zero, domain.ErrInvalidTransactionType
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return decimal.Zero, err
	}

	var final decimal.Decimal

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if _, err := uc.ledgerRepo.GetByIDForUpdate(ctx, tx, input.LedgerID); err != nil {
			return err
		}

		t, err := uc.txRepo.GetByID(ctx, input.TransactionID)
		if err != nil {
			return err
		}

		if t.LedgerID != input.LedgerID {
			return domain.ErrTransactionNotFound
		}

		t.Type = input.Type
		t.Amount = input.Amount

		if input.Description != nil {
			t.Description = *input.Description
		}

		if input.ReferenceNumber != nil {
			t.ReferenceNumber = *input.ReferenceNumber
		}

		if input.TransactionDate != nil {
			t.TransactionDate = input.TransactionDate.UTC()
		}

		if err := uc.txRepo.UpdateFields(ctx, tx, t); err != nil {
			return err
		}

		if err := uc.recordAudit(ctx, tx, t, domain.AuditActionTransactionUpdate, input.Actor); err != nil {
			return err
		}

		final, err = uc.replay(ctx, tx, input.LedgerID)
		if err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return decimal.Zero, err
	}

	uc.invalidateStats(ctx)
	uc.publishTransactionEvent(ctx, domain.EventTypeTransactionUpdated, &domain.LedgerTransaction{
		ID:       input.TransactionID,
		LedgerID: input.LedgerID,
		Type:     input.Type,
		Amount:   input.Amount,
	}, final)

	return final, nil
}

// DeleteTransactionInput represents input for deleting a transaction.
type DeleteTransactionInput struct {
	LedgerID      string
	TransactionID string
	Actor         string
}

// DeleteTransaction removes a transaction and replays the remaining chain.
func (uc *LedgerUseCase) DeleteTransaction(ctx context.Context, input DeleteTransactionInput) (decimal.Decimal, error) {
	var final decimal.Decimal

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if _, err := uc.ledgerRepo.GetByIDForUpdate(ctx, tx, input.LedgerID); err != nil {
			return err
		}

		t, err := uc.txRepo.GetByID(ctx, input.TransactionID)
		if err != nil {
			return err
		}

		if t.LedgerID != input.LedgerID {
			return domain.ErrTransactionNotFound
		}

		if err := uc.txRepo.Delete(ctx, tx, t.ID); err != nil {
			return err
		}

		if err := uc.recordAudit(ctx, tx, t, domain.AuditActionTransactionDelete, input.Actor); err != nil {
			return err
		}

		final, err = uc.replay(ctx, tx, input.LedgerID)
		if err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return decimal.Zero, err
	}

	uc.invalidateStats(ctx)
	uc.publishTransactionEvent(ctx, domain.EventTypeTransactionDeleted, &domain.LedgerTransaction{
		ID:       input.TransactionID,
		LedgerID: input.LedgerID,
	}, final)

	return final, nil
}

// Recalculate rebuilds every balance snapshot for a ledger and returns the
// final running total. Exposed for the admin CLI; the edit and delete paths
// run the same replay inside their own transactions.
func (uc *LedgerUseCase) Recalculate(ctx context.Context, ledgerID string) (decimal.Decimal, error) {
	var final decimal.Decimal

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if _, err := uc.ledgerRepo.GetByIDForUpdate(ctx, tx, ledgerID); err != nil {
			return err
		}

		final, err = uc.replay(ctx, tx, ledgerID)
		if err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return decimal.Zero, err
	}

	uc.invalidateStats(ctx)

	return final, nil
}

// replay is the recalculation engine: it folds the ledger's transactions in
// date order (ties broken by id), rewriting each snapshot pair, then persists
// the final running total as the ledger's cached balance.
//
// Caller must hold the ledger row lock and owns the enclosing transaction.
func (uc *LedgerUseCase) replay(ctx context.Context, tx Transaction, ledgerID string) (decimal.Decimal, error) {
	transactions, err := uc.txRepo.ListAllByLedger(ctx, tx, ledgerID)
	if err != nil {
		return decimal.Zero, err
	}

	running := decimal.Zero

	for _, t := range transactions {
		previous := running
		running = t.Type.Apply(running, t.Amount)

		if err := uc.txRepo.UpdateSnapshot(ctx, tx, t.ID, previous, running); err != nil {
			return decimal.Zero, err
		}
	}

	if err := uc.ledgerRepo.UpdateTotalBalance(ctx, tx, ledgerID, running, time.Now().UTC()); err != nil {
		return decimal.Zero, err
	}

	return running, nil
}

// Stats returns aggregate balance totals, served through a short-lived cache.
func (uc *LedgerUseCase) Stats(ctx context.Context) (*domain.LedgerStats, error) {
	if cached, err := uc.cache.Get(ctx, statsCacheKey); err == nil && cached != "" {
		var stats domain.LedgerStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	stats, err := uc.ledgerRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(stats); err == nil {
		_ = uc.cache.Set(ctx, statsCacheKey, string(encoded), statsCacheTTL)
	}

	return stats, nil
}

// AuditTrail lists the mutation log for a ledger.
func (uc *LedgerUseCase) AuditTrail(ctx context.Context, ledgerID string, page, limit int) ([]*domain.AuditEntry, error) {
	if _, err := uc.ledgerRepo.GetByID(ctx, ledgerID); err != nil {
		return nil, err
	}

	_, normLimit, offset := domain.NormalizePagination(page, limit)

	return uc.auditRepo.ListByLedger(ctx, ledgerID, normLimit, offset)
}

func (uc *LedgerUseCase) recordAudit(ctx context.Context, tx Transaction, t *domain.LedgerTransaction, action, actor string) error {
	return uc.auditRepo.Create(ctx, tx, &domain.AuditEntry{
		ID:            uc.idGen.Generate(),
		LedgerID:      t.LedgerID,
		TransactionID: t.ID,
		Action:        action,
		Actor:         actor,
		CreatedAt:     time.Now().UTC(),
	})
}

func (uc *LedgerUseCase) invalidateStats(ctx context.Context) {
	_ = uc.cache.Delete(ctx, statsCacheKey)
}

func (uc *LedgerUseCase) publishTransactionEvent(ctx context.Context, eventType string, t *domain.LedgerTransaction, total decimal.Decimal) {
	_ = uc.events.Publish(ctx, eventType, domain.TransactionEvent{
		EventType:     eventType,
		LedgerID:      t.LedgerID,
		TransactionID: t.ID,
		Type:          string(t.Type),
		Amount:        t.Amount.String(),
		TotalBalance:  total.String(),
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	})
}
