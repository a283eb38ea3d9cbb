package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a ledger transaction.
type TransactionType string

const (
	// TransactionKarzLeya increases the balance: the counterparty owes the business.
	TransactionKarzLeya TransactionType = "karz_leya"

	// TransactionKarzDeya decreases the balance: the business owes the counterparty.
	TransactionKarzDeya TransactionType = "karz_deya"
)

// IsValid checks if the transaction type is known.
func (t TransactionType) IsValid() bool {
	return t == TransactionKarzLeya || t == TransactionKarzDeya
}

// Apply returns the balance after applying amount in this direction.
func (t TransactionType) Apply(balance, amount decimal.Decimal) decimal.Decimal {
	if t == TransactionKarzDeya {
		return balance.Sub(amount)
	}

	return balance.Add(amount)
}

// Ledger represents one counterparty khata with a cached running total.
//
// TotalBalance is a materialized view over the transaction chain: it must
// always equal the NewBalance of the chronologically last transaction, or
// zero when no transactions exist.
type Ledger struct {
	ID            string
	Name          string
	ContactNumber string
	Email         string
	Address       string
	TotalBalance  decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LedgerTransaction is a single entry in a ledger's chain, carrying the
// balance snapshot taken when it was recorded or last recalculated.
type LedgerTransaction struct {
	ID              string
	LedgerID        string
	Type            TransactionType
	Amount          decimal.Decimal
	Description     string
	ReferenceNumber string
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
	TransactionDate time.Time
	CreatedBy       string
	CreatedAt       time.Time
}

// LedgerWithLatest pairs a ledger with its most recent transaction for
// listing views. Latest is nil when the ledger has no transactions.
type LedgerWithLatest struct {
	Ledger *Ledger
	Latest *LedgerTransaction
}

// LedgerStats aggregates balances across all ledgers. TotalDebit sums
// positive balances (owed to the business), TotalCredit sums the absolute
// value of negative ones (owed by the business).
type LedgerStats struct {
	TotalLedgers int64
	TotalDebit   decimal.Decimal
	TotalCredit  decimal.Decimal
	TotalBalance decimal.Decimal
}

// CheckSnapshot verifies new_balance = previous_balance +/- amount.
func (t *LedgerTransaction) CheckSnapshot() error {
	if !t.Type.IsValid() {
		return ErrInvalidTransactionType
	}

	if !t.NewBalance.Equal(t.Type.Apply(t.PreviousBalance, t.Amount)) {
		return ErrSnapshotMismatch
	}

	return nil
}
