package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransactionType_Apply(t *testing.T) {
	tests := []struct {
		name     string
		txType   TransactionType
		balance  decimal.Decimal
		amount   decimal.Decimal
		expected decimal.Decimal
	}{
		{
			name:     "karz_leya adds to balance",
			txType:   TransactionKarzLeya,
			balance:  decimal.NewFromInt(100),
			amount:   decimal.NewFromInt(30),
			expected: decimal.NewFromInt(130),
		},
		{
			name:     "karz_deya subtracts from balance",
			txType:   TransactionKarzDeya,
			balance:  decimal.NewFromInt(100),
			amount:   decimal.NewFromInt(30),
			expected: decimal.NewFromInt(70),
		},
		{
			name:     "karz_deya can cross zero",
			txType:   TransactionKarzDeya,
			balance:  decimal.NewFromInt(10),
			amount:   decimal.NewFromInt(25),
			expected: decimal.NewFromInt(-15),
		},
		{
			name:     "fractional amounts stay exact",
			txType:   TransactionKarzLeya,
			balance:  decimal.RequireFromString("0.1"),
			amount:   decimal.RequireFromString("0.2"),
			expected: decimal.RequireFromString("0.3"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.txType.Apply(tt.balance, tt.amount)
			if !got.Equal(tt.expected) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestTransactionType_IsValid(t *testing.T) {
	if !TransactionKarzLeya.IsValid() || !TransactionKarzDeya.IsValid() {
		t.Error("expected known types to be valid")
	}

	if TransactionType("loan").IsValid() {
		t.Error("expected unknown type to be invalid")
	}
}

func TestLedgerTransaction_CheckSnapshot(t *testing.T) {
	t.Run("consistent snapshot", func(t *testing.T) {
		tx := &LedgerTransaction{
			Type:            TransactionKarzLeya,
			Amount:          decimal.NewFromInt(100),
			PreviousBalance: decimal.NewFromInt(50),
			NewBalance:      decimal.NewFromInt(150),
		}
		if err := tx.CheckSnapshot(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("mismatched snapshot", func(t *testing.T) {
		tx := &LedgerTransaction{
			Type:            TransactionKarzDeya,
			Amount:          decimal.NewFromInt(100),
			PreviousBalance: decimal.NewFromInt(50),
			NewBalance:      decimal.NewFromInt(150),
		}
		if !errors.Is(tx.CheckSnapshot(), ErrSnapshotMismatch) {
			t.Fatal("expected ErrSnapshotMismatch")
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		tx := &LedgerTransaction{Type: TransactionType("loan")}
		if !errors.Is(tx.CheckSnapshot(), ErrInvalidTransactionType) {
			t.Fatal("expected ErrInvalidTransactionType")
		}
	})
}
