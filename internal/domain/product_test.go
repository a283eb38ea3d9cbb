package domain

import (
	"testing"
	"time"
)

func TestProduct_IsLowStock(t *testing.T) {
	p := &Product{StockQty: 5, LowStockThreshold: 10}
	if !p.IsLowStock() {
		t.Error("expected low stock when qty below threshold")
	}

	p.StockQty = 10
	if !p.IsLowStock() {
		t.Error("expected low stock when qty equals threshold")
	}

	p.StockQty = 11
	if p.IsLowStock() {
		t.Error("did not expect low stock when qty above threshold")
	}
}

func TestProduct_ExpiresWithin(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("no expiry date", func(t *testing.T) {
		p := &Product{}
		if p.ExpiresWithin(30, now) {
			t.Error("product without expiry should never expire")
		}
	})

	t.Run("inside window", func(t *testing.T) {
		exp := now.AddDate(0, 0, 15)
		p := &Product{ExpiryDate: &exp}
		if !p.ExpiresWithin(30, now) {
			t.Error("expected product to expire within window")
		}
	})

	t.Run("outside window", func(t *testing.T) {
		exp := now.AddDate(0, 0, 45)
		p := &Product{ExpiryDate: &exp}
		if p.ExpiresWithin(30, now) {
			t.Error("did not expect product to expire within window")
		}
	})

	t.Run("already expired", func(t *testing.T) {
		exp := now.AddDate(0, 0, -1)
		p := &Product{ExpiryDate: &exp}
		if !p.ExpiresWithin(30, now) {
			t.Error("expired product should be flagged")
		}
	})
}
