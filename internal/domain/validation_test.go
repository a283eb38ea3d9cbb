package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	t.Run("valid name", func(t *testing.T) {
		if err := ValidateName("Karachi General Store"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		err := ValidateName("   ")
		if !errors.Is(err, ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
	})

	t.Run("name too long", func(t *testing.T) {
		tooLong := strings.Repeat("a", MaxNameLength+1)
		err := ValidateName(tooLong)
		if !errors.Is(err, ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
	})
}

func TestValidateContactNumber(t *testing.T) {
	t.Parallel()

	valid := []string{"03001234567", "+923001234567", "0421234567"}
	for _, c := range valid {
		if err := ValidateContactNumber(c); err != nil {
			t.Errorf("expected %q to be valid, got %v", c, err)
		}
	}

	invalid := []string{"", "123", "not-a-number", "0300 1234567", "+92-300-1234567"}
	for _, c := range invalid {
		if err := ValidateContactNumber(c); !errors.Is(err, ErrInvalidContactNumber) {
			t.Errorf("expected %q to be rejected, got %v", c, err)
		}
	}
}

func TestValidateAmount(t *testing.T) {
	t.Parallel()

	t.Run("positive amount", func(t *testing.T) {
		if err := ValidateAmount(decimal.NewFromInt(100)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("zero rejected", func(t *testing.T) {
		if !errors.Is(ValidateAmount(decimal.Zero), ErrInvalidAmount) {
			t.Fatal("expected ErrInvalidAmount for zero")
		}
	})

	t.Run("negative rejected", func(t *testing.T) {
		if !errors.Is(ValidateAmount(decimal.NewFromInt(-5)), ErrInvalidAmount) {
			t.Fatal("expected ErrInvalidAmount for negative")
		}
	})

	t.Run("too large rejected", func(t *testing.T) {
		huge := decimal.RequireFromString(MaxAmount).Add(decimal.NewFromInt(1))
		if !errors.Is(ValidateAmount(huge), ErrAmountTooLarge) {
			t.Fatal("expected ErrAmountTooLarge")
		}
	})
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	if err := ValidatePassword("Str0ngPass"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	weak := []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoNumbersHere"}
	for _, p := range weak {
		if err := ValidatePassword(p); !errors.Is(err, ErrPasswordTooWeak) {
			t.Errorf("expected %q to be rejected, got %v", p, err)
		}
	}
}

func TestNormalizePagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                            string
		page, limit                     int
		wantPage, wantLimit, wantOffset int
	}{
		{"defaults", 0, 0, 1, 10, 0},
		{"explicit", 3, 20, 3, 20, 40},
		{"limit capped", 1, 500, 1, 100, 0},
		{"negative page", -2, 10, 1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, offset := NormalizePagination(tt.page, tt.limit)
			if page != tt.wantPage || limit != tt.wantLimit || offset != tt.wantOffset {
				t.Errorf("got (%d,%d,%d), want (%d,%d,%d)",
					page, limit, offset, tt.wantPage, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}
