package domain

import "errors"

var (
	// Ledger errors
	ErrLedgerNotFound         = errors.New("ledger not found")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrDuplicateContactNumber = errors.New("contact number already in use")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInvalidTransactionType = errors.New("transaction type must be karz_leya or karz_deya")
	ErrSnapshotMismatch       = errors.New("balance snapshot does not match transaction amount")

	// Catalog errors
	ErrProductNotFound   = errors.New("product not found")
	ErrDuplicateSKU      = errors.New("sku already in use")
	ErrInsufficientStock = errors.New("insufficient stock")

	// Bookkeeping errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrSupplierNotFound = errors.New("supplier not found")

	// Order/purchase errors
	ErrOrderNotFound       = errors.New("order not found")
	ErrPurchaseNotFound    = errors.New("purchase not found")
	ErrOrderNotCancellable = errors.New("order cannot be cancelled")
	ErrEmptyItems          = errors.New("at least one item is required")
	ErrInvalidQuantity     = errors.New("quantity must be positive")

	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")
)

// Authentication errors
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInsufficientRole = errors.New("insufficient role for this operation")
)
