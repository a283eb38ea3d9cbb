package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dukaanhq/dukaan/internal/domain"
)

// LedgerRepository defines data access for ledgers.
type LedgerRepository interface {
	Create(ctx context.Context, ledger *domain.Ledger) error
	GetByID(ctx context.Context, id string) (*domain.Ledger, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Ledger, error)
	List(ctx context.Context, search string, limit, offset int) ([]*domain.LedgerWithLatest, error)
	Count(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, ledger *domain.Ledger) error
	Delete(ctx context.Context, id string) error
	UpdateTotalBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	Stats(ctx context.Context) (*domain.LedgerStats, error)
}

// TransactionRepository defines data access for ledger transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, t *domain.LedgerTransaction) error
	GetByID(ctx context.Context, id string) (*domain.LedgerTransaction, error)
	ListByLedger(ctx context.Context, ledgerID string, limit, offset int) ([]*domain.LedgerTransaction, error)
	CountByLedger(ctx context.Context, ledgerID string) (int64, error)
	// ListAllByLedger returns every transaction for a ledger ordered by
	// transaction_date ascending, id ascending.
	ListAllByLedger(ctx context.Context, tx Transaction, ledgerID string) ([]*domain.LedgerTransaction, error)
	UpdateFields(ctx context.Context, tx Transaction, t *domain.LedgerTransaction) error
	UpdateSnapshot(ctx context.Context, tx Transaction, id string, previous, current decimal.Decimal) error
	Delete(ctx context.Context, tx Transaction, id string) error
}

// AuditRepository defines data access for the transaction mutation log.
type AuditRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.AuditEntry) error
	ListByLedger(ctx context.Context, ledgerID string, limit, offset int) ([]*domain.AuditEntry, error)
}

// ProductRepository defines data access for products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Product, error)
	List(ctx context.Context, search string, limit, offset int) ([]*domain.Product, error)
	Count(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, tx Transaction, id string, delta int64, updatedAt time.Time) error
	ExpiringBefore(ctx context.Context, cutoff time.Time) ([]*domain.Product, error)
	LowStock(ctx context.Context) ([]*domain.Product, error)
}

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context, search string, limit, offset int) ([]*domain.Customer, error)
	Count(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
}

// SupplierRepository defines data access for suppliers.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	GetByID(ctx context.Context, id string) (*domain.Supplier, error)
	List(ctx context.Context, search string, limit, offset int) ([]*domain.Supplier, error)
	Count(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, supplier *domain.Supplier) error
	Delete(ctx context.Context, id string) error
}

// OrderRepository defines data access for orders.
type OrderRepository interface {
	Create(ctx context.Context, tx Transaction, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Order, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, tx Transaction, id string, from, to domain.OrderStatus, updatedAt time.Time) error
}

// PurchaseRepository defines data access for purchases.
type PurchaseRepository interface {
	Create(ctx context.Context, tx Transaction, purchase *domain.Purchase) error
	GetByID(ctx context.Context, id string) (*domain.Purchase, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Purchase, error)
	Count(ctx context.Context) (int64, error)
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// SessionStore handles server-side session storage.
type SessionStore interface {
	Create(ctx context.Context, userID string, ttl time.Duration) (string, error)
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashed, password string) error
}

// TokenIssuer issues and verifies signed bearer tokens for API clients.
type TokenIssuer interface {
	Issue(userID string, role string, ttl time.Duration) (string, error)
	Verify(token string) (userID string, role string, err error)
}

// EventPublisher publishes integration events after commits.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

// Retrier retries operations that fail with transient persistence errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}
