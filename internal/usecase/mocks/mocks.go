// Package mocks provides hand-written fakes for the usecase interfaces.
// Each mock keeps simple in-memory default behavior and exposes per-method
// function fields for overriding in tests.
package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dukaanhq/dukaan/internal/domain"
	"github.com/dukaanhq/dukaan/internal/usecase"
)

// MockTx is a no-op transaction.
type MockTx struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (t *MockTx) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTx) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTxManager hands out MockTx transactions.
type MockTxManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	mu    sync.Mutex
	Began []*MockTx
}

func NewMockTxManager() *MockTxManager {
	return &MockTxManager{}
}

func (m *MockTxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTx{}
	m.Began = append(m.Began, tx)
	return tx, nil
}

// MockIDGenerator generates sequential IDs by default.
type MockIDGenerator struct {
	GenerateFunc func() string

	mu   sync.Mutex
	next int
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("id-%04d", m.next)
}

// MockCache is an in-memory cache without TTL handling.
type MockCache struct {
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error

	mu     sync.RWMutex
	values map[string]string
}

func NewMockCache() *MockCache {
	return &MockCache{values: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return "", fmt.Errorf("cache miss: %s", key)
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// MockSessionStore keeps sessions in memory.
type MockSessionStore struct {
	CreateFunc func(ctx context.Context, userID string, ttl time.Duration) (string, error)
	GetFunc    func(ctx context.Context, token string) (string, error)
	DeleteFunc func(ctx context.Context, token string) error

	mu       sync.Mutex
	next     int
	sessions map[string]string
}

func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{sessions: make(map[string]string)}
}

func (m *MockSessionStore) Create(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	token := fmt.Sprintf("session-%04d", m.next)
	m.sessions[token] = userID
	return token, nil
}

func (m *MockSessionStore) Get(ctx context.Context, token string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if userID, ok := m.sessions[token]; ok {
		return userID, nil
	}
	return "", domain.ErrUnauthorized
}

func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

// MockPasswordHasher hashes by prefixing, good enough for tests.
type MockPasswordHasher struct {
	HashFunc    func(password string) (string, error)
	CompareFunc func(hashed, password string) error
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *MockPasswordHasher) Compare(hashed, password string) error {
	if m.CompareFunc != nil {
		return m.CompareFunc(hashed, password)
	}
	if hashed != "hashed:"+password {
		return domain.ErrUnauthorized
	}
	return nil
}

// MockTokenIssuer issues unsigned tokens encoding the user ID.
type MockTokenIssuer struct {
	IssueFunc  func(userID string, role string, ttl time.Duration) (string, error)
	VerifyFunc func(token string) (string, string, error)

	mu     sync.Mutex
	issued map[string][2]string
}

func NewMockTokenIssuer() *MockTokenIssuer {
	return &MockTokenIssuer{issued: make(map[string][2]string)}
}

func (m *MockTokenIssuer) Issue(userID string, role string, ttl time.Duration) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, role, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	token := fmt.Sprintf("bearer-%s", userID)
	m.issued[token] = [2]string{userID, role}
	return token, nil
}

func (m *MockTokenIssuer) Verify(token string) (string, string, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if claims, ok := m.issued[token]; ok {
		return claims[0], claims[1], nil
	}
	return "", "", domain.ErrInvalidToken
}

// PublishedEvent records one Publish call.
type PublishedEvent struct {
	EventType string
	Payload   any
}

// MockEventPublisher records published events.
type MockEventPublisher struct {
	PublishFunc func(ctx context.Context, eventType string, payload any) error

	mu     sync.Mutex
	Events []PublishedEvent
}

func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

func (m *MockEventPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, eventType, payload)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, PublishedEvent{EventType: eventType, Payload: payload})
	return nil
}

// PassthroughRetrier runs the operation exactly once.
type PassthroughRetrier struct{}

func (PassthroughRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}

// MockLedgerRepository is an in-memory LedgerRepository.
type MockLedgerRepository struct {
	CreateFunc             func(ctx context.Context, ledger *domain.Ledger) error
	GetByIDFunc            func(ctx context.Context, id string) (*domain.Ledger, error)
	GetByIDForUpdateFunc   func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Ledger, error)
	ListFunc               func(ctx context.Context, search string, limit, offset int) ([]*domain.LedgerWithLatest, error)
	CountFunc              func(ctx context.Context, search string) (int64, error)
	UpdateFunc             func(ctx context.Context, ledger *domain.Ledger) error
	DeleteFunc             func(ctx context.Context, id string) error
	UpdateTotalBalanceFunc func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	StatsFunc              func(ctx context.Context) (*domain.LedgerStats, error)

	mu      sync.RWMutex
	ledgers map[string]*domain.Ledger
}

func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{ledgers: make(map[string]*domain.Ledger)}
}

func (m *MockLedgerRepository) Create(ctx context.Context, ledger *domain.Ledger) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ledger)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.ledgers {
		if l.ContactNumber == ledger.ContactNumber {
			return domain.ErrDuplicateContactNumber
		}
	}
	m.ledgers[ledger.ID] = ledger
	return nil
}

func (m *MockLedgerRepository) GetByID(ctx context.Context, id string) (*domain.Ledger, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if l, ok := m.ledgers[id]; ok {
		return l, nil
	}
	return nil, domain.ErrLedgerNotFound
}

func (m *MockLedgerRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Ledger, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockLedgerRepository) List(ctx context.Context, search string, limit, offset int) ([]*domain.LedgerWithLatest, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, search, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.LedgerWithLatest
	for _, l := range m.ledgers {
		items = append(items, &domain.LedgerWithLatest{Ledger: l})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Ledger.ID < items[j].Ledger.ID })
	return items, nil
}

func (m *MockLedgerRepository) Count(ctx context.Context, search string) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, search)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.ledgers)), nil
}

func (m *MockLedgerRepository) Update(ctx context.Context, ledger *domain.Ledger) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, ledger)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.ledgers[ledger.ID]; !ok {
		return domain.ErrLedgerNotFound
	}
	m.ledgers[ledger.ID] = ledger
	return nil
}

func (m *MockLedgerRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.ledgers[id]; !ok {
		return domain.ErrLedgerNotFound
	}
	delete(m.ledgers, id)
	return nil
}

func (m *MockLedgerRepository) UpdateTotalBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateTotalBalanceFunc != nil {
		return m.UpdateTotalBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.ledgers[id]; ok {
		l.TotalBalance = balance
		l.UpdatedAt = updatedAt
		return nil
	}
	return domain.ErrLedgerNotFound
}

func (m *MockLedgerRepository) Stats(ctx context.Context) (*domain.LedgerStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	stats := &domain.LedgerStats{
		TotalDebit:   decimal.Zero,
		TotalCredit:  decimal.Zero,
		TotalBalance: decimal.Zero,
	}
	for _, l := range m.ledgers {
		stats.TotalLedgers++
		if l.TotalBalance.IsPositive() {
			stats.TotalDebit = stats.TotalDebit.Add(l.TotalBalance)
		} else {
			stats.TotalCredit = stats.TotalCredit.Add(l.TotalBalance.Abs())
		}
		stats.TotalBalance = stats.TotalBalance.Add(l.TotalBalance)
	}
	return stats, nil
}

// MockTransactionRepository is an in-memory TransactionRepository. ListAll
// replays in transaction_date then id order, mirroring the SQL ordering.
type MockTransactionRepository struct {
	CreateFunc          func(ctx context.Context, tx usecase.Transaction, t *domain.LedgerTransaction) error
	GetByIDFunc         func(ctx context.Context, id string) (*domain.LedgerTransaction, error)
	ListByLedgerFunc    func(ctx context.Context, ledgerID string, limit, offset int) ([]*domain.LedgerTransaction, error)
	CountByLedgerFunc   func(ctx context.Context, ledgerID string) (int64, error)
	ListAllByLedgerFunc func(ctx context.Context, tx usecase.Transaction, ledgerID string) ([]*domain.LedgerTransaction, error)
	UpdateFieldsFunc    func(ctx context.Context, tx usecase.Transaction, t *domain.LedgerTransaction) error
	UpdateSnapshotFunc  func(ctx context.Context, tx usecase.Transaction, id string, previous, current decimal.Decimal) error
	DeleteFunc          func(ctx context.Context, tx usecase.Transaction, id string) error

	mu           sync.RWMutex
	transactions map[string]*domain.LedgerTransaction
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{transactions: make(map[string]*domain.LedgerTransaction)}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx usecase.Transaction, t *domain.LedgerTransaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, t)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *t
	m.transactions[t.ID] = &cp
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.LedgerTransaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.transactions[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) ListByLedger(ctx context.Context, ledgerID string, limit, offset int) ([]*domain.LedgerTransaction, error) {
	if m.ListByLedgerFunc != nil {
		return m.ListByLedgerFunc(ctx, ledgerID, limit, offset)
	}
	all := m.ordered(ledgerID)
	// newest first for listing
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *MockTransactionRepository) CountByLedger(ctx context.Context, ledgerID string) (int64, error) {
	if m.CountByLedgerFunc != nil {
		return m.CountByLedgerFunc(ctx, ledgerID)
	}
	return int64(len(m.ordered(ledgerID))), nil
}

func (m *MockTransactionRepository) ListAllByLedger(ctx context.Context, tx usecase.Transaction, ledgerID string) ([]*domain.LedgerTransaction, error) {
	if m.ListAllByLedgerFunc != nil {
		return m.ListAllByLedgerFunc(ctx, tx, ledgerID)
	}
	return m.ordered(ledgerID), nil
}

func (m *MockTransactionRepository) UpdateFields(ctx context.Context, tx usecase.Transaction, t *domain.LedgerTransaction) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, tx, t)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.transactions[t.ID]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	stored.Type = t.Type
	stored.Amount = t.Amount
	stored.Description = t.Description
	stored.ReferenceNumber = t.ReferenceNumber
	stored.TransactionDate = t.TransactionDate
	return nil
}

func (m *MockTransactionRepository) UpdateSnapshot(ctx context.Context, tx usecase.Transaction, id string, previous, current decimal.Decimal) error {
	if m.UpdateSnapshotFunc != nil {
		return m.UpdateSnapshotFunc(ctx, tx, id, previous, current)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.transactions[id]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	stored.PreviousBalance = previous
	stored.NewBalance = current
	return nil
}

func (m *MockTransactionRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transactions[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(m.transactions, id)
	return nil
}

func (m *MockTransactionRepository) ordered(ledgerID string) []*domain.LedgerTransaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.LedgerTransaction
	for _, t := range m.transactions {
		if t.LedgerID == ledgerID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TransactionDate.Equal(out[j].TransactionDate) {
			return out[i].TransactionDate.Before(out[j].TransactionDate)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// MockAuditRepository records audit entries in memory.
type MockAuditRepository struct {
	CreateFunc       func(ctx context.Context, tx usecase.Transaction, entry *domain.AuditEntry) error
	ListByLedgerFunc func(ctx context.Context, ledgerID string, limit, offset int) ([]*domain.AuditEntry, error)

	mu      sync.Mutex
	Entries []*domain.AuditEntry
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.AuditEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, entry)
	return nil
}

func (m *MockAuditRepository) ListByLedger(ctx context.Context, ledgerID string, limit, offset int) ([]*domain.AuditEntry, error) {
	if m.ListByLedgerFunc != nil {
		return m.ListByLedgerFunc(ctx, ledgerID, limit, offset)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.AuditEntry
	for _, e := range m.Entries {
		if e.LedgerID == ledgerID {
			out = append(out, e)
		}
	}
	return out, nil
}

// MockProductRepository is an in-memory ProductRepository.
type MockProductRepository struct {
	CreateFunc           func(ctx context.Context, product *domain.Product) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Product, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Product, error)
	ListFunc             func(ctx context.Context, search string, limit, offset int) ([]*domain.Product, error)
	CountFunc            func(ctx context.Context, search string) (int64, error)
	UpdateFunc           func(ctx context.Context, product *domain.Product) error
	DeleteFunc           func(ctx context.Context, id string) error
	AdjustStockFunc      func(ctx context.Context, tx usecase.Transaction, id string, delta int64, updatedAt time.Time) error
	ExpiringBeforeFunc   func(ctx context.Context, cutoff time.Time) ([]*domain.Product, error)
	LowStockFunc         func(ctx context.Context) ([]*domain.Product, error)

	mu       sync.RWMutex
	products map[string]*domain.Product
}

func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{products: make(map[string]*domain.Product)}
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.SKU == product.SKU {
			return domain.ErrDuplicateSKU
		}
	}
	m.products[product.ID] = product
	return nil
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.products[id]; ok {
		return p, nil
	}
	return nil, domain.ErrProductNotFound
}

func (m *MockProductRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Product, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockProductRepository) List(ctx context.Context, search string, limit, offset int) ([]*domain.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, search, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Product
	for _, p := range m.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockProductRepository) Count(ctx context.Context, search string) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, search)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.products)), nil
}

func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	m.products[product.ID] = product
	return nil
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *MockProductRepository) AdjustStock(ctx context.Context, tx usecase.Transaction, id string, delta int64, updatedAt time.Time) error {
	if m.AdjustStockFunc != nil {
		return m.AdjustStockFunc(ctx, tx, id, delta, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.StockQty += delta
	p.UpdatedAt = updatedAt
	return nil
}

func (m *MockProductRepository) ExpiringBefore(ctx context.Context, cutoff time.Time) ([]*domain.Product, error) {
	if m.ExpiringBeforeFunc != nil {
		return m.ExpiringBeforeFunc(ctx, cutoff)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Product
	for _, p := range m.products {
		if p.ExpiryDate != nil && !p.ExpiryDate.After(cutoff) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpiryDate.Before(*out[j].ExpiryDate) })
	return out, nil
}

func (m *MockProductRepository) LowStock(ctx context.Context) ([]*domain.Product, error) {
	if m.LowStockFunc != nil {
		return m.LowStockFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Product
	for _, p := range m.products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// MockCustomerRepository is an in-memory CustomerRepository.
type MockCustomerRepository struct {
	CreateFunc  func(ctx context.Context, customer *domain.Customer) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Customer, error)
	ListFunc    func(ctx context.Context, search string, limit, offset int) ([]*domain.Customer, error)
	CountFunc   func(ctx context.Context, search string) (int64, error)
	UpdateFunc  func(ctx context.Context, customer *domain.Customer) error
	DeleteFunc  func(ctx context.Context, id string) error

	mu        sync.RWMutex
	customers map[string]*domain.Customer
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{customers: make(map[string]*domain.Customer)}
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, customer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.customers {
		if c.ContactNumber == customer.ContactNumber {
			return domain.ErrDuplicateContactNumber
		}
	}
	m.customers[customer.ID] = customer
	return nil
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.customers[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (m *MockCustomerRepository) List(ctx context.Context, search string, limit, offset int) ([]*domain.Customer, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, search, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Customer
	for _, c := range m.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockCustomerRepository) Count(ctx context.Context, search string) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, search)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.customers)), nil
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, customer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[customer.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	m.customers[customer.ID] = customer
	return nil
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(m.customers, id)
	return nil
}

// MockSupplierRepository is an in-memory SupplierRepository.
type MockSupplierRepository struct {
	CreateFunc  func(ctx context.Context, supplier *domain.Supplier) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Supplier, error)
	ListFunc    func(ctx context.Context, search string, limit, offset int) ([]*domain.Supplier, error)
	CountFunc   func(ctx context.Context, search string) (int64, error)
	UpdateFunc  func(ctx context.Context, supplier *domain.Supplier) error
	DeleteFunc  func(ctx context.Context, id string) error

	mu        sync.RWMutex
	suppliers map[string]*domain.Supplier
}

func NewMockSupplierRepository() *MockSupplierRepository {
	return &MockSupplierRepository{suppliers: make(map[string]*domain.Supplier)}
}

func (m *MockSupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, supplier)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.suppliers {
		if s.ContactNumber == supplier.ContactNumber {
			return domain.ErrDuplicateContactNumber
		}
	}
	m.suppliers[supplier.ID] = supplier
	return nil
}

func (m *MockSupplierRepository) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.suppliers[id]; ok {
		return s, nil
	}
	return nil, domain.ErrSupplierNotFound
}

func (m *MockSupplierRepository) List(ctx context.Context, search string, limit, offset int) ([]*domain.Supplier, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, search, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Supplier
	for _, s := range m.suppliers {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockSupplierRepository) Count(ctx context.Context, search string) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, search)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.suppliers)), nil
}

func (m *MockSupplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, supplier)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.suppliers[supplier.ID]; !ok {
		return domain.ErrSupplierNotFound
	}
	m.suppliers[supplier.ID] = supplier
	return nil
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.suppliers[id]; !ok {
		return domain.ErrSupplierNotFound
	}
	delete(m.suppliers, id)
	return nil
}

// MockOrderRepository is an in-memory OrderRepository.
type MockOrderRepository struct {
	CreateFunc       func(ctx context.Context, tx usecase.Transaction, order *domain.Order) error
	GetByIDFunc      func(ctx context.Context, id string) (*domain.Order, error)
	ListFunc         func(ctx context.Context, limit, offset int) ([]*domain.Order, error)
	CountFunc        func(ctx context.Context) (int64, error)
	UpdateStatusFunc func(ctx context.Context, tx usecase.Transaction, id string, from, to domain.OrderStatus, updatedAt time.Time) error

	mu     sync.RWMutex
	orders map[string]*domain.Order
}

func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{orders: make(map[string]*domain.Order)}
}

func (m *MockOrderRepository) Create(ctx context.Context, tx usecase.Transaction, order *domain.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, order)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[order.ID] = order
	return nil
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if o, ok := m.orders[id]; ok {
		return o, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (m *MockOrderRepository) List(ctx context.Context, limit, offset int) ([]*domain.Order, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Order
	for _, o := range m.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockOrderRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.orders)), nil
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, from, to domain.OrderStatus, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, tx, id, from, to, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if o.Status != from {
		return domain.ErrOrderNotCancellable
	}
	o.Status = to
	o.UpdatedAt = updatedAt
	return nil
}

// MockPurchaseRepository is an in-memory PurchaseRepository.
type MockPurchaseRepository struct {
	CreateFunc  func(ctx context.Context, tx usecase.Transaction, purchase *domain.Purchase) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Purchase, error)
	ListFunc    func(ctx context.Context, limit, offset int) ([]*domain.Purchase, error)
	CountFunc   func(ctx context.Context) (int64, error)

	mu        sync.RWMutex
	purchases map[string]*domain.Purchase
}

func NewMockPurchaseRepository() *MockPurchaseRepository {
	return &MockPurchaseRepository{purchases: make(map[string]*domain.Purchase)}
}

func (m *MockPurchaseRepository) Create(ctx context.Context, tx usecase.Transaction, purchase *domain.Purchase) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, purchase)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purchases[purchase.ID] = purchase
	return nil
}

func (m *MockPurchaseRepository) GetByID(ctx context.Context, id string) (*domain.Purchase, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.purchases[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPurchaseNotFound
}

func (m *MockPurchaseRepository) List(ctx context.Context, limit, offset int) ([]*domain.Purchase, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Purchase
	for _, p := range m.purchases {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockPurchaseRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.purchases)), nil
}

// MockUserRepository is an in-memory UserRepository.
type MockUserRepository struct {
	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	UpdateFunc     func(ctx context.Context, user *domain.User) error
	DeleteFunc     func(ctx context.Context, id string) error
	ListFunc       func(ctx context.Context, limit, offset int) ([]*domain.User, error)

	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.User
	for _, u := range m.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
