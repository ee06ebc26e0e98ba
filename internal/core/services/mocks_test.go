package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stocklane/inventory_backend/internal/core/domain"
	portsrepo "github.com/stocklane/inventory_backend/internal/core/ports/repositories"
)

// --- Mock ItemRepository ---
type MockItemRepository struct {
	mock.Mock
}

var _ portsrepo.ItemRepository = (*MockItemRepository)(nil)

func (m *MockItemRepository) SaveItem(ctx context.Context, item domain.StockItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.StockItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockItem), args.Error(1)
}

func (m *MockItemRepository) SearchItems(ctx context.Context, filter domain.ItemSearchFilter) ([]domain.StockItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockItem), args.Error(1)
}

func (m *MockItemRepository) UpdateItem(ctx context.Context, item domain.StockItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepository = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) RecordTransaction(ctx context.Context, txn domain.StockTransaction) (*domain.RecordResult, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecordResult), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, kind domain.TransactionKind, transactionID string) (*domain.StockTransaction, error) {
	args := m.Called(ctx, kind, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockTransaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, kind domain.TransactionKind) ([]domain.StockTransaction, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockTransaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, kind domain.TransactionKind, transactionID string) error {
	args := m.Called(ctx, kind, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteAllTransactions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock SequenceRepository ---
type MockSequenceRepository struct {
	mock.Mock
}

var _ portsrepo.SequenceRepository = (*MockSequenceRepository)(nil)

func (m *MockSequenceRepository) NextValue(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, username string, passwordHash string) error {
	args := m.Called(ctx, username, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

// --- Mock LoginHistoryRepository ---
type MockLoginHistoryRepository struct {
	mock.Mock
}

var _ portsrepo.LoginHistoryRepository = (*MockLoginHistoryRepository)(nil)

func (m *MockLoginHistoryRepository) AppendEntry(ctx context.Context, entry domain.LoginHistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoginHistoryRepository) ListRecent(ctx context.Context, limit int) ([]domain.LoginHistoryEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoginHistoryEntry), args.Error(1)
}

func (m *MockLoginHistoryRepository) DeleteByUsername(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

// --- Mock ReferenceReportRepository ---
type MockReferenceReportRepository struct {
	mock.Mock
}

var _ portsrepo.ReferenceReportRepository = (*MockReferenceReportRepository)(nil)

func (m *MockReferenceReportRepository) SaveReport(ctx context.Context, report domain.ReferenceReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReferenceReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.ReferenceReport, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReferenceReport), args.Error(1)
}

func (m *MockReferenceReportRepository) ListReports(ctx context.Context) ([]domain.ReferenceReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReferenceReport), args.Error(1)
}

func (m *MockReferenceReportRepository) DeleteReport(ctx context.Context, reportID string) error {
	args := m.Called(ctx, reportID)
	return args.Error(0)
}

func (m *MockReferenceReportRepository) DeleteAllReports(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock StatementRepository ---
type MockStatementRepository struct {
	mock.Mock
}

var _ portsrepo.StatementRepository = (*MockStatementRepository)(nil)

func (m *MockStatementRepository) SaveStatement(ctx context.Context, statement domain.Statement) error {
	args := m.Called(ctx, statement)
	return args.Error(0)
}

func (m *MockStatementRepository) ListStatements(ctx context.Context) ([]domain.Statement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Statement), args.Error(1)
}

func (m *MockStatementRepository) DeleteStatement(ctx context.Context, statementID string) error {
	args := m.Called(ctx, statementID)
	return args.Error(0)
}

func (m *MockStatementRepository) DeleteAllStatements(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// fakeSearchCache is an in-memory stand-in for the Redis search cache.
type fakeSearchCache struct {
	entries     map[string][]domain.StockItem
	invalidated int
}

func newFakeSearchCache() *fakeSearchCache {
	return &fakeSearchCache{entries: map[string][]domain.StockItem{}}
}

func (c *fakeSearchCache) key(f domain.ItemSearchFilter) string {
	k := f.Search
	if f.CreatedFrom != nil {
		k += "|" + f.CreatedFrom.String()
	}
	if f.CreatedTo != nil {
		k += "|" + f.CreatedTo.String()
	}
	return k
}

func (c *fakeSearchCache) Get(ctx context.Context, filter domain.ItemSearchFilter) ([]domain.StockItem, bool, error) {
	items, ok := c.entries[c.key(filter)]
	return items, ok, nil
}

func (c *fakeSearchCache) Set(ctx context.Context, filter domain.ItemSearchFilter, items []domain.StockItem) error {
	c.entries[c.key(filter)] = items
	return nil
}

func (c *fakeSearchCache) Invalidate(ctx context.Context) error {
	c.entries = map[string][]domain.StockItem{}
	c.invalidated++
	return nil
}

func (c *fakeSearchCache) Close() error { return nil }
