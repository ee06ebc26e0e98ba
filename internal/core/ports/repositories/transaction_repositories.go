package repositories

import (
	"context"

	"github.com/stocklane/inventory_backend/internal/core/domain"
)

// TransactionRepository persists stock transactions and applies their stock
// mutations. RecordTransaction is the write path the whole system hinges on.
type TransactionRepository interface {
	// RecordTransaction inserts the header and lines and applies every line's
	// quantity delta inside one database transaction. For sales it verifies
	// sufficiency for all lines before writing anything; on a violation it
	// returns apperrors.ErrInsufficientStock wrapped with the item name and
	// leaves no partial state. Line items whose itemID no longer resolves are
	// skipped (not failed) and reported in the result.
	RecordTransaction(ctx context.Context, txn domain.StockTransaction) (*domain.RecordResult, error)
	FindTransactionByID(ctx context.Context, kind domain.TransactionKind, transactionID string) (*domain.StockTransaction, error)
	// ListTransactions returns all records of the kind, newest first.
	ListTransactions(ctx context.Context, kind domain.TransactionKind) ([]domain.StockTransaction, error)
	// DeleteTransaction removes the record without reversing stock.
	DeleteTransaction(ctx context.Context, kind domain.TransactionKind, transactionID string) error
	// DeleteAllTransactions removes every record of both kinds (account deletion).
	DeleteAllTransactions(ctx context.Context) error
}
