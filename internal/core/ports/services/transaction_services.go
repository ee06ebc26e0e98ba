package services

import (
	"context"

	"github.com/stocklane/inventory_backend/internal/core/domain"
	"github.com/stocklane/inventory_backend/internal/dto"
)

// TransactionSvcFacade records and reads purchases and sales.
type TransactionSvcFacade interface {
	// RecordPurchase mints a PUR- document number, persists the transaction
	// and increments stock for every resolvable line, atomically.
	RecordPurchase(ctx context.Context, data dto.PurchaseData, userID string) (*domain.StockTransaction, *domain.RecordResult, error)
	// RecordSale mints a SAL- document number, verifies stock sufficiency for
	// every line before any mutation, then persists and decrements atomically.
	// Returns apperrors.ErrInsufficientStock naming the first offending item.
	RecordSale(ctx context.Context, data dto.SalesData, userID string) (*domain.StockTransaction, *domain.RecordResult, error)
	GetTransaction(ctx context.Context, kind domain.TransactionKind, transactionID string) (*domain.StockTransaction, error)
	ListTransactions(ctx context.Context, kind domain.TransactionKind) ([]domain.StockTransaction, error)
	// DeleteTransaction removes the record. Stock is NOT reversed.
	DeleteTransaction(ctx context.Context, kind domain.TransactionKind, transactionID string) error
}

// SequenceSvcFacade mints human-readable document numbers.
type SequenceSvcFacade interface {
	// NextDocumentNumber returns the next zero-padded 13-digit value for the
	// category. It never fails: when the store increment is unavailable it
	// falls back to a wall-clock-derived value, which sacrifices the
	// no-reuse guarantee and is logged as a degraded allocation.
	NextDocumentNumber(ctx context.Context, category string) string
}
