package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stocklane/inventory_backend/internal/apperrors"
	"github.com/stocklane/inventory_backend/internal/cache"
	"github.com/stocklane/inventory_backend/internal/core/domain"
	portsrepo "github.com/stocklane/inventory_backend/internal/core/ports/repositories"
	portssvc "github.com/stocklane/inventory_backend/internal/core/ports/services"
	"github.com/stocklane/inventory_backend/internal/dto"
	"github.com/stocklane/inventory_backend/internal/middleware"
)

// transactionService records purchases and sales against the inventory.
type transactionService struct {
	transactionRepo portsrepo.TransactionRepository
	sequenceSvc     portssvc.SequenceSvcFacade
	searchCache     cache.SearchCache
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo portsrepo.TransactionRepository, sequenceSvc portssvc.SequenceSvcFacade, searchCache cache.SearchCache) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		sequenceSvc:     sequenceSvc,
		searchCache:     searchCache,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) RecordPurchase(ctx context.Context, data dto.PurchaseData, creatorUserID string) (*domain.StockTransaction, *domain.RecordResult, error) {
	return s.record(ctx, domain.Purchase, data.Supplier, data.Date, data.Items, data.Total, domain.SeqPurchases, creatorUserID)
}

func (s *transactionService) RecordSale(ctx context.Context, data dto.SalesData, creatorUserID string) (*domain.StockTransaction, *domain.RecordResult, error) {
	return s.record(ctx, domain.Sale, data.Customer, data.Date, data.Items, data.Total, domain.SeqSales, creatorUserID)
}

// record mints the document number, snapshots the submitted lines and hands
// the whole document to the repository for atomic persistence.
func (s *transactionService) record(ctx context.Context, kind domain.TransactionKind, counterparty, date string, items []dto.LineItem, total decimal.Decimal, seqCategory, creatorUserID string) (*domain.StockTransaction, *domain.RecordResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(items) == 0 {
		return nil, nil, apperrors.NewAppError(400, "transaction needs at least one line item", apperrors.ErrValidation)
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, nil, apperrors.NewAppError(400, "line item quantity must be positive", apperrors.ErrValidation)
		}
	}

	now := time.Now()
	if date == "" {
		date = now.Format("1/2/2006")
	}

	docNumber := kind.DocPrefix() + s.sequenceSvc.NextDocumentNumber(ctx, seqCategory)

	lines := make([]domain.TransactionLine, len(items))
	computedTotal := decimal.Zero
	for i, item := range items {
		unitPrice := item.UnitPrice(kind)
		lines[i] = domain.TransactionLine{
			LineID:    uuid.NewString(),
			ItemID:    item.ItemID,
			Name:      item.Name,
			UnitPrice: unitPrice,
			Quantity:  item.Quantity,
		}
		computedTotal = computedTotal.Add(unitPrice.Mul(decimal.NewFromInt(item.Quantity)))
	}
	if total.IsZero() {
		total = computedTotal
	}

	txn := domain.StockTransaction{
		TransactionID: uuid.NewString(),
		DocNumber:     docNumber,
		Kind:          kind,
		Counterparty:  counterparty,
		Date:          date,
		Lines:         lines,
		Total:         total,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	result, err := s.transactionRepo.RecordTransaction(ctx, txn)
	if err != nil {
		return nil, nil, err
	}

	if len(result.SkippedItemIDs) > 0 {
		logger.Warn("transaction lines referenced missing items, stock mutation skipped",
			slog.String("doc_number", docNumber),
			slog.Any("skipped_item_ids", result.SkippedItemIDs))
	}

	if err := s.searchCache.Invalidate(ctx); err != nil {
		logger.Warn("search cache invalidation failed", slog.String("error", err.Error()))
	}

	logger.Info("stock transaction recorded",
		slog.String("kind", string(kind)),
		slog.String("doc_number", docNumber),
		slog.Int("lines", len(lines)))
	return &txn, result, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, kind domain.TransactionKind, transactionID string) (*domain.StockTransaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, kind, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, kind domain.TransactionKind) ([]domain.StockTransaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx, kind)
	if err != nil {
		return nil, err
	}
	if txns == nil {
		txns = []domain.StockTransaction{}
	}
	return txns, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, kind domain.TransactionKind, transactionID string) error {
	return s.transactionRepo.DeleteTransaction(ctx, kind, transactionID)
}
