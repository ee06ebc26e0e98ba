package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stocklane/inventory_backend/internal/apperrors"
	"github.com/stocklane/inventory_backend/internal/cache"
	"github.com/stocklane/inventory_backend/internal/core/domain"
	portsrepo "github.com/stocklane/inventory_backend/internal/core/ports/repositories"
	portssvc "github.com/stocklane/inventory_backend/internal/core/ports/services"
	"github.com/stocklane/inventory_backend/internal/dto"
	"github.com/stocklane/inventory_backend/internal/middleware"
)

const searchDateLayout = "2006-01-02"

// inventoryService provides stock item CRUD and search.
type inventoryService struct {
	itemRepo    portsrepo.ItemRepository
	searchCache cache.SearchCache
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(itemRepo portsrepo.ItemRepository, searchCache cache.SearchCache) portssvc.InventorySvcFacade {
	return &inventoryService{
		itemRepo:    itemRepo,
		searchCache: searchCache,
	}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// validateItemPayload rejects prices gin binding tags cannot check; decimal
// fields carry no min constraint.
func validateItemPayload(req dto.StockItemPayload) error {
	if req.BuyPrice.IsNegative() || req.SellPrice.IsNegative() {
		return apperrors.NewAppError(400, "buy_price and sell_price must be non-negative", apperrors.ErrValidation)
	}
	return nil
}

func (s *inventoryService) AddItem(ctx context.Context, req dto.StockItemPayload, creatorUserID string) (*domain.StockItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateItemPayload(req); err != nil {
		return nil, err
	}
	now := time.Now()

	item := domain.StockItem{
		ItemID:    uuid.NewString(),
		RefCode:   req.RefCode,
		Name:      req.Name,
		Category:  req.Category,
		QtyOnHand: req.QtyOnHand,
		BuyPrice:  req.BuyPrice,
		SellPrice: req.SellPrice,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add stock item: %w", err)
	}

	s.invalidateSearchCache(ctx)
	logger.Info("stock item added", slog.String("item_id", item.ItemID), slog.String("ref_code", item.RefCode))
	return &item, nil
}

// SearchItems resolves the query parameters into a filter and serves results
// from the cache when an identical search was done recently.
func (s *inventoryService) SearchItems(ctx context.Context, params dto.SearchItemsParams) ([]domain.StockItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	filter, err := buildSearchFilter(params)
	if err != nil {
		return nil, err
	}

	if cached, ok, err := s.searchCache.Get(ctx, filter); err != nil {
		logger.Warn("search cache read failed", slog.String("error", err.Error()))
	} else if ok {
		return cached, nil
	}

	items, err := s.itemRepo.SearchItems(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search stock items: %w", err)
	}
	if items == nil {
		items = []domain.StockItem{}
	}

	if err := s.searchCache.Set(ctx, filter, items); err != nil {
		logger.Warn("search cache write failed", slog.String("error", err.Error()))
	}

	return items, nil
}

// buildSearchFilter parses the date range. dateTo is inclusive, so it extends
// to the end of the named day.
func buildSearchFilter(params dto.SearchItemsParams) (domain.ItemSearchFilter, error) {
	filter := domain.ItemSearchFilter{
		Search: params.Search,
		Limit:  params.Limit,
	}
	if params.DateFrom != "" {
		from, err := time.Parse(searchDateLayout, params.DateFrom)
		if err != nil {
			return domain.ItemSearchFilter{}, apperrors.NewAppError(400, "invalid dateFrom, expected YYYY-MM-DD", apperrors.ErrValidation)
		}
		filter.CreatedFrom = &from
	}
	if params.DateTo != "" {
		to, err := time.Parse(searchDateLayout, params.DateTo)
		if err != nil {
			return domain.ItemSearchFilter{}, apperrors.NewAppError(400, "invalid dateTo, expected YYYY-MM-DD", apperrors.ErrValidation)
		}
		endOfDay := to.Add(24*time.Hour - time.Millisecond)
		filter.CreatedTo = &endOfDay
	}
	return filter, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, itemID string, req dto.StockItemPayload, updaterUserID string) (*domain.StockItem, error) {
	if err := validateItemPayload(req); err != nil {
		return nil, err
	}

	existing, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	existing.RefCode = req.RefCode
	existing.Name = req.Name
	existing.Category = req.Category
	existing.QtyOnHand = req.QtyOnHand
	existing.BuyPrice = req.BuyPrice
	existing.SellPrice = req.SellPrice
	existing.LastUpdatedAt = time.Now()
	existing.LastUpdatedBy = updaterUserID

	if err := s.itemRepo.UpdateItem(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update stock item: %w", err)
	}

	s.invalidateSearchCache(ctx)
	return existing, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, itemID string) error {
	if err := s.itemRepo.DeleteItem(ctx, itemID); err != nil {
		return err
	}
	s.invalidateSearchCache(ctx)
	return nil
}

// invalidateSearchCache drops cached search results after any write. A stale
// cache is tolerable for at most the TTL; a write makes it wrong immediately.
func (s *inventoryService) invalidateSearchCache(ctx context.Context) {
	if err := s.searchCache.Invalidate(ctx); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("search cache invalidation failed", slog.String("error", err.Error()))
	}
}
