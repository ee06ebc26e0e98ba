package services

import (
	"context"

	"github.com/stocklane/inventory_backend/internal/core/domain"
	"github.com/stocklane/inventory_backend/internal/dto"
)

// InventorySvcFacade exposes stock item CRUD and search.
type InventorySvcFacade interface {
	AddItem(ctx context.Context, req dto.StockItemPayload, userID string) (*domain.StockItem, error)
	SearchItems(ctx context.Context, params dto.SearchItemsParams) ([]domain.StockItem, error)
	UpdateItem(ctx context.Context, itemID string, req dto.StockItemPayload, userID string) (*domain.StockItem, error)
	DeleteItem(ctx context.Context, itemID string) error
}
