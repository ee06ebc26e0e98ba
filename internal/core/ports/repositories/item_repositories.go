package repositories

import (
	"context"

	"github.com/stocklane/inventory_backend/internal/core/domain"
)

// ItemRepository provides access to stock item persistence.
type ItemRepository interface {
	SaveItem(ctx context.Context, item domain.StockItem) error
	FindItemByID(ctx context.Context, itemID string) (*domain.StockItem, error)
	// SearchItems applies the filter's substring and date-range predicates.
	SearchItems(ctx context.Context, filter domain.ItemSearchFilter) ([]domain.StockItem, error)
	// UpdateItem replaces all mutable fields; ItemID and CreatedAt are immutable.
	UpdateItem(ctx context.Context, item domain.StockItem) error
	// DeleteItem removes the record. Historical transaction snapshots that
	// reference it are untouched.
	DeleteItem(ctx context.Context, itemID string) error
}
