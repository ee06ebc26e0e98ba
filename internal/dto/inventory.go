package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stocklane/inventory_backend/internal/core/domain"
)

// StockItemPayload carries the writable fields of a stock item. Field names
// follow the latest wire schema (ref_code/qty_on_hand/buy_price/sell_price).
type StockItemPayload struct {
	RefCode   string          `json:"ref_code" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Category  string          `json:"category"`
	QtyOnHand int64           `json:"qty_on_hand" binding:"min=0"`
	BuyPrice  decimal.Decimal `json:"buy_price"`
	SellPrice decimal.Decimal `json:"sell_price"`
}

// StockItemResponse is a stock item as returned by the inventory endpoints.
type StockItemResponse struct {
	ID        string          `json:"id"`
	RefCode   string          `json:"ref_code"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	QtyOnHand int64           `json:"qty_on_hand"`
	BuyPrice  decimal.Decimal `json:"buy_price"`
	SellPrice decimal.Decimal `json:"sell_price"`
	DateAdded string          `json:"dateAdded"`
	CreatedAt time.Time       `json:"createdAt"`
}

// SearchItemsParams binds the query string of GET /api/inventory.
type SearchItemsParams struct {
	Search   string `form:"search"`
	DateFrom string `form:"dateFrom"`
	DateTo   string `form:"dateTo"`
	Limit    int    `form:"limit"` // optional hardening knob; 0 = unlimited
}

// ToStockItemResponse converts a domain StockItem to its response form.
func ToStockItemResponse(item *domain.StockItem) StockItemResponse {
	return StockItemResponse{
		ID:        item.ItemID,
		RefCode:   item.RefCode,
		Name:      item.Name,
		Category:  item.Category,
		QtyOnHand: item.QtyOnHand,
		BuyPrice:  item.BuyPrice,
		SellPrice: item.SellPrice,
		DateAdded: item.CreatedAt.Format("1/2/2006"),
		CreatedAt: item.CreatedAt,
	}
}

// ToStockItemResponseSlice converts a slice of domain StockItems.
func ToStockItemResponseSlice(items []domain.StockItem) []StockItemResponse {
	out := make([]StockItemResponse, len(items))
	for i := range items {
		out[i] = ToStockItemResponse(&items[i])
	}
	return out
}
