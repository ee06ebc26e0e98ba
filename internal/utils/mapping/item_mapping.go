package mapping

import (
	"github.com/stocklane/inventory_backend/internal/core/domain"
	"github.com/stocklane/inventory_backend/internal/models"
)

// ToModelStockItem converts a domain StockItem to a model StockItem
func ToModelStockItem(d domain.StockItem) models.StockItem {
	return models.StockItem{
		ItemID:      d.ItemID,
		RefCode:     d.RefCode,
		Name:        d.Name,
		Category:    d.Category,
		QtyOnHand:   d.QtyOnHand,
		BuyPrice:    d.BuyPrice,
		SellPrice:   d.SellPrice,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStockItem converts a model StockItem to a domain StockItem
func ToDomainStockItem(m models.StockItem) domain.StockItem {
	return domain.StockItem{
		ItemID:      m.ItemID,
		RefCode:     m.RefCode,
		Name:        m.Name,
		Category:    m.Category,
		QtyOnHand:   m.QtyOnHand,
		BuyPrice:    m.BuyPrice,
		SellPrice:   m.SellPrice,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStockItemSlice converts a slice of model StockItems to domain StockItems
func ToDomainStockItemSlice(ms []models.StockItem) []domain.StockItem {
	ds := make([]domain.StockItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockItem(m)
	}
	return ds
}
