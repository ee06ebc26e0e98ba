package models

import (
	"github.com/shopspring/decimal"
)

// StockItem mirrors the inventory_items table.
// qty_on_hand carries a CHECK (qty_on_hand >= 0) constraint as a backstop for
// the service-level sufficiency checks.
type StockItem struct {
	ItemID    string          `db:"item_id"`
	RefCode   string          `db:"ref_code"`
	Name      string          `db:"name"`
	Category  string          `db:"category"`
	QtyOnHand int64           `db:"qty_on_hand"`
	BuyPrice  decimal.Decimal `db:"buy_price"`
	SellPrice decimal.Decimal `db:"sell_price"`
	AuditFields
}
