package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem represents a single tracked inventory record.
// RefCode is unique by convention only; the store does not enforce it.
type StockItem struct {
	ItemID    string          `json:"itemID"`
	RefCode   string          `json:"refCode"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	QtyOnHand int64           `json:"qtyOnHand"` // never negative after a committed transaction
	BuyPrice  decimal.Decimal `json:"buyPrice"`
	SellPrice decimal.Decimal `json:"sellPrice"`
	AuditFields
}

// ItemSearchFilter narrows inventory queries. Zero values mean "no constraint".
type ItemSearchFilter struct {
	// Search matches ref code, name and category case-insensitively (logical OR).
	Search string
	// CreatedFrom/CreatedTo bound the creation timestamp, inclusive. A
	// date-only upper bound is extended to end of day by the service before
	// it reaches the repository.
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	// Limit caps the result set; 0 returns everything (original contract).
	Limit int
}
