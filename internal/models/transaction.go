package models

import (
	"github.com/shopspring/decimal"
)

// StockTransaction mirrors the stock_transactions table.
type StockTransaction struct {
	TransactionID string          `db:"transaction_id"`
	DocNumber     string          `db:"doc_number"`
	Kind          string          `db:"kind"`
	Counterparty  string          `db:"counterparty"`
	TxnDate       string          `db:"txn_date"`
	Total         decimal.Decimal `db:"total"`
	AuditFields
}

// TransactionLine mirrors the stock_transaction_lines table. item_id has no
// foreign key on purpose: items are deletable and orphaned snapshots are legal.
type TransactionLine struct {
	LineID        string          `db:"line_id"`
	TransactionID string          `db:"transaction_id"`
	ItemID        string          `db:"item_id"`
	Name          string          `db:"name"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	Quantity      int64           `db:"quantity"`
	LineNo        int             `db:"line_no"`
}
