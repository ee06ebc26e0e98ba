package domain

import (
	"github.com/shopspring/decimal"
)

// TransactionKind discriminates stock movements.
type TransactionKind string

const (
	Purchase TransactionKind = "purchase"
	Sale     TransactionKind = "sale"
)

// Valid reports whether the kind is one of the known values.
func (k TransactionKind) Valid() bool {
	return k == Purchase || k == Sale
}

// DocPrefix returns the document-number prefix for the kind.
func (k TransactionKind) DocPrefix() string {
	if k == Purchase {
		return "PUR-"
	}
	return "SAL-"
}

// StockTransaction is an immutable record of a purchase or sale. Line items
// snapshot name and price at transaction time; they are never joined back to
// the live StockItem, so deleting an item leaves history intact.
type StockTransaction struct {
	TransactionID string          `json:"transactionID"`
	DocNumber     string          `json:"docNumber"` // e.g. PUR-0000000000001
	Kind          TransactionKind `json:"kind"`
	Counterparty  string          `json:"counterparty"` // supplier or customer, free text
	Date          string          `json:"date"`
	Lines         []TransactionLine `json:"lines"`
	Total         decimal.Decimal `json:"total"`
	AuditFields
}

// TransactionLine is one line item of a stock transaction.
type TransactionLine struct {
	LineID    string          `json:"lineID"`
	ItemID    string          `json:"itemID"`
	Name      string          `json:"name"`      // snapshot
	UnitPrice decimal.Decimal `json:"unitPrice"` // snapshot
	Quantity  int64           `json:"quantity"`  // always positive
}

// QuantityDelta returns the signed stock adjustment this line applies:
// positive for purchases, negative for sales.
func (l TransactionLine) QuantityDelta(kind TransactionKind) int64 {
	if kind == Sale {
		return -l.Quantity
	}
	return l.Quantity
}

// RecordResult reports the outcome of recording a transaction.
type RecordResult struct {
	TransactionID string
	DocNumber     string
	// SkippedItemIDs lists line-item references that no longer resolve to a
	// stock record. Their mutations were skipped, not failed.
	SkippedItemIDs []string
}
