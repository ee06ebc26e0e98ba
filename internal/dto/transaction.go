package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stocklane/inventory_backend/internal/core/domain"
)

// LineItem is one line of a purchase or sale as submitted by clients. Clients
// send buy_price on purchases and sell_price on sales; the matching one is the
// snapshot price for the line.
type LineItem struct {
	ItemID    string          `json:"itemId" binding:"required"`
	RefCode   string          `json:"ref_code,omitempty"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	BuyPrice  decimal.Decimal `json:"buy_price,omitempty"`
	SellPrice decimal.Decimal `json:"sell_price,omitempty"`
}

// UnitPrice returns the snapshot price appropriate for the transaction kind.
func (l LineItem) UnitPrice(kind domain.TransactionKind) decimal.Decimal {
	if kind == domain.Purchase {
		return l.BuyPrice
	}
	return l.SellPrice
}

// PurchaseData is the purchaseData block of POST /api/purchases.
type PurchaseData struct {
	Supplier string          `json:"supplier" binding:"required"`
	Date     string          `json:"date"`
	Items    []LineItem      `json:"items" binding:"required,min=1,dive"`
	Total    decimal.Decimal `json:"total"`
}

// CreatePurchaseRequest is the body of POST /api/purchases.
type CreatePurchaseRequest struct {
	PurchaseData PurchaseData `json:"purchaseData" binding:"required"`
}

// SalesData is the salesData block of POST /api/sales.
type SalesData struct {
	Customer string          `json:"customer" binding:"required"`
	Date     string          `json:"date"`
	Items    []LineItem      `json:"items" binding:"required,min=1,dive"`
	Total    decimal.Decimal `json:"total"`
}

// CreateSalesRequest is the body of POST /api/sales.
type CreateSalesRequest struct {
	SalesData SalesData `json:"salesData" binding:"required"`
}

// TransactionLineResponse is one recorded line item.
type TransactionLineResponse struct {
	ItemID    string          `json:"itemId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int64           `json:"quantity"`
}

// PurchaseResponse is the body returned for a recorded purchase.
type PurchaseResponse struct {
	Message        string              `json:"message"`
	PurchaseNumber string              `json:"purchaseNumber"`
	PurchaseData   TransactionDetails  `json:"purchaseData"`
	ID             string              `json:"id"`
}

// SalesResponse is the body returned for a recorded sale.
type SalesResponse struct {
	Message     string             `json:"message"`
	SalesNumber string             `json:"salesNumber"`
	SalesData   TransactionDetails `json:"salesData"`
	ID          string             `json:"id"`
}

// TransactionDetails is a recorded transaction as returned by list/get
// endpoints and echoed inside create responses. PurchaseNumber and SalesNumber
// are populated according to the kind, matching the original wire shape.
type TransactionDetails struct {
	ID             string                    `json:"id"`
	PurchaseNumber string                    `json:"purchaseNumber,omitempty"`
	SalesNumber    string                    `json:"salesNumber,omitempty"`
	Type           string                    `json:"type"`
	Supplier       string                    `json:"supplier,omitempty"`
	Customer       string                    `json:"customer,omitempty"`
	Date           string                    `json:"date"`
	Items          []TransactionLineResponse `json:"items"`
	Total          decimal.Decimal           `json:"total"`
	CreatedAt      time.Time                 `json:"createdAt"`
}

// ToTransactionDetails converts a domain StockTransaction to its wire form.
func ToTransactionDetails(txn *domain.StockTransaction) TransactionDetails {
	items := make([]TransactionLineResponse, len(txn.Lines))
	for i, l := range txn.Lines {
		items[i] = TransactionLineResponse{
			ItemID:    l.ItemID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		}
	}

	d := TransactionDetails{
		ID:        txn.TransactionID,
		Type:      string(txn.Kind),
		Date:      txn.Date,
		Items:     items,
		Total:     txn.Total,
		CreatedAt: txn.CreatedAt,
	}
	if txn.Kind == domain.Purchase {
		d.PurchaseNumber = txn.DocNumber
		d.Supplier = txn.Counterparty
	} else {
		d.SalesNumber = txn.DocNumber
		d.Customer = txn.Counterparty
	}
	return d
}

// ToTransactionDetailsSlice converts a slice of domain transactions.
func ToTransactionDetailsSlice(txns []domain.StockTransaction) []TransactionDetails {
	out := make([]TransactionDetails, len(txns))
	for i := range txns {
		out[i] = ToTransactionDetails(&txns[i])
	}
	return out
}
