package dto

import (
	"github.com/shopspring/decimal"
)

// PDFLine is a line item as accepted by the PDF endpoints. The document
// endpoints render whatever the client posts, so every field is optional and
// quantity resolution mirrors the reference-report rules.
type PDFLine struct {
	RefCode    string          `json:"ref_code"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Quantity   int64           `json:"quantity"`
	InvoiceQty int64           `json:"invoiceQty"`
	QtyOnHand  int64           `json:"qty_on_hand"`
	BuyPrice   decimal.Decimal `json:"buy_price"`
	SellPrice  decimal.Decimal `json:"sell_price"`
}

// EffectiveQuantity prefers invoiceQty, then quantity, defaulting to 1.
func (l PDFLine) EffectiveQuantity() int64 {
	if l.InvoiceQty > 0 {
		return l.InvoiceQty
	}
	if l.Quantity > 0 {
		return l.Quantity
	}
	return 1
}

// PurchasePDFData is the purchaseData block of POST /generate-purchase-pdf.
type PurchasePDFData struct {
	PurchaseNumber string    `json:"purchaseNumber"`
	Supplier       string    `json:"supplier"`
	Date           string    `json:"date"`
	Items          []PDFLine `json:"items"`
}

// PurchasePDFRequest is the body of POST /generate-purchase-pdf.
type PurchasePDFRequest struct {
	PurchaseData *PurchasePDFData `json:"purchaseData"`
}

// SalesPDFData is the salesData block of POST /generate-sales-pdf.
type SalesPDFData struct {
	SalesNumber string          `json:"salesNumber"`
	Customer    string          `json:"customer"`
	Date        string          `json:"date"`
	Items       []PDFLine       `json:"items"`
	Total       decimal.Decimal `json:"total"`
}

// SalesPDFRequest is the body of POST /generate-sales-pdf.
type SalesPDFRequest struct {
	SalesData *SalesPDFData `json:"salesData"`
}

// ReferencePDFData is the referenceData block of POST /generate-reference-report-pdf.
type ReferencePDFData struct {
	ReportNumber string          `json:"reportNumber"`
	Date         string          `json:"date"`
	Items        []PDFLine       `json:"items"`
	Total        decimal.Decimal `json:"total"`
}

// ReferencePDFRequest is the body of POST /generate-reference-report-pdf.
type ReferencePDFRequest struct {
	ReferenceData *ReferencePDFData `json:"referenceData"`
}

// InventoryReportPDFData is the reportData block of POST /generate-inventory-report-pdf.
type InventoryReportPDFData struct {
	ID    string    `json:"id"`
	Date  string    `json:"date"`
	Items []PDFLine `json:"items"`
}

// InventoryReportPDFRequest is the body of POST /generate-inventory-report-pdf.
type InventoryReportPDFRequest struct {
	ReportData *InventoryReportPDFData `json:"reportData"`
}
