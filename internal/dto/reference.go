package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stocklane/inventory_backend/internal/core/domain"
)

// ReferenceLine is one item on a reference report. Clients built on the
// reference page send invoiceQty; clients reusing inventory rows send
// quantity. EffectiveQuantity resolves the pair the way the original did.
type ReferenceLine struct {
	ItemID     string          `json:"itemId,omitempty"`
	RefCode    string          `json:"ref_code"`
	Name       string          `json:"name" binding:"required"`
	Category   string          `json:"category"`
	Quantity   int64           `json:"quantity,omitempty"`
	InvoiceQty int64           `json:"invoiceQty,omitempty"`
	SellPrice  decimal.Decimal `json:"sell_price"`
}

// EffectiveQuantity prefers invoiceQty over quantity, defaulting to 1.
func (l ReferenceLine) EffectiveQuantity() int64 {
	if l.InvoiceQty > 0 {
		return l.InvoiceQty
	}
	if l.Quantity > 0 {
		return l.Quantity
	}
	return 1
}

// ReferenceData is the referenceData block of POST /api/reference-reports/add.
type ReferenceData struct {
	Date  string          `json:"date"`
	Items []ReferenceLine `json:"items" binding:"required,min=1,dive"`
	Total decimal.Decimal `json:"total"`
}

// CreateReferenceReportRequest is the body of POST /api/reference-reports/add.
type CreateReferenceReportRequest struct {
	ReferenceData ReferenceData `json:"referenceData" binding:"required"`
}

// ReferenceReportResponse is a stored reference report on the wire.
type ReferenceReportResponse struct {
	ID           string          `json:"id"`
	ReportNumber string          `json:"reportNumber"`
	Date         string          `json:"date"`
	Items        []ReferenceLine `json:"items"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// CreateReferenceReportResponse is returned after saving a report.
type CreateReferenceReportResponse struct {
	Message       string                  `json:"message"`
	ReportNumber  string                  `json:"reportNumber"`
	ReferenceData ReferenceReportResponse `json:"referenceData"`
	ID            string                  `json:"id"`
}

// ToReferenceReportResponse converts a domain ReferenceReport to its wire form.
func ToReferenceReportResponse(r *domain.ReferenceReport) ReferenceReportResponse {
	items := make([]ReferenceLine, len(r.Lines))
	for i, l := range r.Lines {
		items[i] = ReferenceLine{
			ItemID:    l.ItemID,
			RefCode:   l.RefCode,
			Name:      l.Name,
			Category:  l.Category,
			Quantity:  l.Quantity,
			SellPrice: l.SellPrice,
		}
	}
	return ReferenceReportResponse{
		ID:           r.ReportID,
		ReportNumber: r.ReportNumber,
		Date:         r.Date,
		Items:        items,
		Total:        r.Total,
		CreatedAt:    r.CreatedAt,
	}
}

// ToReferenceReportResponseSlice converts a slice of domain reports.
func ToReferenceReportResponseSlice(rs []domain.ReferenceReport) []ReferenceReportResponse {
	out := make([]ReferenceReportResponse, len(rs))
	for i := range rs {
		out[i] = ToReferenceReportResponse(&rs[i])
	}
	return out
}
