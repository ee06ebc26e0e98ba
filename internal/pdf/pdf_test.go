package pdf_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocklane/inventory_backend/internal/dto"
	"github.com/stocklane/inventory_backend/internal/pdf"
)

func sampleLines(n int) []dto.PDFLine {
	lines := make([]dto.PDFLine, n)
	for i := range lines {
		lines[i] = dto.PDFLine{
			RefCode:   "WID-001",
			Name:      "Widget",
			Category:  "Hardware",
			Quantity:  2,
			BuyPrice:  decimal.NewFromInt(10),
			SellPrice: decimal.NewFromInt(15),
		}
	}
	return lines
}

func TestRenderPurchaseOrder(t *testing.T) {
	data := &dto.PurchasePDFData{
		PurchaseNumber: "PUR-0000000000001",
		Supplier:       "Acme Supplies",
		Date:           "3/1/2025",
		Items:          sampleLines(3),
	}

	out, filename, err := pdf.RenderPurchaseOrder(data)
	require.NoError(t, err)
	assert.Equal(t, "purchase-order-PUR-0000000000001.pdf", filename)
	assert.True(t, len(out) > 0)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderSalesInvoice(t *testing.T) {
	data := &dto.SalesPDFData{
		SalesNumber: "SAL-0000000000002",
		Customer:    "Jane",
		Items:       sampleLines(1),
		Total:       decimal.NewFromInt(30),
	}

	out, filename, err := pdf.RenderSalesInvoice(data)
	require.NoError(t, err)
	assert.Equal(t, "sales-invoice-SAL-0000000000002.pdf", filename)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderReferenceReport_ManyRowsStayOnOnePage(t *testing.T) {
	data := &dto.ReferencePDFData{
		ReportNumber: "REF-0000000000003",
		Items:        sampleLines(40),
		Total:        decimal.NewFromInt(1200),
	}

	out, _, err := pdf.RenderReferenceReport(data)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderInventoryReport(t *testing.T) {
	items := sampleLines(2)
	items[0].QtyOnHand = 7
	data := &dto.InventoryReportPDFData{
		ID:    "report-1",
		Items: items,
	}

	out, filename, err := pdf.RenderInventoryReport(data)
	require.NoError(t, err)
	assert.Equal(t, "inventory-report-report-1.pdf", filename)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderPurchaseOrder_MissingNumberGetsTimestampName(t *testing.T) {
	data := &dto.PurchasePDFData{Supplier: "Acme", Items: sampleLines(1)}

	_, filename, err := pdf.RenderPurchaseOrder(data)
	require.NoError(t, err)
	assert.Contains(t, filename, "purchase-order-")
	assert.NotContains(t, filename, "PUR-")
}
