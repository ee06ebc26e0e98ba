// Package pdf renders the printable A4 documents: purchase orders, sales
// invoices, reference reports and inventory reports. Each renderer caps the
// table at a single page and notes how many rows were cut.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/stocklane/inventory_backend/internal/dto"
)

// maxRows is the per-document row cap; inventory reports use a denser table.
const (
	maxRows          = 15
	maxInventoryRows = 20
)

type rgb struct{ r, g, b int }

var (
	colorBlue   = rgb{0x3b, 0x82, 0xf6}
	colorGreen  = rgb{0x10, 0xb9, 0x81}
	colorRed    = rgb{0xef, 0x44, 0x44}
	colorCyan   = rgb{0x06, 0xb6, 0xd4}
	colorSlate  = rgb{0x1e, 0x29, 0x3b}
	colorGray   = rgb{0x64, 0x74, 0x8b}
	colorRowAlt = rgb{0xf8, 0xfa, 0xfc}
	colorLine   = rgb{0xe2, 0xe8, 0xf0}
)

func money(d decimal.Decimal) string {
	return "RM " + d.StringFixed(2)
}

func orToday(date string) string {
	if date != "" {
		return date
	}
	return time.Now().Format("1/2/2006")
}

func newDoc() *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(18, 18, 18)
	doc.SetAutoPageBreak(false, 18)
	doc.AddPage()
	return doc
}

func setFill(doc *fpdf.Fpdf, c rgb)  { doc.SetFillColor(c.r, c.g, c.b) }
func setText(doc *fpdf.Fpdf, c rgb)  { doc.SetTextColor(c.r, c.g, c.b) }
func setDraw(doc *fpdf.Fpdf, c rgb)  { doc.SetDrawColor(c.r, c.g, c.b) }

// header draws the centered title banner and the separator rule.
func header(doc *fpdf.Fpdf, title string, accent rgb) {
	setText(doc, accent)
	doc.SetFont("Helvetica", "B", 24)
	doc.CellFormat(0, 12, title, "", 1, "C", false, 0, "")

	setText(doc, colorSlate)
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 5, "Inventory Management System", "", 1, "C", false, 0, "")
	doc.Ln(4)

	setDraw(doc, colorLine)
	doc.SetLineWidth(0.3)
	y := doc.GetY()
	doc.Line(18, y, 192, y)
	doc.Ln(6)
}

// labelValue draws "Label: value" with the value in the given color.
func labelValue(doc *fpdf.Fpdf, x, y float64, label, value string, valueColor rgb, bold bool) {
	doc.SetXY(x, y)
	setText(doc, colorSlate)
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(doc.GetStringWidth(label)+1, 6, label, "", 0, "L", false, 0, "")
	setText(doc, valueColor)
	style := ""
	if bold {
		style = "B"
	}
	doc.SetFont("Helvetica", style, 11)
	doc.CellFormat(0, 6, " "+value, "", 0, "L", false, 0, "")
}

func tableHeader(doc *fpdf.Fpdf, accent rgb, widths []float64, titles []string) {
	setFill(doc, accent)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 10)
	for i, title := range titles {
		doc.CellFormat(widths[i], 8, title, "", 0, "L", true, 0, "")
	}
	doc.Ln(-1)
}

func overflowNote(doc *fpdf.Fpdf, total, shown int) {
	if total <= shown {
		return
	}
	setText(doc, colorRed)
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(0, 6, fmt.Sprintf("* Showing first %d items only for single-page PDF", shown), "", 1, "L", false, 0, "")
}

func grandTotal(doc *fpdf.Fpdf, label string, amount decimal.Decimal, accent rgb) {
	doc.Ln(6)
	setDraw(doc, colorLine)
	y := doc.GetY()
	doc.Line(122, y, 192, y)
	doc.Ln(3)
	doc.SetX(122)
	setText(doc, colorSlate)
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(30, 7, label, "", 0, "L", false, 0, "")
	setText(doc, accent)
	doc.CellFormat(40, 7, money(amount), "", 1, "R", false, 0, "")
}

func output(doc *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPurchaseOrder renders a purchase order and returns the document bytes
// and the suggested attachment filename.
func RenderPurchaseOrder(data *dto.PurchasePDFData) ([]byte, string, error) {
	doc := newDoc()
	header(doc, "PURCHASE ORDER", colorGreen)

	number := data.PurchaseNumber
	if number == "" {
		number = "PUR-N/A"
	}
	y := doc.GetY()
	labelValue(doc, 18, y, "Purchase Number:", number, colorGreen, true)
	labelValue(doc, 110, y, "Supplier:", orNA(data.Supplier), colorGray, false)
	labelValue(doc, 18, y+7, "Order Date:", orToday(data.Date), colorGray, false)
	doc.SetY(y + 18)

	widths := []float64{62, 36, 18, 30, 28}
	tableHeader(doc, colorGreen, widths, []string{"Item", "REF Code", "Qty", "Buy Price", "Total"})

	shown := data.Items
	if len(shown) > maxRows {
		shown = shown[:maxRows]
	}
	totalCost := decimal.Zero
	doc.SetFont("Helvetica", "", 9)
	for i, item := range shown {
		qty := item.EffectiveQuantity()
		lineTotal := item.BuyPrice.Mul(decimal.NewFromInt(qty))
		totalCost = totalCost.Add(lineTotal)

		fill := i%2 == 0
		setFill(doc, colorRowAlt)
		setText(doc, colorSlate)
		doc.CellFormat(widths[0], 7, orUnnamed(item.Name), "", 0, "L", fill, 0, "")
		doc.CellFormat(widths[1], 7, orNA(item.RefCode), "", 0, "L", fill, 0, "")
		doc.CellFormat(widths[2], 7, fmt.Sprintf("%d", qty), "", 0, "L", fill, 0, "")
		doc.CellFormat(widths[3], 7, money(item.BuyPrice), "", 0, "L", fill, 0, "")
		doc.CellFormat(widths[4], 7, money(lineTotal), "", 1, "L", fill, 0, "")
	}
	overflowNote(doc, len(data.Items), len(shown))
	grandTotal(doc, "Total Cost:", totalCost, colorGreen)

	bytesOut, err := output(doc)
	if err != nil {
		return nil, "", err
	}
	return bytesOut, fmt.Sprintf("purchase-order-%s.pdf", fallbackName(data.PurchaseNumber)), nil
}

// RenderSalesInvoice renders a sales invoice.
func RenderSalesInvoice(data *dto.SalesPDFData) ([]byte, string, error) {
	doc := newDoc()
	header(doc, "SALES INVOICE", colorRed)

	number := data.SalesNumber
	if number == "" {
		number = "SAL-N/A"
	}
	y := doc.GetY()
	labelValue(doc, 18, y, "Sales Number:", number, colorRed, true)
	labelValue(doc, 110, y, "Customer:", orNA(data.Customer), colorGray, false)
	labelValue(doc, 18, y+7, "Sale Date:", orToday(data.Date), colorGray, false)
	doc.SetY(y + 18)

	widths := []float64{62, 36, 18, 30, 28}
	tableHeader(doc, colorRed, widths, []string{"Item", "REF Code", "Qty", "Sell Price", "Total"})

	shown := data.Items
	if len(shown) > maxRows {
		shown = shown[:maxRows]
	}
	doc.SetFont("Helvetica", "", 9)
	for i, item := range shown {
		qty := item.EffectiveQuantity()
		lineTotal := item.SellPrice.Mul(decimal.NewFromInt(qty))

		fill := i%2 == 0
		setFill(doc, colorRowAlt)
		setText(doc, colorSlate)
		doc.CellFormat(widths[0], 7, orUnnamed(item.Name), "", 0, "L", fill, 0, "")
		doc.CellFormat(widths[1], 7, orNA(item.RefCode), "", 0, "L", fill, 0, "")
		doc.CellFormat(widths[2], 7, fmt.Sprintf("%d", qty), "", 0, "L", fill, 0, "")
		doc.CellFormat(widths[3], 7, money(item.SellPrice), "", 0, "L", fill, 0, "")
		doc.CellFormat(widths[4], 7, money(lineTotal), "", 1, "L", fill, 0, "")
	}
	overflowNote(doc, len(data.Items), len(shown))
	grandTotal(doc, "Grand Total:", data.Total, colorRed)

	bytesOut, err := output(doc)
	if err != nil {
		return nil, "", err
	}
	return bytesOut, fmt.Sprintf("sales-invoice-%s.pdf", fallbackName(data.SalesNumber)), nil
}

// RenderReferenceReport renders a reference report. Rows carry a category
// subline, so they are taller than transaction rows.
func RenderReferenceReport(data *dto.ReferencePDFData) ([]byte, string, error) {
	doc := newDoc()
	header(doc, "REFERENCE REPORT", colorBlue)

	number := data.ReportNumber
	if number == "" {
		number = "REF-N/A"
	}
	y := doc.GetY()
	labelValue(doc, 18, y, "Reference Number:", number, colorBlue, true)
	labelValue(doc, 18, y+7, "Report Date:", orToday(data.Date), colorGray, false)
	doc.SetY(y + 18)

	widths := []float64{62, 40, 18, 28, 26}
	tableHeader(doc, colorBlue, widths, []string{"Item Description", "REF Code", "Qty", "Sell Price", "Total"})

	shown := data.Items
	if len(shown) > maxRows {
		shown = shown[:maxRows]
	}
	for i, item := range shown {
		qty := item.EffectiveQuantity()
		lineTotal := item.SellPrice.Mul(decimal.NewFromInt(qty))

		fill := i%2 == 0
		setFill(doc, colorRowAlt)
		setText(doc, colorSlate)
		doc.SetFont("Helvetica", "", 9)
		doc.CellFormat(widths[0], 6, orUnnamed(item.Name), "", 0, "L", fill, 0, "")
		doc.CellFormat(widths[1], 6, orNA(item.RefCode), "", 0, "L", fill, 0, "")
		doc.CellFormat(widths[2], 6, fmt.Sprintf("%d", qty), "", 0, "L", fill, 0, "")
		doc.CellFormat(widths[3], 6, money(item.SellPrice), "", 0, "L", fill, 0, "")
		doc.CellFormat(widths[4], 6, money(lineTotal), "", 1, "L", fill, 0, "")

		setText(doc, colorGray)
		doc.SetFont("Helvetica", "", 7)
		doc.CellFormat(0, 4, "Category: "+orNA(item.Category), "", 1, "L", fill, 0, "")
	}
	overflowNote(doc, len(data.Items), len(shown))
	grandTotal(doc, "Grand Total:", data.Total, colorBlue)

	bytesOut, err := output(doc)
	if err != nil {
		return nil, "", err
	}
	return bytesOut, fmt.Sprintf("reference-report-%s.pdf", fallbackName(data.ReportNumber)), nil
}

// RenderInventoryReport renders the stock valuation report with the summary box.
func RenderInventoryReport(data *dto.InventoryReportPDFData) ([]byte, string, error) {
	doc := newDoc()
	header(doc, "INVENTORY REPORT", colorCyan)

	y := doc.GetY()
	labelValue(doc, 18, y, "Report ID:", orNA(data.ID), colorGray, false)
	labelValue(doc, 110, y, "Total Items:", fmt.Sprintf("%d", len(data.Items)), colorGray, false)
	labelValue(doc, 18, y+7, "Generated:", orToday(data.Date), colorGray, false)
	doc.SetY(y + 18)

	widths := []float64{8, 22, 42, 30, 14, 20, 20, 18}
	tableHeader(doc, colorCyan, widths, []string{"#", "REF Code", "Product Name", "Category", "Stock", "Buy", "Sell", "Value"})

	shown := data.Items
	if len(shown) > maxInventoryRows {
		shown = shown[:maxInventoryRows]
	}
	totalValue := decimal.Zero
	totalPotential := decimal.Zero
	var totalUnits int64
	doc.SetFont("Helvetica", "", 8)
	for i, item := range shown {
		qty := item.QtyOnHand
		if qty == 0 {
			qty = item.Quantity
		}
		value := item.BuyPrice.Mul(decimal.NewFromInt(qty))
		potential := item.SellPrice.Mul(decimal.NewFromInt(qty))
		totalValue = totalValue.Add(value)
		totalPotential = totalPotential.Add(potential)
		totalUnits += qty

		fill := i%2 == 0
		setFill(doc, colorRowAlt)
		setText(doc, colorSlate)
		doc.CellFormat(widths[0], 6, fmt.Sprintf("%d", i+1), "", 0, "L", fill, 0, "")
		doc.CellFormat(widths[1], 6, orNA(item.RefCode), "", 0, "L", fill, 0, "")
		doc.CellFormat(widths[2], 6, truncate(orUnnamed(item.Name), 22), "", 0, "L", fill, 0, "")
		doc.CellFormat(widths[3], 6, truncate(orNA(item.Category), 12), "", 0, "L", fill, 0, "")
		doc.CellFormat(widths[4], 6, fmt.Sprintf("%d", qty), "", 0, "L", fill, 0, "")
		doc.CellFormat(widths[5], 6, money(item.BuyPrice), "", 0, "L", fill, 0, "")
		doc.CellFormat(widths[6], 6, money(item.SellPrice), "", 0, "L", fill, 0, "")
		doc.CellFormat(widths[7], 6, money(value), "", 1, "L", fill, 0, "")
	}
	overflowNote(doc, len(data.Items), len(shown))

	// Summary box
	doc.Ln(8)
	boxY := doc.GetY()
	setFill(doc, colorRowAlt)
	setDraw(doc, colorLine)
	doc.Rect(18, boxY, 174, 34, "FD")

	doc.SetXY(20, boxY+4)
	setText(doc, colorSlate)
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 6, "INVENTORY SUMMARY", "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	summary := func(x, y float64, label, value string, valueColor rgb) {
		doc.SetXY(x, y)
		setText(doc, colorGray)
		doc.CellFormat(doc.GetStringWidth(label)+1, 5, label, "", 0, "L", false, 0, "")
		setText(doc, valueColor)
		doc.CellFormat(0, 5, " "+value, "", 0, "L", false, 0, "")
	}
	summary(20, boxY+13, "Total Items in Report:", fmt.Sprintf("%d products", len(data.Items)), colorSlate)
	summary(20, boxY+20, "Total Stock Quantity:", fmt.Sprintf("%d units", totalUnits), colorSlate)
	summary(105, boxY+13, "Total Inventory Value:", money(totalValue), colorRed)
	summary(105, boxY+20, "Profit Potential:", money(totalPotential.Sub(totalValue)), colorBlue)

	bytesOut, err := output(doc)
	if err != nil {
		return nil, "", err
	}
	return bytesOut, fmt.Sprintf("inventory-report-%s.pdf", fallbackName(data.ID)), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func orUnnamed(s string) string {
	if s == "" {
		return "Unnamed Item"
	}
	return s
}

// truncate cuts on rune boundaries so multi-byte names never split mid-rune.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// fallbackName keeps attachment names stable when the document number is absent.
func fallbackName(number string) string {
	if number != "" {
		return number
	}
	return fmt.Sprintf("%d", time.Now().UnixMilli())
}
