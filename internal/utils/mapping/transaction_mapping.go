package mapping

import (
	"github.com/stocklane/inventory_backend/internal/core/domain"
	"github.com/stocklane/inventory_backend/internal/models"
)

// ToModelStockTransaction converts a domain StockTransaction header to its model.
func ToModelStockTransaction(d domain.StockTransaction) models.StockTransaction {
	return models.StockTransaction{
		TransactionID: d.TransactionID,
		DocNumber:     d.DocNumber,
		Kind:          string(d.Kind),
		Counterparty:  d.Counterparty,
		TxnDate:       d.Date,
		Total:         d.Total,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToModelTransactionLine converts a domain line at position lineNo.
func ToModelTransactionLine(transactionID string, lineNo int, d domain.TransactionLine) models.TransactionLine {
	return models.TransactionLine{
		LineID:        d.LineID,
		TransactionID: transactionID,
		ItemID:        d.ItemID,
		Name:          d.Name,
		UnitPrice:     d.UnitPrice,
		Quantity:      d.Quantity,
		LineNo:        lineNo,
	}
}

// ToDomainStockTransaction assembles a domain transaction from its header and lines.
func ToDomainStockTransaction(m models.StockTransaction, lines []models.TransactionLine) domain.StockTransaction {
	domainLines := make([]domain.TransactionLine, len(lines))
	for i, l := range lines {
		domainLines[i] = domain.TransactionLine{
			LineID:    l.LineID,
			ItemID:    l.ItemID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		}
	}
	return domain.StockTransaction{
		TransactionID: m.TransactionID,
		DocNumber:     m.DocNumber,
		Kind:          domain.TransactionKind(m.Kind),
		Counterparty:  m.Counterparty,
		Date:          m.TxnDate,
		Lines:         domainLines,
		Total:         m.Total,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
