package mapping

import (
	"github.com/stocklane/inventory_backend/internal/core/domain"
	"github.com/stocklane/inventory_backend/internal/models"
)

// ToModelReferenceReport converts a domain ReferenceReport header to its model.
func ToModelReferenceReport(d domain.ReferenceReport) models.ReferenceReport {
	return models.ReferenceReport{
		ReportID:     d.ReportID,
		ReportNumber: d.ReportNumber,
		ReportDate:   d.Date,
		Total:        d.Total,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToModelReferenceReportLine converts a domain line at position lineNo.
func ToModelReferenceReportLine(reportID string, lineNo int, d domain.ReferenceReportLine) models.ReferenceReportLine {
	return models.ReferenceReportLine{
		LineID:    d.LineID,
		ReportID:  reportID,
		ItemID:    d.ItemID,
		RefCode:   d.RefCode,
		Name:      d.Name,
		Category:  d.Category,
		Quantity:  d.Quantity,
		SellPrice: d.SellPrice,
		LineNo:    lineNo,
	}
}

// ToDomainReferenceReport assembles a domain report from its header and lines.
func ToDomainReferenceReport(m models.ReferenceReport, lines []models.ReferenceReportLine) domain.ReferenceReport {
	domainLines := make([]domain.ReferenceReportLine, len(lines))
	for i, l := range lines {
		domainLines[i] = domain.ReferenceReportLine{
			LineID:    l.LineID,
			ItemID:    l.ItemID,
			RefCode:   l.RefCode,
			Name:      l.Name,
			Category:  l.Category,
			Quantity:  l.Quantity,
			SellPrice: l.SellPrice,
		}
	}
	return domain.ReferenceReport{
		ReportID:     m.ReportID,
		ReportNumber: m.ReportNumber,
		Date:         m.ReportDate,
		Lines:        domainLines,
		Total:        m.Total,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelStatement converts a domain Statement to its model.
func ToModelStatement(d domain.Statement) models.Statement {
	return models.Statement{
		StatementID: d.StatementID,
		Title:       d.Title,
		PeriodFrom:  d.PeriodFrom,
		PeriodTo:    d.PeriodTo,
		Payload:     d.Payload,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStatement converts a model Statement to its domain form.
func ToDomainStatement(m models.Statement) domain.Statement {
	return domain.Statement{
		StatementID: m.StatementID,
		Title:       m.Title,
		PeriodFrom:  m.PeriodFrom,
		PeriodTo:    m.PeriodTo,
		Payload:     m.Payload,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStatementSlice converts a slice of model Statements to domain Statements.
func ToDomainStatementSlice(ms []models.Statement) []domain.Statement {
	ds := make([]domain.Statement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStatement(m)
	}
	return ds
}
