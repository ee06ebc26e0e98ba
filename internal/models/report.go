package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ReferenceReport mirrors the reference_reports table.
type ReferenceReport struct {
	ReportID     string          `db:"report_id"`
	ReportNumber string          `db:"report_number"`
	ReportDate   string          `db:"report_date"`
	Total        decimal.Decimal `db:"total"`
	AuditFields
}

// ReferenceReportLine mirrors the reference_report_lines table.
type ReferenceReportLine struct {
	LineID    string          `db:"line_id"`
	ReportID  string          `db:"report_id"`
	ItemID    string          `db:"item_id"`
	RefCode   string          `db:"ref_code"`
	Name      string          `db:"name"`
	Category  string          `db:"category"`
	Quantity  int64           `db:"quantity"`
	SellPrice decimal.Decimal `db:"sell_price"`
	LineNo    int             `db:"line_no"`
}

// Statement mirrors the statements table. payload is stored as jsonb.
type Statement struct {
	StatementID string          `db:"statement_id"`
	Title       string          `db:"title"`
	PeriodFrom  string          `db:"period_from"`
	PeriodTo    string          `db:"period_to"`
	Payload     json.RawMessage `db:"payload"`
	AuditFields
}

// SequenceCounter mirrors the sequence_counters table.
type SequenceCounter struct {
	Name  string `db:"name"`
	Value int64  `db:"value"`
}
