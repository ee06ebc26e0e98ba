package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ReferenceReport is an itemized pricing report with a minted REF- number.
type ReferenceReport struct {
	ReportID     string                `json:"reportID"`
	ReportNumber string                `json:"reportNumber"` // e.g. REF-0000000000001
	Date         string                `json:"date"`
	Lines        []ReferenceReportLine `json:"lines"`
	Total        decimal.Decimal       `json:"total"`
	AuditFields
}

// ReferenceReportLine snapshots one item on a reference report.
type ReferenceReportLine struct {
	LineID    string          `json:"lineID"`
	ItemID    string          `json:"itemID"`
	RefCode   string          `json:"refCode"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Quantity  int64           `json:"quantity"`
	SellPrice decimal.Decimal `json:"sellPrice"`
}

// Statement is a saved report. The payload keeps whatever shape the client
// submitted; it is stored opaquely and echoed back on read.
type Statement struct {
	StatementID string          `json:"statementID"`
	Title       string          `json:"title"`
	PeriodFrom  string          `json:"periodFrom"`
	PeriodTo    string          `json:"periodTo"`
	Payload     json.RawMessage `json:"payload"`
	AuditFields
}
