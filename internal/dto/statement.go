package dto

import (
	"encoding/json"
	"time"

	"github.com/stocklane/inventory_backend/internal/core/domain"
)

// AddStatementRequest is the body of POST /api/statements/add. The reportData
// payload is stored as submitted; title and period fields are lifted out of it
// when present.
type AddStatementRequest struct {
	ReportData json.RawMessage `json:"reportData" binding:"required"`
}

// StatementHeader are the well-known keys lifted from a statement payload.
type StatementHeader struct {
	Title      string `json:"title"`
	PeriodFrom string `json:"periodFrom"`
	PeriodTo   string `json:"periodTo"`
}

// StatementResponse is a stored statement on the wire.
type StatementResponse struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	PeriodFrom string          `json:"periodFrom"`
	PeriodTo   string          `json:"periodTo"`
	ReportData json.RawMessage `json:"reportData"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToStatementResponse converts a domain Statement to its wire form.
func ToStatementResponse(s *domain.Statement) StatementResponse {
	return StatementResponse{
		ID:         s.StatementID,
		Title:      s.Title,
		PeriodFrom: s.PeriodFrom,
		PeriodTo:   s.PeriodTo,
		ReportData: s.Payload,
		CreatedAt:  s.CreatedAt,
	}
}

// ToStatementResponseSlice converts a slice of domain statements.
func ToStatementResponseSlice(ss []domain.Statement) []StatementResponse {
	out := make([]StatementResponse, len(ss))
	for i := range ss {
		out[i] = ToStatementResponse(&ss[i])
	}
	return out
}
