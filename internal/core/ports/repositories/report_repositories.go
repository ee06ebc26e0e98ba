package repositories

import (
	"context"

	"github.com/stocklane/inventory_backend/internal/core/domain"
)

// ReferenceReportRepository persists itemized reference reports.
type ReferenceReportRepository interface {
	SaveReport(ctx context.Context, report domain.ReferenceReport) error
	FindReportByID(ctx context.Context, reportID string) (*domain.ReferenceReport, error)
	ListReports(ctx context.Context) ([]domain.ReferenceReport, error)
	DeleteReport(ctx context.Context, reportID string) error
	DeleteAllReports(ctx context.Context) error
}

// StatementRepository persists saved statements.
type StatementRepository interface {
	SaveStatement(ctx context.Context, statement domain.Statement) error
	ListStatements(ctx context.Context) ([]domain.Statement, error)
	DeleteStatement(ctx context.Context, statementID string) error
	DeleteAllStatements(ctx context.Context) error
}
