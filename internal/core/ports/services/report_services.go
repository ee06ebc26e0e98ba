package services

import (
	"context"

	"github.com/stocklane/inventory_backend/internal/core/domain"
	"github.com/stocklane/inventory_backend/internal/dto"
)

// ReportSvcFacade manages reference reports and saved statements.
type ReportSvcFacade interface {
	CreateReferenceReport(ctx context.Context, data dto.ReferenceData, userID string) (*domain.ReferenceReport, error)
	GetReferenceReport(ctx context.Context, reportID string) (*domain.ReferenceReport, error)
	ListReferenceReports(ctx context.Context) ([]domain.ReferenceReport, error)
	DeleteReferenceReport(ctx context.Context, reportID string) error

	SaveStatement(ctx context.Context, req dto.AddStatementRequest, userID string) (*domain.Statement, error)
	ListStatements(ctx context.Context) ([]domain.Statement, error)
	DeleteStatement(ctx context.Context, statementID string) error
}
