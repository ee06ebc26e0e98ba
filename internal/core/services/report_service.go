package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stocklane/inventory_backend/internal/apperrors"
	"github.com/stocklane/inventory_backend/internal/core/domain"
	portsrepo "github.com/stocklane/inventory_backend/internal/core/ports/repositories"
	portssvc "github.com/stocklane/inventory_backend/internal/core/ports/services"
	"github.com/stocklane/inventory_backend/internal/dto"
	"github.com/stocklane/inventory_backend/internal/middleware"
)

// reportService manages reference reports and saved statements.
type reportService struct {
	referenceRepo portsrepo.ReferenceReportRepository
	statementRepo portsrepo.StatementRepository
	sequenceSvc   portssvc.SequenceSvcFacade
}

// NewReportService creates a new ReportService.
func NewReportService(referenceRepo portsrepo.ReferenceReportRepository, statementRepo portsrepo.StatementRepository, sequenceSvc portssvc.SequenceSvcFacade) portssvc.ReportSvcFacade {
	return &reportService{
		referenceRepo: referenceRepo,
		statementRepo: statementRepo,
		sequenceSvc:   sequenceSvc,
	}
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

func (s *reportService) CreateReferenceReport(ctx context.Context, data dto.ReferenceData, creatorUserID string) (*domain.ReferenceReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(data.Items) == 0 {
		return nil, apperrors.NewAppError(400, "reference report needs at least one item", apperrors.ErrValidation)
	}

	now := time.Now()
	date := data.Date
	if date == "" {
		date = now.Format("1/2/2006")
	}

	reportNumber := "REF-" + s.sequenceSvc.NextDocumentNumber(ctx, domain.SeqReferenceReports)

	lines := make([]domain.ReferenceReportLine, len(data.Items))
	computedTotal := decimal.Zero
	for i, item := range data.Items {
		qty := item.EffectiveQuantity()
		lines[i] = domain.ReferenceReportLine{
			LineID:    uuid.NewString(),
			ItemID:    item.ItemID,
			RefCode:   item.RefCode,
			Name:      item.Name,
			Category:  item.Category,
			Quantity:  qty,
			SellPrice: item.SellPrice,
		}
		computedTotal = computedTotal.Add(item.SellPrice.Mul(decimal.NewFromInt(qty)))
	}
	total := data.Total
	if total.IsZero() {
		total = computedTotal
	}

	report := domain.ReferenceReport{
		ReportID:     uuid.NewString(),
		ReportNumber: reportNumber,
		Date:         date,
		Lines:        lines,
		Total:        total,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.referenceRepo.SaveReport(ctx, report); err != nil {
		return nil, err
	}

	logger.Info("reference report created", slog.String("report_number", reportNumber), slog.Int("lines", len(lines)))
	return &report, nil
}

func (s *reportService) GetReferenceReport(ctx context.Context, reportID string) (*domain.ReferenceReport, error) {
	return s.referenceRepo.FindReportByID(ctx, reportID)
}

func (s *reportService) ListReferenceReports(ctx context.Context) ([]domain.ReferenceReport, error) {
	reports, err := s.referenceRepo.ListReports(ctx)
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []domain.ReferenceReport{}
	}
	return reports, nil
}

func (s *reportService) DeleteReferenceReport(ctx context.Context, reportID string) error {
	return s.referenceRepo.DeleteReport(ctx, reportID)
}

// SaveStatement stores the payload opaquely. Title and period are lifted from
// well-known keys when present so list views can render without parsing the
// whole payload.
func (s *reportService) SaveStatement(ctx context.Context, req dto.AddStatementRequest, creatorUserID string) (*domain.Statement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.ReportData) == 0 || !json.Valid(req.ReportData) {
		return nil, apperrors.NewAppError(400, "reportData must be valid JSON", apperrors.ErrValidation)
	}

	var header dto.StatementHeader
	// Lift errors are ignored; a payload without the known keys is still legal.
	_ = json.Unmarshal(req.ReportData, &header)

	now := time.Now()
	statement := domain.Statement{
		StatementID: uuid.NewString(),
		Title:       header.Title,
		PeriodFrom:  header.PeriodFrom,
		PeriodTo:    header.PeriodTo,
		Payload:     req.ReportData,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.statementRepo.SaveStatement(ctx, statement); err != nil {
		return nil, err
	}

	logger.Info("statement saved", slog.String("statement_id", statement.StatementID), slog.String("title", statement.Title))
	return &statement, nil
}

func (s *reportService) ListStatements(ctx context.Context) ([]domain.Statement, error) {
	statements, err := s.statementRepo.ListStatements(ctx)
	if err != nil {
		return nil, err
	}
	if statements == nil {
		statements = []domain.Statement{}
	}
	return statements, nil
}

func (s *reportService) DeleteStatement(ctx context.Context, statementID string) error {
	return s.statementRepo.DeleteStatement(ctx, statementID)
}
