package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stocklane/inventory_backend/internal/apperrors"
	"github.com/stocklane/inventory_backend/internal/core/domain"
	portsrepo "github.com/stocklane/inventory_backend/internal/core/ports/repositories"
	"github.com/stocklane/inventory_backend/internal/models"
	"github.com/stocklane/inventory_backend/internal/utils/mapping"
)

type PgxReferenceReportRepository struct {
	BaseRepository
}

func newPgxReferenceReportRepository(pool *pgxpool.Pool) portsrepo.ReferenceReportRepository {
	return &PgxReferenceReportRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReferenceReportRepository = (*PgxReferenceReportRepository)(nil)

// SaveReport inserts the report header and its lines in one database transaction.
func (r *PgxReferenceReportRepository) SaveReport(ctx context.Context, report domain.ReferenceReport) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelReferenceReport(report)
	headerQuery := `
		INSERT INTO reference_reports (report_id, report_number, report_date, total, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.ReportID,
		m.ReportNumber,
		m.ReportDate,
		m.Total,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert reference report "+m.ReportID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO reference_report_lines (line_id, report_id, item_id, ref_code, name, category, quantity, sell_price, line_no)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for i, line := range report.Lines {
		ml := mapping.ToModelReferenceReportLine(report.ReportID, i, line)
		batch.Queue(lineQuery,
			ml.LineID,
			ml.ReportID,
			ml.ItemID,
			ml.RefCode,
			ml.Name,
			ml.Category,
			ml.Quantity,
			ml.SellPrice,
			ml.LineNo,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute line batch for reference report "+m.ReportID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit reference report "+m.ReportID, err)
	}
	return nil
}

const referenceReportColumns = `report_id, report_number, report_date, total, created_at, created_by, last_updated_at, last_updated_by`

func scanReferenceReport(row pgx.Row) (*models.ReferenceReport, error) {
	var m models.ReferenceReport
	err := row.Scan(
		&m.ReportID,
		&m.ReportNumber,
		&m.ReportDate,
		&m.Total,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxReferenceReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.ReferenceReport, error) {
	query := `SELECT ` + referenceReportColumns + ` FROM reference_reports WHERE report_id = $1;`
	m, err := scanReferenceReport(r.Pool.QueryRow(ctx, query, reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find reference report by ID "+reportID, err)
	}

	lines, err := r.findLinesByReportIDs(ctx, []string{reportID})
	if err != nil {
		return nil, err
	}

	d := mapping.ToDomainReferenceReport(*m, lines[reportID])
	return &d, nil
}

func (r *PgxReferenceReportRepository) ListReports(ctx context.Context) ([]domain.ReferenceReport, error) {
	query := `SELECT ` + referenceReportColumns + ` FROM reference_reports ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query reference reports", err)
	}
	defer rows.Close()

	headers := []models.ReferenceReport{}
	ids := []string{}
	for rows.Next() {
		m, err := scanReferenceReport(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan reference report row", err)
		}
		headers = append(headers, *m)
		ids = append(ids, m.ReportID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating reference report rows", err)
	}

	linesByReport, err := r.findLinesByReportIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ReferenceReport, 0, len(headers))
	for _, h := range headers {
		result = append(result, mapping.ToDomainReferenceReport(h, linesByReport[h.ReportID]))
	}
	return result, nil
}

func (r *PgxReferenceReportRepository) findLinesByReportIDs(ctx context.Context, reportIDs []string) (map[string][]models.ReferenceReportLine, error) {
	result := make(map[string][]models.ReferenceReportLine, len(reportIDs))
	if len(reportIDs) == 0 {
		return result, nil
	}
	query := `
		SELECT line_id, report_id, item_id, ref_code, name, category, quantity, sell_price, line_no
		FROM reference_report_lines
		WHERE report_id = ANY($1)
		ORDER BY report_id, line_no;
	`
	rows, err := r.Pool.Query(ctx, query, reportIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query reference report lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.ReferenceReportLine
		if err := rows.Scan(
			&m.LineID,
			&m.ReportID,
			&m.ItemID,
			&m.RefCode,
			&m.Name,
			&m.Category,
			&m.Quantity,
			&m.SellPrice,
			&m.LineNo,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan reference report line", err)
		}
		result[m.ReportID] = append(result[m.ReportID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating reference report lines", err)
	}
	return result, nil
}

func (r *PgxReferenceReportRepository) DeleteReport(ctx context.Context, reportID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM reference_report_lines WHERE report_id = $1;`, reportID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines of reference report "+reportID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM reference_reports WHERE report_id = $1;`, reportID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete reference report "+reportID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("reference report " + reportID + " not found for delete")
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit deletion of reference report "+reportID, err)
	}
	return nil
}

func (r *PgxReferenceReportRepository) DeleteAllReports(ctx context.Context) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM reference_report_lines;`); err != nil {
		return apperrors.NewAppError(500, "failed to delete reference report lines", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM reference_reports;`); err != nil {
		return apperrors.NewAppError(500, "failed to delete reference reports", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit reference report wipe", err)
	}
	return nil
}
