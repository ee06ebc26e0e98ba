package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stocklane/inventory_backend/internal/apperrors"
	"github.com/stocklane/inventory_backend/internal/core/domain"
	portsrepo "github.com/stocklane/inventory_backend/internal/core/ports/repositories"
	"github.com/stocklane/inventory_backend/internal/models"
	"github.com/stocklane/inventory_backend/internal/utils/mapping"
)

type PgxStatementRepository struct {
	BaseRepository
}

func newPgxStatementRepository(pool *pgxpool.Pool) portsrepo.StatementRepository {
	return &PgxStatementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StatementRepository = (*PgxStatementRepository)(nil)

func (r *PgxStatementRepository) SaveStatement(ctx context.Context, statement domain.Statement) error {
	m := mapping.ToModelStatement(statement)
	query := `
		INSERT INTO statements (statement_id, title, period_from, period_to, payload, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.StatementID,
		m.Title,
		m.PeriodFrom,
		m.PeriodTo,
		m.Payload,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save statement "+m.StatementID, err)
	}
	return nil
}

func (r *PgxStatementRepository) ListStatements(ctx context.Context) ([]domain.Statement, error) {
	query := `
		SELECT statement_id, title, period_from, period_to, payload, created_at, created_by, last_updated_at, last_updated_by
		FROM statements
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query statements", err)
	}
	defer rows.Close()

	statements := []models.Statement{}
	for rows.Next() {
		var m models.Statement
		if err := rows.Scan(
			&m.StatementID,
			&m.Title,
			&m.PeriodFrom,
			&m.PeriodTo,
			&m.Payload,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan statement row", err)
		}
		statements = append(statements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating statement rows", err)
	}

	return mapping.ToDomainStatementSlice(statements), nil
}

func (r *PgxStatementRepository) DeleteStatement(ctx context.Context, statementID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM statements WHERE statement_id = $1;`, statementID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete statement "+statementID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("statement " + statementID + " not found for delete")
	}
	return nil
}

func (r *PgxStatementRepository) DeleteAllStatements(ctx context.Context) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM statements;`); err != nil {
		return apperrors.NewAppError(500, "failed to delete statements", err)
	}
	return nil
}
