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

type PgxLoginHistoryRepository struct {
	BaseRepository
}

func newPgxLoginHistoryRepository(pool *pgxpool.Pool) portsrepo.LoginHistoryRepository {
	return &PgxLoginHistoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LoginHistoryRepository = (*PgxLoginHistoryRepository)(nil)

func (r *PgxLoginHistoryRepository) AppendEntry(ctx context.Context, entry domain.LoginHistoryEntry) error {
	query := `
		INSERT INTO login_history (entry_id, username, login_time, ip, user_agent)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, entry.EntryID, entry.Username, entry.LoginTime, entry.IP, entry.UserAgent)
	if err != nil {
		return apperrors.NewAppError(500, "failed to append login history entry", err)
	}
	return nil
}

func (r *PgxLoginHistoryRepository) ListRecent(ctx context.Context, limit int) ([]domain.LoginHistoryEntry, error) {
	query := `
		SELECT entry_id, username, login_time, ip, user_agent
		FROM login_history
		ORDER BY login_time DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query login history", err)
	}
	defer rows.Close()

	entries := []models.LoginHistoryEntry{}
	for rows.Next() {
		var m models.LoginHistoryEntry
		if err := rows.Scan(&m.EntryID, &m.Username, &m.LoginTime, &m.IP, &m.UserAgent); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan login history entry", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating login history rows", err)
	}

	return mapping.ToDomainLoginHistorySlice(entries), nil
}

func (r *PgxLoginHistoryRepository) DeleteByUsername(ctx context.Context, username string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM login_history WHERE username = $1;`, username)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete login history for user "+username, err)
	}
	return nil
}
