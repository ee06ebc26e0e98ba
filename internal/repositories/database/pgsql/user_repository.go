package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stocklane/inventory_backend/internal/apperrors"
	"github.com/stocklane/inventory_backend/internal/core/domain"
	portsrepo "github.com/stocklane/inventory_backend/internal/core/ports/repositories"
	"github.com/stocklane/inventory_backend/internal/models"
	"github.com/stocklane/inventory_backend/internal/utils/mapping"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, username, password_hash, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, m.UserID, m.Username, m.PasswordHash, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return fmt.Errorf("%w: username %s already exists", apperrors.ErrDuplicate, m.Username)
			}
		}
		return apperrors.NewAppError(500, "failed to save user "+m.Username, err)
	}
	return nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(&m.UserID, &m.Username, &m.PasswordHash, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT user_id, username, password_hash, created_at, last_updated_at FROM users WHERE user_id = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by ID "+userID, err)
	}
	d := mapping.ToDomainUser(*m)
	return &d, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT user_id, username, password_hash, created_at, last_updated_at FROM users WHERE username = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by username "+username, err)
	}
	d := mapping.ToDomainUser(*m)
	return &d, nil
}

func (r *PgxUserRepository) UpdatePasswordHash(ctx context.Context, username string, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, last_updated_at = $3 WHERE username = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, username, passwordHash, time.Now())
	if err != nil {
		return apperrors.NewAppError(500, "failed to update password for user "+username, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + username + " not found for password update")
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, username string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE username = $1;`, username)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete user "+username, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + username + " not found for delete")
	}
	return nil
}
