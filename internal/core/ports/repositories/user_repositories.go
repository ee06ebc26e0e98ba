package repositories

import (
	"context"

	"github.com/stocklane/inventory_backend/internal/core/domain"
)

// UserRepository provides access to user accounts.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, username string, passwordHash string) error
	DeleteUser(ctx context.Context, username string) error
}

// LoginHistoryRepository appends and lists login records.
type LoginHistoryRepository interface {
	AppendEntry(ctx context.Context, entry domain.LoginHistoryEntry) error
	// ListRecent returns the newest entries across all users.
	ListRecent(ctx context.Context, limit int) ([]domain.LoginHistoryEntry, error)
	DeleteByUsername(ctx context.Context, username string) error
}
