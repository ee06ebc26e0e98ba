package services

import (
	"context"

	"github.com/stocklane/inventory_backend/internal/core/domain"
	"github.com/stocklane/inventory_backend/internal/dto"
)

// UserSvcFacade handles accounts, credentials and login history.
type UserSvcFacade interface {
	// Register creates a user after checking the security code. Returns
	// apperrors.ErrValidation on a bad code and apperrors.ErrDuplicate when
	// the username is taken.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Authenticate verifies credentials and appends a login history entry on
	// success. Returns apperrors.ErrUnauthorized on any mismatch.
	Authenticate(ctx context.Context, username, password, ip, userAgent string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
	// DeleteAccount removes the user and their personal records (login
	// history, transactions, reference reports, statements). Stock items are
	// explicitly preserved.
	DeleteAccount(ctx context.Context, req dto.DeleteAccountRequest) error
	ListLoginHistory(ctx context.Context) ([]domain.LoginHistoryEntry, error)
}
