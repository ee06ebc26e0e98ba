package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stocklane/inventory_backend/internal/apperrors"
	"github.com/stocklane/inventory_backend/internal/core/domain"
	portsrepo "github.com/stocklane/inventory_backend/internal/core/ports/repositories"
	portssvc "github.com/stocklane/inventory_backend/internal/core/ports/services"
	"github.com/stocklane/inventory_backend/internal/dto"
	"github.com/stocklane/inventory_backend/internal/middleware"
	"github.com/stocklane/inventory_backend/internal/utils"
)

// loginHistoryLimit caps how many entries the shared history endpoint returns.
const loginHistoryLimit = 20

// userService handles accounts, credentials and login history.
type userService struct {
	userRepo         portsrepo.UserRepository
	loginHistoryRepo portsrepo.LoginHistoryRepository
	transactionRepo  portsrepo.TransactionRepository
	referenceRepo    portsrepo.ReferenceReportRepository
	statementRepo    portsrepo.StatementRepository
	securityCode     string
}

// NewUserService creates a new UserService. securityCode gates registration
// and account deletion.
func NewUserService(
	userRepo portsrepo.UserRepository,
	loginHistoryRepo portsrepo.LoginHistoryRepository,
	transactionRepo portsrepo.TransactionRepository,
	referenceRepo portsrepo.ReferenceReportRepository,
	statementRepo portsrepo.StatementRepository,
	securityCode string,
) portssvc.UserSvcFacade {
	return &userService{
		userRepo:         userRepo,
		loginHistoryRepo: loginHistoryRepo,
		transactionRepo:  transactionRepo,
		referenceRepo:    referenceRepo,
		statementRepo:    statementRepo,
		securityCode:     securityCode,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !utils.CheckSecurityCode(req.SecurityCode, s.securityCode) {
		return nil, apperrors.NewAppError(400, "Invalid security code", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("user registered", slog.String("username", user.Username))
	return &user, nil
}

// Authenticate verifies the credentials and appends a login history entry on
// success. A missing user and a wrong password are indistinguishable to the
// caller.
func (s *userService) Authenticate(ctx context.Context, username, password, ip, userAgent string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(401, "Invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.NewAppError(401, "Invalid credentials", apperrors.ErrUnauthorized)
	}

	entry := domain.LoginHistoryEntry{
		EntryID:   uuid.NewString(),
		Username:  user.Username,
		LoginTime: time.Now(),
		IP:        ip,
		UserAgent: userAgent,
	}
	if err := s.loginHistoryRepo.AppendEntry(ctx, entry); err != nil {
		// Login history is best effort; a failed append must not block the login.
		logger.Warn("failed to append login history entry", slog.String("username", username), slog.String("error", err.Error()))
	}

	logger.Info("user authenticated", slog.String("username", username))
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewAppError(401, "Invalid credentials", apperrors.ErrUnauthorized)
		}
		return err
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.NewAppError(401, "Current password is incorrect", apperrors.ErrUnauthorized)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	return s.userRepo.UpdatePasswordHash(ctx, req.Username, hash)
}

// DeleteAccount removes the user together with their personal records. Stock
// items survive; inventory belongs to the business, not the account.
func (s *userService) DeleteAccount(ctx context.Context, req dto.DeleteAccountRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !utils.CheckSecurityCode(req.SecurityCode, s.securityCode) {
		return apperrors.NewAppError(400, "Invalid security code", apperrors.ErrValidation)
	}

	if _, err := s.userRepo.FindUserByUsername(ctx, req.Username); err != nil {
		return err
	}

	if err := s.loginHistoryRepo.DeleteByUsername(ctx, req.Username); err != nil {
		return fmt.Errorf("failed to delete login history: %w", err)
	}
	if err := s.transactionRepo.DeleteAllTransactions(ctx); err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}
	if err := s.referenceRepo.DeleteAllReports(ctx); err != nil {
		return fmt.Errorf("failed to delete reference reports: %w", err)
	}
	if err := s.statementRepo.DeleteAllStatements(ctx); err != nil {
		return fmt.Errorf("failed to delete statements: %w", err)
	}
	if err := s.userRepo.DeleteUser(ctx, req.Username); err != nil {
		return err
	}

	logger.Info("account deleted", slog.String("username", req.Username))
	return nil
}

func (s *userService) ListLoginHistory(ctx context.Context) ([]domain.LoginHistoryEntry, error) {
	entries, err := s.loginHistoryRepo.ListRecent(ctx, loginHistoryLimit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.LoginHistoryEntry{}
	}
	return entries, nil
}
