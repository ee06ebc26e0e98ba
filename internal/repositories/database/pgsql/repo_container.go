package pgsql

import (
	portsrepo "github.com/stocklane/inventory_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	itemRepo := newPgxItemRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	sequenceRepo := newPgxSequenceRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	loginHistoryRepo := newPgxLoginHistoryRepository(dbPool)
	referenceRepo := newPgxReferenceReportRepository(dbPool)
	statementRepo := newPgxStatementRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ItemRepo:         itemRepo,
		TransactionRepo:  transactionRepo,
		SequenceRepo:     sequenceRepo,
		UserRepo:         userRepo,
		LoginHistoryRepo: loginHistoryRepo,
		ReferenceRepo:    referenceRepo,
		StatementRepo:    statementRepo,
	}
}
