package services

import (
	"github.com/stocklane/inventory_backend/internal/cache"
	portsrepo "github.com/stocklane/inventory_backend/internal/core/ports/repositories"
	portssvc "github.com/stocklane/inventory_backend/internal/core/ports/services"
	"github.com/stocklane/inventory_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, searchCache cache.SearchCache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Sequence service first since transaction and report services mint
	// document numbers through it.
	container.Sequence = NewSequenceService(repos.SequenceRepo)

	container.Inventory = NewInventoryService(repos.ItemRepo, searchCache)
	container.Transaction = NewTransactionService(repos.TransactionRepo, container.Sequence, searchCache)
	container.Report = NewReportService(repos.ReferenceRepo, repos.StatementRepo, container.Sequence)
	container.User = NewUserService(
		repos.UserRepo,
		repos.LoginHistoryRepo,
		repos.TransactionRepo,
		repos.ReferenceRepo,
		repos.StatementRepo,
		cfg.SecurityCode,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.InventorySvcFacade   = (*inventoryService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.SequenceSvcFacade    = (*sequenceService)(nil)
	_ portssvc.UserSvcFacade        = (*userService)(nil)
	_ portssvc.ReportSvcFacade      = (*reportService)(nil)
)
