package repositories

// RepositoryProvider bundles all repository implementations for service wiring.
type RepositoryProvider struct {
	ItemRepo         ItemRepository
	TransactionRepo  TransactionRepository
	SequenceRepo     SequenceRepository
	UserRepo         UserRepository
	LoginHistoryRepo LoginHistoryRepository
	ReferenceRepo    ReferenceReportRepository
	StatementRepo    StatementRepository
}
