package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Both the postgres and mysql adapters build one of these.
type RepositoryProvider struct {
	LedgerRepo LedgerRepositoryFacade
	UserRepo   UserRepositoryFacade
	BillRepo   BillRepositoryFacade
}
