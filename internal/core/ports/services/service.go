package services

// ServiceContainer holds instances of all the application services.
// It is built once in main and handed to the HTTP layer.
type ServiceContainer struct {
	Ledger LedgerSvcFacade
	User   UserSvcFacade
	Bill   BillSvcFacade
}
