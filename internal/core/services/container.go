package services

import (
	portsrepo "github.com/SscSPs/hisab_kitab/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hisab_kitab/internal/core/ports/services"
)

// NewContainer wires every service on top of the given repositories.
func NewContainer(repos *portsrepo.RepositoryProvider, passwordHashCost int, ledgerOpts ...LedgerServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger: NewLedgerService(repos.LedgerRepo, ledgerOpts...),
		User:   NewUserService(repos.UserRepo, passwordHashCost),
		Bill:   NewBillService(repos.BillRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerSvcFacade = (*ledgerService)(nil)
	_ portssvc.UserSvcFacade   = (*userService)(nil)
	_ portssvc.BillSvcFacade   = (*billService)(nil)
)
