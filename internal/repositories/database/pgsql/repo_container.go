package pgsql

import (
	portsrepo "github.com/SscSPs/hisab_kitab/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every postgres-backed repository on one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		LedgerRepo: newPgxLedgerRepository(dbPool),
		UserRepo:   newPgxUserRepository(dbPool),
		BillRepo:   newPgxBillRepository(dbPool),
	}
}
