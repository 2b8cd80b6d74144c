// Package mysql implements the repository ports on MySQL, the store the ledger
// historically ran on.
package mysql

import (
	"database/sql"

	portsrepo "github.com/SscSPs/hisab_kitab/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every mysql-backed repository on one *sql.DB.
func NewRepositoryProvider(db *sql.DB) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		LedgerRepo: newLedgerRepository(db),
		UserRepo:   newUserRepository(db),
		BillRepo:   newBillRepository(db),
	}
}
