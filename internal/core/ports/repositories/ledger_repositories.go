package repositories

import (
	"context"

	"github.com/SscSPs/hisab_kitab/internal/core/domain"
)

// LedgerRecordReader defines read operations for ledger records
type LedgerRecordReader interface {
	// FindRecordByID retrieves a record of the given kind by its identifier.
	FindRecordByID(ctx context.Context, kind domain.RecordKind, recordID string) (*domain.LedgerRecord, error)

	// ListRecords returns every record matching the filter ordered by record date, oldest first.
	ListRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.LedgerRecord, error)
}

// LedgerRecordWriter defines write operations for ledger records
type LedgerRecordWriter interface {
	// SaveRecord persists a new record including its frozen totals.
	SaveRecord(ctx context.Context, record domain.LedgerRecord) error

	// UpdateRecord overwrites an existing record identified by Kind and RecordID.
	UpdateRecord(ctx context.Context, record domain.LedgerRecord) error

	// DeleteRecord removes a record permanently.
	DeleteRecord(ctx context.Context, kind domain.RecordKind, recordID string) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerRecordReader
	LedgerRecordWriter
}
