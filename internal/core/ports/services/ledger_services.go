package services

import (
	"context"

	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	"github.com/SscSPs/hisab_kitab/internal/dto"
)

// LedgerReaderSvc defines read operations for ledger records
type LedgerReaderSvc interface {
	// GetRecord retrieves a single record of the given kind.
	GetRecord(ctx context.Context, kind domain.RecordKind, recordID string) (*domain.LedgerRecord, error)

	// ListRecords returns the filtered records together with the aggregate folded over exactly that set.
	ListRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.LedgerRecord, domain.AggregateView, error)
}

// LedgerWriterSvc defines write operations for ledger records
type LedgerWriterSvc interface {
	// CreateRecord parses the form input, computes the split and persists a new record.
	CreateRecord(ctx context.Context, kind domain.RecordKind, req dto.LedgerRecordRequest, userID string) (*domain.LedgerRecord, error)

	// UpdateRecord re-parses the form input and recomputes the stored split of an existing record.
	UpdateRecord(ctx context.Context, kind domain.RecordKind, recordID string, req dto.LedgerRecordRequest, userID string) (*domain.LedgerRecord, error)

	// DeleteRecord removes a record.
	DeleteRecord(ctx context.Context, kind domain.RecordKind, recordID string, userID string) error
}

// LedgerCalculatorSvc defines calculations that do not persist anything
type LedgerCalculatorSvc interface {
	// PreviewSplit validates form input and returns the split that CreateRecord would store.
	PreviewSplit(ctx context.Context, kind domain.RecordKind, req dto.LedgerRecordRequest) (domain.LineItem, domain.TaxSplit, error)

	// MonthlySummary computes the dashboard figures for one calendar month.
	MonthlySummary(ctx context.Context, year int, month int) (*domain.MonthlySummary, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
	LedgerCalculatorSvc
}
