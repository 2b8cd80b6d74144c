package repositories

import (
	"context"

	"github.com/SscSPs/hisab_kitab/internal/core/domain"
)

// BillReader defines read operations for bill references
type BillReader interface {
	// FindBillByID retrieves a bill by its identifier.
	FindBillByID(ctx context.Context, billID string) (*domain.Bill, error)

	// ListBills returns the matching bills, oldest bill date first.
	ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, error)
}

// BillWriter defines write operations for bill references
type BillWriter interface {
	// SaveBill persists a new bill. A reference that is already stored yields apperrors.ErrDuplicate.
	SaveBill(ctx context.Context, bill domain.Bill) error

	// DeleteBill removes a bill reference permanently.
	DeleteBill(ctx context.Context, billID string) error
}

// BillRepositoryFacade combines all bill-related repository interfaces
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}
