package services

import (
	"context"

	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	"github.com/SscSPs/hisab_kitab/internal/dto"
)

// BillSvcFacade manages the bills book: references to scanned bills.
type BillSvcFacade interface {
	// CreateBill validates and stores a bill reference.
	CreateBill(ctx context.Context, req dto.CreateBillRequest, userID string) (*domain.Bill, error)

	// GetBill retrieves a single bill.
	GetBill(ctx context.Context, billID string) (*domain.Bill, error)

	// ListBills returns the bills matching filter, never nil.
	ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, error)

	// DeleteBill removes a bill reference.
	DeleteBill(ctx context.Context, billID string, userID string) error
}
