package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	portsrepo "github.com/SscSPs/hisab_kitab/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hisab_kitab/internal/core/ports/services"
	"github.com/SscSPs/hisab_kitab/internal/dto"
	"github.com/google/uuid"
)

type billService struct {
	BaseService
	billRepo portsrepo.BillRepositoryFacade
	now      func() time.Time
}

// BillServiceOption is a functional option for configuring the bill service
type BillServiceOption func(*billService)

// WithBillClock overrides the time source used for audit fields and the default bill date.
func WithBillClock(now func() time.Time) BillServiceOption {
	return func(s *billService) {
		s.now = now
	}
}

// NewBillService creates the service behind the bills book.
func NewBillService(repo portsrepo.BillRepositoryFacade, options ...BillServiceOption) portssvc.BillSvcFacade {
	svc := &billService{billRepo: repo, now: time.Now}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *billService) CreateBill(ctx context.Context, req dto.CreateBillRequest, userID string) (*domain.Bill, error) {
	ref := strings.TrimSpace(req.FilePath)
	if ref == "" {
		return nil, validationError("file path is required")
	}
	if !domain.HasBillFileExtension(ref) {
		return nil, validationError("bill must be one of %s", strings.Join(domain.BillFileExtensions, ", "))
	}

	now := s.now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if raw := strings.TrimSpace(req.Date); raw != "" {
		parsed, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			return nil, validationError("date must be in YYYY-MM-DD format")
		}
		date = parsed
	}

	bill := domain.Bill{
		BillID:      uuid.NewString(),
		FilePath:    ref,
		BillDate:    date,
		Description: strings.TrimSpace(req.Description),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.billRepo.SaveBill(ctx, bill); err != nil {
		s.LogError(ctx, err, "Failed to save bill", slog.String("file_path", ref))
		return nil, fmt.Errorf("failed to save bill %q: %w", ref, err)
	}

	s.LogInfo(ctx, "Bill saved", slog.String("bill_id", bill.BillID))
	return &bill, nil
}

func (s *billService) GetBill(ctx context.Context, billID string) (*domain.Bill, error) {
	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bill %s: %w", billID, err)
	}
	return bill, nil
}

func (s *billService) ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, error) {
	if (filter.Month == 0) != (filter.Year == 0) {
		return nil, validationError("month and year must be given together")
	}
	if filter.Month < 0 || filter.Month > 12 {
		return nil, validationError("month must be between 1 and 12")
	}

	bills, err := s.billRepo.ListBills(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bills")
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	if bills == nil {
		bills = []domain.Bill{}
	}
	return bills, nil
}

func (s *billService) DeleteBill(ctx context.Context, billID string, userID string) error {
	if err := s.billRepo.DeleteBill(ctx, billID); err != nil {
		return fmt.Errorf("failed to delete bill %s: %w", billID, err)
	}
	s.LogInfo(ctx, "Bill deleted", slog.String("bill_id", billID), slog.String("user_id", userID))
	return nil
}
