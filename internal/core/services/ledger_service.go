package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/hisab_kitab/internal/apperrors"
	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	portsrepo "github.com/SscSPs/hisab_kitab/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hisab_kitab/internal/core/ports/services"
	"github.com/SscSPs/hisab_kitab/internal/dto"
	"github.com/SscSPs/hisab_kitab/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultInvoiceTaxRates are the GST options offered on the invoice form.
var DefaultInvoiceTaxRates = []decimal.Decimal{
	decimal.NewFromInt(0),
	decimal.NewFromInt(18),
	decimal.NewFromInt(21),
}

type ledgerService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerRepositoryFacade
	invoiceRates []decimal.Decimal
	now          func() time.Time
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithAllowedInvoiceRates replaces the GST options an invoice may use.
func WithAllowedInvoiceRates(rates []decimal.Decimal) LedgerServiceOption {
	return func(s *ledgerService) {
		if len(rates) > 0 {
			s.invoiceRates = rates
		}
	}
}

// WithClock overrides the time source used for audit fields.
func WithClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(repo portsrepo.LedgerRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		ledgerRepo:   repo,
		invoiceRates: DefaultInvoiceTaxRates,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}

// parseLineItem turns raw form numbers into a LineItem and its split, applying the fixed
// quantity and rate of kinds that do not expose them.
func (s *ledgerService) parseLineItem(kind domain.RecordKind, req dto.LedgerRecordRequest) (domain.LineItem, domain.TaxSplit, error) {
	one := decimal.NewFromInt(1)

	price, err := accounting.ParseDecimalInput("unitPrice", string(req.UnitPrice))
	if err != nil {
		return domain.LineItem{}, domain.TaxSplit{}, err
	}

	var qty decimal.Decimal
	if kind.UsesQuantity() {
		qty, err = accounting.ParseDecimalInput("quantity", string(req.Quantity))
	} else {
		qty, err = accounting.ParseOptionalDecimalInput("quantity", string(req.Quantity), one)
		if err == nil && !qty.Equal(one) {
			return domain.LineItem{}, domain.TaxSplit{}, validationError("quantity is fixed at 1 for %s records", strings.ToLower(string(kind)))
		}
	}
	if err != nil {
		return domain.LineItem{}, domain.TaxSplit{}, err
	}

	rate, err := accounting.ParseOptionalDecimalInput("taxRate", string(req.TaxRate), decimal.Zero)
	if err != nil {
		return domain.LineItem{}, domain.TaxSplit{}, err
	}
	if !kind.UsesTaxRate() && !rate.IsZero() {
		return domain.LineItem{}, domain.TaxSplit{}, validationError("%s records do not carry GST", strings.ToLower(string(kind)))
	}

	li := domain.LineItem{UnitPrice: price, Quantity: qty, TaxRatePercent: rate}
	if err := li.Validate(); err != nil {
		return domain.LineItem{}, domain.TaxSplit{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if kind == domain.KindInvoice && !s.isAllowedInvoiceRate(rate) {
		return domain.LineItem{}, domain.TaxSplit{}, validationError("tax rate %s is not one of the allowed GST options (%s)", rate.String(), s.invoiceRateList())
	}

	split := accounting.ComputeLineItemSplit(li)
	if err := split.Validate(); err != nil {
		return domain.LineItem{}, domain.TaxSplit{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return li, split, nil
}

func (s *ledgerService) isAllowedInvoiceRate(rate decimal.Decimal) bool {
	for _, r := range s.invoiceRates {
		if r.Equal(rate) {
			return true
		}
	}
	return false
}

func (s *ledgerService) invoiceRateList() string {
	parts := make([]string, len(s.invoiceRates))
	for i, r := range s.invoiceRates {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

// buildRecord fills every non-audit field of a record from the request.
func (s *ledgerService) buildRecord(kind domain.RecordKind, req dto.LedgerRecordRequest) (domain.LedgerRecord, error) {
	if !kind.IsValid() {
		return domain.LedgerRecord{}, fmt.Errorf("%w: %w", apperrors.ErrValidation, domain.ErrUnknownRecordKind)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.LedgerRecord{}, validationError("name is required")
	}

	date, err := time.Parse(dto.DateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return domain.LedgerRecord{}, validationError("date must be in YYYY-MM-DD format")
	}

	var status domain.PaymentStatus
	if kind == domain.KindPayment {
		status = domain.StatusUnpaid
		if strings.TrimSpace(req.PaymentStatus) != "" {
			if status, err = domain.ParsePaymentStatus(req.PaymentStatus); err != nil {
				return domain.LedgerRecord{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
			}
		}
	} else if strings.TrimSpace(req.PaymentStatus) != "" {
		return domain.LedgerRecord{}, validationError("payment status only applies to payment records")
	}

	li, split, err := s.parseLineItem(kind, req)
	if err != nil {
		return domain.LedgerRecord{}, err
	}

	return domain.LedgerRecord{
		Kind:          kind,
		Name:          name,
		Description:   strings.TrimSpace(req.Description),
		Purpose:       strings.TrimSpace(req.Purpose),
		RecordDate:    date,
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
		GSTNumber:     strings.ToUpper(strings.TrimSpace(req.GSTNumber)),
		PaymentStatus: status,
		LineItem:      li,
		TaxSplit:      split,
	}, nil
}

func (s *ledgerService) CreateRecord(ctx context.Context, kind domain.RecordKind, req dto.LedgerRecordRequest, userID string) (*domain.LedgerRecord, error) {
	record, err := s.buildRecord(kind, req)
	if err != nil {
		s.LogDebug(ctx, "Rejected record input", slog.String("kind", string(kind)), slog.String("error", err.Error()))
		return nil, err
	}

	now := s.now()
	record.RecordID = uuid.NewString()
	record.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	if err := s.ledgerRepo.SaveRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save record", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to save %s record: %w", strings.ToLower(string(kind)), err)
	}

	s.LogInfo(ctx, "Record created",
		slog.String("record_id", record.RecordID),
		slog.String("kind", string(kind)),
		slog.String("grand_total", record.GrandTotal.StringFixed(accounting.MoneyPlaces)))
	return &record, nil
}

func (s *ledgerService) UpdateRecord(ctx context.Context, kind domain.RecordKind, recordID string, req dto.LedgerRecordRequest, userID string) (*domain.LedgerRecord, error) {
	existing, err := s.ledgerRepo.FindRecordByID(ctx, kind, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s record %s: %w", strings.ToLower(string(kind)), recordID, err)
	}

	record, err := s.buildRecord(kind, req)
	if err != nil {
		return nil, err
	}

	record.RecordID = existing.RecordID
	record.AuditFields = domain.AuditFields{
		CreatedAt:     existing.CreatedAt,
		CreatedBy:     existing.CreatedBy,
		LastUpdatedAt: s.now(),
		LastUpdatedBy: userID,
	}

	if err := s.ledgerRepo.UpdateRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to update record", slog.String("record_id", recordID))
		return nil, fmt.Errorf("failed to update %s record %s: %w", strings.ToLower(string(kind)), recordID, err)
	}

	s.LogInfo(ctx, "Record updated", slog.String("record_id", recordID), slog.String("kind", string(kind)))
	return &record, nil
}

func (s *ledgerService) DeleteRecord(ctx context.Context, kind domain.RecordKind, recordID string, userID string) error {
	if err := s.ledgerRepo.DeleteRecord(ctx, kind, recordID); err != nil {
		return fmt.Errorf("failed to delete %s record %s: %w", strings.ToLower(string(kind)), recordID, err)
	}
	s.LogInfo(ctx, "Record deleted",
		slog.String("record_id", recordID),
		slog.String("kind", string(kind)),
		slog.String("user_id", userID))
	return nil
}

func (s *ledgerService) GetRecord(ctx context.Context, kind domain.RecordKind, recordID string) (*domain.LedgerRecord, error) {
	record, err := s.ledgerRepo.FindRecordByID(ctx, kind, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s record %s: %w", strings.ToLower(string(kind)), recordID, err)
	}
	return record, nil
}

func (s *ledgerService) ListRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.LedgerRecord, domain.AggregateView, error) {
	if err := validateFilter(filter); err != nil {
		return nil, domain.AggregateView{}, err
	}

	records, err := s.ledgerRepo.ListRecords(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records", slog.String("kind", string(filter.Kind)))
		return nil, domain.AggregateView{}, fmt.Errorf("failed to list %s records: %w", strings.ToLower(string(filter.Kind)), err)
	}
	if records == nil {
		records = []domain.LedgerRecord{}
	}

	return records, accounting.FoldAggregate(records), nil
}

func validateFilter(f domain.RecordFilter) error {
	if !f.Kind.IsValid() {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, domain.ErrUnknownRecordKind)
	}
	if (f.Month == 0) != (f.Year == 0) {
		return validationError("month and year must be given together")
	}
	if f.Month < 0 || f.Month > 12 {
		return validationError("month must be between 1 and 12")
	}
	if f.PaymentStatus != "" {
		if f.Kind != domain.KindPayment {
			return validationError("status filter only applies to payment records")
		}
		if _, err := domain.ParsePaymentStatus(string(f.PaymentStatus)); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}
	return nil
}

func (s *ledgerService) PreviewSplit(ctx context.Context, kind domain.RecordKind, req dto.LedgerRecordRequest) (domain.LineItem, domain.TaxSplit, error) {
	if !kind.IsValid() {
		return domain.LineItem{}, domain.TaxSplit{}, fmt.Errorf("%w: %w", apperrors.ErrValidation, domain.ErrUnknownRecordKind)
	}
	return s.parseLineItem(kind, req)
}

func (s *ledgerService) MonthlySummary(ctx context.Context, year int, month int) (*domain.MonthlySummary, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, validationError("invalid month %04d-%02d", year, month)
	}

	fold := func(kind domain.RecordKind, status domain.PaymentStatus) ([]domain.LedgerRecord, domain.AggregateView, error) {
		return s.ListRecords(ctx, domain.RecordFilter{Kind: kind, Year: year, Month: month, PaymentStatus: status})
	}

	_, expenses, err := fold(domain.KindTransaction, "")
	if err != nil {
		return nil, err
	}
	_, pending, err := fold(domain.KindPayment, domain.StatusUnpaid)
	if err != nil {
		return nil, err
	}
	wageRecords, wages, err := fold(domain.KindWage, "")
	if err != nil {
		return nil, err
	}
	_, purchases, err := fold(domain.KindPurchase, "")
	if err != nil {
		return nil, err
	}
	_, invoices, err := fold(domain.KindInvoice, "")
	if err != nil {
		return nil, err
	}

	workers := make(map[string]struct{}, len(wageRecords))
	for _, r := range wageRecords {
		workers[strings.ToLower(r.Name)] = struct{}{}
	}

	return &domain.MonthlySummary{
		Month:           fmt.Sprintf("%04d-%02d", year, month),
		TotalExpense:    expenses.SumGrandTotal,
		PendingPayments: pending.SumGrandTotal,
		WorkerWages:     wages.SumGrandTotal,
		WorkerCount:     len(workers),
		Purchases:       purchases,
		Invoices:        invoices,
	}, nil
}
