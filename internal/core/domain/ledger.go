package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind identifies which book a LedgerRecord belongs to.
type RecordKind string

const (
	KindPurchase    RecordKind = "PURCHASE"
	KindInvoice     RecordKind = "INVOICE"
	KindTransaction RecordKind = "TRANSACTION"
	KindWage        RecordKind = "WAGE"
	KindPayment     RecordKind = "PAYMENT"
)

// AllRecordKinds lists every supported kind in route registration order.
var AllRecordKinds = []RecordKind{KindPurchase, KindInvoice, KindTransaction, KindWage, KindPayment}

// ErrUnknownRecordKind is returned by ParseRecordKind for unsupported names.
var ErrUnknownRecordKind = errors.New("unknown record kind")

// ParseRecordKind accepts the canonical upper-case name or the lower-case singular/plural route form.
func ParseRecordKind(s string) (RecordKind, error) {
	k := RecordKind(strings.TrimSuffix(strings.ToUpper(strings.TrimSpace(s)), "S"))
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRecordKind, s)
	}
	return k, nil
}

// IsValid reports whether k is one of the supported kinds.
func (k RecordKind) IsValid() bool {
	switch k {
	case KindPurchase, KindInvoice, KindTransaction, KindWage, KindPayment:
		return true
	}
	return false
}

// Path is the plural lower-case route segment for the kind, e.g. "invoices".
func (k RecordKind) Path() string {
	return strings.ToLower(string(k)) + "s"
}

// UsesQuantity is false for kinds that always book a single unit.
func (k RecordKind) UsesQuantity() bool {
	return k == KindPurchase || k == KindInvoice || k == KindWage
}

// UsesTaxRate is true only for kinds that carry GST.
func (k RecordKind) UsesTaxRate() bool {
	return k == KindPurchase || k == KindInvoice
}

// PaymentStatus tracks whether a PAYMENT record has been settled.
type PaymentStatus string

const (
	StatusPaid   PaymentStatus = "PAID"
	StatusUnpaid PaymentStatus = "UNPAID"
)

// ParsePaymentStatus is case-insensitive.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	st := PaymentStatus(strings.ToUpper(strings.TrimSpace(s)))
	if st != StatusPaid && st != StatusUnpaid {
		return "", fmt.Errorf("unknown payment status %q", s)
	}
	return st, nil
}

// LineItem is one purchased, invoiced or worked unit.
type LineItem struct {
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Quantity       decimal.Decimal `json:"quantity"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
}

// Storage limits of ledger_records. Line-item inputs are NUMERIC(14,4), the rate is
// NUMERIC(7,4) and every derived amount is NUMERIC(14,2).
const LineItemScale int32 = 4

var (
	MaxLineItemValue  = decimal.New(1, 10)
	MaxTaxRatePercent = decimal.New(1, 3)
	MaxMoneyAmount    = decimal.New(1, 12)
)

// Validate enforces the invariants a line item must satisfy before it is persisted.
func (li LineItem) Validate() error {
	if li.UnitPrice.IsNegative() {
		return errors.New("unit price must not be negative")
	}
	if !li.Quantity.IsPositive() {
		return errors.New("quantity must be positive")
	}
	if li.TaxRatePercent.IsNegative() {
		return errors.New("tax rate must not be negative")
	}
	if li.UnitPrice.GreaterThanOrEqual(MaxLineItemValue) {
		return fmt.Errorf("unit price must be less than %s", MaxLineItemValue)
	}
	if li.Quantity.GreaterThanOrEqual(MaxLineItemValue) {
		return fmt.Errorf("quantity must be less than %s", MaxLineItemValue)
	}
	if li.TaxRatePercent.GreaterThanOrEqual(MaxTaxRatePercent) {
		return fmt.Errorf("tax rate must be less than %s", MaxTaxRatePercent)
	}
	if !hasMaxScale(li.UnitPrice, LineItemScale) || !hasMaxScale(li.Quantity, LineItemScale) || !hasMaxScale(li.TaxRatePercent, LineItemScale) {
		return fmt.Errorf("numbers can have at most %d decimal places", LineItemScale)
	}
	return nil
}

func hasMaxScale(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}

// TaxSplit holds the totals derived from a LineItem, rounded for storage.
type TaxSplit struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	TaxComponent decimal.Decimal `json:"taxComponent"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	GrandTotal   decimal.Decimal `json:"grandTotal"`
}

// Validate reports totals that do not fit a money column.
func (s TaxSplit) Validate() error {
	if s.GrandTotal.Abs().GreaterThanOrEqual(MaxMoneyAmount) || s.Subtotal.Abs().GreaterThanOrEqual(MaxMoneyAmount) {
		return fmt.Errorf("grand total must be less than %s", MaxMoneyAmount)
	}
	return nil
}

// LedgerRecord is a persisted purchase, invoice, transaction, wage or payment row.
// The embedded TaxSplit is frozen at create/edit time and never recomputed on read.
type LedgerRecord struct {
	RecordID      string        `json:"recordID"` // Primary Key (UUID)
	Kind          RecordKind    `json:"kind"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Purpose       string        `json:"purpose,omitempty"`
	RecordDate    time.Time     `json:"recordDate"` // due date for payments
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	GSTNumber     string        `json:"gstNumber,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus,omitempty"`
	LineItem
	TaxSplit
	AuditFields
}

// AggregateView is a read-only fold over a filtered set of records.
type AggregateView struct {
	Count         int             `json:"count"`
	SumSubtotal   decimal.Decimal `json:"sumSubtotal"`
	SumGrandTotal decimal.Decimal `json:"sumGrandTotal"`
}

// RecordFilter narrows a listing. Zero values mean "no constraint".
type RecordFilter struct {
	Kind          RecordKind
	Month         int // 1-12, requires Year
	Year          int
	NameContains  string
	PaymentStatus PaymentStatus
}

// MonthlySummary backs the home dashboard for a single calendar month.
type MonthlySummary struct {
	Month           string          `json:"month"` // YYYY-MM
	TotalExpense    decimal.Decimal `json:"totalExpense"`
	PendingPayments decimal.Decimal `json:"pendingPayments"`
	WorkerWages     decimal.Decimal `json:"workerWages"`
	WorkerCount     int             `json:"workerCount"`
	Purchases       AggregateView   `json:"purchases"`
	Invoices        AggregateView   `json:"invoices"`
}
