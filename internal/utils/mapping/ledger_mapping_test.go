package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLedgerRecordMapping_PreservesStoredSplit(t *testing.T) {
	now := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	rec := domain.LedgerRecord{
		RecordID:      "rec-1",
		Kind:          domain.KindInvoice,
		Name:          "Sharma Traders",
		RecordDate:    now,
		GSTNumber:     "27ABCDE1234F1Z5",
		PaymentStatus: "",
		LineItem: domain.LineItem{
			UnitPrice:      decimal.RequireFromString("100"),
			Quantity:       decimal.RequireFromString("2"),
			TaxRatePercent: decimal.RequireFromString("18"),
		},
		// deliberately not what ComputeSplit would produce
		TaxSplit: domain.TaxSplit{
			Subtotal:     decimal.RequireFromString("1.00"),
			TaxComponent: decimal.RequireFromString("2.00"),
			CGST:         decimal.RequireFromString("3.00"),
			SGST:         decimal.RequireFromString("4.00"),
			GrandTotal:   decimal.RequireFromString("5.00"),
		},
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: "u1", LastUpdatedAt: now, LastUpdatedBy: "u1"},
	}

	model := ToModelLedgerRecord(rec)
	assert.Equal(t, "INVOICE", model.Kind)
	assert.Equal(t, "u1", model.CreatedBy)

	back := ToDomainLedgerRecord(model)
	assert.Equal(t, rec, back)
}
