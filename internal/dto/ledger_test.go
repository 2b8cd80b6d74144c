package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericInput_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		body string
		want NumericInput
	}{
		{body: `{"unitPrice": "1,250.50"}`, want: "1,250.50"},
		{body: `{"unitPrice": 49.99}`, want: "49.99"},
		{body: `{"unitPrice": 100}`, want: "100"},
		{body: `{"unitPrice": null}`, want: ""},
		{body: `{}`, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req LedgerRecordRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.UnitPrice)
		})
	}
}

func TestToLedgerRecordResponse(t *testing.T) {
	d := decimal.RequireFromString
	rec := &domain.LedgerRecord{
		RecordID:   "r1",
		Kind:       domain.KindInvoice,
		Name:       "Sharma Traders",
		RecordDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		LineItem:   domain.LineItem{UnitPrice: d("100"), Quantity: d("2"), TaxRatePercent: d("18")},
		TaxSplit:   domain.TaxSplit{Subtotal: d("200"), TaxComponent: d("36"), CGST: d("18"), SGST: d("18"), GrandTotal: d("236")},
	}

	resp := ToLedgerRecordResponse(rec)
	assert.Equal(t, "2024-03-05", resp.Date)
	assert.Equal(t, "100.00", resp.UnitPrice)
	assert.Equal(t, "18", resp.TaxRate)
	assert.Equal(t, "236.00", resp.GrandTotal)
	assert.Equal(t, "18.00", resp.CGST)

	rec.Kind = domain.KindPurchase
	resp = ToLedgerRecordResponse(rec)
	assert.Empty(t, resp.CGST)
	assert.Empty(t, resp.SGST)
}

func TestToLedgerRecordResponse_UnitPriceKeepsStoredPrecision(t *testing.T) {
	d := decimal.RequireFromString
	rec := &domain.LedgerRecord{
		Kind:       domain.KindPurchase,
		RecordDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		LineItem:   domain.LineItem{UnitPrice: d("0.1250"), Quantity: d("8"), TaxRatePercent: d("0")},
		TaxSplit:   domain.TaxSplit{Subtotal: d("1.00"), GrandTotal: d("1.00")},
	}

	resp := ToLedgerRecordResponse(rec)
	assert.Equal(t, "0.125", resp.UnitPrice)
	assert.Equal(t, "1.00", resp.Subtotal)

	preview := ToSplitPreviewResponse(domain.KindPurchase, rec.LineItem, rec.TaxSplit)
	assert.Equal(t, "0.125", preview.UnitPrice)
}

func TestToListRecordsResponse_EmptyRecordsSerializeAsArray(t *testing.T) {
	resp := ToListRecordsResponse([]domain.LedgerRecord{}, domain.AggregateView{})
	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"records":[],"aggregate":{"count":0,"total":"0.00","grandTotal":"0.00"}}`, string(b))
}

func TestListRecordsParams_ToRecordFilter(t *testing.T) {
	f := ListRecordsParams{Month: 3, Year: 2024, Name: "  ram ", Status: "unpaid"}.ToRecordFilter(domain.KindPayment)
	assert.Equal(t, domain.RecordFilter{Kind: domain.KindPayment, Month: 3, Year: 2024, NameContains: "ram", PaymentStatus: domain.StatusUnpaid}, f)
}
