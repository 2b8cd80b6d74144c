package domain_test

import (
	"testing"

	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordKind(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.RecordKind
		wantErr bool
	}{
		{in: "INVOICE", want: domain.KindInvoice},
		{in: "invoice", want: domain.KindInvoice},
		{in: "invoices", want: domain.KindInvoice},
		{in: " wages ", want: domain.KindWage},
		{in: "Purchases", want: domain.KindPurchase},
		{in: "transactions", want: domain.KindTransaction},
		{in: "payment", want: domain.KindPayment},
		{in: "bills", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseRecordKind(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnknownRecordKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordKind_PathRoundTrips(t *testing.T) {
	for _, k := range domain.AllRecordKinds {
		got, err := domain.ParseRecordKind(k.Path())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

func TestRecordKind_FieldUsage(t *testing.T) {
	assert.True(t, domain.KindInvoice.UsesTaxRate())
	assert.True(t, domain.KindPurchase.UsesTaxRate())
	assert.False(t, domain.KindWage.UsesTaxRate())
	assert.True(t, domain.KindWage.UsesQuantity())
	assert.False(t, domain.KindTransaction.UsesQuantity())
	assert.False(t, domain.KindPayment.UsesQuantity())
}

func TestLineItem_Validate(t *testing.T) {
	d := decimal.RequireFromString

	tests := []struct {
		name   string
		item   domain.LineItem
		errMsg string
	}{
		{name: "valid", item: domain.LineItem{UnitPrice: d("100"), Quantity: d("2"), TaxRatePercent: d("18")}},
		{name: "zero price allowed", item: domain.LineItem{UnitPrice: d("0"), Quantity: d("1"), TaxRatePercent: d("0")}},
		{name: "negative price", item: domain.LineItem{UnitPrice: d("-1"), Quantity: d("1")}, errMsg: "unit price must not be negative"},
		{name: "zero quantity", item: domain.LineItem{UnitPrice: d("1"), Quantity: d("0")}, errMsg: "quantity must be positive"},
		{name: "negative rate", item: domain.LineItem{UnitPrice: d("1"), Quantity: d("1"), TaxRatePercent: d("-5")}, errMsg: "tax rate must not be negative"},
		{name: "largest price", item: domain.LineItem{UnitPrice: d("9999999999.9999"), Quantity: d("1")}},
		{name: "price too large", item: domain.LineItem{UnitPrice: d("10000000000"), Quantity: d("1")}, errMsg: "unit price must be less than 10000000000"},
		{name: "quantity too large", item: domain.LineItem{UnitPrice: d("1"), Quantity: d("10000000000")}, errMsg: "quantity must be less than 10000000000"},
		{name: "rate too large", item: domain.LineItem{UnitPrice: d("1"), Quantity: d("1"), TaxRatePercent: d("1000")}, errMsg: "tax rate must be less than 1000"},
		{name: "price too precise", item: domain.LineItem{UnitPrice: d("0.00005"), Quantity: d("1")}, errMsg: "numbers can have at most 4 decimal places"},
		{name: "trailing zeros allowed", item: domain.LineItem{UnitPrice: d("0.125000"), Quantity: d("1.50")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.errMsg)
		})
	}
}

func TestParsePaymentStatus(t *testing.T) {
	st, err := domain.ParsePaymentStatus("unpaid")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnpaid, st)

	_, err = domain.ParsePaymentStatus("overdue")
	assert.Error(t, err)
}

func TestTaxSplit_Validate(t *testing.T) {
	d := decimal.RequireFromString

	assert.NoError(t, domain.TaxSplit{Subtotal: d("999999999999.99"), GrandTotal: d("999999999999.99")}.Validate())
	assert.EqualError(t,
		domain.TaxSplit{Subtotal: d("900000000000"), GrandTotal: d("1062000000000")}.Validate(),
		"grand total must be less than 1000000000000")
}
