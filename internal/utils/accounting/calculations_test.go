package accounting_test

import (
	"math/rand"
	"testing"

	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	"github.com/SscSPs/hisab_kitab/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeSplit_Examples(t *testing.T) {
	tests := []struct {
		name                                  string
		price, qty, rate                      string
		subtotal, tax, cgst, sgst, grandTotal string
	}{
		{
			name: "18 percent invoice", price: "100.00", qty: "2", rate: "18",
			subtotal: "200.00", tax: "36.00", cgst: "18.00", sgst: "18.00", grandTotal: "236.00",
		},
		{
			name: "zero rate", price: "49.99", qty: "3", rate: "0",
			subtotal: "149.97", tax: "0.00", cgst: "0.00", sgst: "0.00", grandTotal: "149.97",
		},
		{
			name: "fractional quantity", price: "12.50", qty: "1.5", rate: "21",
			subtotal: "18.75", tax: "3.94", cgst: "1.97", sgst: "1.97", grandTotal: "22.69",
		},
		{
			name: "wage hours", price: "150", qty: "7.25", rate: "0",
			subtotal: "1087.50", tax: "0.00", cgst: "0.00", sgst: "0.00", grandTotal: "1087.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := accounting.ComputeSplit(d(tt.price), d(tt.qty), d(tt.rate))
			assert.Equal(t, tt.subtotal, split.Subtotal.StringFixed(2))
			assert.Equal(t, tt.tax, split.TaxComponent.StringFixed(2))
			assert.Equal(t, tt.cgst, split.CGST.StringFixed(2))
			assert.Equal(t, tt.sgst, split.SGST.StringFixed(2))
			assert.Equal(t, tt.grandTotal, split.GrandTotal.StringFixed(2))
		})
	}
}

func TestComputeSplit_TaxOnExtendedAmount(t *testing.T) {
	// Per-unit tax would be 0.0594 -> 0.06, times 10 = 0.60.
	split := accounting.ComputeSplit(d("0.33"), d("10"), d("18"))
	assert.Equal(t, "3.30", split.Subtotal.StringFixed(2))
	assert.Equal(t, "0.59", split.TaxComponent.StringFixed(2))
	assert.Equal(t, "3.89", split.GrandTotal.StringFixed(2))
}

func TestComputeSplit_GrandTotalFromUnroundedParts(t *testing.T) {
	// Each output is rounded from full precision, so the rounded parts need not add up.
	split := accounting.ComputeSplit(d("0.335"), d("3"), d("18"))
	assert.Equal(t, "1.01", split.Subtotal.StringFixed(2))
	assert.Equal(t, "0.18", split.TaxComponent.StringFixed(2))
	assert.Equal(t, "1.19", split.GrandTotal.StringFixed(2))

	split = accounting.ComputeSplit(d("0.004"), d("1"), d("50"))
	assert.Equal(t, "0.00", split.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", split.TaxComponent.StringFixed(2))
	assert.Equal(t, "0.01", split.GrandTotal.StringFixed(2))
}

func TestComputeSplit_HalfUpRounding(t *testing.T) {
	split := accounting.ComputeSplit(d("0.125"), d("1"), d("0"))
	assert.Equal(t, "0.13", split.Subtotal.StringFixed(2))

	split = accounting.ComputeSplit(d("1.00"), d("1"), d("0.5"))
	assert.Equal(t, "0.01", split.TaxComponent.StringFixed(2))
	// half of 0.005 is 0.0025, each half rounds to 0.00
	assert.Equal(t, "0.00", split.CGST.StringFixed(2))
	assert.True(t, split.CGST.Equal(split.SGST))
}

func TestComputeSplit_DoesNotRejectInvalidInput(t *testing.T) {
	assert.NotPanics(t, func() {
		split := accounting.ComputeSplit(d("10"), d("0"), d("18"))
		assert.True(t, split.GrandTotal.IsZero())

		split = accounting.ComputeSplit(d("10"), d("-2"), d("0"))
		assert.Equal(t, "-20.00", split.GrandTotal.StringFixed(2))
	})
}

func TestComputeSplit_Properties(t *testing.T) {
	prices := []string{"0", "0.01", "0.335", "1", "9.99", "49.99", "100.00", "1234.567"}
	quantities := []string{"0.5", "1", "2", "3", "7.25", "12"}
	rates := []string{"0", "0.5", "5", "12.5", "18", "21", "28"}
	hundred := decimal.NewFromInt(100)

	for _, p := range prices {
		for _, q := range quantities {
			for _, r := range rates {
				price, qty, rate := d(p), d(q), d(r)
				split := accounting.ComputeSplit(price, qty, rate)

				extended := price.Mul(qty)
				want := extended.Add(extended.Mul(rate).Div(hundred)).Round(2)
				assert.True(t, want.Equal(split.GrandTotal), "grand total for %s x %s @ %s%%: want %s got %s", p, q, r, want, split.GrandTotal)
				assert.True(t, split.CGST.Equal(split.SGST), "cgst/sgst symmetry for %s x %s @ %s%%", p, q, r)

				zeroRate := accounting.ComputeSplit(price, qty, decimal.Zero)
				assert.True(t, zeroRate.TaxComponent.IsZero())
			}
		}
	}
}

func TestFoldAggregate_Empty(t *testing.T) {
	view := accounting.FoldAggregate(nil)
	assert.Equal(t, 0, view.Count)
	assert.Equal(t, "0.00", view.SumSubtotal.StringFixed(2))
	assert.Equal(t, "0.00", view.SumGrandTotal.StringFixed(2))

	view = accounting.FoldAggregate([]domain.LedgerRecord{})
	assert.Equal(t, 0, view.Count)
}

func TestFoldAggregate_Example(t *testing.T) {
	records := []domain.LedgerRecord{
		{TaxSplit: domain.TaxSplit{Subtotal: d("100.00"), GrandTotal: d("118.00")}},
		{TaxSplit: domain.TaxSplit{Subtotal: d("50.00"), GrandTotal: d("59.00")}},
	}

	view := accounting.FoldAggregate(records)
	assert.Equal(t, 2, view.Count)
	assert.Equal(t, "150.00", view.SumSubtotal.StringFixed(2))
	assert.Equal(t, "177.00", view.SumGrandTotal.StringFixed(2))
}

func TestFoldAggregate_UsesStoredTotals(t *testing.T) {
	// A stored total that disagrees with the line item must be summed as stored.
	records := []domain.LedgerRecord{
		{
			LineItem: domain.LineItem{UnitPrice: d("100"), Quantity: d("1"), TaxRatePercent: d("18")},
			TaxSplit: domain.TaxSplit{Subtotal: d("100.00"), GrandTotal: d("112.00")},
		},
	}

	view := accounting.FoldAggregate(records)
	assert.Equal(t, "112.00", view.SumGrandTotal.StringFixed(2))
}

func TestFoldAggregate_OrderIndependent(t *testing.T) {
	records := make([]domain.LedgerRecord, 0, 40)
	for i := 0; i < 40; i++ {
		split := accounting.ComputeSplit(decimal.New(int64(1999+i*37), -2), decimal.NewFromInt(int64(i%5+1)), decimal.NewFromInt(int64(i%3*9)))
		records = append(records, domain.LedgerRecord{TaxSplit: split})
	}
	want := accounting.FoldAggregate(records)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 25; i++ {
		shuffled := append([]domain.LedgerRecord(nil), records...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := accounting.FoldAggregate(shuffled)
		assert.Equal(t, want.Count, got.Count)
		assert.True(t, want.SumSubtotal.Equal(got.SumSubtotal))
		assert.True(t, want.SumGrandTotal.Equal(got.SumGrandTotal))
	}
}

func TestFoldAggregate_DoesNotMutateInput(t *testing.T) {
	records := []domain.LedgerRecord{{TaxSplit: domain.TaxSplit{Subtotal: d("1.00"), GrandTotal: d("1.18")}}}
	first := accounting.FoldAggregate(records)
	second := accounting.FoldAggregate(records)
	assert.True(t, first.SumGrandTotal.Equal(second.SumGrandTotal))
	assert.Equal(t, "1.18", records[0].GrandTotal.StringFixed(2))
}
