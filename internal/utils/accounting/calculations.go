package accounting

import (
	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of fractional digits kept for stored and displayed money.
const MoneyPlaces int32 = 2

var two = decimal.NewFromInt(2)

// RoundMoney rounds to two places, half away from zero (half-up for the non-negative amounts a ledger stores).
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// ComputeSplit derives the stored totals for a line item.
// Tax is charged on price*quantity, never per unit. Intermediate values keep full precision and
// each output is rounded independently. The function is total: it does not reject zero or
// negative inputs, callers validate before persisting.
func ComputeSplit(unitPrice, quantity, taxRatePercent decimal.Decimal) domain.TaxSplit {
	subtotal := unitPrice.Mul(quantity)
	tax := subtotal.Mul(taxRatePercent).Shift(-2)
	half := RoundMoney(tax.Div(two))

	return domain.TaxSplit{
		Subtotal:     RoundMoney(subtotal),
		TaxComponent: RoundMoney(tax),
		CGST:         half,
		SGST:         half,
		GrandTotal:   RoundMoney(subtotal.Add(tax)),
	}
}

// ComputeLineItemSplit is ComputeSplit over a domain.LineItem.
func ComputeLineItemSplit(li domain.LineItem) domain.TaxSplit {
	return ComputeSplit(li.UnitPrice, li.Quantity, li.TaxRatePercent)
}

// FoldAggregate sums the stored subtotal and grand total of records.
// It never recomputes a split from the line item and keeps no state between calls.
func FoldAggregate(records []domain.LedgerRecord) domain.AggregateView {
	sumSubtotal := decimal.Zero
	sumGrandTotal := decimal.Zero
	for _, r := range records {
		sumSubtotal = sumSubtotal.Add(r.Subtotal)
		sumGrandTotal = sumGrandTotal.Add(r.GrandTotal)
	}

	return domain.AggregateView{
		Count:         len(records),
		SumSubtotal:   RoundMoney(sumSubtotal),
		SumGrandTotal: RoundMoney(sumGrandTotal),
	}
}
