package utils

import (
	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	"github.com/SscSPs/hisab_kitab/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with exactly two fractional digits.
// Example: 12.345 returns "12.35", 0 returns "0.00".
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(accounting.MoneyPlaces)
}

// FormatRate renders a tax rate without trailing zeros, e.g. "18" or "12.5".
func FormatRate(rate decimal.Decimal) string {
	return rate.String()
}

// FormatUnitPrice renders a line-item price like money but keeps the extra
// precision the column stores: 100 returns "100.00", 0.125 returns "0.125".
func FormatUnitPrice(price decimal.Decimal) string {
	places := accounting.MoneyPlaces
	for p := domain.LineItemScale; p > accounting.MoneyPlaces; p-- {
		if !price.Equal(price.Round(p - 1)) {
			places = p
			break
		}
	}
	return price.StringFixed(places)
}
