package accounting

import (
	"fmt"
	"strings"

	"github.com/SscSPs/hisab_kitab/internal/apperrors"
	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ParseDecimalInput parses a form value such as "1,250.50" or "18%".
// Thousands separators and a trailing percent sign are ignored. Anything else that is not a
// plain decimal number, or that does not fit a NUMERIC(14,4) column, is rejected with
// apperrors.ErrInvalidNumericInput naming the field.
func ParseDecimalInput(field, raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, "%"))
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w for %s: value is required", apperrors.ErrInvalidNumericInput, field)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w for %s: %q", apperrors.ErrInvalidNumericInput, field, raw)
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}

	// The exponent is checked before any comparison: comparing or rounding a value such as
	// 1e99999999 rescales its coefficient to that many digits.
	exp := d.Exponent()
	if exp > maxInputExponent || exp < minInputExponent || d.Abs().GreaterThanOrEqual(domain.MaxLineItemValue) {
		return decimal.Zero, fmt.Errorf("%w for %s: %q is out of range", apperrors.ErrInvalidNumericInput, field, raw)
	}
	if !d.Equal(d.Truncate(domain.LineItemScale)) {
		return decimal.Zero, fmt.Errorf("%w for %s: %q has more than %d decimal places", apperrors.ErrInvalidNumericInput, field, raw, domain.LineItemScale)
	}
	return d, nil
}

const (
	maxInputExponent = 10
	// leaves room for trailing zeros such as "1.500000"
	minInputExponent = -20
)

// ParseOptionalDecimalInput returns def when raw is blank.
func ParseOptionalDecimalInput(field, raw string, def decimal.Decimal) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return def, nil
	}
	return ParseDecimalInput(field, raw)
}
