package accounting_test

import (
	"testing"

	"github.com/SscSPs/hisab_kitab/internal/apperrors"
	"github.com/SscSPs/hisab_kitab/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimalInput(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "100", want: "100"},
		{raw: " 49.99 ", want: "49.99"},
		{raw: "1,250.50", want: "1250.5"},
		{raw: "18%", want: "18"},
		{raw: "18 %", want: "18"},
		{raw: "0", want: "0"},
		{raw: "", wantErr: true},
		{raw: "   ", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "12.5.1", wantErr: true},
		{raw: "%", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := accounting.ParseDecimalInput("price", tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidNumericInput)
				assert.Contains(t, err.Error(), "price")
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParseDecimalInput_Bounds(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		errPart string
	}{
		{raw: "1e99999999", errPart: "out of range"},
		{raw: "-1e99999999", errPart: "out of range"},
		{raw: "1e-99999999", errPart: "out of range"},
		{raw: "1e15", errPart: "out of range"},
		{raw: "10000000000", errPart: "out of range"},
		{raw: "0.00005", errPart: "more than 4 decimal places"},
		{raw: "12.34567", errPart: "more than 4 decimal places"},
		{raw: "9999999999.9999", want: "9999999999.9999"},
		{raw: "0.1250", want: "0.125"},
		{raw: "1.500000", want: "1.5"},
		{raw: "2e3", want: "2000"},
		{raw: "0e99999999", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := accounting.ParseDecimalInput("unitPrice", tt.raw)
			if tt.errPart != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidNumericInput)
				assert.Contains(t, err.Error(), tt.errPart)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParseDecimalInput_ErrorQuotesRawValue(t *testing.T) {
	_, err := accounting.ParseDecimalInput("quantity", "two")
	require.Error(t, err)
	assert.Equal(t, `invalid numeric input for quantity: "two"`, err.Error())
}

func TestParseOptionalDecimalInput(t *testing.T) {
	got, err := accounting.ParseOptionalDecimalInput("quantity", "", decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1)))

	got, err = accounting.ParseOptionalDecimalInput("quantity", "4", decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(4)))

	_, err = accounting.ParseOptionalDecimalInput("quantity", "x", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, apperrors.ErrInvalidNumericInput)
}
