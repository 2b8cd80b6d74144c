package domain_test

import (
	"testing"

	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestHasBillFileExtension(t *testing.T) {
	assert.True(t, domain.HasBillFileExtension("bills/a.png"))
	assert.True(t, domain.HasBillFileExtension("bills/A.JPEG"))
	assert.True(t, domain.HasBillFileExtension(`C:\Users\munim\bills\b.jpg`))
	assert.True(t, domain.HasBillFileExtension("https://files.example.com/x/invoice.pdf"))
	assert.False(t, domain.HasBillFileExtension("bills/a.txt"))
	assert.False(t, domain.HasBillFileExtension("bills.png/scan"))
	assert.False(t, domain.HasBillFileExtension(""))
}
