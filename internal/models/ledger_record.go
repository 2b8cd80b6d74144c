package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRecord is one row of the ledger_records table.
// Optional text columns are stored as empty strings rather than NULL.
type LedgerRecord struct {
	RecordID       string          `db:"record_id"`
	Kind           string          `db:"kind"`
	Name           string          `db:"name"`
	Description    string          `db:"description"`
	Purpose        string          `db:"purpose"`
	RecordDate     time.Time       `db:"record_date"`
	PaymentMethod  string          `db:"payment_method"`
	GSTNumber      string          `db:"gst_number"`
	PaymentStatus  string          `db:"payment_status"`
	UnitPrice      decimal.Decimal `db:"unit_price"`
	Quantity       decimal.Decimal `db:"quantity"`
	TaxRatePercent decimal.Decimal `db:"tax_rate_percent"`
	Subtotal       decimal.Decimal `db:"subtotal"`
	TaxComponent   decimal.Decimal `db:"tax_component"`
	CGST           decimal.Decimal `db:"cgst"`
	SGST           decimal.Decimal `db:"sgst"`
	GrandTotal     decimal.Decimal `db:"grand_total"`
	AuditFields
}
