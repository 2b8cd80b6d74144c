// Package database holds SQL helpers shared by the postgres and mysql repositories.
package database

import (
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/hisab_kitab/internal/core/domain"
)

// Placeholder renders the n-th (1-based) bind parameter for a driver.
type Placeholder func(n int) string

// DollarPlaceholder renders postgres style parameters ($1, $2, ...).
func DollarPlaceholder(n int) string { return "$" + strconv.Itoa(n) }

// QuestionPlaceholder renders mysql style parameters.
func QuestionPlaceholder(int) string { return "?" }

// LedgerRecordColumns is the select/insert column order used by every ledger query.
var LedgerRecordColumns = []string{
	"record_id", "kind", "name", "description", "purpose", "record_date",
	"payment_method", "gst_number", "payment_status",
	"unit_price", "quantity", "tax_rate_percent",
	"subtotal", "tax_component", "cgst", "sgst", "grand_total",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

// BillColumns is the select/insert column order used by every bill query.
var BillColumns = []string{
	"bill_id", "file_path", "bill_date", "description",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

// MonthBounds returns the half-open [start, end) range of a calendar month.
func MonthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// EscapeLike escapes LIKE wildcards so user input only matches literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// BuildRecordWhere renders the WHERE clause for a RecordFilter. The kind is always
// constrained; the other fields only when set. Parameters are numbered from 1.
func BuildRecordWhere(f domain.RecordFilter, ph Placeholder) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.Replace(cond, "?", ph(len(args)), 1))
	}

	add("kind = ?", string(f.Kind))
	if f.Year != 0 && f.Month != 0 {
		start, end := MonthBounds(f.Year, f.Month)
		add("record_date >= ?", start)
		add("record_date < ?", end)
	}
	if name := strings.TrimSpace(f.NameContains); name != "" {
		add("LOWER(name) LIKE ?", "%"+EscapeLike(strings.ToLower(name))+"%")
	}
	if f.PaymentStatus != "" {
		add("payment_status = ?", string(f.PaymentStatus))
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

// BuildBillWhere renders the WHERE clause for a BillFilter, or "" when nothing is filtered.
func BuildBillWhere(f domain.BillFilter, ph Placeholder) (string, []any) {
	if f.Year == 0 || f.Month == 0 {
		return "", nil
	}
	start, end := MonthBounds(f.Year, f.Month)
	return "WHERE bill_date >= " + ph(1) + " AND bill_date < " + ph(2), []any{start, end}
}
