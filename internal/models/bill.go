package models

import "time"

// Bill is one row of the bills table.
type Bill struct {
	BillID      string    `db:"bill_id"`
	FilePath    string    `db:"file_path"`
	BillDate    time.Time `db:"bill_date"`
	Description string    `db:"description"`
	AuditFields
}
