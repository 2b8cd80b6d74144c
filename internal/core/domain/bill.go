package domain

import (
	"path"
	"strings"
	"time"
)

// Bill is a reference to a scanned bill kept alongside the books. Only the reference
// (a path or URL) is stored; the file itself lives wherever the reference points.
type Bill struct {
	BillID      string
	FilePath    string
	BillDate    time.Time
	Description string
	AuditFields
}

// BillFileExtensions are the file types accepted as bill scans.
var BillFileExtensions = []string{".png", ".jpg", ".jpeg", ".pdf"}

// HasBillFileExtension reports whether ref names one of BillFileExtensions, ignoring case.
func HasBillFileExtension(ref string) bool {
	ext := strings.ToLower(path.Ext(strings.ReplaceAll(ref, `\`, "/")))
	for _, allowed := range BillFileExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// BillFilter narrows a bill listing. Month and Year are applied together.
type BillFilter struct {
	Month int
	Year  int
}
