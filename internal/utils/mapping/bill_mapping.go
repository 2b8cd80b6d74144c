package mapping

import (
	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	"github.com/SscSPs/hisab_kitab/internal/models"
)

// ToModelBill converts a domain Bill to a model Bill
func ToModelBill(d domain.Bill) models.Bill {
	return models.Bill{
		BillID:      d.BillID,
		FilePath:    d.FilePath,
		BillDate:    d.BillDate,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBill converts a model Bill to a domain Bill
func ToDomainBill(m models.Bill) domain.Bill {
	return domain.Bill{
		BillID:      m.BillID,
		FilePath:    m.FilePath,
		BillDate:    m.BillDate,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBillSlice converts a slice of model Bills to domain Bills
func ToDomainBillSlice(ms []models.Bill) []domain.Bill {
	ds := make([]domain.Bill, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBill(m)
	}
	return ds
}
