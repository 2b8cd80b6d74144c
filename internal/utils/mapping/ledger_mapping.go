package mapping

import (
	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	"github.com/SscSPs/hisab_kitab/internal/models"
)

// ToModelLedgerRecord converts a domain LedgerRecord to a model LedgerRecord
func ToModelLedgerRecord(d domain.LedgerRecord) models.LedgerRecord {
	return models.LedgerRecord{
		RecordID:       d.RecordID,
		Kind:           string(d.Kind),
		Name:           d.Name,
		Description:    d.Description,
		Purpose:        d.Purpose,
		RecordDate:     d.RecordDate,
		PaymentMethod:  d.PaymentMethod,
		GSTNumber:      d.GSTNumber,
		PaymentStatus:  string(d.PaymentStatus),
		UnitPrice:      d.UnitPrice,
		Quantity:       d.Quantity,
		TaxRatePercent: d.TaxRatePercent,
		Subtotal:       d.Subtotal,
		TaxComponent:   d.TaxComponent,
		CGST:           d.CGST,
		SGST:           d.SGST,
		GrandTotal:     d.GrandTotal,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerRecord converts a model LedgerRecord to a domain LedgerRecord
func ToDomainLedgerRecord(m models.LedgerRecord) domain.LedgerRecord {
	return domain.LedgerRecord{
		RecordID:      m.RecordID,
		Kind:          domain.RecordKind(m.Kind),
		Name:          m.Name,
		Description:   m.Description,
		Purpose:       m.Purpose,
		RecordDate:    m.RecordDate,
		PaymentMethod: m.PaymentMethod,
		GSTNumber:     m.GSTNumber,
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		LineItem: domain.LineItem{
			UnitPrice:      m.UnitPrice,
			Quantity:       m.Quantity,
			TaxRatePercent: m.TaxRatePercent,
		},
		TaxSplit: domain.TaxSplit{
			Subtotal:     m.Subtotal,
			TaxComponent: m.TaxComponent,
			CGST:         m.CGST,
			SGST:         m.SGST,
			GrandTotal:   m.GrandTotal,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerRecordSlice converts a slice of model LedgerRecords to domain LedgerRecords
func ToDomainLedgerRecordSlice(ms []models.LedgerRecord) []domain.LedgerRecord {
	ds := make([]domain.LedgerRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerRecord(m)
	}
	return ds
}
