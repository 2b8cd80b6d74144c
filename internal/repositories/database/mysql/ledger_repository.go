package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/hisab_kitab/internal/apperrors"
	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	portsrepo "github.com/SscSPs/hisab_kitab/internal/core/ports/repositories"
	"github.com/SscSPs/hisab_kitab/internal/models"
	"github.com/SscSPs/hisab_kitab/internal/repositories/database"
	"github.com/SscSPs/hisab_kitab/internal/utils/mapping"
)

// LedgerRepository implements portsrepo.LedgerRepositoryFacade on database/sql
type LedgerRepository struct {
	BaseRepository
}

func newLedgerRepository(db *sql.DB) portsrepo.LedgerRepositoryFacade {
	return &LedgerRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)

var ledgerSelect = "SELECT " + strings.Join(database.LedgerRecordColumns, ", ") + " FROM ledger_records "

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLedgerRecord(row rowScanner) (models.LedgerRecord, error) {
	var m models.LedgerRecord
	err := row.Scan(
		&m.RecordID, &m.Kind, &m.Name, &m.Description, &m.Purpose, &m.RecordDate,
		&m.PaymentMethod, &m.GSTNumber, &m.PaymentStatus,
		&m.UnitPrice, &m.Quantity, &m.TaxRatePercent,
		&m.Subtotal, &m.TaxComponent, &m.CGST, &m.SGST, &m.GrandTotal,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *LedgerRepository) SaveRecord(ctx context.Context, record domain.LedgerRecord) error {
	m := mapping.ToModelLedgerRecord(record)
	query := fmt.Sprintf("INSERT INTO ledger_records (%s) VALUES (%s)",
		strings.Join(database.LedgerRecordColumns, ", "), placeholders(len(database.LedgerRecordColumns)))

	_, err := r.DB.ExecContext(ctx, query,
		m.RecordID, m.Kind, m.Name, m.Description, m.Purpose, m.RecordDate,
		m.PaymentMethod, m.GSTNumber, m.PaymentStatus,
		m.UnitPrice, m.Quantity, m.TaxRatePercent,
		m.Subtotal, m.TaxComponent, m.CGST, m.SGST, m.GrandTotal,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return r.mapWriteError("failed to insert ledger record", err)
	}
	return nil
}

func (r *LedgerRepository) FindRecordByID(ctx context.Context, kind domain.RecordKind, recordID string) (*domain.LedgerRecord, error) {
	m, err := scanLedgerRecord(r.DB.QueryRowContext(ctx, ledgerSelect+"WHERE record_id = ? AND kind = ?", recordID, string(kind)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find ledger record", err)
	}
	rec := mapping.ToDomainLedgerRecord(m)
	return &rec, nil
}

func (r *LedgerRepository) ListRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.LedgerRecord, error) {
	where, args := database.BuildRecordWhere(filter, database.QuestionPlaceholder)
	query := ledgerSelect + where + " ORDER BY record_date ASC, created_at ASC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger records", err)
	}
	defer rows.Close()

	var ms []models.LedgerRecord
	for rows.Next() {
		m, err := scanLedgerRecord(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger record", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger records", err)
	}
	return mapping.ToDomainLedgerRecordSlice(ms), nil
}

func (r *LedgerRepository) UpdateRecord(ctx context.Context, record domain.LedgerRecord) error {
	m := mapping.ToModelLedgerRecord(record)
	query := `
		UPDATE ledger_records SET
			name = ?, description = ?, purpose = ?, record_date = ?,
			payment_method = ?, gst_number = ?, payment_status = ?,
			unit_price = ?, quantity = ?, tax_rate_percent = ?,
			subtotal = ?, tax_component = ?, cgst = ?, sgst = ?, grand_total = ?,
			last_updated_at = ?, last_updated_by = ?
		WHERE record_id = ? AND kind = ?
	`
	res, err := r.DB.ExecContext(ctx, query,
		m.Name, m.Description, m.Purpose, m.RecordDate,
		m.PaymentMethod, m.GSTNumber, m.PaymentStatus,
		m.UnitPrice, m.Quantity, m.TaxRatePercent,
		m.Subtotal, m.TaxComponent, m.CGST, m.SGST, m.GrandTotal,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.RecordID, m.Kind,
	)
	if err != nil {
		return r.mapWriteError("failed to update ledger record", err)
	}
	return checkAffected(res)
}

func (r *LedgerRepository) DeleteRecord(ctx context.Context, kind domain.RecordKind, recordID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM ledger_records WHERE record_id = ? AND kind = ?`, recordID, string(kind))
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete ledger record", err)
	}
	return checkAffected(res)
}
