package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/hisab_kitab/internal/apperrors"
	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	portsrepo "github.com/SscSPs/hisab_kitab/internal/core/ports/repositories"
	"github.com/SscSPs/hisab_kitab/internal/models"
	"github.com/SscSPs/hisab_kitab/internal/repositories/database"
	"github.com/SscSPs/hisab_kitab/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade using pgx
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

var ledgerSelect = "SELECT " + strings.Join(database.LedgerRecordColumns, ", ") + " FROM ledger_records "

func scanLedgerRecord(row pgx.Row) (models.LedgerRecord, error) {
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

func (r *PgxLedgerRepository) SaveRecord(ctx context.Context, record domain.LedgerRecord) error {
	m := mapping.ToModelLedgerRecord(record)
	query := fmt.Sprintf("INSERT INTO ledger_records (%s) VALUES (%s)",
		strings.Join(database.LedgerRecordColumns, ", "), placeholders(len(database.LedgerRecordColumns)))

	_, err := r.Pool.Exec(ctx, query,
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

func (r *PgxLedgerRepository) FindRecordByID(ctx context.Context, kind domain.RecordKind, recordID string) (*domain.LedgerRecord, error) {
	query := ledgerSelect + "WHERE record_id = $1 AND kind = $2"

	m, err := scanLedgerRecord(r.Pool.QueryRow(ctx, query, recordID, string(kind)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find ledger record", err)
	}

	rec := mapping.ToDomainLedgerRecord(m)
	return &rec, nil
}

func (r *PgxLedgerRepository) ListRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.LedgerRecord, error) {
	where, args := database.BuildRecordWhere(filter, database.DollarPlaceholder)
	query := ledgerSelect + where + " ORDER BY record_date ASC, created_at ASC"

	rows, err := r.Pool.Query(ctx, query, args...)
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

func (r *PgxLedgerRepository) UpdateRecord(ctx context.Context, record domain.LedgerRecord) error {
	m := mapping.ToModelLedgerRecord(record)
	query := `
		UPDATE ledger_records SET
			name = $1, description = $2, purpose = $3, record_date = $4,
			payment_method = $5, gst_number = $6, payment_status = $7,
			unit_price = $8, quantity = $9, tax_rate_percent = $10,
			subtotal = $11, tax_component = $12, cgst = $13, sgst = $14, grand_total = $15,
			last_updated_at = $16, last_updated_by = $17
		WHERE record_id = $18 AND kind = $19;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
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
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLedgerRepository) DeleteRecord(ctx context.Context, kind domain.RecordKind, recordID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM ledger_records WHERE record_id = $1 AND kind = $2`, recordID, string(kind))
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete ledger record", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
