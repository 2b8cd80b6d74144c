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

// BillRepository implements portsrepo.BillRepositoryFacade on database/sql
type BillRepository struct {
	BaseRepository
}

func newBillRepository(db *sql.DB) portsrepo.BillRepositoryFacade {
	return &BillRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.BillRepositoryFacade = (*BillRepository)(nil)

var billSelect = "SELECT " + strings.Join(database.BillColumns, ", ") + " FROM bills "

func scanBill(row rowScanner) (models.Bill, error) {
	var m models.Bill
	err := row.Scan(
		&m.BillID, &m.FilePath, &m.BillDate, &m.Description,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *BillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)
	query := fmt.Sprintf("INSERT INTO bills (%s) VALUES (%s)",
		strings.Join(database.BillColumns, ", "), placeholders(len(database.BillColumns)))

	_, err := r.DB.ExecContext(ctx, query,
		m.BillID, m.FilePath, m.BillDate, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return r.mapWriteError("failed to insert bill", err)
	}
	return nil
}

func (r *BillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	m, err := scanBill(r.DB.QueryRowContext(ctx, billSelect+"WHERE bill_id = ?", billID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find bill", err)
	}
	bill := mapping.ToDomainBill(m)
	return &bill, nil
}

func (r *BillRepository) ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, error) {
	where, args := database.BuildBillWhere(filter, database.QuestionPlaceholder)
	query := billSelect + where + " ORDER BY bill_date ASC, created_at ASC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bills", err)
	}
	defer rows.Close()

	var ms []models.Bill
	for rows.Next() {
		m, err := scanBill(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bill", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bills", err)
	}
	return mapping.ToDomainBillSlice(ms), nil
}

func (r *BillRepository) DeleteBill(ctx context.Context, billID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM bills WHERE bill_id = ?`, billID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete bill", err)
	}
	return checkAffected(res)
}
