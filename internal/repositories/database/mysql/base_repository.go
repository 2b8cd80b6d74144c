package mysql

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/hisab_kitab/internal/apperrors"
	driver "github.com/go-sql-driver/mysql"
)

// ER_DUP_ENTRY
const duplicateEntry = 1062

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *sql.DB
}

func (r *BaseRepository) mapWriteError(op string, err error) error {
	var myErr *driver.MySQLError
	if errors.As(err, &myErr) && myErr.Number == duplicateEntry {
		return fmt.Errorf("%s: %w", op, apperrors.ErrDuplicate)
	}
	return apperrors.NewAppError(500, op, err)
}

// checkAffected reports ErrNotFound when a statement touched no rows.
func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.NewAppError(500, "failed to read affected rows", err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
