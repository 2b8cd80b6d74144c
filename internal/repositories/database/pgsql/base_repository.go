package pgsql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/hisab_kitab/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// mapWriteError turns driver errors from INSERT/UPDATE into application errors.
func (r *BaseRepository) mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", op, apperrors.ErrDuplicate)
	}
	return apperrors.NewAppError(500, op, err)
}

// placeholders renders "$1, $2, ... $n".
func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}
