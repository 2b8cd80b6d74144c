package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/hisab_kitab/internal/apperrors"
	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	portsrepo "github.com/SscSPs/hisab_kitab/internal/core/ports/repositories"
	"github.com/SscSPs/hisab_kitab/internal/models"
	"github.com/SscSPs/hisab_kitab/internal/utils/mapping"
)

type UserRepository struct {
	BaseRepository
}

func newUserRepository(db *sql.DB) portsrepo.UserRepositoryFacade {
	return &UserRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

const userColumns = `user_id, username, password_hash, name, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (`+placeholders(9)+`)`,
		m.UserID, m.Username, m.PasswordHash, m.Name,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.DeletedAt,
	)
	if err != nil {
		return r.mapWriteError("failed to save user", err)
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	var m models.User
	var deletedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg).Scan(
		&m.UserID, &m.Username, &m.PasswordHash, &m.Name,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &deletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if deletedAt.Valid {
		m.DeletedAt = &deletedAt.Time
	}

	u := mapping.ToDomainUser(m)
	return &u, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "user_id = ? AND deleted_at IS NULL", userID)
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "username = ?", username)
}
