package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/hisab_kitab/internal/apperrors"
	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	portsrepo "github.com/SscSPs/hisab_kitab/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hisab_kitab/internal/core/ports/services"
	"github.com/SscSPs/hisab_kitab/internal/dto"
	"github.com/SscSPs/hisab_kitab/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo         portsrepo.UserRepositoryFacade
	passwordHashCost int
}

// NewUserService creates the service behind the login gate. Passwords are hashed with
// bcrypt at passwordHashCost.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, passwordHashCost int) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, passwordHashCost: passwordHashCost}
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)

	_, err := s.userRepo.FindUserByUsername(ctx, username)
	if err == nil {
		return nil, fmt.Errorf("%w: username %q is already taken", apperrors.ErrDuplicate, username)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing username", slog.String("username", username))
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := utils.HashPassword(req.Password, s.passwordHashCost)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to hash password")
		}
		return nil, err
	}

	now := time.Now()
	newUserID := uuid.NewString()
	user := domain.User{
		UserID:       newUserID,
		Username:     username,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("username", username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}
	if user.DeletedAt != nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}
	return user, nil
}
