package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/hisab_kitab/internal/apperrors"
	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	portssvc "github.com/SscSPs/hisab_kitab/internal/core/ports/services"
	"github.com/SscSPs/hisab_kitab/internal/core/services"
	"github.com/SscSPs/hisab_kitab/internal/dto"
	"github.com/SscSPs/hisab_kitab/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo, bcrypt.MinCost)
}

// --- CreateUser Tests ---
func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "munim", Password: "password123", Name: "Munim Ji"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "munim").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "munim" && user.PasswordHash != "" && user.PasswordHash != req.Password
	})).Return(nil).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.UserID)
	suite.Equal("Munim Ji", created.Name)
	suite.True(utils.CheckPasswordHash(req.Password, created.PasswordHash))
	cost, err := bcrypt.Cost([]byte(created.PasswordHash))
	suite.Require().NoError(err)
	suite.Equal(bcrypt.MinCost, cost)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_PasswordTooLong() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "munim", Password: strings.Repeat("ब", 30), Name: "Munim Ji"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "munim").Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "munim", Password: "password123", Name: "Munim Ji"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "munim").Return(&domain.User{UserID: uuid.NewString()}, nil).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_SaveError() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "munim", Password: "password123", Name: "Munim Ji"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "munim").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(assert.AnError).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Nil(created)
	suite.ErrorIs(err, assert.AnError)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- GetUserByID Tests ---
func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- AuthenticateUser Tests ---
func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass", bcrypt.MinCost)
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Username: "munim", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "munim").Return(stored, nil)
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	user, err := suite.service.AuthenticateUser(ctx, "munim", "s3cret-pass")
	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)

	_, err = suite.service.AuthenticateUser(ctx, "munim", "wrong")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(ctx, "ghost", "s3cret-pass")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_DeletedUser() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass", bcrypt.MinCost)
	suite.Require().NoError(err)
	deletedAt := time.Now()
	stored := &domain.User{UserID: uuid.NewString(), Username: "old", PasswordHash: hash, DeletedAt: &deletedAt}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "old").Return(stored, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, "old", "s3cret-pass")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
