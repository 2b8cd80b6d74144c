package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/hisab_kitab/internal/apperrors"
	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	portssvc "github.com/SscSPs/hisab_kitab/internal/core/ports/services"
	"github.com/SscSPs/hisab_kitab/internal/core/services"
	"github.com/SscSPs/hisab_kitab/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BillServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBillRepository
	service  portssvc.BillSvcFacade
}

func (suite *BillServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBillRepository)
	suite.service = services.NewBillService(suite.mockRepo, services.WithBillClock(func() time.Time { return fixedNow }))
}

// --- CreateBill Tests ---
func (suite *BillServiceTestSuite) TestCreateBill_Success() {
	ctx := context.Background()
	req := dto.CreateBillRequest{FilePath: "  bills/2024-03/sharma.JPG ", Date: "2024-03-05", Description: " cement "}

	suite.mockRepo.On("SaveBill", ctx, mock.MatchedBy(func(b domain.Bill) bool {
		return b.BillID != "" && b.FilePath == "bills/2024-03/sharma.JPG" && b.CreatedBy == "user-1"
	})).Return(nil).Once()

	bill, err := suite.service.CreateBill(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), bill.BillDate)
	suite.Equal("cement", bill.Description)
	suite.Equal(fixedNow, bill.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestCreateBill_DateDefaultsToToday() {
	ctx := context.Background()
	suite.mockRepo.On("SaveBill", ctx, mock.AnythingOfType("domain.Bill")).Return(nil).Once()

	bill, err := suite.service.CreateBill(ctx, dto.CreateBillRequest{FilePath: `C:\bills\tea.png`}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), bill.BillDate)
}

func (suite *BillServiceTestSuite) TestCreateBill_RejectsInput() {
	tests := []struct {
		name string
		req  dto.CreateBillRequest
	}{
		{name: "blank path", req: dto.CreateBillRequest{FilePath: "   "}},
		{name: "not a scan", req: dto.CreateBillRequest{FilePath: "bills/notes.txt"}},
		{name: "no extension", req: dto.CreateBillRequest{FilePath: "bills/scan"}},
		{name: "bad date", req: dto.CreateBillRequest{FilePath: "bills/a.png", Date: "05/03/2024"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			bill, err := suite.service.CreateBill(context.Background(), tt.req, "user-1")
			suite.Nil(bill)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBill", mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestCreateBill_DuplicatePath() {
	ctx := context.Background()
	suite.mockRepo.On("SaveBill", ctx, mock.AnythingOfType("domain.Bill")).
		Return(errors.Join(errors.New("failed to insert bill"), apperrors.ErrDuplicate)).Once()

	bill, err := suite.service.CreateBill(ctx, dto.CreateBillRequest{FilePath: "bills/a.png"}, "user-1")

	suite.Nil(bill)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- ListBills Tests ---
func (suite *BillServiceTestSuite) TestListBills() {
	ctx := context.Background()
	filter := domain.BillFilter{Year: 2024, Month: 3}
	suite.mockRepo.On("ListBills", ctx, filter).Return([]domain.Bill{{BillID: "b1"}, {BillID: "b2"}}, nil).Once()
	suite.mockRepo.On("ListBills", ctx, domain.BillFilter{}).Return(nil, nil).Once()

	bills, err := suite.service.ListBills(ctx, filter)
	suite.Require().NoError(err)
	suite.Len(bills, 2)

	bills, err = suite.service.ListBills(ctx, domain.BillFilter{})
	suite.Require().NoError(err)
	suite.NotNil(bills)
	suite.Empty(bills)
}

func (suite *BillServiceTestSuite) TestListBills_InvalidFilter() {
	_, err := suite.service.ListBills(context.Background(), domain.BillFilter{Month: 3})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ListBills(context.Background(), domain.BillFilter{Month: 13, Year: 2024})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListBills", mock.Anything, mock.Anything)
}

// --- GetBill / DeleteBill Tests ---
func (suite *BillServiceTestSuite) TestGetBill_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindBillByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	bill, err := suite.service.GetBill(ctx, "missing")

	suite.Nil(bill)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BillServiceTestSuite) TestDeleteBill() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteBill", ctx, "b1").Return(nil).Once()
	suite.mockRepo.On("DeleteBill", ctx, "gone").Return(apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.DeleteBill(ctx, "b1", "user-1"))
	suite.ErrorIs(suite.service.DeleteBill(ctx, "gone", "user-1"), apperrors.ErrNotFound)
}

func TestBillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillServiceTestSuite))
}
