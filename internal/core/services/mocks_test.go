package services_test

import (
	"context"

	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindRecordByID(ctx context.Context, kind domain.RecordKind, recordID string) (*domain.LedgerRecord, error) {
	args := m.Called(ctx, kind, recordID)
	var rec *domain.LedgerRecord
	if args.Get(0) != nil {
		rec = args.Get(0).(*domain.LedgerRecord)
	}
	return rec, args.Error(1)
}

func (m *MockLedgerRepository) ListRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.LedgerRecord, error) {
	args := m.Called(ctx, filter)
	var recs []domain.LedgerRecord
	if args.Get(0) != nil {
		recs = args.Get(0).([]domain.LedgerRecord)
	}
	return recs, args.Error(1)
}

func (m *MockLedgerRepository) SaveRecord(ctx context.Context, record domain.LedgerRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockLedgerRepository) UpdateRecord(ctx context.Context, record domain.LedgerRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteRecord(ctx context.Context, kind domain.RecordKind, recordID string) error {
	args := m.Called(ctx, kind, recordID)
	return args.Error(0)
}

// --- Mock BillRepository ---
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	var bill *domain.Bill
	if args.Get(0) != nil {
		bill = args.Get(0).(*domain.Bill)
	}
	return bill, args.Error(1)
}

func (m *MockBillRepository) ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, error) {
	args := m.Called(ctx, filter)
	var bills []domain.Bill
	if args.Get(0) != nil {
		bills = args.Get(0).([]domain.Bill)
	}
	return bills, args.Error(1)
}

func (m *MockBillRepository) DeleteBill(ctx context.Context, billID string) error {
	args := m.Called(ctx, billID)
	return args.Error(0)
}
