package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/lifetrackhq/lifetrack_backend/internal/apperrors"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portsrepo "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/repositories"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	txnRepo      *MockTransactionRepository
	categoryRepo *MockCategoryRepository
	recorder     *recorderSpy
	service      portssvc.TransactionSvcFacade
	ctx          context.Context
	ownerID      string
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.txnRepo = new(MockTransactionRepository)
	s.categoryRepo = new(MockCategoryRepository)
	s.recorder = &recorderSpy{}
	s.service = services.NewTransactionService(s.txnRepo, s.categoryRepo, s.recorder)
	s.ctx = context.Background()
	s.ownerID = "owner-1"
}

func (s *TransactionServiceTestSuite) expenseCategory(id string) *domain.Category {
	return &domain.Category{
		CategoryID: id,
		OwnerID:    s.ownerID,
		Name:       "Food",
		Type:       domain.CategoryExpense,
	}
}

func (s *TransactionServiceTestSuite) TestCreateTransaction() {
	s.categoryRepo.On("FindCategoryByID", s.ctx, "cat-1", s.ownerID).Return(s.expenseCategory("cat-1"), nil).Once()
	s.txnRepo.On("SaveTransaction", s.ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := s.service.CreateTransaction(s.ctx, s.ownerID, dto.CreateTransactionRequest{
		Amount:     decimal.NewFromFloat(42.50),
		Type:       domain.TransactionExpense,
		CategoryID: "cat-1",
		Date:       dto.DateTime{Time: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	})

	s.Require().NoError(err)
	s.Equal(s.ownerID, txn.OwnerID)
	s.NotEmpty(txn.TransactionID)
	s.Require().NotNil(txn.Category)
	s.Equal("Food", txn.Category.Name)
	s.txnRepo.AssertExpectations(s.T())

	entries := s.recorder.recorded()
	s.Require().Len(entries, 1)
	s.Equal(domain.ActivityTransaction, entries[0].Type)
	s.Equal(domain.ActionCreated, entries[0].Action)
}

func (s *TransactionServiceTestSuite) TestCreateTransactionRejectsForeignCategory() {
	s.categoryRepo.On("FindCategoryByID", s.ctx, "cat-foreign", s.ownerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.CreateTransaction(s.ctx, s.ownerID, dto.CreateTransactionRequest{
		Amount:     decimal.NewFromInt(10),
		Type:       domain.TransactionExpense,
		CategoryID: "cat-foreign",
		Date:       dto.DateTime{Time: time.Now()},
	})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.txnRepo.AssertNotCalled(s.T(), "SaveTransaction")
	s.Empty(s.recorder.recorded())
}

func (s *TransactionServiceTestSuite) TestCreateTransactionRejectsTypeMismatch() {
	s.categoryRepo.On("FindCategoryByID", s.ctx, "cat-1", s.ownerID).Return(s.expenseCategory("cat-1"), nil).Once()

	_, err := s.service.CreateTransaction(s.ctx, s.ownerID, dto.CreateTransactionRequest{
		Amount:     decimal.NewFromInt(10),
		Type:       domain.TransactionIncome,
		CategoryID: "cat-1",
		Date:       dto.DateTime{Time: time.Now()},
	})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.txnRepo.AssertNotCalled(s.T(), "SaveTransaction")
}

func (s *TransactionServiceTestSuite) TestUpdateTransactionRevalidatesMergedPair() {
	existing := &domain.Transaction{
		TransactionID: "txn-1",
		OwnerID:       s.ownerID,
		Amount:        decimal.NewFromInt(20),
		Type:          domain.TransactionExpense,
		CategoryID:    "cat-1",
		Date:          time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	s.txnRepo.On("FindTransactionByID", s.ctx, "txn-1", s.ownerID).Return(existing, nil).Once()
	// Switching only the type makes the stored expense category mismatch.
	s.categoryRepo.On("FindCategoryByID", s.ctx, "cat-1", s.ownerID).Return(s.expenseCategory("cat-1"), nil).Once()

	newType := domain.TransactionIncome
	_, err := s.service.UpdateTransaction(s.ctx, s.ownerID, dto.UpdateTransactionRequest{
		ID:   "txn-1",
		Type: &newType,
	})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.txnRepo.AssertNotCalled(s.T(), "UpdateTransaction")
}

func (s *TransactionServiceTestSuite) TestUpdateForeignTransactionIsNotFound() {
	s.txnRepo.On("FindTransactionByID", s.ctx, "txn-x", s.ownerID).Return(nil, apperrors.ErrNotFound).Once()

	amount := decimal.NewFromInt(5)
	_, err := s.service.UpdateTransaction(s.ctx, s.ownerID, dto.UpdateTransactionRequest{
		ID:     "txn-x",
		Amount: &amount,
	})

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.txnRepo.AssertNotCalled(s.T(), "UpdateTransaction")
}

func (s *TransactionServiceTestSuite) TestListTransactionsParsesDateRange() {
	s.txnRepo.On("ListTransactions", s.ctx, s.ownerID, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.Type != nil && *f.Type == domain.TransactionExpense &&
			f.StartDate != nil && f.StartDate.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			f.EndDate != nil
	})).Return([]domain.Transaction{}, nil).Once()

	_, err := s.service.ListTransactions(s.ctx, s.ownerID, dto.ListTransactionsParams{
		Type:      "EXPENSE",
		StartDate: "2025-01-01",
		EndDate:   "2025-12-31",
	})

	s.Require().NoError(err)
	s.txnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestListTransactionsRejectsBadDate() {
	_, err := s.service.ListTransactions(s.ctx, s.ownerID, dto.ListTransactionsParams{
		StartDate: "not-a-date",
	})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.txnRepo.AssertNotCalled(s.T(), "ListTransactions")
}

func (s *TransactionServiceTestSuite) TestDeleteTransactionRecordsActivity() {
	existing := &domain.Transaction{
		TransactionID: "txn-1",
		OwnerID:       s.ownerID,
		Amount:        decimal.NewFromInt(20),
		Type:          domain.TransactionExpense,
		CategoryID:    "cat-1",
		Category:      s.expenseCategory("cat-1"),
	}
	s.txnRepo.On("FindTransactionByID", s.ctx, "txn-1", s.ownerID).Return(existing, nil).Once()
	s.txnRepo.On("DeleteTransaction", s.ctx, "txn-1", s.ownerID).Return(nil).Once()

	s.Require().NoError(s.service.DeleteTransaction(s.ctx, s.ownerID, "txn-1"))

	entries := s.recorder.recorded()
	s.Require().Len(entries, 1)
	s.Equal(domain.ActionDeleted, entries[0].Action)
	s.Contains(entries[0].Description, "Food")
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
