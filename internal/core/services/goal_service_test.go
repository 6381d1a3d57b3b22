package services_test

import (
	"context"
	"testing"

	"github.com/lifetrackhq/lifetrack_backend/internal/apperrors"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type GoalServiceTestSuite struct {
	suite.Suite
	goalRepo     *MockGoalRepository
	categoryRepo *MockCategoryRepository
	recorder     *recorderSpy
	service      portssvc.GoalSvcFacade
	ctx          context.Context
	ownerID      string
}

func (s *GoalServiceTestSuite) SetupTest() {
	s.goalRepo = new(MockGoalRepository)
	s.categoryRepo = new(MockCategoryRepository)
	s.recorder = &recorderSpy{}
	s.service = services.NewGoalService(s.goalRepo, s.categoryRepo, s.recorder)
	s.ctx = context.Background()
	s.ownerID = "owner-1"
}

func (s *GoalServiceTestSuite) TestCreateGoalStartsSafeAtZero() {
	s.goalRepo.On("SaveGoal", s.ctx, mock.AnythingOfType("domain.Goal")).Return(nil).Once()

	goal, err := s.service.CreateGoal(s.ctx, s.ownerID, dto.CreateGoalRequest{
		Title:        "Emergency fund",
		Type:         domain.GoalSaving,
		TargetAmount: decimal.NewFromInt(5000),
		Period:       domain.PeriodYearly,
	})

	s.Require().NoError(err)
	s.Equal(domain.StatusSafe, goal.Status)
	s.True(goal.CurrentAmount.IsZero())
	s.Equal(s.ownerID, goal.OwnerID)
	s.goalRepo.AssertExpectations(s.T())

	entries := s.recorder.recorded()
	s.Require().Len(entries, 1)
	s.Equal(domain.ActivityGoal, entries[0].Type)
	s.Equal(domain.ActionCreated, entries[0].Action)
}

func (s *GoalServiceTestSuite) TestCreateGoalRejectsNonPositiveTarget() {
	_, err := s.service.CreateGoal(s.ctx, s.ownerID, dto.CreateGoalRequest{
		Title:        "Broken",
		Type:         domain.GoalSaving,
		TargetAmount: decimal.Zero,
		Period:       domain.PeriodMonthly,
	})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.goalRepo.AssertNotCalled(s.T(), "SaveGoal")
	s.Empty(s.recorder.recorded())
}

func (s *GoalServiceTestSuite) TestCreateGoalRejectsForeignCategory() {
	s.categoryRepo.On("FindCategoryByID", s.ctx, "cat-9", s.ownerID).Return(nil, apperrors.ErrNotFound).Once()

	catID := "cat-9"
	_, err := s.service.CreateGoal(s.ctx, s.ownerID, dto.CreateGoalRequest{
		Title:        "Groceries cap",
		Type:         domain.GoalSpendingLimit,
		TargetAmount: decimal.NewFromInt(400),
		Period:       domain.PeriodMonthly,
		CategoryID:   &catID,
	})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.goalRepo.AssertNotCalled(s.T(), "SaveGoal")
}

func (s *GoalServiceTestSuite) TestUpdateGoalMergesAndRederivesStatus() {
	existing := &domain.Goal{
		GoalID:        "goal-1",
		OwnerID:       s.ownerID,
		Title:         "Vacation",
		Type:          domain.GoalSaving,
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromInt(100),
		Period:        domain.PeriodYearly,
		Status:        domain.StatusExceeded,
	}
	s.goalRepo.On("FindGoalByID", s.ctx, "goal-1", s.ownerID).Return(existing, nil).Once()
	s.goalRepo.On("UpdateGoal", s.ctx, mock.AnythingOfType("domain.Goal")).Return(nil).Once()

	current := decimal.NewFromInt(850)
	goal, err := s.service.UpdateGoal(s.ctx, s.ownerID, dto.UpdateGoalRequest{
		ID:            "goal-1",
		CurrentAmount: &current,
	})

	s.Require().NoError(err)
	// 850/1000 = 85% of a saving goal: below target, above 70%.
	s.Equal(domain.StatusWarning, goal.Status)
	s.Equal("Vacation", goal.Title)
	s.goalRepo.AssertExpectations(s.T())
}

func (s *GoalServiceTestSuite) TestUpdateGoalIgnoresStatusInPayloadPath() {
	existing := &domain.Goal{
		GoalID:        "goal-2",
		OwnerID:       s.ownerID,
		Title:         "Dining out",
		Type:          domain.GoalSpendingLimit,
		TargetAmount:  decimal.NewFromInt(200),
		CurrentAmount: decimal.NewFromInt(250),
		Period:        domain.PeriodMonthly,
		Status:        domain.StatusSafe,
	}
	s.goalRepo.On("FindGoalByID", s.ctx, "goal-2", s.ownerID).Return(existing, nil).Once()
	s.goalRepo.On("UpdateGoal", s.ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.Status == domain.StatusExceeded
	})).Return(nil).Once()

	title := "Dining out (tightened)"
	goal, err := s.service.UpdateGoal(s.ctx, s.ownerID, dto.UpdateGoalRequest{
		ID:    "goal-2",
		Title: &title,
	})

	s.Require().NoError(err)
	s.Equal(domain.StatusExceeded, goal.Status)
	s.goalRepo.AssertExpectations(s.T())
}

func (s *GoalServiceTestSuite) TestUpdateGoalClearsCategoryWithEmptyString() {
	existing := &domain.Goal{
		GoalID:        "goal-3",
		OwnerID:       s.ownerID,
		Title:         "Transport cap",
		Type:          domain.GoalSpendingLimit,
		TargetAmount:  decimal.NewFromInt(300),
		CurrentAmount: decimal.NewFromInt(50),
		Period:        domain.PeriodMonthly,
		CategoryID:    "cat-transport",
	}
	s.goalRepo.On("FindGoalByID", s.ctx, "goal-3", s.ownerID).Return(existing, nil).Once()
	s.goalRepo.On("UpdateGoal", s.ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.CategoryID == ""
	})).Return(nil).Once()

	empty := ""
	goal, err := s.service.UpdateGoal(s.ctx, s.ownerID, dto.UpdateGoalRequest{
		ID:         "goal-3",
		CategoryID: &empty,
	})

	s.Require().NoError(err)
	s.Empty(goal.CategoryID)
	s.categoryRepo.AssertNotCalled(s.T(), "FindCategoryByID")
	s.goalRepo.AssertExpectations(s.T())
}

func (s *GoalServiceTestSuite) TestUpdateGoalForeignGoalIsNotFound() {
	s.goalRepo.On("FindGoalByID", s.ctx, "goal-x", s.ownerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.UpdateGoal(s.ctx, s.ownerID, dto.UpdateGoalRequest{ID: "goal-x"})

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.goalRepo.AssertNotCalled(s.T(), "UpdateGoal")
}

func (s *GoalServiceTestSuite) TestDeleteGoalRecordsActivityWithTitle() {
	existing := &domain.Goal{GoalID: "goal-1", OwnerID: s.ownerID, Title: "Emergency fund"}
	s.goalRepo.On("FindGoalByID", s.ctx, "goal-1", s.ownerID).Return(existing, nil).Once()
	s.goalRepo.On("DeleteGoal", s.ctx, "goal-1", s.ownerID).Return(nil).Once()

	err := s.service.DeleteGoal(s.ctx, s.ownerID, "goal-1")

	s.Require().NoError(err)
	entries := s.recorder.recorded()
	s.Require().Len(entries, 1)
	s.Equal(domain.ActionDeleted, entries[0].Action)
	s.Contains(entries[0].Description, "Emergency fund")
}

func (s *GoalServiceTestSuite) TestDeleteMissingGoalSkipsActivity() {
	s.goalRepo.On("FindGoalByID", s.ctx, "goal-x", s.ownerID).Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.DeleteGoal(s.ctx, s.ownerID, "goal-x")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.goalRepo.AssertNotCalled(s.T(), "DeleteGoal")
	s.Empty(s.recorder.recorded())
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
