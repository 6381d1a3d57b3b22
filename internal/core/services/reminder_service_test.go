package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/lifetrackhq/lifetrack_backend/internal/apperrors"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReminderServiceTestSuite struct {
	suite.Suite
	reminderRepo *MockReminderRepository
	recorder     *recorderSpy
	service      portssvc.ReminderSvcFacade
	ctx          context.Context
	ownerID      string
}

func (s *ReminderServiceTestSuite) SetupTest() {
	s.reminderRepo = new(MockReminderRepository)
	s.recorder = &recorderSpy{}
	s.service = services.NewReminderService(s.reminderRepo, s.recorder)
	s.ctx = context.Background()
	s.ownerID = "owner-1"
}

func (s *ReminderServiceTestSuite) TestCreateReminderDefaultsPriorityAndStatus() {
	s.reminderRepo.On("SaveReminder", s.ctx, mock.MatchedBy(func(r domain.Reminder) bool {
		return r.Priority == domain.PriorityMedium && r.Status == domain.ReminderPending
	})).Return(nil).Once()

	reminder, err := s.service.CreateReminder(s.ctx, s.ownerID, dto.CreateReminderRequest{
		Title:   "Pay rent",
		DueDate: dto.DateTime{Time: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
	})

	s.Require().NoError(err)
	s.Equal(domain.PriorityMedium, reminder.Priority)
	s.Equal(domain.ReminderPending, reminder.Status)
	s.reminderRepo.AssertExpectations(s.T())
}

func (s *ReminderServiceTestSuite) TestCreateReminderKeepsExplicitPriority() {
	s.reminderRepo.On("SaveReminder", s.ctx, mock.MatchedBy(func(r domain.Reminder) bool {
		return r.Priority == domain.PriorityHigh
	})).Return(nil).Once()

	_, err := s.service.CreateReminder(s.ctx, s.ownerID, dto.CreateReminderRequest{
		Title:    "Renew passport",
		DueDate:  dto.DateTime{Time: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
		Priority: domain.PriorityHigh,
	})

	s.Require().NoError(err)
	s.reminderRepo.AssertExpectations(s.T())
}

func (s *ReminderServiceTestSuite) TestUpdateReminderMergesFields() {
	existing := &domain.Reminder{
		ReminderID: "rem-1",
		OwnerID:    s.ownerID,
		Title:      "Call dentist",
		DueDate:    time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC),
		Status:     domain.ReminderPending,
		Priority:   domain.PriorityLow,
	}
	s.reminderRepo.On("FindReminderByID", s.ctx, "rem-1", s.ownerID).Return(existing, nil).Once()
	s.reminderRepo.On("UpdateReminder", s.ctx, mock.MatchedBy(func(r domain.Reminder) bool {
		return r.Status == domain.ReminderCompleted && r.Title == "Call dentist" && r.Priority == domain.PriorityLow
	})).Return(nil).Once()

	completed := domain.ReminderCompleted
	reminder, err := s.service.UpdateReminder(s.ctx, s.ownerID, dto.UpdateReminderRequest{
		ID:     "rem-1",
		Status: &completed,
	})

	s.Require().NoError(err)
	s.Equal(domain.ReminderCompleted, reminder.Status)
	s.reminderRepo.AssertExpectations(s.T())

	entries := s.recorder.recorded()
	s.Require().Len(entries, 1)
	s.Equal(domain.ActivityReminder, entries[0].Type)
	s.Equal(domain.ActionUpdated, entries[0].Action)
}

func (s *ReminderServiceTestSuite) TestUpdateForeignReminderIsNotFound() {
	s.reminderRepo.On("FindReminderByID", s.ctx, "rem-x", s.ownerID).Return(nil, apperrors.ErrNotFound).Once()

	title := "nope"
	_, err := s.service.UpdateReminder(s.ctx, s.ownerID, dto.UpdateReminderRequest{ID: "rem-x", Title: &title})

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.reminderRepo.AssertNotCalled(s.T(), "UpdateReminder")
}

func (s *ReminderServiceTestSuite) TestListRemindersPassesStatusFilter() {
	pending := domain.ReminderPending
	s.reminderRepo.On("ListReminders", s.ctx, s.ownerID, &pending).Return([]domain.Reminder{}, nil).Once()

	_, err := s.service.ListReminders(s.ctx, s.ownerID, dto.ListRemindersParams{Status: "PENDING"})

	s.Require().NoError(err)
	s.reminderRepo.AssertExpectations(s.T())
}

func (s *ReminderServiceTestSuite) TestDeleteReminderRecordsActivityWithTitle() {
	existing := &domain.Reminder{ReminderID: "rem-1", OwnerID: s.ownerID, Title: "Pay rent"}
	s.reminderRepo.On("FindReminderByID", s.ctx, "rem-1", s.ownerID).Return(existing, nil).Once()
	s.reminderRepo.On("DeleteReminder", s.ctx, "rem-1", s.ownerID).Return(nil).Once()

	s.Require().NoError(s.service.DeleteReminder(s.ctx, s.ownerID, "rem-1"))

	entries := s.recorder.recorded()
	s.Require().Len(entries, 1)
	s.Equal(domain.ActivityReminder, entries[0].Type)
	s.Equal(domain.ActionDeleted, entries[0].Action)
	s.Contains(entries[0].Description, "Pay rent")
	s.reminderRepo.AssertExpectations(s.T())
}

func (s *ReminderServiceTestSuite) TestDeleteForeignReminderIsNotFound() {
	s.reminderRepo.On("FindReminderByID", s.ctx, "rem-x", s.ownerID).Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.DeleteReminder(s.ctx, s.ownerID, "rem-x")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.reminderRepo.AssertNotCalled(s.T(), "DeleteReminder")
	s.Empty(s.recorder.recorded())
}

func TestReminderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReminderServiceTestSuite))
}
