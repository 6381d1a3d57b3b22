package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portsrepo "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/repositories"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
)

type reminderService struct {
	BaseService
	reminderRepo portsrepo.ReminderRepository
	recorder     portssvc.ActivityRecorderSvc
}

// NewReminderService creates a ReminderSvcFacade.
func NewReminderService(reminderRepo portsrepo.ReminderRepository, recorder portssvc.ActivityRecorderSvc) portssvc.ReminderSvcFacade {
	return &reminderService{reminderRepo: reminderRepo, recorder: recorder}
}

var _ portssvc.ReminderSvcFacade = (*reminderService)(nil)

func (s *reminderService) ListReminders(ctx context.Context, ownerID string, params dto.ListRemindersParams) ([]domain.Reminder, error) {
	var status *domain.ReminderStatus
	if params.Status != "" {
		st := domain.ReminderStatus(params.Status)
		status = &st
	}
	return s.reminderRepo.ListReminders(ctx, ownerID, status)
}

func (s *reminderService) CreateReminder(ctx context.Context, ownerID string, req dto.CreateReminderRequest) (*domain.Reminder, error) {
	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := time.Now().UTC()
	reminder := domain.Reminder{
		ReminderID:  uuid.NewString(),
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate.Time,
		Status:      domain.ReminderPending,
		Priority:    priority,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.reminderRepo.SaveReminder(ctx, reminder); err != nil {
		s.LogError(ctx, err, "failed to create reminder", "ownerID", ownerID)
		return nil, err
	}

	s.recorder.Record(ownerID, domain.ActivityReminder, domain.ActionCreated,
		fmt.Sprintf("Created reminder: %s", reminder.Title),
		map[string]any{"reminderId": reminder.ReminderID})
	return &reminder, nil
}

func (s *reminderService) UpdateReminder(ctx context.Context, ownerID string, req dto.UpdateReminderRequest) (*domain.Reminder, error) {
	reminder, err := s.reminderRepo.FindReminderByID(ctx, req.ID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		reminder.Title = *req.Title
	}
	if req.Description != nil {
		reminder.Description = *req.Description
	}
	if req.DueDate != nil {
		reminder.DueDate = req.DueDate.Time
	}
	if req.Status != nil {
		reminder.Status = *req.Status
	}
	if req.Priority != nil {
		reminder.Priority = *req.Priority
	}
	reminder.LastUpdatedAt = time.Now().UTC()

	if err := s.reminderRepo.UpdateReminder(ctx, *reminder); err != nil {
		s.LogError(ctx, err, "failed to update reminder", "reminderID", req.ID)
		return nil, err
	}

	s.recorder.Record(ownerID, domain.ActivityReminder, domain.ActionUpdated,
		fmt.Sprintf("Updated reminder: %s", reminder.Title),
		map[string]any{"reminderId": reminder.ReminderID, "status": string(reminder.Status)})
	return reminder, nil
}

func (s *reminderService) DeleteReminder(ctx context.Context, ownerID string, reminderID string) error {
	// Fetch first so the activity entry can describe what was removed.
	reminder, err := s.reminderRepo.FindReminderByID(ctx, reminderID, ownerID)
	if err != nil {
		return err
	}
	if err := s.reminderRepo.DeleteReminder(ctx, reminderID, ownerID); err != nil {
		return err
	}
	s.recorder.Record(ownerID, domain.ActivityReminder, domain.ActionDeleted,
		fmt.Sprintf("Deleted reminder: %s", reminder.Title),
		map[string]any{"reminderId": reminderID})
	return nil
}
