package services

import (
	"context"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
)

// ReminderSvcFacade orchestrates reminder CRUD.
type ReminderSvcFacade interface {
	ListReminders(ctx context.Context, ownerID string, params dto.ListRemindersParams) ([]domain.Reminder, error)
	CreateReminder(ctx context.Context, ownerID string, req dto.CreateReminderRequest) (*domain.Reminder, error)
	UpdateReminder(ctx context.Context, ownerID string, req dto.UpdateReminderRequest) (*domain.Reminder, error)
	DeleteReminder(ctx context.Context, ownerID string, reminderID string) error
}
