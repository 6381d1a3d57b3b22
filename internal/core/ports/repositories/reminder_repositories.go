package repositories

import (
	"context"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
)

// ReminderRepository persists reminders. Single-row lookups are constrained
// to (reminder_id, owner_id).
type ReminderRepository interface {
	SaveReminder(ctx context.Context, reminder domain.Reminder) error
	FindReminderByID(ctx context.Context, reminderID string, ownerID string) (*domain.Reminder, error)
	// ListReminders returns the owner's reminders ordered by due date
	// ascending, then priority HIGH before MEDIUM before LOW.
	ListReminders(ctx context.Context, ownerID string, status *domain.ReminderStatus) ([]domain.Reminder, error)
	UpdateReminder(ctx context.Context, reminder domain.Reminder) error
	DeleteReminder(ctx context.Context, reminderID string, ownerID string) error
}
