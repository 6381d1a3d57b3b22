package dto

import (
	"time"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
)

// CreateReminderRequest defines the data needed to create a reminder.
// Priority defaults to MEDIUM when omitted.
type CreateReminderRequest struct {
	Title       string                  `json:"title" binding:"required"`
	Description string                  `json:"description"`
	DueDate     DateTime                `json:"dueDate" binding:"required"`
	Priority    domain.ReminderPriority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
}

// UpdateReminderRequest merges over an existing reminder.
type UpdateReminderRequest struct {
	ID          string                   `json:"id" binding:"required"`
	Title       *string                  `json:"title"`
	Description *string                  `json:"description"`
	DueDate     *DateTime                `json:"dueDate"`
	Status      *domain.ReminderStatus   `json:"status" binding:"omitempty,oneof=PENDING COMPLETED DISMISSED"`
	Priority    *domain.ReminderPriority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
}

// ListRemindersParams defines query parameters for listing reminders.
type ListRemindersParams struct {
	Status string `form:"status" binding:"omitempty,oneof=PENDING COMPLETED DISMISSED"`
}

// ReminderResponse mirrors domain.Reminder.
type ReminderResponse struct {
	ReminderID    string                  `json:"id"`
	Title         string                  `json:"title"`
	Description   string                  `json:"description,omitempty"`
	DueDate       time.Time               `json:"dueDate"`
	Status        domain.ReminderStatus   `json:"status"`
	Priority      domain.ReminderPriority `json:"priority"`
	CreatedAt     time.Time               `json:"createdAt"`
	LastUpdatedAt time.Time               `json:"updatedAt"`
}

// ToReminderResponse converts a domain.Reminder to its DTO.
func ToReminderResponse(reminder *domain.Reminder) ReminderResponse {
	return ReminderResponse{
		ReminderID:    reminder.ReminderID,
		Title:         reminder.Title,
		Description:   reminder.Description,
		DueDate:       reminder.DueDate,
		Status:        reminder.Status,
		Priority:      reminder.Priority,
		CreatedAt:     reminder.CreatedAt,
		LastUpdatedAt: reminder.LastUpdatedAt,
	}
}

// ToListReminderResponse converts a slice of reminders.
func ToListReminderResponse(reminders []domain.Reminder) []ReminderResponse {
	res := make([]ReminderResponse, len(reminders))
	for i := range reminders {
		res[i] = ToReminderResponse(&reminders[i])
	}
	return res
}
