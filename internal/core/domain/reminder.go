package domain

import "time"

// ReminderStatus is the lifecycle state of a reminder.
type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "PENDING"
	ReminderCompleted ReminderStatus = "COMPLETED"
	ReminderDismissed ReminderStatus = "DISMISSED"
)

// ReminderPriority orders reminders that share a due date.
type ReminderPriority string

const (
	PriorityLow    ReminderPriority = "LOW"
	PriorityMedium ReminderPriority = "MEDIUM"
	PriorityHigh   ReminderPriority = "HIGH"
)

// Rank maps a priority to a sortable weight, HIGH first.
func (p ReminderPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Reminder is a dated task with a priority.
type Reminder struct {
	ReminderID  string           `json:"reminderID"`
	OwnerID     string           `json:"ownerID"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	DueDate     time.Time        `json:"dueDate"`
	Status      ReminderStatus   `json:"status"`
	Priority    ReminderPriority `json:"priority"`
	AuditFields
}
