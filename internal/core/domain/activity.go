package domain

import "time"

// ActivityType names the resource kind an activity entry refers to.
type ActivityType string

const (
	ActivityTransaction ActivityType = "TRANSACTION"
	ActivityGoal        ActivityType = "GOAL"
	ActivityNote        ActivityType = "NOTE"
	ActivityReminder    ActivityType = "REMINDER"
)

// ActivityAction names what happened.
type ActivityAction string

const (
	ActionCreated ActivityAction = "CREATED"
	ActionUpdated ActivityAction = "UPDATED"
	ActionDeleted ActivityAction = "DELETED"
)

// Activity is one append-only audit entry. Entries are written best-effort
// after a successful mutation and are only ever read for display.
type Activity struct {
	ActivityID  string         `json:"activityID"`
	OwnerID     string         `json:"ownerID"`
	Type        ActivityType   `json:"type"`
	Action      ActivityAction `json:"action"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}
