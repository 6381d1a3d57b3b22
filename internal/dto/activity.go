package dto

import (
	"time"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
)

// ListActivitiesParams defines query parameters for the activity feed.
type ListActivitiesParams struct {
	Limit int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}

// ActivityResponse is one entry of the display-only activity feed.
type ActivityResponse struct {
	ActivityID  string                `json:"id"`
	Type        domain.ActivityType   `json:"type"`
	Action      domain.ActivityAction `json:"action"`
	Description string                `json:"description"`
	Metadata    map[string]any        `json:"metadata,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
}

// ToActivityResponse converts a domain.Activity to its DTO.
func ToActivityResponse(activity *domain.Activity) ActivityResponse {
	return ActivityResponse{
		ActivityID:  activity.ActivityID,
		Type:        activity.Type,
		Action:      activity.Action,
		Description: activity.Description,
		Metadata:    activity.Metadata,
		CreatedAt:   activity.CreatedAt,
	}
}

// ToListActivityResponse converts a slice of activities.
func ToListActivityResponse(activities []domain.Activity) []ActivityResponse {
	res := make([]ActivityResponse, len(activities))
	for i := range activities {
		res[i] = ToActivityResponse(&activities[i])
	}
	return res
}
